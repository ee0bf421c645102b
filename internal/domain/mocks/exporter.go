package mocks

import (
	"fmt"
	"io"

	"github.com/ersonp/dex/internal/domain/entities"
)

// Exporter is a mock implementation of ports.Exporter that writes one name
// per line.
type Exporter struct {
	Name      string
	ExportErr error

	Exported []entities.Creature
}

// Format returns the configured format name.
func (m *Exporter) Format() string {
	return m.Name
}

// Export records the creatures and writes their names.
func (m *Exporter) Export(w io.Writer, records []entities.Creature) error {
	if m.ExportErr != nil {
		return m.ExportErr
	}
	m.Exported = append(m.Exported, records...)
	for _, r := range records {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}
