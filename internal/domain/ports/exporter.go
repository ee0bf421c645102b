package ports

import (
	"io"

	"github.com/ersonp/dex/internal/domain/entities"
)

// Exporter writes records in one file format.
type Exporter interface {
	// Format is the name used to select the exporter, e.g. "csv".
	Format() string
	Export(w io.Writer, records []entities.Creature) error
}
