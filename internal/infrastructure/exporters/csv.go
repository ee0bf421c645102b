package exporters

import (
	"encoding/csv"
	"io"

	"github.com/ersonp/dex/internal/domain/entities"
)

// CSV writes one row per record with a header line.
type CSV struct{}

// Format returns "csv".
func (CSV) Format() string { return FormatCSV }

// Export writes the records.
func (CSV) Export(w io.Writer, records []entities.Creature) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(columns); err != nil {
		return err
	}
	for _, c := range records {
		if err := writer.Write(row(c)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
