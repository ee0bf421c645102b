package exporters

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ersonp/dex/internal/domain/entities"
)

const sheetName = "Sheet1"

// XLSX writes records to a single-sheet workbook.
type XLSX struct{}

// Format returns "xlsx".
func (XLSX) Format() string { return FormatXLSX }

// Export writes the records.
func (XLSX) Export(w io.Writer, records []entities.Creature) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing workbook: %w", cerr)
		}
	}()

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("creating stream writer: %w", err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, c := range records {
		// Numeric columns stay numeric so the sheet can sort and sum them.
		values := []any{
			c.ID,
			c.Name,
			c.TypeList(),
			c.HeightMeters(),
			c.WeightKilograms(),
			c.HP(),
			c.ImageURL,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flushing sheet: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
