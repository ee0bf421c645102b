// Package exporters writes creature records to files in several formats.
package exporters

import (
	"strconv"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/ports"
)

// Format names.
const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatXLSX     = "xlsx"
	FormatHTML     = "html"
)

// All returns an exporter for every supported format.
func All() []ports.Exporter {
	return []ports.Exporter{
		JSON{},
		CSV{},
		Markdown{},
		XLSX{},
		HTML{},
	}
}

var columns = []string{"id", "name", "types", "height_m", "weight_kg", "hp", "image_url"}

// row flattens a creature into the tabular column order.
func row(c entities.Creature) []string {
	return []string{
		strconv.Itoa(c.ID),
		c.Name,
		c.TypeList(),
		formatDecimal(c.HeightMeters()),
		formatDecimal(c.WeightKilograms()),
		strconv.Itoa(c.HP()),
		c.ImageURL,
	}
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
