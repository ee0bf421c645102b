package exporters

import (
	"encoding/json"
	"io"

	"github.com/ersonp/dex/internal/domain/entities"
)

// JSON writes records as an indented JSON array.
type JSON struct{}

// Format returns "json".
func (JSON) Format() string { return FormatJSON }

// Export writes the records.
func (JSON) Export(w io.Writer, records []entities.Creature) error {
	type exportCreature struct {
		ID       int             `json:"id"`
		Name     string          `json:"name"`
		Types    []string        `json:"types"`
		HeightM  float64         `json:"height_m"`
		WeightKg float64         `json:"weight_kg"`
		Stats    []entities.Stat `json:"stats"`
		ImageURL string          `json:"image_url,omitempty"`
	}

	out := make([]exportCreature, 0, len(records))
	for _, c := range records {
		out = append(out, exportCreature{
			ID:       c.ID,
			Name:     c.Name,
			Types:    c.Types,
			HeightM:  c.HeightMeters(),
			WeightKg: c.WeightKilograms(),
			Stats:    c.Stats,
			ImageURL: c.ImageURL,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
