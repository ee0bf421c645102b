// Package entities contains core domain data structures.
package entities

import "strings"

// EntryRef is a lightweight pointer into the catalog, as returned by the
// listing endpoint.
type EntryRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Stat is a single base stat of a creature.
type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

// Creature is a fully resolved catalog record.
type Creature struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	Height   int      `json:"height"` // decimetres
	Weight   int      `json:"weight"` // hectograms
	Stats    []Stat   `json:"stats"`
	ImageURL string   `json:"image_url,omitempty"`
}

// HeightMeters returns the height in metres.
func (c Creature) HeightMeters() float64 {
	return float64(c.Height) / 10
}

// WeightKilograms returns the weight in kilograms.
func (c Creature) WeightKilograms() float64 {
	return float64(c.Weight) / 10
}

// HP returns the hit point base stat. The catalog lists HP first, but the
// stat is matched by name when present so reordered payloads still work.
func (c Creature) HP() int {
	for _, s := range c.Stats {
		if s.Name == "hp" {
			return s.Base
		}
	}
	if len(c.Stats) > 0 {
		return c.Stats[0].Base
	}
	return 0
}

// TypeList returns the types joined for display, e.g. "grass/poison".
func (c Creature) TypeList() string {
	return strings.Join(c.Types, "/")
}

// NormalizeName converts a name to lowercase for case-insensitive matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
