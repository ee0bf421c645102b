// Package render turns controller views into text and HTML.
package render

import (
	"fmt"
	"strconv"

	"github.com/ersonp/dex/internal/domain/entities"
)

// CardStat is one labelled value on a card.
type CardStat struct {
	Label string
	Value string
}

// Card is the display form of a creature.
type Card struct {
	ID    int
	Name  string
	Types []string
	Image string
	Stats []CardStat
}

// NewCard builds the card for a creature. Cards show height, weight and HP.
func NewCard(c entities.Creature) Card {
	return Card{
		ID:    c.ID,
		Name:  c.Name,
		Types: c.Types,
		Image: c.ImageURL,
		Stats: []CardStat{
			{Label: "Height", Value: formatDecimal(c.HeightMeters()) + "m"},
			{Label: "Weight", Value: formatDecimal(c.WeightKilograms()) + "kg"},
			{Label: "Hp", Value: strconv.Itoa(c.HP())},
		},
	}
}

// NewCards builds cards for every record.
func NewCards(records []entities.Creature) []Card {
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, NewCard(r))
	}
	return cards
}

// Stat returns the value of the labelled stat, or "".
func (c Card) Stat(label string) string {
	for _, s := range c.Stats {
		if s.Label == label {
			return s.Value
		}
	}
	return ""
}

// Heading describes where a view sits, e.g. "Page 2" or `Search "pika"`.
func Heading(view entities.View) string {
	if view.Mode == entities.ModeSearching {
		return fmt.Sprintf("Search %q", view.Query)
	}
	return fmt.Sprintf("Page %d", view.Pagination.Page)
}

// Notice returns the status line for a view, or "" when there is nothing to
// report.
func Notice(view entities.View) string {
	if msg := view.Status.Message(); msg != "" {
		if view.Err != nil {
			return fmt.Sprintf("%s: %v", msg, view.Err)
		}
		return msg
	}
	if view.Failed > 0 {
		return fmt.Sprintf("%d of %d records failed to load", view.Failed, view.Failed+len(view.Records))
	}
	return ""
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
