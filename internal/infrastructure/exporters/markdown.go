package exporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/ersonp/dex/internal/domain/entities"
)

// Markdown writes records as a markdown table.
type Markdown struct{}

// Format returns "markdown".
func (Markdown) Format() string { return FormatMarkdown }

// Export writes the records.
func (Markdown) Export(w io.Writer, records []entities.Creature) error {
	if _, err := fmt.Fprintf(w, "# Exported Creatures\n\nTotal: %d creatures\n\n", len(records)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| # | Name | Types | Height | Weight | HP |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|---|------|-------|--------|--------|----|\n"); err != nil {
		return err
	}

	for _, c := range records {
		if _, err := fmt.Fprintf(w, "| %d | %s | %s | %sm | %skg | %d |\n",
			c.ID,
			escapeMarkdown(c.Name),
			escapeMarkdown(strings.Join(c.Types, ", ")),
			formatDecimal(c.HeightMeters()),
			formatDecimal(c.WeightKilograms()),
			c.HP(),
		); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
