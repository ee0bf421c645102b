package render

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/ersonp/dex/internal/domain/entities"
)

// TextRenderer writes views as a plain table.
type TextRenderer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTextRenderer creates a renderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Render writes the view. Write errors are dropped; the renderer has no way
// to report them.
func (r *TextRenderer) Render(view entities.View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = WriteText(r.w, view)
}

// WriteText writes a heading, the records as a table and any status notice.
// Failure statuses keep the records that were already on screen.
func WriteText(w io.Writer, view entities.View) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", Heading(view)); err != nil {
		return err
	}

	showRecords := view.Status == entities.StatusOK || view.Status.IsFailure()
	if showRecords && len(view.Records) > 0 {
		if err := WriteTable(w, view.Records); err != nil {
			return err
		}
	}

	if notice := Notice(view); notice != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", notice); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable writes one row per record.
func WriteTable(w io.Writer, records []entities.Creature) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPES\tHEIGHT\tWEIGHT\tHP")
	for _, c := range NewCards(records) {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, strings.Join(c.Types, "/"), c.Stat("Height"), c.Stat("Weight"), c.Stat("Hp"))
	}
	return tw.Flush()
}

// WriteCard writes the detailed form of a single creature.
func WriteCard(w io.Writer, creature entities.Creature) error {
	card := NewCard(creature)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#%d\t%s\n", card.ID, card.Name)
	fmt.Fprintf(tw, "Types\t%s\n", strings.Join(card.Types, ", "))
	for _, s := range card.Stats {
		fmt.Fprintf(tw, "%s\t%s\n", s.Label, s.Value)
	}
	for _, s := range creature.Stats {
		if s.Name == "hp" {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\n", s.Name, s.Base)
	}
	if card.Image != "" {
		fmt.Fprintf(tw, "Image\t%s\n", card.Image)
	}
	return tw.Flush()
}
