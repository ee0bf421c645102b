package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Glamour style names accepted by WriteStyledCard besides the built-in
// standard styles.
const (
	StyleAuto  = "auto"
	StylePlain = "notty"
)

// DefaultWordWrap is the terminal width styled cards wrap at.
const DefaultWordWrap = 80

// CardMarkdown returns the card as a markdown document.
func CardMarkdown(c Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Name)
	fmt.Fprintf(&b, "Number %d", c.ID)
	if len(c.Types) > 0 {
		fmt.Fprintf(&b, ", %s", strings.Join(c.Types, " / "))
	}
	b.WriteString("\n\n")
	for _, s := range c.Stats {
		fmt.Fprintf(&b, "- %s: %s\n", s.Label, s.Value)
	}
	if c.Image != "" {
		fmt.Fprintf(&b, "\n[artwork](%s)\n", c.Image)
	}
	return b.String()
}

// WriteStyledCard renders the card's markdown for a terminal. style is
// StyleAuto, StylePlain or any glamour standard style name.
func WriteStyledCard(w io.Writer, c Card, style string, wordWrap int) error {
	if wordWrap <= 0 {
		wordWrap = DefaultWordWrap
	}

	opt := glamour.WithStandardStyle(style)
	if style == "" || style == StyleAuto {
		opt = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(wordWrap))
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(CardMarkdown(c))
	if err != nil {
		return fmt.Errorf("rendering card %s: %w", c.Name, err)
	}
	_, err = io.WriteString(w, out)
	return err
}
