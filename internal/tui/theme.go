package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the TUI.
type Theme struct {
	TextPrimary lipgloss.Color
	TextDim     lipgloss.Color
	TextMuted   lipgloss.Color

	Border        lipgloss.Color
	BorderFocused lipgloss.Color

	Accent  lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// DefaultTheme is a dark theme.
var DefaultTheme = Theme{
	TextPrimary: lipgloss.Color("#c0caf5"),
	TextDim:     lipgloss.Color("#565f89"),
	TextMuted:   lipgloss.Color("#414868"),

	Border:        lipgloss.Color("#414868"),
	BorderFocused: lipgloss.Color("#7aa2f7"),

	Accent:  lipgloss.Color("#7aa2f7"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),
}

// typeColors follows the usual colors for each creature type.
var typeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("#a8a77a"),
	"fire":     lipgloss.Color("#ee8130"),
	"water":    lipgloss.Color("#6390f0"),
	"electric": lipgloss.Color("#f7d02c"),
	"grass":    lipgloss.Color("#7ac74c"),
	"ice":      lipgloss.Color("#96d9d6"),
	"fighting": lipgloss.Color("#c22e28"),
	"poison":   lipgloss.Color("#a33ea1"),
	"ground":   lipgloss.Color("#e2bf65"),
	"flying":   lipgloss.Color("#a98ff3"),
	"psychic":  lipgloss.Color("#f95587"),
	"bug":      lipgloss.Color("#a6b91a"),
	"rock":     lipgloss.Color("#b6a136"),
	"ghost":    lipgloss.Color("#735797"),
	"dragon":   lipgloss.Color("#6f35fc"),
	"dark":     lipgloss.Color("#705746"),
	"steel":    lipgloss.Color("#b7b7ce"),
	"fairy":    lipgloss.Color("#d685ad"),
}

// Styles provides pre-configured lipgloss styles using the theme.
type Styles struct {
	theme Theme

	Title   lipgloss.Style
	Heading lipgloss.Style
	Dim     lipgloss.Style
	Bold    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	Card     lipgloss.Style
	CardID   lipgloss.Style
	Search   lipgloss.Style
	SearchOn lipgloss.Style
	Footer   lipgloss.Style
}

// NewStyles creates a new Styles instance from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		theme: t,

		Title: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true).
			Padding(0, 1),
		Heading: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(t.TextDim),
		Bold:    lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Error:   lipgloss.NewStyle().Foreground(t.Error).Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1).
			Width(cardWidth),
		CardID: lipgloss.NewStyle().Foreground(t.TextMuted),
		Search: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		SearchOn: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(t.TextDim).
			MarginTop(1),
	}
}

// TypeBadge renders a type name on its color.
func (s Styles) TypeBadge(name string) string {
	color, ok := typeColors[name]
	if !ok {
		color = s.theme.TextDim
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1a1b26")).
		Background(color).
		Padding(0, 1).
		Render(name)
}

// DefaultStyles uses the default theme.
var DefaultStyles = NewStyles(DefaultTheme)
