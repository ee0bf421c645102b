package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/infrastructure/render"
)

const cardWidth = 24

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	title := m.styles.Title.Render("dex")
	if m.busy() {
		title += " " + m.spinner.View()
	}
	b.WriteString(title + "\n")

	box := m.styles.Search
	if m.input.Focused() {
		box = m.styles.SearchOn
	}
	b.WriteString(box.Render(m.input.View()) + "\n")

	b.WriteString(m.statusLine() + "\n\n")

	if m.started && m.showRecords() {
		b.WriteString(m.grid() + "\n")
	}

	b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) statusLine() string {
	if !m.started {
		return m.styles.Dim.Render("Loading…")
	}

	line := m.styles.Heading.Render(render.Heading(m.view))
	if m.view.Mode == entities.ModeBrowsing {
		line += m.styles.Dim.Render(fmt.Sprintf("  offset %d", m.view.Pagination.Offset))
	}

	switch notice := render.Notice(m.view); {
	case notice == "":
	case m.view.Status.IsFailure():
		line += "  " + m.styles.Error.Render(notice+" (r to retry)")
	default:
		line += "  " + m.styles.Warning.Render(notice)
	}

	if m.err != nil {
		line += "  " + m.styles.Error.Render(m.err.Error())
	}
	if m.info != "" {
		line += "  " + m.styles.Dim.Render(m.info)
	}
	return line
}

func (m *Model) showRecords() bool {
	return (m.view.Status == entities.StatusOK || m.view.Status.IsFailure()) && len(m.view.Records) > 0
}

func (m *Model) grid() string {
	perRow := m.width / (cardWidth + 4)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	var row []string
	for _, c := range m.view.Records {
		row = append(row, m.card(c))
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) card(c entities.Creature) string {
	card := render.NewCard(c)

	badges := make([]string, 0, len(card.Types))
	for _, t := range card.Types {
		badges = append(badges, m.styles.TypeBadge(t))
	}

	stats := make([]string, 0, len(card.Stats))
	for _, s := range card.Stats {
		stats = append(stats, m.styles.Dim.Render(s.Label)+" "+s.Value)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.CardID.Render(fmt.Sprintf("#%d", card.ID)),
		m.styles.Bold.Render(card.Name),
		strings.Join(badges, " "),
		strings.Join(stats[:2], "  "),
		stats[2],
	)
	return m.styles.Card.Render(body)
}
