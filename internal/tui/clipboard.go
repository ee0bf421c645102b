package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ersonp/dex/internal/domain/entities"
)

var clipboardWrite = clipboard.WriteAll

// clipboardCopyMsg is sent after a clipboard copy.
type clipboardCopyMsg struct {
	count int
	err   error
}

// copyNames copies the names of the shown records, one per line.
func copyNames(records []entities.Creature) tea.Cmd {
	names := make([]string, 0, len(records))
	for _, c := range records {
		names = append(names, c.Name)
	}
	return func() tea.Msg {
		if len(names) == 0 {
			return clipboardCopyMsg{}
		}
		return clipboardCopyMsg{count: len(names), err: clipboardWrite(strings.Join(names, "\n"))}
	}
}
