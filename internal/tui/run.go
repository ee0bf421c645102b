package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ersonp/dex/internal/application/handlers"
)

// Run starts the TUI and blocks until the user quits or ctx is canceled.
// renderer must be the one the session's controller renders to. The caller
// closes the session.
func Run(ctx context.Context, session *handlers.SessionHandler, renderer *ChannelRenderer) error {
	model := NewModel(ctx, session, renderer.Views())
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
