package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ersonp/dex/internal/domain/entities"
)

// viewMsg carries a view rendered by the controller.
type viewMsg entities.View

// ChannelRenderer hands views to the bubbletea loop. Only the latest
// undelivered view is kept, so Render never blocks.
type ChannelRenderer struct {
	ch chan entities.View
}

// NewChannelRenderer creates a renderer with an empty mailbox.
func NewChannelRenderer() *ChannelRenderer {
	return &ChannelRenderer{ch: make(chan entities.View, 1)}
}

// Render replaces any undelivered view with view.
func (r *ChannelRenderer) Render(view entities.View) {
	for {
		select {
		case r.ch <- view:
			return
		default:
			select {
			case <-r.ch:
			default:
			}
		}
	}
}

// Views returns the delivery channel.
func (r *ChannelRenderer) Views() <-chan entities.View {
	return r.ch
}

// listenForViews waits for the next view; Update re-issues it after each one.
func listenForViews(views <-chan entities.View) tea.Cmd {
	return func() tea.Msg {
		view, ok := <-views
		if !ok {
			return nil
		}
		return viewMsg(view)
	}
}
