package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the TUI key bindings.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Search key.Binding
	Clear  key.Binding
	Submit key.Binding
	Reload key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Search, k.Clear, k.Reload, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Reload, k.Copy},
		{k.Search, k.Submit, k.Clear, k.Quit},
	}
}

// DefaultKeyMap is the default key binding set.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "n"),
		key.WithHelp("→/n", "next page"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "p"),
		key.WithHelp("←/p", "prev page"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "done typing"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy names"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
