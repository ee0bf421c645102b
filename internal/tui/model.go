// Package tui implements the interactive catalog browser.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ersonp/dex/internal/application/handlers"
	"github.com/ersonp/dex/internal/domain/entities"
)

// Default terminal size until the first WindowSizeMsg.
const (
	DefaultWidth  = 100
	DefaultHeight = 30
)

// eventDoneMsg reports that a session event returned.
type eventDoneMsg struct {
	err error
}

// Model is the main TUI model.
type Model struct {
	ctx     context.Context
	session *handlers.SessionHandler
	views   <-chan entities.View

	styles  Styles
	keys    KeyMap
	help    help.Model
	input   textinput.Model
	spinner spinner.Model

	view     entities.View
	started  bool
	inflight int
	err      error
	info     string
	width    int
	height   int
}

// NewModel creates a new TUI model. views must be the channel of the
// renderer the session's controller was built with.
func NewModel(ctx context.Context, session *handlers.SessionHandler, views <-chan entities.View) *Model {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "Search by name"
	input.CharLimit = 64
	input.Width = 40
	_ = input.Cursor.SetMode(cursor.CursorStatic)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = DefaultStyles.Heading

	return &Model{
		ctx:     ctx,
		session: session,
		views:   views,
		styles:  DefaultStyles,
		keys:    DefaultKeyMap,
		help:    help.New(),
		input:   input,
		spinner: sp,
		width:   DefaultWidth,
		height:  DefaultHeight,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.start(),
		listenForViews(m.views),
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case viewMsg:
		m.view = entities.View(msg)
		m.started = true
		m.info = ""
		return m, listenForViews(m.views)

	case eventDoneMsg:
		if m.inflight > 0 {
			m.inflight--
		}
		m.err = msg.err
		return m, nil

	case clipboardCopyMsg:
		switch {
		case msg.err != nil:
			m.info = "copy failed: " + msg.err.Error()
		case msg.count == 0:
			m.info = "nothing to copy"
		default:
			m.info = fmt.Sprintf("copied %d names", msg.count)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.input.Focused() {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Next):
		return m, m.send(handlers.Event{Kind: handlers.EventNextPage})
	case key.Matches(msg, m.keys.Prev):
		return m, m.send(handlers.Event{Kind: handlers.EventPrevPage})
	case key.Matches(msg, m.keys.Reload):
		return m, m.send(handlers.Event{Kind: handlers.EventReload})
	case key.Matches(msg, m.keys.Copy):
		if !m.showRecords() {
			return m, copyNames(nil)
		}
		return m, copyNames(m.view.Records)
	case key.Matches(msg, m.keys.Clear):
		if m.input.Value() == "" {
			return m, nil
		}
		m.input.SetValue("")
		return m, m.send(handlers.Event{Kind: handlers.EventSearchInput})
	}
	return m, nil
}

// handleInputKey routes keys to the search box. Every change of its value is
// sent to the session, which debounces it.
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.input.Blur()
		if m.input.Value() == "" {
			return m, nil
		}
		m.input.SetValue("")
		return m, m.send(handlers.Event{Kind: handlers.EventSearchInput})
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	return m, batch(cmd, m.send(handlers.Event{Kind: handlers.EventSearchInput, Text: m.input.Value()}))
}

func (m *Model) start() tea.Cmd {
	m.inflight++
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return eventDoneMsg{err: session.Start(ctx)}
	}
}

func (m *Model) send(ev handlers.Event) tea.Cmd {
	m.inflight++
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return eventDoneMsg{err: session.Handle(ctx, ev)}
	}
}

// busy reports whether a request is outstanding: an event has not returned
// yet, or the search box holds text the shown view does not reflect.
func (m *Model) busy() bool {
	return m.inflight > 0 || m.searchPending()
}

func (m *Model) searchPending() bool {
	return strings.TrimSpace(m.input.Value()) != m.view.Query
}

// batch is tea.Batch without nil commands.
func batch(cmds ...tea.Cmd) tea.Cmd {
	var valid []tea.Cmd
	for _, c := range cmds {
		if c != nil {
			valid = append(valid, c)
		}
	}
	switch len(valid) {
	case 0:
		return nil
	case 1:
		return valid[0]
	default:
		return tea.Batch(valid...)
	}
}
