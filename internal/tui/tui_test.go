package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex/internal/application/handlers"
	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/mocks"
	"github.com/ersonp/dex/internal/domain/services"
)

var testNames = []string{
	"bulbasaur", "ivysaur", "venusaur",
	"charmander", "charmeleon", "charizard",
	"pichu", "pikachu", "raichu",
}

func newTestModel(t *testing.T) (*Model, *ChannelRenderer, *mocks.Catalog) {
	t.Helper()
	catalog := &mocks.Catalog{Creatures: mocks.Creatures(testNames...)}
	renderer := NewChannelRenderer()
	controller := services.NewController(
		catalog,
		services.NewNameIndex(catalog, 100),
		services.NewResolver(catalog, 4),
		renderer,
		services.ControllerConfig{PageSize: 3},
	)
	session := handlers.NewSessionHandler(controller, 0, nil)
	t.Cleanup(session.Close)

	return NewModel(context.Background(), session, renderer.Views()), renderer, catalog
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			run(t, m, c)
		}
	case nil:
	default:
		m.Update(msg)
	}
}

// deliver feeds the latest rendered view into the model.
func deliver(t *testing.T, m *Model, r *ChannelRenderer) {
	t.Helper()
	select {
	case v := <-r.Views():
		m.Update(viewMsg(v))
	case <-time.After(2 * time.Second):
		t.Fatal("no view rendered")
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func startModel(t *testing.T) (*Model, *ChannelRenderer, *mocks.Catalog) {
	t.Helper()
	m, r, catalog := newTestModel(t)
	run(t, m, m.start())
	deliver(t, m, r)
	return m, r, catalog
}

func TestChannelRenderer_LatestWins(t *testing.T) {
	r := NewChannelRenderer()
	r.Render(entities.View{Generation: 1})
	r.Render(entities.View{Generation: 2})
	r.Render(entities.View{Generation: 3})

	v := <-r.Views()
	assert.Equal(t, uint64(3), v.Generation)

	select {
	case <-r.Views():
		t.Fatal("older views should have been dropped")
	default:
	}
}

func TestModel_Start(t *testing.T) {
	m, _, _ := startModel(t)

	assert.True(t, m.started)
	assert.Equal(t, 0, m.inflight)
	assert.False(t, m.busy())

	out := m.View()
	assert.Contains(t, out, "Page 1")
	assert.Contains(t, out, "bulbasaur")
	assert.Contains(t, out, "venusaur")
	assert.NotContains(t, out, "charmander")
}

func TestModel_NextAndPrev(t *testing.T) {
	m, r, catalog := startModel(t)

	_, cmd := m.Update(keyRunes("n"))
	assert.True(t, m.busy())
	run(t, m, cmd)
	deliver(t, m, r)
	assert.Equal(t, 2, m.view.Pagination.Page)
	assert.Contains(t, m.View(), "charmander")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	run(t, m, cmd)
	deliver(t, m, r)
	assert.Equal(t, 1, m.view.Pagination.Page)
	assert.Len(t, catalog.PageCalls(), 3)
}

func TestModel_TypingSearches(t *testing.T) {
	m, r, _ := startModel(t)

	_, cmd := m.Update(keyRunes("/"))
	run(t, m, cmd)
	require.True(t, m.input.Focused())

	for _, ch := range []string{"p", "i", "k", "a"} {
		_, cmd = m.Update(keyRunes(ch))
		run(t, m, cmd)
	}
	assert.Equal(t, "pika", m.input.Value())

	deliver(t, m, r)
	assert.Equal(t, entities.ModeSearching, m.view.Mode)
	assert.Equal(t, "pika", m.view.Query)
	assert.False(t, m.searchPending())
	assert.Contains(t, m.View(), "pikachu")
}

func TestModel_NavigationKeysTypeWhileFocused(t *testing.T) {
	m, _, catalog := startModel(t)

	_, cmd := m.Update(keyRunes("/"))
	run(t, m, cmd)
	_, cmd = m.Update(keyRunes("n"))
	run(t, m, cmd)

	assert.Equal(t, "n", m.input.Value())
	assert.Len(t, catalog.PageCalls(), 2, "start plus the name index load")
}

func TestModel_EscClearsSearch(t *testing.T) {
	m, r, _ := startModel(t)

	_, cmd := m.Update(keyRunes("/"))
	run(t, m, cmd)
	_, cmd = m.Update(keyRunes("r"))
	run(t, m, cmd)
	deliver(t, m, r)
	require.Equal(t, entities.ModeSearching, m.view.Mode)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	run(t, m, cmd)
	deliver(t, m, r)

	assert.False(t, m.input.Focused())
	assert.Empty(t, m.input.Value())
	assert.Equal(t, entities.ModeBrowsing, m.view.Mode)
	assert.Equal(t, 1, m.view.Pagination.Page)
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_FailureShowsRetryHint(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Update(viewMsg(entities.View{
		Mode:       entities.ModeBrowsing,
		Pagination: entities.NewPagination(3),
		Status:     entities.StatusNetworkError,
		Records:    []entities.Creature{},
	}))

	assert.Contains(t, m.View(), "Network unavailable (r to retry)")
}

func TestModel_WindowSize(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	assert.Equal(t, 40, m.width)
	assert.Equal(t, 20, m.height)
}

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(text string) error {
		copied = text
		return err
	}
	t.Cleanup(func() { clipboardWrite = orig })
	return &copied
}

func TestModel_CopyNames(t *testing.T) {
	copied := stubClipboard(t, nil)
	m, _, _ := startModel(t)

	_, cmd := m.Update(keyRunes("y"))
	run(t, m, cmd)

	assert.Equal(t, "bulbasaur\nivysaur\nvenusaur", *copied)
	assert.Contains(t, m.View(), "copied 3 names")
}

func TestModel_CopyFailure(t *testing.T) {
	stubClipboard(t, errors.New("no clipboard"))
	m, _, _ := startModel(t)

	_, cmd := m.Update(keyRunes("y"))
	run(t, m, cmd)

	assert.Contains(t, m.View(), "copy failed: no clipboard")
}

func TestModel_CopyNothing(t *testing.T) {
	copied := stubClipboard(t, nil)
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(keyRunes("y"))
	run(t, m, cmd)

	assert.Empty(t, *copied)
	assert.Equal(t, "nothing to copy", m.info)
}
