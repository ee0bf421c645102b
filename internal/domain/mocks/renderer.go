package mocks

import (
	"sync"

	"github.com/ersonp/dex/internal/domain/entities"
)

// Renderer is a mock implementation of ports.Renderer that records views.
type Renderer struct {
	mu    sync.Mutex
	views []entities.View
}

// Render records the view.
func (m *Renderer) Render(view entities.View) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views = append(m.views, view)
}

// Views returns a copy of every rendered view in order.
func (m *Renderer) Views() []entities.View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entities.View(nil), m.views...)
}

// Last returns the most recently rendered view and whether there was one.
func (m *Renderer) Last() (entities.View, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.views) == 0 {
		return entities.View{}, false
	}
	return m.views[len(m.views)-1], true
}

// RenderCallCount returns the number of Render calls.
func (m *Renderer) RenderCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.views)
}
