// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"sync"

	"github.com/ersonp/dex/internal/domain/entities"
)

// PageCall records the arguments of a ListPage call.
type PageCall struct {
	Offset int
	Limit  int
}

// Catalog is a mock implementation of ports.Catalog backed by an in-memory
// list of creatures. It is safe for concurrent use.
type Catalog struct {
	// Creatures is the whole catalog in listing order.
	Creatures []entities.Creature

	ListErr    error
	ResolveErr map[string]error // keyed by URL
	LookupErr  error

	// Hooks run before the call returns; tests use them to block or delay.
	BeforeList    func(offset, limit int)
	BeforeResolve func(url string)
	BeforeLookup  func(name string)

	mu           sync.Mutex
	pageCalls    []PageCall
	resolveCalls int
	lookupCalls  []string
}

// URLFor returns the locator the mock uses for a creature name.
func URLFor(name string) string {
	return "mock://catalog/pokemon/" + name
}

// ListPage returns a slice of the catalog.
func (m *Catalog) ListPage(ctx context.Context, offset, limit int) ([]entities.EntryRef, error) {
	m.mu.Lock()
	m.pageCalls = append(m.pageCalls, PageCall{Offset: offset, Limit: limit})
	m.mu.Unlock()

	if m.BeforeList != nil {
		m.BeforeList(offset, limit)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	refs := []entities.EntryRef{}
	for i := offset; i < len(m.Creatures) && len(refs) < limit; i++ {
		name := m.Creatures[i].Name
		refs = append(refs, entities.EntryRef{Name: name, URL: URLFor(name)})
	}
	return refs, nil
}

// Resolve returns the creature whose URL matches.
func (m *Catalog) Resolve(ctx context.Context, url string) (*entities.Creature, error) {
	m.mu.Lock()
	m.resolveCalls++
	m.mu.Unlock()

	if m.BeforeResolve != nil {
		m.BeforeResolve(url)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.ResolveErr[url]; ok {
		return nil, err
	}
	for i := range m.Creatures {
		if URLFor(m.Creatures[i].Name) == url {
			c := m.Creatures[i]
			return &c, nil
		}
	}
	return nil, &NotFoundError{URL: url}
}

// LookupByName returns the creature with the exact name, or nil, nil.
func (m *Catalog) LookupByName(ctx context.Context, name string) (*entities.Creature, error) {
	m.mu.Lock()
	m.lookupCalls = append(m.lookupCalls, name)
	m.mu.Unlock()

	if m.BeforeLookup != nil {
		m.BeforeLookup(name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	for i := range m.Creatures {
		if m.Creatures[i].Name == name {
			c := m.Creatures[i]
			return &c, nil
		}
	}
	return nil, nil
}

// PageCalls returns a copy of the recorded ListPage calls.
func (m *Catalog) PageCalls() []PageCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PageCall(nil), m.pageCalls...)
}

// ResolveCallCount returns the number of Resolve calls.
func (m *Catalog) ResolveCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resolveCalls
}

// LookupCalls returns a copy of the names passed to LookupByName.
func (m *Catalog) LookupCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.lookupCalls...)
}

// NotFoundError is returned by Resolve for unknown URLs.
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string {
	return "mock catalog: no creature at " + e.URL
}

// Creatures builds simple creatures with sequential IDs from names.
func Creatures(names ...string) []entities.Creature {
	out := make([]entities.Creature, len(names))
	for i, name := range names {
		out[i] = entities.Creature{
			ID:     i + 1,
			Name:   name,
			Types:  []string{"normal"},
			Height: 10,
			Weight: 100,
			Stats:  []entities.Stat{{Name: "hp", Base: 50}},
		}
	}
	return out
}
