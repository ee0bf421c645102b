// Package services implements the catalog browsing and search logic.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/ports"
)

// DefaultIndexLimit bounds the single listing request that loads the index.
// It must cover the whole catalog.
const DefaultIndexLimit = 1500

// ErrIndexNotLoaded is returned by Search before a successful EnsureLoaded.
var ErrIndexNotLoaded = errors.New("name index not loaded")

// NameIndex caches every entry reference in the catalog for substring search.
// It is loaded at most once per instance and never refreshed.
type NameIndex struct {
	catalog ports.Catalog
	limit   int

	group singleflight.Group

	mu      sync.RWMutex
	entries []entities.EntryRef
	loaded  bool
}

// NewNameIndex creates an empty index. A non-positive limit uses DefaultIndexLimit.
func NewNameIndex(catalog ports.Catalog, limit int) *NameIndex {
	if limit <= 0 {
		limit = DefaultIndexLimit
	}
	return &NameIndex{
		catalog: catalog,
		limit:   limit,
	}
}

// EnsureLoaded fetches the full name list unless it is already cached.
// Concurrent callers share one fetch. The fetch does not stop when the caller
// that started it gives up; each caller only stops waiting when its own ctx
// is done. A failed fetch leaves the index empty so the next call tries again.
func (n *NameIndex) EnsureLoaded(ctx context.Context) error {
	if n.Loaded() {
		return nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := n.group.DoChan("load", func() (any, error) {
		// A previous flight may have finished between the check above and DoChan.
		if n.Loaded() {
			return nil, nil
		}

		refs, err := n.catalog.ListPage(loadCtx, 0, n.limit)
		if err != nil {
			return nil, fmt.Errorf("loading name index: %w", err)
		}

		n.mu.Lock()
		n.entries = refs
		n.loaded = true
		n.mu.Unlock()
		return nil, nil
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Search returns entries whose name contains substring, ignoring case, in
// catalog order. At most maxResults entries are returned; maxResults <= 0
// means no limit. A blank substring matches nothing.
func (n *NameIndex) Search(substring string, maxResults int) ([]entities.EntryRef, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if !n.loaded {
		return nil, ErrIndexNotLoaded
	}

	needle := entities.NormalizeName(substring)
	if needle == "" {
		return []entities.EntryRef{}, nil
	}

	matches := []entities.EntryRef{}
	for _, ref := range n.entries {
		if !strings.Contains(strings.ToLower(ref.Name), needle) {
			continue
		}
		matches = append(matches, ref)
		if maxResults > 0 && len(matches) == maxResults {
			break
		}
	}
	return matches, nil
}

// Loaded reports whether the index has been populated.
func (n *NameIndex) Loaded() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.loaded
}

// Len returns the number of cached entries.
func (n *NameIndex) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.entries)
}
