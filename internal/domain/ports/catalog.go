// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/dex/internal/domain/entities"
)

// Catalog is the remote creature catalog.
type Catalog interface {
	// ListPage returns at most limit entry references starting at offset.
	// An offset past the end of the catalog yields an empty slice.
	ListPage(ctx context.Context, offset, limit int) ([]entities.EntryRef, error)

	// Resolve fetches the full record an entry reference points to.
	Resolve(ctx context.Context, url string) (*entities.Creature, error)

	// LookupByName fetches a record by exact name.
	// Returns nil, nil if the catalog has no such entry.
	LookupByName(ctx context.Context, name string) (*entities.Creature, error)
}
