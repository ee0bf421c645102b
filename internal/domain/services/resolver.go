package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/ports"
)

// DefaultResolveConcurrency caps in-flight record fetches.
const DefaultResolveConcurrency = 8

// errEmptyRecord is used when the catalog answers a resolve with no record.
var errEmptyRecord = errors.New("catalog returned no record")

// ResolveResult holds the outcome of resolving a batch of entry references.
type ResolveResult struct {
	// Records are the successfully resolved creatures, in input order.
	Records []entities.Creature
	// Failed is the number of references that could not be resolved.
	Failed int
	// FirstErr is the first failure in input order, if any.
	FirstErr error
}

// AllFailed reports whether there was work and none of it succeeded.
func (r *ResolveResult) AllFailed() bool {
	return r.Failed > 0 && len(r.Records) == 0
}

// Resolver turns entry references into full records.
type Resolver struct {
	catalog     ports.Catalog
	concurrency int
}

// NewResolver creates a resolver. A non-positive concurrency uses
// DefaultResolveConcurrency.
func NewResolver(catalog ports.Catalog, concurrency int) *Resolver {
	if concurrency <= 0 {
		concurrency = DefaultResolveConcurrency
	}
	return &Resolver{
		catalog:     catalog,
		concurrency: concurrency,
	}
}

// ResolveAll fetches every reference in parallel and waits for all of them.
// Individual failures are counted rather than failing the batch. The returned
// error is non-nil only when ctx is done.
func (r *Resolver) ResolveAll(ctx context.Context, refs []entities.EntryRef) (*ResolveResult, error) {
	records := make([]*entities.Creature, len(refs))
	errs := make([]error, len(refs))

	var g errgroup.Group
	g.SetLimit(r.concurrency)

	for i, ref := range refs {
		g.Go(func() error {
			creature, err := r.catalog.Resolve(ctx, ref.URL)
			switch {
			case err != nil:
				errs[i] = fmt.Errorf("resolving %s: %w", ref.Name, err)
			case creature == nil:
				errs[i] = fmt.Errorf("resolving %s: %w", ref.Name, errEmptyRecord)
			default:
				records[i] = creature
			}
			return nil
		})
	}
	// Workers record failures in errs and always return nil; the group only
	// bounds concurrency.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &ResolveResult{Records: make([]entities.Creature, 0, len(refs))}
	for i := range refs {
		if errs[i] != nil {
			result.Failed++
			if result.FirstErr == nil {
				result.FirstErr = errs[i]
			}
			continue
		}
		result.Records = append(result.Records, *records[i])
	}
	return result, nil
}
