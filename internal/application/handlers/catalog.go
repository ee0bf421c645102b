package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/ports"
	"github.com/ersonp/dex/internal/domain/services"
)

// ErrNotFound is returned by Show when the catalog has no such name.
var ErrNotFound = errors.New("creature not found")

// CatalogHandler serves one-shot browse, search and lookup requests.
type CatalogHandler struct {
	catalog    ports.Catalog
	controller *services.Controller
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog ports.Catalog, controller *services.Controller) *CatalogHandler {
	return &CatalogHandler{
		catalog:    catalog,
		controller: controller,
	}
}

// CatalogResult contains the outcome of a browse or search.
type CatalogResult struct {
	View entities.View
}

// Browse renders the given page.
func (h *CatalogHandler) Browse(ctx context.Context, page int) (*CatalogResult, error) {
	view, err := h.controller.GoToPage(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("browsing page %d: %w", page, err)
	}
	if view.Status.IsFailure() {
		return &CatalogResult{View: view}, view.Err
	}
	return &CatalogResult{View: view}, nil
}

// Search runs a search for query.
func (h *CatalogHandler) Search(ctx context.Context, query string) (*CatalogResult, error) {
	view, err := h.controller.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	if view.Status.IsFailure() {
		return &CatalogResult{View: view}, view.Err
	}
	return &CatalogResult{View: view}, nil
}

// Show fetches a single creature by exact name.
func (h *CatalogHandler) Show(ctx context.Context, name string) (*entities.Creature, error) {
	creature, err := h.catalog.LookupByName(ctx, entities.NormalizeName(name))
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", name, err)
	}
	if creature == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return creature, nil
}
