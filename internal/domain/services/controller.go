package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/ports"
)

// DefaultMaxResults caps the number of records a name-index search resolves.
const DefaultMaxResults = 20

// ErrSuperseded is returned when a newer request was issued while this one was
// in flight. Its result was discarded and not rendered.
var ErrSuperseded = errors.New("request superseded by a newer one")

// ControllerConfig holds controller tuning.
type ControllerConfig struct {
	PageSize   int
	MaxResults int
	Logger     ports.Logger
}

// Controller owns the browse/search state machine.
//
// While browsing, Next/Prev/GoToPage move through the catalog one page at a
// time. A non-empty Search switches to searching, which freezes pagination and
// ignores navigation. An empty Search returns to the page that was active
// before. Every fetching call takes a new generation; results from older
// generations are dropped.
type Controller struct {
	catalog    ports.Catalog
	index      *NameIndex
	resolver   *Resolver
	renderer   ports.Renderer
	logger     ports.Logger
	maxResults int

	mu         sync.Mutex
	mode       entities.Mode
	pagination entities.Pagination
	query      string
	generation uint64
	last       entities.View
	// browsed holds the records of the last successful browse fetch.
	browsed []entities.Creature
}

// NewController creates a controller on the first browse page. Nothing is
// fetched until Start. Renderer may be nil when the caller only uses the
// returned views.
//
// Render is called with the controller's lock held so views arrive in
// generation order; a Renderer must not call back into the controller.
func NewController(catalog ports.Catalog, index *NameIndex, resolver *Resolver, renderer ports.Renderer, cfg ControllerConfig) *Controller {
	if renderer == nil {
		renderer = ports.RendererFunc(func(entities.View) {})
	}
	logger := cfg.Logger
	if logger == nil {
		logger = ports.NopLogger{}
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	pagination := entities.NewPagination(cfg.PageSize)
	return &Controller{
		catalog:    catalog,
		index:      index,
		resolver:   resolver,
		renderer:   renderer,
		logger:     logger,
		maxResults: maxResults,
		mode:       entities.ModeBrowsing,
		pagination: pagination,
		last: entities.View{
			Mode:       entities.ModeBrowsing,
			Pagination: pagination,
			Records:    []entities.Creature{},
		},
	}
}

// Start renders the current browse page.
func (c *Controller) Start(ctx context.Context) (entities.View, error) {
	return c.Reload(ctx)
}

// Reload re-issues whatever is active: the current browse page or the current
// search. It is the retry path after a failure.
func (c *Controller) Reload(ctx context.Context) (entities.View, error) {
	c.mu.Lock()
	gen := c.nextGeneration()
	mode, p, query := c.mode, c.pagination, c.query
	c.mu.Unlock()

	if mode == entities.ModeSearching {
		return c.search(ctx, gen, query)
	}
	return c.browse(ctx, gen, p)
}

// Next moves to the following page. It is ignored while searching.
func (c *Controller) Next(ctx context.Context) (entities.View, error) {
	c.mu.Lock()
	if c.mode == entities.ModeSearching {
		view := c.last
		c.mu.Unlock()
		c.logger.Debug("next page ignored while searching")
		return view, nil
	}
	c.pagination = c.pagination.Next()
	gen := c.nextGeneration()
	p := c.pagination
	c.mu.Unlock()

	return c.browse(ctx, gen, p)
}

// Prev moves to the previous page. It is ignored while searching and is a
// no-op on the first page; neither case fetches.
func (c *Controller) Prev(ctx context.Context) (entities.View, error) {
	c.mu.Lock()
	if c.mode == entities.ModeSearching || c.pagination.IsFirst() {
		view := c.last
		c.mu.Unlock()
		c.logger.Debug("previous page ignored (mode=%s page=%d)", view.Mode, view.Pagination.Page)
		return view, nil
	}
	c.pagination = c.pagination.Prev()
	gen := c.nextGeneration()
	p := c.pagination
	c.mu.Unlock()

	return c.browse(ctx, gen, p)
}

// GoToPage jumps to a page, clamped to the first one. It is ignored while
// searching.
func (c *Controller) GoToPage(ctx context.Context, page int) (entities.View, error) {
	c.mu.Lock()
	if c.mode == entities.ModeSearching {
		view := c.last
		c.mu.Unlock()
		c.logger.Debug("page jump ignored while searching")
		return view, nil
	}
	c.pagination = c.pagination.At(page)
	gen := c.nextGeneration()
	p := c.pagination
	c.mu.Unlock()

	return c.browse(ctx, gen, p)
}

// Search handles a change of the search input. Surrounding whitespace is
// ignored. Empty input leaves search mode and refetches the browse page that
// was active before the search started.
func (c *Controller) Search(ctx context.Context, input string) (entities.View, error) {
	query := strings.TrimSpace(input)

	c.mu.Lock()
	if query == "" {
		if c.mode == entities.ModeBrowsing {
			view := c.last
			c.mu.Unlock()
			return view, nil
		}
		c.mode = entities.ModeBrowsing
		c.query = ""
		gen := c.nextGeneration()
		p := c.pagination
		c.mu.Unlock()

		c.logger.Verbose("search cleared, back to page %d", p.Page)
		return c.browse(ctx, gen, p)
	}

	c.mode = entities.ModeSearching
	c.query = query
	gen := c.nextGeneration()
	c.mu.Unlock()

	return c.search(ctx, gen, query)
}

// View returns the most recently rendered view.
func (c *Controller) View() entities.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Mode returns the current mode.
func (c *Controller) Mode() entities.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Pagination returns the browse position. It does not change while searching.
func (c *Controller) Pagination() entities.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagination
}

// Query returns the active search query, or "" while browsing.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// nextGeneration must be called with c.mu held.
func (c *Controller) nextGeneration() uint64 {
	c.generation++
	return c.generation
}

func (c *Controller) isCurrent(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.generation
}

// commit renders view if gen is still the latest generation. With keepPrior
// the records of the last successful browse fetch stay on screen behind the
// failure status; search results are never carried into browse mode.
func (c *Controller) commit(gen uint64, view entities.View, keepPrior bool) (entities.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug("discarding stale result (generation %d, latest %d)", gen, c.generation)
		return view, ErrSuperseded
	}

	view.Generation = gen
	if keepPrior {
		view.Records = c.browsed
	}
	if view.Records == nil {
		view.Records = []entities.Creature{}
	}
	if view.Mode == entities.ModeBrowsing && !keepPrior {
		c.browsed = view.Records
	}
	c.last = view
	c.renderer.Render(view)
	return view, nil
}

func (c *Controller) browse(ctx context.Context, gen uint64, p entities.Pagination) (entities.View, error) {
	view := entities.View{
		Mode:       entities.ModeBrowsing,
		Pagination: p,
	}

	refs, err := c.catalog.ListPage(ctx, p.Offset, p.PageSize)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return view, ctxErr
		}
		view.Status = entities.StatusNetworkError
		view.Err = fmt.Errorf("listing page %d: %w", p.Page, err)
		c.logger.Error("%v", view.Err)
		return c.commit(gen, view, true)
	}
	if !c.isCurrent(gen) {
		return view, ErrSuperseded
	}

	if len(refs) == 0 {
		view.Status = entities.StatusEmpty
		return c.commit(gen, view, false)
	}

	res, err := c.resolver.ResolveAll(ctx, refs)
	if err != nil {
		return view, err
	}
	if res.AllFailed() {
		view.Status = entities.StatusNetworkError
		view.Failed = res.Failed
		view.Err = fmt.Errorf("resolving page %d: %w", p.Page, res.FirstErr)
		c.logger.Error("%v", view.Err)
		return c.commit(gen, view, true)
	}
	if res.Failed > 0 {
		c.logger.Info("page %d: %d of %d records failed to load: %v", p.Page, res.Failed, len(refs), res.FirstErr)
	}

	view.Records = res.Records
	view.Failed = res.Failed
	view.Status = entities.StatusOK
	return c.commit(gen, view, false)
}

func (c *Controller) search(ctx context.Context, gen uint64, query string) (entities.View, error) {
	view := entities.View{
		Mode:  entities.ModeSearching,
		Query: query,
	}
	c.mu.Lock()
	view.Pagination = c.pagination
	c.mu.Unlock()

	name := entities.NormalizeName(query)
	creature, err := c.catalog.LookupByName(ctx, name)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return view, ctxErr
	}
	if err != nil {
		// An exact lookup is only a shortcut; the index scan below decides.
		c.logger.Verbose("exact lookup %q failed, using name index: %v", name, err)
	}
	if creature != nil {
		view.Records = []entities.Creature{*creature}
		view.Status = entities.StatusOK
		return c.commit(gen, view, false)
	}
	if !c.isCurrent(gen) {
		return view, ErrSuperseded
	}

	if err := c.index.EnsureLoaded(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return view, ctxErr
		}
		view.Status = entities.StatusSearchFailed
		view.Err = fmt.Errorf("searching %q: %w", query, err)
		c.logger.Error("%v", view.Err)
		return c.commit(gen, view, false)
	}

	refs, err := c.index.Search(query, c.maxResults)
	if err != nil {
		view.Status = entities.StatusSearchFailed
		view.Err = fmt.Errorf("searching %q: %w", query, err)
		return c.commit(gen, view, false)
	}
	if len(refs) == 0 {
		view.Status = entities.StatusNoResults
		return c.commit(gen, view, false)
	}
	if !c.isCurrent(gen) {
		return view, ErrSuperseded
	}

	res, err := c.resolver.ResolveAll(ctx, refs)
	if err != nil {
		return view, err
	}
	if res.AllFailed() {
		view.Status = entities.StatusSearchFailed
		view.Failed = res.Failed
		view.Err = fmt.Errorf("searching %q: %w", query, res.FirstErr)
		c.logger.Error("%v", view.Err)
		return c.commit(gen, view, false)
	}
	if res.Failed > 0 {
		c.logger.Info("search %q: %d of %d matches failed to load: %v", query, res.Failed, len(refs), res.FirstErr)
	}

	view.Records = res.Records
	view.Failed = res.Failed
	view.Status = entities.StatusOK
	return c.commit(gen, view, false)
}
