package handlers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/ports"
	"github.com/ersonp/dex/internal/domain/services"
)

// EventKind identifies a navigation event.
type EventKind int

const (
	EventNextPage EventKind = iota
	EventPrevPage
	EventSearchInput
	EventReload
)

func (k EventKind) String() string {
	switch k {
	case EventNextPage:
		return "next-page"
	case EventPrevPage:
		return "prev-page"
	case EventSearchInput:
		return "search-input"
	case EventReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Event is a single user action. Text is only used by EventSearchInput.
type Event struct {
	Kind EventKind
	Text string
}

// SessionHandler adapts discrete UI events to the controller. Navigation is
// forwarded immediately; search input is debounced so only the value present
// after a quiet period triggers a search.
type SessionHandler struct {
	id         string
	controller *services.Controller
	debouncer  *services.Debouncer
	logger     ports.Logger

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSessionHandler creates a session around controller.
func NewSessionHandler(controller *services.Controller, debounce time.Duration, logger ports.Logger) *SessionHandler {
	if logger == nil {
		logger = ports.NopLogger{}
	}
	return &SessionHandler{
		id:         uuid.NewString(),
		controller: controller,
		debouncer:  services.NewDebouncer(debounce),
		logger:     logger,
	}
}

// ID returns the session identifier used in log lines.
func (h *SessionHandler) ID() string {
	return h.id
}

// Start binds the session to ctx and renders the first page. Debounced
// searches run under ctx until Close.
func (h *SessionHandler) Start(ctx context.Context) error {
	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
	}
	h.ctx, h.cancel = context.WithCancel(ctx)
	sessionCtx := h.ctx
	h.mu.Unlock()

	h.logger.Info("session %s started", h.id)
	_, err := h.controller.Start(sessionCtx)
	return h.result("start", err)
}

// Handle processes one event. Navigation blocks until the page is rendered;
// search input returns immediately. Navigation leaves a pending search in
// place, and once that search runs the controller ignores navigation.
func (h *SessionHandler) Handle(ctx context.Context, ev Event) error {
	h.logger.Debug("session %s: %s %q", h.id, ev.Kind, ev.Text)

	switch ev.Kind {
	case EventNextPage:
		_, err := h.controller.Next(ctx)
		return h.result(ev.Kind.String(), err)
	case EventPrevPage:
		_, err := h.controller.Prev(ctx)
		return h.result(ev.Kind.String(), err)
	case EventReload:
		_, err := h.controller.Reload(ctx)
		return h.result(ev.Kind.String(), err)
	case EventSearchInput:
		sessionCtx := h.sessionContext()
		text := ev.Text
		h.debouncer.Trigger(func() {
			_ = h.result("search", h.search(sessionCtx, text))
		})
		return nil
	default:
		return fmt.Errorf("unknown event kind %d", ev.Kind)
	}
}

// View returns the last rendered view.
func (h *SessionHandler) View() entities.View {
	return h.controller.View()
}

// Close drops pending input and cancels in-flight requests.
func (h *SessionHandler) Close() {
	h.debouncer.Stop()

	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
	}
	h.mu.Unlock()

	h.logger.Info("session %s closed", h.id)
}

func (h *SessionHandler) search(ctx context.Context, text string) error {
	_, err := h.controller.Search(ctx, text)
	return err
}

func (h *SessionHandler) sessionContext() context.Context {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ctx == nil {
		return context.Background()
	}
	return h.ctx
}

// result filters out outcomes that are not failures from the caller's view.
func (h *SessionHandler) result(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, services.ErrSuperseded):
		h.logger.Debug("session %s: %s superseded", h.id, op)
		return nil
	case errors.Is(err, context.Canceled):
		h.logger.Debug("session %s: %s canceled", h.id, op)
		return nil
	default:
		h.logger.Error("session %s: %s: %v", h.id, op, err)
		return fmt.Errorf("%s: %w", op, err)
	}
}
