package routes

import (
	"context"
	"sync"

	"github.com/okian/proinvestix/pkg/logger"
)

// Navigator moves the client to a page.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, path string) error

func (f NavigatorFunc) Navigate(ctx context.Context, path string) error { return f(ctx, path) }

// History is a Navigator that remembers where it has been.
type History struct {
	mu      sync.Mutex
	current string
	visited []string
	logger  logger.Logger
}

// NewHistory starts at start; log may be nil.
func NewHistory(start string, log logger.Logger) *History {
	if log == nil {
		log = logger.Nop()
	}
	return &History{current: clean(start), logger: log.Named("routes")}
}

// Navigate implements Navigator.
func (h *History) Navigate(ctx context.Context, path string) error {
	path = clean(path)
	h.mu.Lock()
	from := h.current
	h.current = path
	h.visited = append(h.visited, path)
	h.mu.Unlock()

	h.logger.Info(ctx, "navigate", logger.String("from", from), logger.String("to", path))
	return nil
}

// Current is the last page navigated to.
func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Visited lists every navigation in order.
func (h *History) Visited() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.visited))
	copy(out, h.visited)
	return out
}
