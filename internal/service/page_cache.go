package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/events"
	"github.com/phrazzld/taskboard-api/internal/pagination"
)

// PageLoader fetches one page of tasks. TaskDataSource satisfies it.
type PageLoader interface {
	List(ctx context.Context, page, pageSize int) (*pagination.Page[domain.Task], error)
}

// MaxCachedPages bounds how many pages a PageCache keeps. When full, the
// oldest cached page is evicted first.
const MaxCachedPages = 64

type pageKey struct {
	page, pageSize int
}

// PageCache memoises task pages until the collection changes.
//
// It implements events.EventHandler: any TaskChangedEvent drops every cached
// page. Only pages inside the collection are kept, at most MaxCachedPages of
// them. The most recently served page stays available through Previous, so a
// caller can keep showing it while the next page loads.
type PageCache struct {
	loader PageLoader
	logger *slog.Logger

	mu         sync.Mutex
	pages      map[pageKey]*pagination.Page[domain.Task]
	order      []pageKey
	generation uint64
	previous   *pagination.Page[domain.Task]
}

var _ events.EventHandler = (*PageCache)(nil)

// NewPageCache creates an empty cache in front of loader.
func NewPageCache(loader PageLoader, logger *slog.Logger) (*PageCache, error) {
	if loader == nil {
		return nil, domain.NewValidationError("loader", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PageCache{
		loader: loader,
		logger: logger.With(slog.String("component", "page_cache")),
		pages:  make(map[pageKey]*pagination.Page[domain.Task]),
	}, nil
}

// List returns a cached page or loads it. The returned page is a copy.
func (c *PageCache) List(ctx context.Context, page, pageSize int) (*pagination.Page[domain.Task], error) {
	key := pageKey{page: page, pageSize: pageSize}

	c.mu.Lock()
	if cached, ok := c.pages[key]; ok {
		c.previous = cached
		c.mu.Unlock()
		return clonePage(cached), nil
	}
	gen := c.generation
	c.mu.Unlock()

	loaded, err := c.loader.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// A mutation while loading makes this result stale; serve it but do not keep it.
	if gen == c.generation && loaded.Page <= loaded.TotalPages {
		c.store(key, loaded)
	}
	c.previous = loaded
	c.mu.Unlock()

	return clonePage(loaded), nil
}

// Previous returns a copy of the most recently served page, or nil.
// It survives invalidation.
func (c *PageCache) Previous() *pagination.Page[domain.Task] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.previous == nil {
		return nil
	}
	return clonePage(c.previous)
}

// Invalidate drops every cached page.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	dropped := len(c.pages)
	c.pages = make(map[pageKey]*pagination.Page[domain.Task])
	c.order = nil
	c.logger.Debug("page cache invalidated", slog.Int("dropped", dropped))
}

// Len returns the number of cached pages.
func (c *PageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pages)
}

// HandleEvent implements events.EventHandler.
func (c *PageCache) HandleEvent(_ context.Context, _ *events.TaskChangedEvent) error {
	c.Invalidate()
	return nil
}

// store must be called with the lock held.
func (c *PageCache) store(key pageKey, page *pagination.Page[domain.Task]) {
	if _, ok := c.pages[key]; !ok {
		if len(c.order) >= MaxCachedPages {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.pages, oldest)
		}
		c.order = append(c.order, key)
	}
	c.pages[key] = page
}

func clonePage(p *pagination.Page[domain.Task]) *pagination.Page[domain.Task] {
	out := *p
	out.Data = append(make([]domain.Task, 0, len(p.Data)), p.Data...)
	return &out
}
