package catalog

import (
	"context"
	"sync"

	"github.com/five82/pokedex/internal/debounce"
	"github.com/five82/pokedex/internal/logging"
)

// Controller owns one State and is the only thing that mutates it. Loads
// fetch without holding the lock and commit only after every sub-fetch has
// succeeded, so a failed load leaves the previous catalog in place.
type Controller struct {
	loader   *Loader
	debounce *debounce.Debouncer

	mu      sync.Mutex
	state   State
	loadSeq uint64
}

// NewController returns a Controller at page 1 with nothing loaded.
func NewController(loader *Loader, searchDelay *debounce.Debouncer) *Controller {
	if searchDelay == nil {
		searchDelay = debounce.New(debounce.DefaultDelay)
	}
	return &Controller{
		loader:   loader,
		debounce: searchDelay,
		state:    NewState(),
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// LoadPage fetches page and, on success, makes it the current catalog.
func (c *Controller) LoadPage(ctx context.Context, page int) error {
	seq := c.beginLoad()
	records, err := c.loader.FetchPage(ctx, page)
	if err != nil {
		logging.Warn().Err(err).Int("page", page).Msg("page load failed")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.loadSeq {
		return ErrSuperseded
	}
	c.state.CommitPage(page, records)
	return nil
}

// LoadByCategory fetches the members of name and, on success, switches the
// catalog into category mode. An empty name returns to the current page.
func (c *Controller) LoadByCategory(ctx context.Context, name string) error {
	if name == "" {
		return c.LoadPage(ctx, c.Snapshot().Page)
	}

	seq := c.beginLoad()
	records, err := c.loader.FetchCategory(ctx, name)
	if err != nil {
		logging.Warn().Err(err).Str("category", name).Msg("category load failed")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.loadSeq {
		return ErrSuperseded
	}
	c.state.CommitCategory(name, records)
	return nil
}

// ApplyTextFilter sets the search term immediately. Any debounced filter
// still pending is dropped.
func (c *Controller) ApplyTextFilter(term string) State {
	c.debounce.Cancel()
	return c.applyTextFilter(term)
}

func (c *Controller) applyTextFilter(term string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.ApplyTextFilter(term)
	return c.state.Clone()
}

// ScheduleTextFilter applies term once input has been quiet for the debounce
// delay. Only the latest scheduled term is applied; onApplied, when non-nil,
// receives the resulting state.
func (c *Controller) ScheduleTextFilter(term string, onApplied func(State)) {
	c.debounce.Trigger(func() {
		st := c.applyTextFilter(term)
		if onApplied != nil {
			onApplied(st)
		}
	})
}

// ClearFilters drops the search term and category and reloads page 1.
func (c *Controller) ClearFilters(ctx context.Context) error {
	c.debounce.Cancel()
	c.mu.Lock()
	c.state.Reset()
	c.mu.Unlock()
	return c.LoadPage(ctx, 1)
}

// NextPage loads the following page. It does nothing in category mode.
func (c *Controller) NextPage(ctx context.Context) error {
	page, ok := c.Snapshot().NextPage()
	if !ok {
		return nil
	}
	return c.LoadPage(ctx, page)
}

// PrevPage loads the preceding page. It does nothing in category mode or on
// page 1.
func (c *Controller) PrevPage(ctx context.Context) error {
	page, ok := c.Snapshot().PrevPage()
	if !ok {
		return nil
	}
	return c.LoadPage(ctx, page)
}

// Categories returns the category names for the filter control.
func (c *Controller) Categories(ctx context.Context) ([]string, error) {
	return c.loader.FetchCategories(ctx)
}

// LoadDetail fetches one record's detail. State is not modified.
func (c *Controller) LoadDetail(ctx context.Context, id int) (Detail, error) {
	return c.loader.LoadDetail(ctx, id)
}

func (c *Controller) beginLoad() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadSeq++
	return c.loadSeq
}
