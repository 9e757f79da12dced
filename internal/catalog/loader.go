package catalog

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/five82/pokedex/internal/logging"
	"github.com/five82/pokedex/internal/pokeapi"
)

const defaultConcurrency = 8

// Loader fetches whole pages, categories, and details from a Source. It holds
// no catalog state; callers commit its results.
type Loader struct {
	source      pokeapi.Source
	concurrency int
}

// NewLoader returns a Loader that runs at most concurrency detail fetches at
// once. Non-positive concurrency uses a default of 8.
func NewLoader(source pokeapi.Source, concurrency int) *Loader {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Loader{source: source, concurrency: concurrency}
}

// PageOffset returns the listing offset of a 1-based page.
func PageOffset(page int) int {
	return (page - 1) * PageSize
}

// FetchPage loads one listing page and the full record of every entry on it,
// in listing order. Any failed sub-fetch fails the whole page.
func (l *Loader) FetchPage(ctx context.Context, page int) ([]pokeapi.Pokemon, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page %d out of range", ErrPageLoad, page)
	}
	list, err := l.source.ListPokemon(ctx, PageSize, PageOffset(page))
	if err != nil {
		return nil, fmt.Errorf("%w %d: %w", ErrPageLoad, page, err)
	}

	results := list.Results
	if len(results) > PageSize {
		results = results[:PageSize]
	}
	urls := make([]string, len(results))
	for i, r := range results {
		urls[i] = r.URL
	}

	records, err := l.fetchAll(ctx, urls)
	if err != nil {
		return nil, fmt.Errorf("%w %d: %w", ErrPageLoad, page, err)
	}
	logging.Debug().Int("page", page).Int("records", len(records)).Msg("page fetched")
	return records, nil
}

// FetchCategory loads up to MaxCategoryMembers members of a category, in the
// order the category lists them.
func (l *Loader) FetchCategory(ctx context.Context, name string) ([]pokeapi.Pokemon, error) {
	name = strings.TrimSpace(name)
	members, err := l.source.TypeMembers(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCategoryLoad, name, err)
	}
	if len(members) > MaxCategoryMembers {
		members = members[:MaxCategoryMembers]
	}
	urls := make([]string, len(members))
	for i, m := range members {
		urls[i] = m.Pokemon.URL
	}

	records, err := l.fetchAll(ctx, urls)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCategoryLoad, name, err)
	}
	logging.Debug().Str("category", name).Int("records", len(records)).Msg("category fetched")
	return records, nil
}

// FetchCategories returns the category names for the filter control.
func (l *Loader) FetchCategories(ctx context.Context) ([]string, error) {
	types, err := l.source.Types(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTypesLoad, err)
	}
	names := make([]string, 0, len(types))
	for _, t := range types {
		if name := strings.TrimSpace(t.Name); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// fetchAll fetches every URL concurrently and returns the records in the
// order of urls. The first failure cancels the remaining fetches and nothing
// partial is returned.
func (l *Loader) fetchAll(ctx context.Context, urls []string) ([]pokeapi.Pokemon, error) {
	records := make([]pokeapi.Pokemon, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, u := range urls {
		g.Go(func() error {
			rec, err := l.source.Pokemon(gctx, u)
			if err != nil {
				return err
			}
			records[i] = *rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
