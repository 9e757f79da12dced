// Package catalog holds the browsing state of the viewer and the engine that
// loads, filters, and paginates it.
//
// # Overview
//
// A State is the catalog currently on screen: the loaded records (All), the
// subset matching the search term (Display), the 1-based page, the search term,
// and the selected category. The Controller is the single owner of a State;
// everything that changes it goes through Controller methods.
//
// # Loading
//
// Loader turns a page number or category name into full records:
//
//	FetchPage(ctx, page)
//	  ├─> ListPokemon(limit=20, offset=(page-1)*20)
//	  └─> Pokemon(url) for each entry, concurrently, results in listing order
//
//	FetchCategory(ctx, name)
//	  ├─> TypeMembers(name), first 100 members
//	  └─> Pokemon(url) for each member, concurrently, results in member order
//
// Sub-fetches run under an errgroup with a concurrency limit. The first
// failure cancels the rest and nothing partial is returned.
//
// # Commit rules
//
// Controller loads fetch without holding the state lock and commit only when
// every sub-fetch succeeded. A failed load returns an error wrapping
// ErrPageLoad or ErrCategoryLoad and leaves the previous State untouched. When
// two loads overlap, the older one finishes with ErrSuperseded and its
// records are dropped.
//
// Display is recomputed from All and the search term after every commit and
// every filter change, so it is always an order-preserving subsequence of All.
// Category mode disables page navigation; ClearFilters returns to page 1.
//
// # Search
//
// ApplyTextFilter filters immediately. ScheduleTextFilter is the entry point
// for callers without an event loop of their own: it goes through the
// Controller's debounce.Debouncer on a timer goroutine, so only the last term
// typed within the quiet window is applied. The TUI debounces with tea.Tick
// and debounce tokens instead and calls ApplyTextFilter when its tick fires.
//
// # Details
//
// LoadDetail fetches one record by id plus its species and picks the first
// English description, replacing form feeds with spaces. It never mutates
// State.
package catalog
