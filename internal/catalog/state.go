package catalog

import (
	"strconv"
	"strings"

	"github.com/five82/pokedex/internal/pokeapi"
)

const (
	// PageSize is the number of records per listing page.
	PageSize = 20

	// MaxCategoryMembers caps how many members of a category are loaded.
	MaxCategoryMembers = 100
)

// State is the catalog the viewer is showing.
//
// Display is always an order-preserving subsequence of All. All is replaced
// wholesale by CommitPage and CommitCategory; Display is recomputed whenever
// All or SearchTerm changes.
type State struct {
	All        []pokeapi.Pokemon
	Display    []pokeapi.Pokemon
	Page       int    // >= 1; ignored while Category is set
	SearchTerm string // case-insensitive match on name or id digits
	Category   string // "" when browsing by page
}

// NewState returns an empty catalog positioned at page 1.
func NewState() State {
	return State{Page: 1}
}

// CommitPage installs a freshly loaded listing page and leaves category mode.
func (s *State) CommitPage(page int, records []pokeapi.Pokemon) {
	if page < 1 {
		page = 1
	}
	s.Page = page
	s.Category = ""
	s.All = records
	s.refilter()
}

// CommitCategory installs the members of a category. Pagination is disabled
// until a page is committed again.
func (s *State) CommitCategory(name string, records []pokeapi.Pokemon) {
	if len(records) > MaxCategoryMembers {
		records = records[:MaxCategoryMembers]
	}
	s.Category = name
	s.All = records
	s.refilter()
}

// ApplyTextFilter sets the search term and recomputes Display. It never
// touches the network.
func (s *State) ApplyTextFilter(term string) {
	s.SearchTerm = term
	s.refilter()
}

// Reset drops the search term so Display shows everything in All. Category
// and page change only when the next load commits.
func (s *State) Reset() {
	s.ApplyTextFilter("")
}

// PaginationEnabled reports whether prev/next navigation applies.
func (s State) PaginationEnabled() bool {
	return s.Category == ""
}

// NextPage returns the page a forward step would load.
func (s State) NextPage() (int, bool) {
	if !s.PaginationEnabled() {
		return 0, false
	}
	return max(s.Page, 1) + 1, true
}

// PrevPage returns the page a backward step would load. There is nothing
// before page 1.
func (s State) PrevPage() (int, bool) {
	if !s.PaginationEnabled() || s.Page <= 1 {
		return 0, false
	}
	return s.Page - 1, true
}

// Clone returns a copy whose slices do not alias s.
func (s State) Clone() State {
	dup := s
	dup.All = cloneRecords(s.All)
	dup.Display = cloneRecords(s.Display)
	return dup
}

func (s *State) refilter() {
	s.Display = Filter(s.All, s.SearchTerm)
}

// Filter returns the records matching term, in their original order. A record
// matches when its name contains term case-insensitively or its decimal id
// contains term. The term is used as typed, surrounding spaces included; only
// the empty term matches everything.
func Filter(records []pokeapi.Pokemon, term string) []pokeapi.Pokemon {
	out := make([]pokeapi.Pokemon, 0, len(records))
	needle := strings.ToLower(term)
	for _, rec := range records {
		if Matches(rec, needle) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether rec satisfies an already lower-cased needle.
func Matches(rec pokeapi.Pokemon, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(rec.Name), needle) {
		return true
	}
	return strings.Contains(strconv.Itoa(rec.ID), needle)
}

func cloneRecords(records []pokeapi.Pokemon) []pokeapi.Pokemon {
	if records == nil {
		return nil
	}
	dup := make([]pokeapi.Pokemon, len(records))
	copy(dup, records)
	return dup
}
