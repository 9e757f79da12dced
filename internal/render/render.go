// Package render maps catalog state to plain display descriptors. Nothing here
// touches the network or mutates its inputs; the ui package draws the result.
package render

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/five82/pokedex/internal/catalog"
	"github.com/five82/pokedex/internal/pokeapi"
)

// PlaceholderImage stands in for a record without a default sprite.
const PlaceholderImage = "https://via.placeholder.com/120x120?text=No+Image"

// Badge is one category chip. Type is the raw category name for styling.
type Badge struct {
	Type  string
	Label string
}

// Card describes one grid entry.
type Card struct {
	ID       int
	Name     string
	Number   string
	Badges   []Badge
	ImageURL string
	ImageAlt string
}

// EmptyState replaces the grid when nothing matches.
type EmptyState struct {
	Title       string
	Message     string
	ActionLabel string
}

// GridView holds either Cards or Empty, never both.
type GridView struct {
	Cards []Card
	Empty *EmptyState
}

// PaginationView describes the page indicator and the prev/next controls.
type PaginationView struct {
	Label       string
	PrevEnabled bool
	NextEnabled bool
}

// CategoryOption is one entry of the category filter control. The empty
// Value means "all".
type CategoryOption struct {
	Value string
	Label string
}

// Failure is the full-page error shown when the first load fails.
type Failure struct {
	Title       string
	Message     string
	ActionLabel string
}

// Grid renders the records in st.Display.
func Grid(st catalog.State) GridView {
	if len(st.Display) == 0 {
		return GridView{Empty: &EmptyState{
			Title:       "No Pokémon found",
			Message:     "Try a different search or category.",
			ActionLabel: "Clear filters",
		}}
	}
	cards := make([]Card, 0, len(st.Display))
	for _, rec := range st.Display {
		cards = append(cards, NewCard(rec))
	}
	return GridView{Cards: cards}
}

// NewCard renders a single record.
func NewCard(rec pokeapi.Pokemon) Card {
	image, ok := rec.Sprites.Normal()
	if !ok {
		image = PlaceholderImage
	}
	name := Capitalize(rec.Name)
	return Card{
		ID:       rec.ID,
		Name:     name,
		Number:   PadID(rec.ID),
		Badges:   Badges(rec),
		ImageURL: image,
		ImageAlt: "Image of " + name,
	}
}

// Badges renders a record's categories in slot order.
func Badges(rec pokeapi.Pokemon) []Badge {
	names := rec.TypeNames()
	badges := make([]Badge, 0, len(names))
	for _, name := range names {
		badges = append(badges, Badge{Type: name, Label: Capitalize(name)})
	}
	return badges
}

// Pagination renders the page indicator. In category mode both controls are
// disabled and the label counts the visible records.
func Pagination(st catalog.State) PaginationView {
	if !st.PaginationEnabled() {
		return PaginationView{Label: fmt.Sprintf("Showing %d records", len(st.Display))}
	}
	_, prev := st.PrevPage()
	_, next := st.NextPage()
	return PaginationView{
		Label:       fmt.Sprintf("Page %d", max(st.Page, 1)),
		PrevEnabled: prev,
		NextEnabled: next,
	}
}

// CategoryOptions renders the category filter, led by an "All types" entry.
func CategoryOptions(names []string) []CategoryOption {
	opts := make([]CategoryOption, 0, len(names)+1)
	opts = append(opts, CategoryOption{Value: "", Label: "All types"})
	for _, name := range names {
		if name == "" {
			continue
		}
		opts = append(opts, CategoryOption{Value: name, Label: Capitalize(name)})
	}
	return opts
}

// LoadFailure is the descriptor for an initial load that failed.
func LoadFailure() Failure {
	return Failure{
		Title:       "Failed to load",
		Message:     "The Pokédex could not be reached. Check your connection.",
		ActionLabel: "Retry",
	}
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// PadID formats an identifier as at least three digits.
func PadID(id int) string {
	return fmt.Sprintf("%03d", id)
}
