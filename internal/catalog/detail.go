package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/pokedex/internal/pokeapi"
)

const (
	// DescriptionLocale selects which flavor text entry is shown.
	DescriptionLocale = "en"

	// DescriptionUnavailable is shown when no entry matches the locale.
	DescriptionUnavailable = "Description unavailable."
)

// Detail is everything the detail panel needs for one record.
type Detail struct {
	Pokemon     pokeapi.Pokemon
	Description string
}

// LoadDetail fetches a record by id and then its species description. It does
// not touch any catalog state.
func (l *Loader) LoadDetail(ctx context.Context, id int) (Detail, error) {
	rec, err := l.source.PokemonByID(ctx, id)
	if err != nil {
		return Detail{}, fmt.Errorf("%w #%d: %w", ErrDetailLoad, id, err)
	}

	detail := Detail{Pokemon: *rec, Description: DescriptionUnavailable}
	if strings.TrimSpace(rec.Species.URL) == "" {
		return detail, nil
	}

	species, err := l.source.Species(ctx, rec.Species.URL)
	if err != nil {
		return Detail{}, fmt.Errorf("%w #%d: %w", ErrDetailLoad, id, err)
	}
	detail.Description = Description(species.FlavorTextEntries)
	return detail, nil
}

// Description picks the first entry in DescriptionLocale and replaces page
// breaks (form feeds) with spaces. Without such an entry it returns
// DescriptionUnavailable.
func Description(entries []pokeapi.FlavorText) string {
	for _, entry := range entries {
		if entry.Language.Name != DescriptionLocale {
			continue
		}
		return strings.ReplaceAll(entry.FlavorText, "\f", " ")
	}
	return DescriptionUnavailable
}
