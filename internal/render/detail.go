package render

import (
	"fmt"
	"strings"

	"github.com/five82/pokedex/internal/catalog"
)

const maxStat = 255

// StatBar is one attribute with its share of the 0–255 range.
type StatBar struct {
	Label   string
	Value   int
	Percent float64
}

// Images holds the sprite variants; an empty field means the variant is
// absent and should be omitted.
type Images struct {
	Normal string
	Shiny  string
}

// DetailView describes the detail panel for one record.
type DetailView struct {
	Title       string
	Badges      []Badge
	Height      string
	Weight      string
	Abilities   string
	Stats       []StatBar
	Images      Images
	Description string
}

// Detail renders a loaded detail.
func Detail(d catalog.Detail) DetailView {
	rec := d.Pokemon

	abilities := rec.AbilityNames()
	for i, name := range abilities {
		abilities[i] = Capitalize(name)
	}

	stats := make([]StatBar, 0, len(rec.Stats))
	for _, s := range rec.Stats {
		stats = append(stats, StatBar{
			Label:   Capitalize(s.Stat.Name),
			Value:   s.BaseStat,
			Percent: float64(s.BaseStat) / maxStat * 100,
		})
	}

	var images Images
	images.Normal, _ = rec.Sprites.Normal()
	images.Shiny, _ = rec.Sprites.Shiny()

	return DetailView{
		Title:       fmt.Sprintf("#%d %s", rec.ID, Capitalize(rec.Name)),
		Badges:      Badges(rec),
		Height:      scaled(rec.Height, "m"),
		Weight:      scaled(rec.Weight, "kg"),
		Abilities:   strings.Join(abilities, ", "),
		Stats:       stats,
		Images:      images,
		Description: d.Description,
	}
}

// scaled converts a tenth-unit measurement to one decimal place.
func scaled(v int, unit string) string {
	return fmt.Sprintf("%.1f %s", float64(v)/10, unit)
}
