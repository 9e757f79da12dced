package ui

import (
	"fmt"
	"strings"

	"github.com/five82/pokedex/internal/render"
)

// renderHeader renders the status bar: logo, page indicator, active filters,
// load progress, and the latest failure notice.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("pokédex", styles.Logo)}

	if m.loaded {
		pg := render.Pagination(m.state)
		parts = append(parts, m.renderPager(pg, styles, bg))
	}

	if m.state.Category != "" {
		parts = append(parts,
			bg.Render("type", styles.FaintText)+bg.Space()+
				bg.Render(render.Capitalize(m.state.Category), styles.BadgeStyle(m.state.Category)))
	}

	if m.busy() {
		label := "Loading..."
		if m.detailLoading != 0 {
			label = fmt.Sprintf("Loading #%s...", render.PadID(m.detailLoading))
		}
		parts = append(parts, bg.Render(m.spinner.View(), styles.AccentText)+bg.Space()+
			bg.Render(label, styles.WarningText))
	}

	if m.alert != "" {
		parts = append(parts, bg.Render("✗ "+m.alert, styles.DangerText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

func (m Model) renderPager(pg render.PaginationView, styles Styles, bg BgStyle) string {
	arrow := func(glyph string, enabled bool) string {
		if enabled {
			return bg.Render(glyph, styles.AccentText)
		}
		return bg.Render(glyph, styles.FaintText)
	}
	return arrow("◀", pg.PrevEnabled) + bg.Space() +
		bg.Render(pg.Label, styles.Text) + bg.Space() +
		arrow("▶", pg.NextEnabled)
}

// renderCommandBar renders the key hints for the current mode.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.searching:
		commands = []cmd{
			{"enter", "Apply"},
			{"esc", "Done"},
		}
	case m.failure != nil:
		commands = []cmd{
			{"r", "Retry"},
			{"q", "Quit"},
		}
	default:
		category := "All types"
		if m.state.Category != "" {
			category = render.Capitalize(m.state.Category)
		}
		commands = []cmd{
			{"/", "Search"},
			{"c", category},
			{"x", "Clear"},
			{"n/p", "Page"},
			{"j/k", "Navigate"},
			{"enter", "Details"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderSearchLine shows the search box while editing, otherwise the active
// term.
func (m Model) renderSearchLine() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	var content string
	switch {
	case m.searching:
		content = m.search.View()
	case m.state.SearchTerm != "":
		content = bg.Render("filter", styles.FaintText) + bg.Space() +
			bg.Render(truncate(m.state.SearchTerm, 30), styles.AccentText)
	default:
		content = bg.Render("/ to search by name or number", styles.FaintText)
	}
	return bg.FillLine(" "+content, m.width)
}

// renderFooter shows how many of the loaded records are visible.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	text := ""
	if m.loaded {
		text = fmt.Sprintf("%d of %d shown", len(m.state.Display), len(m.state.All))
	}
	return styles.Footer.Width(m.width).Render(bg.Render(text, styles.MutedText))
}
