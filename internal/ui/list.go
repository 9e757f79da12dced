package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/render"
)

const nameColumnWidth = 16

// listHeight is the number of card rows that fit between header and footer.
func (m Model) listHeight() int {
	return max(m.height-chromeLines, 1)
}

func (m *Model) moveSelection(delta int) {
	m.selected += delta
	m.ensureVisible()
}

// ensureVisible clamps the selection to Display and scrolls it into view.
func (m *Model) ensureVisible() {
	n := len(m.state.Display)
	if n == 0 {
		m.selected = 0
		m.offset = 0
		return
	}
	m.selected = min(max(m.selected, 0), n-1)

	h := m.listHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+h {
		m.offset = m.selected - h + 1
	}
	m.offset = min(max(m.offset, 0), max(n-h, 0))
}

// renderContent renders the area between the search line and the footer.
func (m Model) renderContent() string {
	h := m.listHeight()

	switch {
	case m.failure != nil:
		return m.renderFailure(*m.failure, h)
	case !m.loaded && m.loading:
		return m.placeCenter(h, m.spinner.View()+" Loading Pokédex...")
	}

	view := render.Grid(m.state)
	if view.Empty != nil {
		return m.renderEmpty(*view.Empty, h)
	}
	return m.renderCards(view.Cards, h)
}

func (m Model) renderCards(cards []render.Card, height int) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)
	compact := m.width < LayoutCompactWidth

	end := min(m.offset+height, len(cards))
	lines := make([]string, 0, height)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderCard(cards[i], i == m.selected, compact, styles, bg))
	}
	for len(lines) < height {
		lines = append(lines, bg.FillLine("", m.width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCard(card render.Card, selected, compact bool, styles Styles, bg BgStyle) string {
	marker := "  "
	numberStyle := styles.FaintText
	nameStyle := styles.Text
	if selected {
		marker = "▸ "
		numberStyle = styles.AccentText
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText)).Bold(true)
		bg = NewBgStyle(m.theme.SelectionBg)
	}

	parts := []string{
		bg.Render(marker, styles.AccentText),
		bg.Render("#"+card.Number, numberStyle),
		bg.Space(),
		bg.Render(padRight(truncate(card.Name, nameColumnWidth), nameColumnWidth), nameStyle),
	}
	if !compact {
		badges := make([]string, 0, len(card.Badges))
		for _, b := range card.Badges {
			badges = append(badges, styles.BadgeStyle(b.Type).Render(b.Label))
		}
		parts = append(parts, bg.Join(badges, " "))
	}

	return bg.FillLine(strings.Join(parts, ""), m.width)
}

func (m Model) renderEmpty(empty render.EmptyState, height int) string {
	styles := m.theme.Styles()
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.WarningText.Bold(true).Render(empty.Title),
		styles.MutedText.Render(empty.Message),
		"",
		styles.AccentText.Render("x")+styles.MutedText.Render(": "+empty.ActionLabel),
	)
	return m.placeCenter(height, body)
}

func (m Model) renderFailure(f render.Failure, height int) string {
	styles := m.theme.Styles()
	action := styles.AccentText.Render("r") + styles.MutedText.Render(": "+f.ActionLabel)
	if m.loading {
		action = m.spinner.View() + styles.MutedText.Render(" Retrying...")
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.DangerText.Render(f.Title),
		styles.MutedText.Render(f.Message),
		"",
		action,
	)
	return m.placeCenter(height, body)
}

func (m Model) placeCenter(height int, content string) string {
	return lipgloss.Place(
		m.width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}
