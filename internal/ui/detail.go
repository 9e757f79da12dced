package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/render"
)

// Modal is an overlay that owns input until it reports closed.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (modal Modal, cmd tea.Cmd, closed bool)
	View(theme Theme, width, height int) string
}

// detailModal shows one record's detail in a scrollable box.
type detailModal struct {
	view     render.DetailView
	theme    Theme
	viewport viewport.Model
}

var _ Modal = (*detailModal)(nil)

func newDetailModal(view render.DetailView, theme Theme, width, height int) *detailModal {
	d := &detailModal{view: view, theme: theme}
	d.resize(width, height)
	return d
}

// Update closes on esc/enter/q and forwards everything else to the viewport.
func (d *detailModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.resize(msg.Width, msg.Height)
		return d, nil, false
	case tea.KeyMsg:
		if key.Matches(msg, keys.Escape, keys.OpenDetail, keys.Quit) {
			return d, nil, true
		}
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd, false
}

func (d *detailModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	title := styles.AccentText.Bold(true).Render(d.view.Title)
	hint := styles.FaintText.Render("j/k scroll  esc close")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(0, 1).
		Width(d.viewport.Width + 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", d.viewport.View(), "", hint))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (d *detailModal) resize(width, height int) {
	w := max(min(width-6, DetailModalWidth), 20)
	h := max(height-8, 3)
	if d.viewport.Width == 0 {
		d.viewport = viewport.New(w, h)
	} else {
		d.viewport.Width = w
		d.viewport.Height = h
	}
	d.viewport.SetContent(renderDetailBody(d.view, d.theme, w))
}

// renderDetailBody lays out everything below the title.
func renderDetailBody(v render.DetailView, theme Theme, width int) string {
	styles := theme.Styles()
	label := func(s string) string {
		return styles.FaintText.Render(padRight(s, 11))
	}

	var b strings.Builder

	badges := make([]string, 0, len(v.Badges))
	for _, badge := range v.Badges {
		badges = append(badges, styles.BadgeStyle(badge.Type).Render(badge.Label))
	}
	b.WriteString(strings.Join(badges, " "))
	b.WriteString("\n\n")

	b.WriteString(label("Height") + styles.Text.Render(v.Height) + "\n")
	b.WriteString(label("Weight") + styles.Text.Render(v.Weight) + "\n")
	if v.Abilities != "" {
		b.WriteString(label("Abilities") + styles.Text.Render(v.Abilities) + "\n")
	}

	if len(v.Stats) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Base stats"))
		b.WriteString("\n")
		barWidth := min(StatBarWidth, max(width-22, 5))
		for _, s := range v.Stats {
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				styles.MutedText.Render(padRight(truncate(s.Label, 16), 16)),
				styles.Text.Render(fmt.Sprintf("%3d", s.Value)),
				styles.SuccessText.Render(statBar(s.Percent, barWidth)),
			))
		}
	}

	if v.Images.Normal != "" || v.Images.Shiny != "" {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Images"))
		b.WriteString("\n")
		if v.Images.Normal != "" {
			b.WriteString(label("Normal") + styles.InfoText.Render(v.Images.Normal) + "\n")
		}
		if v.Images.Shiny != "" {
			b.WriteString(label("Shiny") + styles.InfoText.Render(v.Images.Shiny) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Text.Width(width).Render(v.Description))

	return b.String()
}
