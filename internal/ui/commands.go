package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pokedex/internal/catalog"
	"github.com/five82/pokedex/internal/debounce"
)

// Messages

type loadedMsg struct {
	err            error
	resetSelection bool
}

type categoriesMsg struct {
	names []string
	err   error
}

type detailMsg struct {
	id     int
	detail catalog.Detail
	err    error
}

type searchTickMsg struct {
	token debounce.Token
	term  string
}

type alertExpiredMsg struct {
	seq int
}

// Commands. Each runs a controller call off the update loop and reports back
// with a message; the model re-reads the controller snapshot on receipt.

func (m Model) loadPageCmd(page int) tea.Cmd {
	ctrl, ctx := m.controller, m.ctx
	return func() tea.Msg {
		return loadedMsg{err: ctrl.LoadPage(ctx, page), resetSelection: true}
	}
}

func (m Model) nextPageCmd() tea.Cmd {
	ctrl, ctx := m.controller, m.ctx
	return func() tea.Msg {
		return loadedMsg{err: ctrl.NextPage(ctx), resetSelection: true}
	}
}

func (m Model) prevPageCmd() tea.Cmd {
	ctrl, ctx := m.controller, m.ctx
	return func() tea.Msg {
		return loadedMsg{err: ctrl.PrevPage(ctx), resetSelection: true}
	}
}

func (m Model) categoryCmd(name string) tea.Cmd {
	ctrl, ctx := m.controller, m.ctx
	return func() tea.Msg {
		return loadedMsg{err: ctrl.LoadByCategory(ctx, name), resetSelection: true}
	}
}

func (m Model) clearFiltersCmd() tea.Cmd {
	ctrl, ctx := m.controller, m.ctx
	return func() tea.Msg {
		return loadedMsg{err: ctrl.ClearFilters(ctx), resetSelection: true}
	}
}

func (m Model) fetchCategoriesCmd() tea.Cmd {
	ctrl, ctx := m.controller, m.ctx
	return func() tea.Msg {
		names, err := ctrl.Categories(ctx)
		return categoriesMsg{names: names, err: err}
	}
}

func (m Model) detailCmd(id int) tea.Cmd {
	ctrl, ctx := m.controller, m.ctx
	return func() tea.Msg {
		detail, err := ctrl.LoadDetail(ctx, id)
		return detailMsg{id: id, detail: detail, err: err}
	}
}
