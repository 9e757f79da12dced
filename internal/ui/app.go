package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pokedex/internal/catalog"
	"github.com/five82/pokedex/internal/debounce"
	"github.com/five82/pokedex/internal/logging"
	"github.com/five82/pokedex/internal/prefs"
	"github.com/five82/pokedex/internal/render"
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Controller  *catalog.Controller
	ThemeName   string
	Prefs       *prefs.Store // nil disables theme persistence
	LogPath     string // viewer log file shown by the log panel
	SearchDelay time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	controller *catalog.Controller
	prefs      *prefs.Store
	logPath    string
	keys       keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Catalog state, refreshed from the controller after every change
	state      catalog.State
	categories []string
	loaded     bool
	failure    *render.Failure

	// Loading indicators
	loading       bool
	detailLoading int // id being fetched, 0 when idle
	spinner       spinner.Model

	// List state
	selected int
	offset   int

	// Search state
	search    textinput.Model
	searching bool
	debounce  *debounce.Debouncer

	// Failure notice in the header
	alert    string
	alertSeq int

	// Overlays
	modal    Modal
	showHelp bool
}

// New creates a new Bubble Tea model. The first page load starts in Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "name or number"
	input.CharLimit = 40

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:        ctx,
		controller: opts.Controller,
		prefs:      opts.Prefs,
		logPath:    opts.LogPath,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(themeName),
		state:      catalog.NewState(),
		loading:    true,
		spinner:    spin,
		search:     input,
		debounce:   debounce.New(opts.SearchDelay),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadPageCmd(1),
		m.fetchCategoriesCmd(),
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.Width = max(msg.Width-4, 10)
		m.ensureVisible()
		if m.modal != nil {
			modal, cmd, _ := m.modal.Update(msg, m.keys)
			m.modal = modal
			return m, cmd
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		return m.handleLoaded(msg)

	case categoriesMsg:
		if msg.err != nil {
			return m.setAlert(alertFor(msg.err))
		}
		m.categories = msg.names
		return m, nil

	case detailMsg:
		return m.handleDetail(msg)

	case logsMsg:
		if msg.err != nil {
			return m.setAlert("Failed to read log")
		}
		m.modal = newLogModal(m.logPath, msg.lines, m.theme, m.width, m.height)
		return m, nil

	case searchTickMsg:
		if !m.debounce.Claim(msg.token) {
			return m, nil
		}
		m.applyState(m.controller.ApplyTextFilter(msg.term))
		return m, nil

	case alertExpiredMsg:
		if msg.seq == m.alertSeq {
			m.alert = ""
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefs != nil {
			if err := m.prefs.SetTheme(m.theme.Name); err != nil {
				logging.Warn().Err(err).Msg("save theme preference")
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		if m.logPath == "" {
			return m, nil
		}
		return m, m.logsCmd()
	}

	// The full-page failure only offers a retry.
	if m.failure != nil {
		if key.Matches(msg, m.keys.Retry) && !m.loading {
			m.failure = nil
			cmds := []tea.Cmd{m.startLoad(m.loadPageCmd(1))}
			if len(m.categories) == 0 {
				cmds = append(cmds, m.fetchCategoriesCmd())
			}
			return m, tea.Batch(cmds...)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.CycleCategory):
		return m.cycleCategory()

	case key.Matches(msg, m.keys.ClearFilters):
		if m.loading {
			return m, nil
		}
		m.debounce.Cancel()
		m.search.SetValue("")
		cmd := m.startLoad(m.clearFiltersCmd())
		return m, cmd

	case key.Matches(msg, m.keys.NextPage):
		if _, ok := m.state.NextPage(); !ok || m.loading {
			return m, nil
		}
		cmd := m.startLoad(m.nextPageCmd())
		return m, cmd

	case key.Matches(msg, m.keys.PrevPage):
		if _, ok := m.state.PrevPage(); !ok || m.loading {
			return m, nil
		}
		cmd := m.startLoad(m.prevPageCmd())
		return m, cmd

	case key.Matches(msg, m.keys.OpenDetail):
		return m.openDetail()

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Top):
		m.moveSelection(-len(m.state.Display))
	case key.Matches(msg, m.keys.Bottom):
		m.moveSelection(len(m.state.Display))
	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-m.listHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(m.listHeight())
	}

	return m, nil
}

// handleSearchKey handles keyboard input while the search box has focus.
// Every edit schedules a debounced filter; enter applies immediately.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.debounce.Cancel()
		m.searching = false
		m.search.Blur()
		m.applyState(m.controller.ApplyTextFilter(m.search.Value()))
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.scheduleSearch(m.search.Value()))
}

func (m Model) scheduleSearch(term string) tea.Cmd {
	tok := m.debounce.Next()
	return tea.Tick(m.debounce.Delay(), func(time.Time) tea.Msg {
		return searchTickMsg{token: tok, term: term}
	})
}

// cycleCategory loads the category after the active one, wrapping back to
// paged browsing after the last.
func (m Model) cycleCategory() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	if len(m.categories) == 0 {
		return m, m.fetchCategoriesCmd()
	}
	opts := render.CategoryOptions(m.categories)
	idx := 0
	for i, opt := range opts {
		if opt.Value == m.state.Category {
			idx = i
			break
		}
	}
	next := opts[(idx+1)%len(opts)]
	cmd := m.startLoad(m.categoryCmd(next.Value))
	return m, cmd
}

func (m Model) openDetail() (tea.Model, tea.Cmd) {
	if len(m.state.Display) == 0 || m.detailLoading != 0 {
		return m, nil
	}
	id := m.state.Display[m.selected].ID
	m.detailLoading = id
	return m, tea.Batch(m.detailCmd(id), m.spinner.Tick)
}

func (m Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, catalog.ErrSuperseded) {
		return m, nil
	}
	m.loading = false
	m.applyState(m.controller.Snapshot())

	if msg.err != nil {
		if !m.loaded {
			failure := render.LoadFailure()
			m.failure = &failure
			return m, nil
		}
		return m.setAlert(alertFor(msg.err))
	}

	m.loaded = true
	m.failure = nil
	if msg.resetSelection {
		m.selected = 0
		m.offset = 0
	}
	return m, nil
}

func (m Model) handleDetail(msg detailMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.detailLoading {
		return m, nil
	}
	m.detailLoading = 0
	if msg.err != nil {
		return m.setAlert(alertFor(msg.err))
	}
	m.modal = newDetailModal(render.Detail(msg.detail), m.theme, m.width, m.height)
	return m, nil
}

// applyState installs a controller snapshot and keeps the selection valid.
func (m *Model) applyState(st catalog.State) {
	m.state = st
	if !m.searching && m.search.Value() != st.SearchTerm {
		m.search.SetValue(st.SearchTerm)
	}
	m.ensureVisible()
}

func (m Model) setAlert(text string) (Model, tea.Cmd) {
	m.alertSeq++
	m.alert = text
	seq := m.alertSeq
	return m, tea.Tick(AlertTTL, func(time.Time) tea.Msg {
		return alertExpiredMsg{seq: seq}
	})
}

func (m *Model) startLoad(cmd tea.Cmd) tea.Cmd {
	m.loading = true
	return tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) busy() bool {
	return m.loading || m.detailLoading != 0
}

// alertFor maps a failed operation to its user-facing notice.
func alertFor(err error) string {
	switch {
	case errors.Is(err, catalog.ErrCategoryLoad):
		return "Failed to load category"
	case errors.Is(err, catalog.ErrDetailLoad):
		return "Failed to load details"
	case errors.Is(err, catalog.ErrTypesLoad):
		return "Failed to load types"
	default:
		return "Failed to load page"
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderSearchLine())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if opts.Controller == nil {
		return errors.New("ui: controller is required")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
