package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/logtail"
)

// LogPanelLines is how many trailing log lines the panel loads.
const LogPanelLines = 200

// logModal shows the tail of the viewer's own log file.
type logModal struct {
	path     string
	lines    []string
	theme    Theme
	viewport viewport.Model
}

var _ Modal = (*logModal)(nil)

func newLogModal(path string, lines []string, theme Theme, width, height int) *logModal {
	l := &logModal{path: path, lines: lines, theme: theme}
	l.resize(width, height)
	l.viewport.GotoBottom()
	return l
}

func (l *logModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.resize(msg.Width, msg.Height)
		return l, nil, false
	case tea.KeyMsg:
		if key.Matches(msg, keys.Escape, keys.Logs, keys.Quit) {
			return l, nil, true
		}
	}
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd, false
}

func (l *logModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	title := styles.AccentText.Bold(true).Render("Log")
	path := styles.FaintText.Render(truncate(l.path, l.viewport.Width))
	hint := styles.FaintText.Render("j/k scroll  esc close")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(0, 1).
		Width(l.viewport.Width + 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, path, "", l.viewport.View(), "", hint))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (l *logModal) resize(width, height int) {
	w := max(width-6, 20)
	h := max(height-9, 3)
	if l.viewport.Width == 0 {
		l.viewport = viewport.New(w, h)
	} else {
		l.viewport.Width = w
		l.viewport.Height = h
	}
	l.viewport.SetContent(renderLogLines(l.lines, l.theme, w))
}

func renderLogLines(lines []string, theme Theme, width int) string {
	styles := theme.Styles()
	if len(lines) == 0 {
		return styles.MutedText.Render("Log is empty.")
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		entry := logtail.Parse(line)
		if entry.Level == "" {
			out = append(out, styles.Text.Render(truncate(line, width)))
			continue
		}

		level := strings.ToUpper(entry.Level)
		var levelStyle lipgloss.Style
		switch entry.Level {
		case "error", "fatal", "panic":
			levelStyle = styles.DangerText
		case "warn":
			levelStyle = styles.WarningText
		case "debug", "trace":
			levelStyle = styles.InfoText
		default:
			levelStyle = styles.SuccessText
		}

		stamp := ""
		if !entry.Time.IsZero() {
			stamp = styles.FaintText.Render(entry.Time.Local().Format("15:04:05")) + " "
		}
		msg := truncate(entry.Message, max(width-15, 10))
		out = append(out, stamp+levelStyle.Bold(true).Render(padRight(level, 5))+" "+styles.Text.Render(msg))
	}
	return strings.Join(out, "\n")
}

// logsMsg carries the lines read for the log panel.
type logsMsg struct {
	lines []string
	err   error
}

func (m Model) logsCmd() tea.Cmd {
	path := m.logPath
	return func() tea.Msg {
		lines, err := logtail.Tail(path, LogPanelLines)
		return logsMsg{lines: lines, err: err}
	}
}
