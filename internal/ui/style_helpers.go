package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle paints text on one background color. A styled segment ends with
// a reset, so the spaces between segments must be painted too or the bar
// shows holes.
type BgStyle struct {
	base lipgloss.Style
}

// NewBgStyle returns a painter for bgColor.
func NewBgStyle(bgColor string) BgStyle {
	return BgStyle{base: lipgloss.NewStyle().Background(lipgloss.Color(bgColor))}
}

// Render applies style to text word by word, painting the gaps.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	fg := style.Background(b.base.GetBackground())
	var out strings.Builder
	for i, word := range strings.Split(text, " ") {
		if i > 0 {
			out.WriteString(b.Space())
		}
		if word != "" {
			out.WriteString(fg.Render(word))
		}
	}
	return out.String()
}

func (b BgStyle) Space() string {
	return b.Spaces(1)
}

func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return b.base.Render(strings.Repeat(" ", n))
}

// Sep paints a literal separator.
func (b BgStyle) Sep(sep string) string {
	return b.base.Render(sep)
}

func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, b.Sep(sep))
}

// FillLine pads content to width on the background.
func (b BgStyle) FillLine(content string, width int) string {
	return b.base.Width(width).Render(content)
}
