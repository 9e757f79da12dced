package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Dawnfox"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Dawnfox"); got != "Nightfox" {
		t.Fatalf("NextTheme(Dawnfox) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Kanagawa").Name; got != "Kanagawa" {
		t.Fatalf("GetTheme(Kanagawa).Name = %q, want Kanagawa", got)
	}
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Dracula).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestEveryThemeColorsEveryType(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, typ := range []string{"fire", "water", "grass", "fairy", "dragon"} {
			if th.TypeColors[typ] == "" {
				t.Fatalf("theme %s has no color for %s", name, typ)
			}
		}
	}
}

func TestBadgeStyle(t *testing.T) {
	th := GetTheme("Nightfox")
	styles := th.Styles()

	if got := styles.BadgeStyle("  FIRE ").GetBackground(); got != lipgloss.Color(th.TypeColors["fire"]) {
		t.Fatalf("BadgeStyle(FIRE) background = %v, want %s", got, th.TypeColors["fire"])
	}
	if got := styles.BadgeStyle("shadow").GetBackground(); got != lipgloss.Color(th.Muted) {
		t.Fatalf("BadgeStyle(shadow) background = %v, want muted %s", got, th.Muted)
	}
	if got := styles.WithBackground(th.Surface).BadgeStyle("shadow").GetBackground(); got != lipgloss.Color(th.Muted) {
		t.Fatalf("WithBackground lost the muted fallback: %v", got)
	}
}
