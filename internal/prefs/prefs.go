// Package prefs persists viewer preferences in ~/.config/pokedex/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/pokedex/internal/logging"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/pokedex/prefs.toml"

	// DefaultTheme is used until the user picks another one.
	DefaultTheme = "Nightfox"
)

// Defaults returns the preferences of a fresh install.
func Defaults() Prefs {
	return Prefs{Theme: DefaultTheme}
}

// Store reads and writes one preferences file.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open returns a Store for path; empty path means the default location.
// The file does not need to exist.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve prefs path: %w", err)
	}
	return &Store{path: resolved}, nil
}

// Path returns the resolved file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored preferences. A missing, unreadable, or malformed
// file yields Defaults; the latter two are logged.
func (s *Store) Load() Prefs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() Prefs {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.Warn().Err(err).Str("path", s.path).Msg("prefs unreadable, using defaults")
		}
		return Defaults()
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		logging.Warn().Err(err).Str("path", s.path).Msg("prefs malformed, using defaults")
		return Defaults()
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = DefaultTheme
	}
	return p
}

// Save replaces the file with p. The write goes through a temp file in the
// same directory so a crash never leaves a truncated file behind.
func (s *Store) Save(p Prefs) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(p)
}

func (s *Store) save(p Prefs) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close prefs: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// SetTheme records the theme, keeping any other stored preferences.
func (s *Store) SetTheme(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.load()
	p.Theme = name
	return s.save(p)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
