package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything the viewer and the shell server read from disk.
type Config struct {
	APIBaseURL        string
	RequestTimeout    time.Duration
	MaxConcurrency    int
	RequestsPerSecond float64
	Burst             int
	LogFile           string
	LogLevel          string
	Shell             Shell
}

// Shell configures the static file server.
type Shell struct {
	Port            int
	PublicDir       string
	MaxPortAttempts int
}

const (
	defaultConfigPath      = "~/.config/pokedex/config.toml"
	defaultAPIBaseURL      = "https://pokeapi.co/api/v2"
	defaultRequestTimeout  = 10 * time.Second
	defaultMaxConcurrency  = 8
	defaultRequestsPerSec  = 50
	defaultBurst           = 20
	defaultLogFile         = "~/.local/state/pokedex/pokedex.log"
	defaultLogLevel        = "info"
	defaultShellPort       = 3001
	defaultPublicDir       = "public"
	defaultMaxPortAttempts = 10

	// PortEnv overrides Shell.Port when set to a valid port.
	PortEnv = "PORT"
)

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		APIBaseURL:        defaultAPIBaseURL,
		RequestTimeout:    defaultRequestTimeout,
		MaxConcurrency:    defaultMaxConcurrency,
		RequestsPerSecond: defaultRequestsPerSec,
		Burst:             defaultBurst,
		LogFile:           mustExpand(defaultLogFile),
		LogLevel:          defaultLogLevel,
		Shell: Shell{
			Port:            defaultShellPort,
			PublicDir:       defaultPublicDir,
			MaxPortAttempts: defaultMaxPortAttempts,
		},
	}
}

// Load locates and parses the config, falling back to defaults when missing.
// Blank or non-positive values also fall back to their defaults. The PORT
// environment variable takes precedence over shell.port.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg)
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL            string  `toml:"api_base_url"`
		RequestTimeoutSeconds int     `toml:"request_timeout_seconds"`
		MaxConcurrency        int     `toml:"max_concurrency"`
		RequestsPerSecond     float64 `toml:"requests_per_second"`
		Burst                 int     `toml:"burst"`
		LogFile               string  `toml:"log_file"`
		LogLevel              string  `toml:"log_level"`
		Shell                 struct {
			Port            int    `toml:"port"`
			PublicDir       string `toml:"public_dir"`
			MaxPortAttempts int    `toml:"max_port_attempts"`
		} `toml:"shell"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if raw.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSeconds) * time.Second
	}
	if raw.MaxConcurrency > 0 {
		cfg.MaxConcurrency = raw.MaxConcurrency
	}
	if raw.RequestsPerSecond > 0 {
		cfg.RequestsPerSecond = raw.RequestsPerSecond
	}
	if raw.Burst > 0 {
		cfg.Burst = raw.Burst
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if raw.Shell.Port > 0 {
		cfg.Shell.Port = raw.Shell.Port
	}
	if v := strings.TrimSpace(raw.Shell.PublicDir); v != "" {
		cfg.Shell.PublicDir = v
	}
	if raw.Shell.MaxPortAttempts > 0 {
		cfg.Shell.MaxPortAttempts = raw.Shell.MaxPortAttempts
	}

	return applyEnv(cfg)
}

func applyEnv(cfg Config) (Config, error) {
	raw := strings.TrimSpace(os.Getenv(PortEnv))
	if raw == "" {
		return cfg, nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid %s %q", PortEnv, raw)
	}
	cfg.Shell.Port = port
	return cfg, nil
}

// PublicDirPath returns the shell's public directory as an absolute path.
func (c Config) PublicDirPath() string {
	dir := strings.TrimSpace(c.Shell.PublicDir)
	if dir == "" {
		dir = defaultPublicDir
	}
	return mustExpand(dir)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
