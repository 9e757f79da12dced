package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/five82/pokedex/internal/catalog"
	"github.com/five82/pokedex/internal/config"
	"github.com/five82/pokedex/internal/logging"
	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/prefs"
	"github.com/five82/pokedex/internal/shell"
	"github.com/five82/pokedex/internal/ui"
)

// Options configure the viewer.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/pokedex/prefs.toml
	Theme      string // overrides the saved theme for this run
	LogLevel   string // overrides log_level
}

// Run boots the viewer TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: "json", Output: logFile})

	controller, err := NewController(cfg)
	if err != nil {
		return err
	}

	store, err := prefs.Open(opts.PrefsPath)
	if err != nil {
		logging.Warn().Err(err).Msg("preferences disabled")
		store = nil
	}

	themeName := strings.TrimSpace(opts.Theme)
	if themeName == "" {
		themeName = prefs.DefaultTheme
		if store != nil {
			themeName = store.Load().Theme
		}
	}

	logging.Info().
		Str("api", cfg.APIBaseURL).
		Int("concurrency", cfg.MaxConcurrency).
		Str("theme", themeName).
		Msg("viewer starting")

	err = ui.Run(ui.Options{
		Context:    ctx,
		Controller: controller,
		ThemeName:  themeName,
		Prefs:      store,
		LogPath:    cfg.LogFile,
	})
	if err != nil {
		logging.Error().Err(err).Msg("viewer exited with error")
		return err
	}
	logging.Info().Msg("viewer stopped")
	return nil
}

// NewController builds the catalog controller described by cfg.
func NewController(cfg config.Config) (*catalog.Controller, error) {
	client, err := pokeapi.NewClient(pokeapi.Options{
		BaseURL:           cfg.APIBaseURL,
		Timeout:           cfg.RequestTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	})
	if err != nil {
		return nil, fmt.Errorf("init pokeapi client: %w", err)
	}
	loader := catalog.NewLoader(client, cfg.MaxConcurrency)
	return catalog.NewController(loader, nil), nil
}

// ShellOptions configure the static shell server.
type ShellOptions struct {
	ConfigPath string
	PublicDir  string // overrides shell.public_dir
	Port       int    // overrides shell.port and PORT
	LogLevel   string
}

// RunShell serves the static shell until ctx is cancelled.
func RunShell(ctx context.Context, opts ShellOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.PublicDir != "" {
		cfg.Shell.PublicDir = opts.PublicDir
	}
	if opts.Port > 0 {
		cfg.Shell.Port = opts.Port
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: "console", Output: os.Stderr})

	srv, err := shell.New(ShellServerOptions(cfg))
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

// ShellServerOptions maps the shell section of cfg onto server options.
func ShellServerOptions(cfg config.Config) shell.Options {
	return shell.Options{
		PublicDir:       cfg.PublicDirPath(),
		Port:            cfg.Shell.Port,
		MaxPortAttempts: cfg.Shell.MaxPortAttempts,
	}
}
