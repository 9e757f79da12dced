package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/five82/pokedex/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	var opts app.Options

	flags := pflag.NewFlagSet("pokedex", pflag.ContinueOnError)
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/pokedex/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/pokedex/prefs.toml)")
	flags.StringVar(&opts.Theme, "theme", "", "theme for this run: Nightfox, Kanagawa, Dawnfox")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "pokedex: %v\n", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "pokedex: %v\n", err)
		return 1
	}
	return 0
}
