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
	var opts app.ShellOptions

	flags := pflag.NewFlagSet("pokedex-shell", pflag.ContinueOnError)
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/pokedex/config.toml)")
	flags.StringVar(&opts.PublicDir, "public", "", "directory to serve (default from config, then ./public)")
	flags.IntVarP(&opts.Port, "port", "p", 0, "first port to try (default from PORT, then config, then 3001)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "pokedex-shell: %v\n", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.RunShell(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "pokedex-shell: %v\n", err)
		return 1
	}
	return 0
}
