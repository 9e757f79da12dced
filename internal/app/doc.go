// Package app is the composition root for the pokedex binaries.
//
// Run wires the viewer: it loads the config, points the logger at the log
// file (the terminal belongs to the TUI), builds the PokeAPI client, the
// catalog loader and controller, resolves the theme from the flags or the
// saved preferences, and hands everything to ui.Run, which blocks until the
// user quits or the context is cancelled.
//
// RunShell wires the static shell server: config, console logging to
// stderr, and shell.Server.Run, which returns after a graceful shutdown.
//
// Fatal errors are config parse failures, an unusable log file, and a
// malformed API base URL. Everything that goes wrong at run time is shown in
// the UI and logged.
package app
