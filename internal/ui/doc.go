// Package ui is the terminal front end of the viewer, built on Bubble Tea.
//
// # Architecture
//
// Model follows the Elm loop: Update handles a message and returns commands,
// View draws from the model. The catalog itself lives in a
// catalog.Controller; the model keeps the latest snapshot and renders it
// through the render package's descriptors.
//
// Network work never runs inside Update. Each load is a tea.Cmd that calls
// the controller and returns a message; on receipt the model re-reads the
// controller snapshot. Only one catalog load runs at a time, so page and
// filter keys are ignored while the spinner is showing.
//
// # Files
//
//   - app.go: Model, Options, Init/Update/View, key handling, Run
//   - commands.go: messages and the commands that produce them
//   - list.go: card list, empty state, failure page
//   - header.go: status bar, command bar, search line, footer
//   - detail.go: Modal interface and the detail modal (viewport)
//   - logs.go: log panel showing the tail of the viewer log
//   - help.go: help overlay generated from the key map
//   - keys.go, theme.go, style_helpers.go, layout.go: bindings and styling
//
// # Search
//
// "/" focuses the search box. Every edit takes a fresh debounce token and
// schedules a tea.Tick; when the tick arrives the token is claimed and the
// filter applied only if no newer edit happened. Enter applies at once.
//
// # Failures
//
// A failed load leaves the previous catalog on screen and shows a notice in
// the header for a few seconds. If the very first page fails, a full-page
// error with a retry key replaces the loading indicator.
package ui
