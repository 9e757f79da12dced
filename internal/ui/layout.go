package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which badges are hidden.
	LayoutCompactWidth = 60

	// DetailModalWidth caps the detail modal width.
	DetailModalWidth = 72

	// StatBarWidth is the number of cells of a full (255) stat bar.
	StatBarWidth = 30
)

// Chrome lines around the list: header, command bar, search line, footer.
const chromeLines = 4

// Timing constants.
const (
	// AlertTTL is how long a failure notice stays in the header.
	AlertTTL = 6 * time.Second
)
