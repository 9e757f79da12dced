package catalog

import "errors"

// Operation categories. Loader and Controller errors wrap exactly one of these
// so the presentation layer can pick the matching alert.
var (
	ErrPageLoad     = errors.New("failed to load page")
	ErrCategoryLoad = errors.New("failed to load category")
	ErrDetailLoad   = errors.New("failed to load details")
	ErrTypesLoad    = errors.New("failed to load categories")
)

// ErrSuperseded is returned when a load finished after a newer load started.
// Its result was discarded.
var ErrSuperseded = errors.New("load superseded by a newer request")
