package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Caches, catalogs and collections
// return these (optionally wrapped) and services translate them into coded
// domain errors.
//
//   - ErrNotFound: the record or identifier is not present
//   - ErrUnavailable: a backing store could not be reached
//
// For validation failures (bad codes, empty names) use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
