package stats

import "errors"

// ErrStatsAlreadyInitialized is returned when Init is called twice.
var ErrStatsAlreadyInitialized = errors.New("stats already initialized")
