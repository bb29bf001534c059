package log

import "errors"

// ErrLoggerAlreadyInitialized is returned when Start is called twice.
var ErrLoggerAlreadyInitialized = errors.New("logger already initialized")
