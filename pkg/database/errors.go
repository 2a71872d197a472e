package database

import "errors"

// ErrNotReady is returned when a connection is requested before Connect
// has completed.
var ErrNotReady = errors.New("database not ready")
