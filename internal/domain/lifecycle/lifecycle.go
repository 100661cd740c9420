// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown steps (HTTP drain, DB ping).
const DefaultTimeout = 10 * time.Second
