// Package lifecycle holds shared timings for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and connection checks during startup.
const DefaultTimeout = 10 * time.Second
