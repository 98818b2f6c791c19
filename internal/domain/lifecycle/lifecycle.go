// Package lifecycle holds shared lifecycle constants for graceful startup
// and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and shutdown drains.
const DefaultTimeout = 10 * time.Second
