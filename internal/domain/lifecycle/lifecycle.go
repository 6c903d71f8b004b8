// Package lifecycle holds shared start and shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and stop hooks.
const DefaultTimeout = 10 * time.Second
