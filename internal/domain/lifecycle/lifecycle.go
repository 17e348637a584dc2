// Package lifecycle holds shared timing constants for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx start/stop hooks such as DB ping and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
