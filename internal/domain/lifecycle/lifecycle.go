// Package lifecycle holds process lifecycle constants shared by the fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of servers and triggers.
const DefaultTimeout = 10 * time.Second
