// Package lifecycle holds timing shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx start or stop hook.
const DefaultTimeout = 15 * time.Second
