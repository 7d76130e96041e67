// Package lifecycle holds shared bounds for process start and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single fx start or stop hook.
const DefaultTimeout = 10 * time.Second
