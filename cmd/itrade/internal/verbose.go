package internal

import "sync/atomic"

// verbose tracks whether --verbose was set, for use by error handling paths
// that run outside any command context.
var verbose atomic.Bool

// SetVerbose records the verbose flag state.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// IsVerbose reports whether verbose output is enabled.
func IsVerbose() bool {
	return verbose.Load()
}
