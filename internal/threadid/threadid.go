// Package threadid reports the identity of the calling OS thread.
//
// EGL keeps its error state and thread labels per thread. Go code only has a
// stable thread while the goroutine is locked to it, which is always the case
// inside a call coming in from C. Go callers that need per-thread results
// must call runtime.LockOSThread first.
package threadid

// ID identifies an OS thread. Zero means the platform cannot tell threads
// apart, in which case all threads share one identity.
type ID uint64

// Current returns the identity of the calling OS thread.
func Current() ID {
	return current()
}
