package egl

import (
	"sync"

	"github.com/obinnaokechukwu/egl/internal/threadid"
)

// Per-thread state, keyed by OS thread. Only threads that have something
// to remember get an entry.
var (
	lastErrors   sync.Map // threadid.ID -> ErrorCode
	threadLabels sync.Map // threadid.ID -> Label
)

// GetError returns the error of the last failed EGL call on the calling
// thread and resets it to Success. A thread that has not failed since the
// last GetError reads Success.
//
// The error is tracked per OS thread. C callers get this for free; Go
// callers must keep their goroutine on one thread (runtime.LockOSThread)
// between the failing call and GetError.
func GetError() ErrorCode {
	v, ok := lastErrors.LoadAndDelete(threadid.Current())
	if !ok {
		return Success
	}
	return v.(ErrorCode)
}

func setError(code ErrorCode) {
	if code == Success {
		lastErrors.Delete(threadid.Current())
		return
	}
	lastErrors.Store(threadid.Current(), code)
}

func threadLabel() Label {
	v, ok := threadLabels.Load(threadid.Current())
	if !ok {
		return 0
	}
	return v.(Label)
}

func setThreadLabel(l Label) {
	if l == 0 {
		threadLabels.Delete(threadid.Current())
		return
	}
	threadLabels.Store(threadid.Current(), l)
}
