package egl

import (
	"errors"
	"fmt"

	"github.com/obinnaokechukwu/egl/internal/errcode"
)

// ErrorCode is an EGL error code as returned by GetError.
type ErrorCode = errcode.Code

// Error code constants re-exported from errcode.
const (
	Success           = errcode.Success
	NotInitialized    = errcode.NotInitialized
	BadAccess         = errcode.BadAccess
	BadAlloc          = errcode.BadAlloc
	BadAttribute      = errcode.BadAttribute
	BadConfig         = errcode.BadConfig
	BadContext        = errcode.BadContext
	BadCurrentSurface = errcode.BadCurrentSurface
	BadDisplay        = errcode.BadDisplay
	BadMatch          = errcode.BadMatch
	BadNativePixmap   = errcode.BadNativePixmap
	BadNativeWindow   = errcode.BadNativeWindow
	BadParameter      = errcode.BadParameter
	BadSurface        = errcode.BadSurface
	ContextLost       = errcode.ContextLost
)

// Error is a failed EGL operation as a Go error.
type Error struct {
	Code ErrorCode // EGL error code
	Op   string    // Entry point that failed
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("egl %s: %s (0x%04X)", e.Op, e.Code, int32(e.Code))
}

// NewError creates an Error for op. Returns nil if code is Success.
func NewError(code ErrorCode, op string) error {
	if code == Success {
		return nil
	}
	return &Error{Code: code, Op: op}
}

// LastError consumes the calling thread's last error (see GetError) and
// returns it as a Go error attributed to op, or nil if there is none.
func LastError(op string) error {
	return NewError(GetError(), op)
}

// Code returns the EGL error code from an error, or 0 if not an EGL error.
func Code(err error) ErrorCode {
	var eglErr *Error
	if errors.As(err, &eglErr) {
		return eglErr.Code
	}
	return 0
}
