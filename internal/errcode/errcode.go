// Package errcode defines the EGL error codes shared by the API surface and
// the debug message router.
package errcode

import "fmt"

// Code is an EGL error code as returned by eglGetError.
type Code int32

// Error codes from the EGL 1.5 specification, table 3.1.
const (
	Success           Code = 0x3000 // The last function succeeded without error
	NotInitialized    Code = 0x3001 // EGL is not initialized for the specified display
	BadAccess         Code = 0x3002 // A requested resource cannot be accessed
	BadAlloc          Code = 0x3003 // Resources could not be allocated
	BadAttribute      Code = 0x3004 // Unrecognized attribute or attribute value
	BadConfig         Code = 0x3005 // Argument does not name a valid EGLConfig
	BadContext        Code = 0x3006 // Argument does not name a valid EGLContext
	BadCurrentSurface Code = 0x3007 // Current surface of the calling thread is no longer valid
	BadDisplay        Code = 0x3008 // Argument does not name a valid EGLDisplay
	BadMatch          Code = 0x3009 // Arguments are inconsistent
	BadNativePixmap   Code = 0x300A // Argument does not refer to a valid native pixmap
	BadNativeWindow   Code = 0x300B // Argument does not refer to a valid native window
	BadParameter      Code = 0x300C // One or more argument values are invalid
	BadSurface        Code = 0x300D // Argument does not name a valid EGLSurface
	ContextLost       Code = 0x300E // A power management event has occurred
)

var names = map[Code]string{
	Success:           "EGL_SUCCESS",
	NotInitialized:    "EGL_NOT_INITIALIZED",
	BadAccess:         "EGL_BAD_ACCESS",
	BadAlloc:          "EGL_BAD_ALLOC",
	BadAttribute:      "EGL_BAD_ATTRIBUTE",
	BadConfig:         "EGL_BAD_CONFIG",
	BadContext:        "EGL_BAD_CONTEXT",
	BadCurrentSurface: "EGL_BAD_CURRENT_SURFACE",
	BadDisplay:        "EGL_BAD_DISPLAY",
	BadMatch:          "EGL_BAD_MATCH",
	BadNativePixmap:   "EGL_BAD_NATIVE_PIXMAP",
	BadNativeWindow:   "EGL_BAD_NATIVE_WINDOW",
	BadParameter:      "EGL_BAD_PARAMETER",
	BadSurface:        "EGL_BAD_SURFACE",
	ContextLost:       "EGL_CONTEXT_LOST",
}

// String returns the EGL token name of the code.
func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("EGL_ERROR(0x%04X)", int32(c))
}
