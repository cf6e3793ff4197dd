// Package gles holds the OpenGL ES entry points exported next to the EGL
// ones. There is no GL context behind them yet, so every query reports a
// clean state.
package gles

import "fmt"

// ErrorCode is a GL error flag as returned by glGetError.
type ErrorCode uint32

// GL error flags.
const (
	NoError                     ErrorCode = 0
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	StackOverflow               ErrorCode = 0x0503
	StackUnderflow              ErrorCode = 0x0504
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
)

var errorNames = map[ErrorCode]string{
	NoError:                     "GL_NO_ERROR",
	InvalidEnum:                 "GL_INVALID_ENUM",
	InvalidValue:                "GL_INVALID_VALUE",
	InvalidOperation:            "GL_INVALID_OPERATION",
	StackOverflow:               "GL_STACK_OVERFLOW",
	StackUnderflow:              "GL_STACK_UNDERFLOW",
	OutOfMemory:                 "GL_OUT_OF_MEMORY",
	InvalidFramebufferOperation: "GL_INVALID_FRAMEBUFFER_OPERATION",
}

func (c ErrorCode) String() string {
	if name, ok := errorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("GL_ERROR(0x%04X)", uint32(c))
}

// GetError returns the oldest pending GL error flag. No GL command is
// implemented, so no flag is ever raised and it always returns NoError.
func GetError() ErrorCode {
	return NoError
}
