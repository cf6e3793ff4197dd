//go:build !ios && !android && (amd64 || arm64)

package bridge

import (
	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/egl/internal/khrdebug"
)

// debugProc matches EGLDEBUGPROCKHR:
//
//	void (*)(EGLenum error, const char *command, EGLint messageType,
//	         EGLLabelKHR threadLabel, EGLLabelKHR objectLabel,
//	         const char *message)
//
// purego passes the two strings as temporary NUL-terminated copies that
// live for the duration of the call.
type debugProc func(errorCode uint32, command string, kind int32, threadLabel, objectLabel uintptr, message string)

// DebugCallback wraps the C function pointer fn as a router callback.
// A zero fn yields a nil callback.
func DebugCallback(fn uintptr) khrdebug.Callback {
	if fn == 0 {
		return nil
	}

	var call debugProc
	purego.RegisterFunc(&call, fn)

	return func(m khrdebug.Message) {
		call(uint32(m.Error), m.Command, int32(m.Kind),
			uintptr(m.ThreadLabel), uintptr(m.ObjectLabel), m.Text)
	}
}
