package egl

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/obinnaokechukwu/egl/internal/handles"
	"github.com/obinnaokechukwu/egl/internal/khrdebug"
)

// display is the native object behind a Display handle. It is owned by the
// displays table from GetDisplay until Terminate.
type display struct {
	kind        ObjectType
	initialized atomic.Bool
	label       atomic.Uintptr
}

var displays = handles.New[*display]()

// GetDisplay returns a new display connection for id.
//
// Only DefaultDisplay is backed: it yields a fresh, uninitialized display.
// Any other id returns NoDisplay. That is not an error; no error is
// recorded and no debug message is posted.
func GetDisplay(id DisplayID) Display {
	logger().Debug("eglGetDisplay", zap.Uintptr("display_id", uintptr(id)))

	if id != DefaultDisplay {
		return NoDisplay
	}

	h := displays.Insert(&display{kind: ObjectDisplay})
	if h == 0 {
		setError(BadAlloc)
		return NoDisplay
	}
	setError(Success)
	return Display(h)
}

// GetPlatformDisplay returns a display for a native platform display.
// No platforms are supported, so it always returns NoDisplay.
func GetPlatformDisplay(platform Platform, nativeDisplay uintptr, attribs []int32) Display {
	logger().Debug("eglGetPlatformDisplay",
		zap.Uint32("platform", uint32(platform)),
		zap.Uintptr("native_display", nativeDisplay))
	return NoDisplay
}

// Initialize marks d initialized and, for each non-nil pointer, stores the
// EGL version implemented. Initializing an already initialized display
// succeeds again.
//
// Returns false for NoDisplay without side effects. For a handle that is
// not a live display (for example one already terminated) it also records
// BadDisplay and posts an error debug message.
func Initialize(d Display, major, minor *int32) bool {
	logger().Debug("eglInitialize", zap.Uintptr("display", uintptr(d)))

	if d == NoDisplay {
		return false
	}

	ok := displays.Borrow(d.handle(), func(obj *display) {
		obj.initialized.Store(true)
	})
	if !ok {
		return invalidDisplay("eglInitialize", d)
	}

	if major != nil {
		*major = VersionMajor
	}
	if minor != nil {
		*minor = VersionMinor
	}
	setError(Success)
	return true
}

// Terminate destroys d. Afterwards the handle is permanently invalid: every
// later call with it fails as if it had never been issued.
//
// Returns false for NoDisplay without side effects. For a handle that is
// not a live display it records BadDisplay and posts an error debug message.
func Terminate(d Display) bool {
	logger().Debug("eglTerminate", zap.Uintptr("display", uintptr(d)))

	if d == NoDisplay {
		return false
	}

	obj, ok := displays.Remove(d.handle())
	if !ok {
		return invalidDisplay("eglTerminate", d)
	}
	obj.finalize(d)
	setError(Success)
	return true
}

// IsInitialized reports whether d is a live display that has been
// initialized.
func IsInitialized(d Display) bool {
	obj, err := resolveDisplay(d)
	if err != nil {
		return false
	}
	return obj.initialized.Load()
}

// DisplayCount returns the number of displays that have not been terminated.
func DisplayCount() int {
	return displays.Len()
}

func resolveDisplay(d Display) (*display, error) {
	return displays.Resolve(d.handle())
}

// finalize releases everything the display holds. It runs exactly once, after
// the display has left the table.
func (obj *display) finalize(d Display) {
	label := Label(obj.label.Load())
	logger().Debug("dropping display",
		zap.Uintptr("display", uintptr(d)),
		zap.Uint32("object_type", uint32(obj.kind)),
		zap.Bool("initialized", obj.initialized.Load()))

	postDebug(Success, "eglTerminate", khrdebug.KindInfo, label, "display terminated")
}

func invalidDisplay(command string, d Display) bool {
	setError(BadDisplay)
	postDebug(BadDisplay, command, khrdebug.KindError, 0,
		fmt.Sprintf("display %#x is not a live display", uintptr(d)))
	return false
}
