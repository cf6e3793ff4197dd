// Package egl implements the client-facing side of an EGL 1.5 driver in Go.
//
// The package owns two things every EGL implementation must get right before
// any rendering happens:
//
//   - The display lifecycle. Displays are Go objects held in a handle table;
//     callers only ever see an opaque Display value. A terminated display's
//     handle never resolves again, even if its slot is reused, so
//     use-after-terminate and double-terminate are checked failures rather
//     than memory corruption.
//   - The EGL_KHR_debug message router. A single process-wide callback
//     receives debug messages filtered by kind.
//
// Configuration, surface and context entry points exist with their EGL
// signatures but always report failure; they are placeholders for a
// rendering backend.
//
// The cmd/libegl package exports this API as a C shared library:
//
//	go build -buildmode=c-shared -o libgoegl.so ./cmd/libegl
//
// Basic usage from Go:
//
//	dpy := egl.GetDisplay(egl.DefaultDisplay)
//	var major, minor int32
//	if !egl.Initialize(dpy, &major, &minor) {
//	    return egl.LastError("eglInitialize")
//	}
//	defer egl.Terminate(dpy)
package egl
