//go:build cgo && !ios && !android && (amd64 || arm64)

package main

/*
#include "egltypes.h"
*/
import "C"

import (
	"unsafe"

	"github.com/obinnaokechukwu/egl"
	"github.com/obinnaokechukwu/egl/gles"
	"github.com/obinnaokechukwu/egl/internal/bridge"
)

//export eglGetError
func eglGetError() C.EGLint {
	return C.EGLint(egl.GetError())
}

//export eglGetDisplay
func eglGetDisplay(displayID C.uintptr_t) C.uintptr_t {
	return C.uintptr_t(egl.GetDisplay(egl.DisplayID(displayID)))
}

//export eglGetPlatformDisplay
func eglGetPlatformDisplay(platform C.EGLenum, nativeDisplay C.uintptr_t, attribList *C.EGLAttrib) C.uintptr_t {
	return C.uintptr_t(egl.GetPlatformDisplay(egl.Platform(platform), uintptr(nativeDisplay),
		bridge.Narrow(wideAttribs(attribList))))
}

//export eglInitialize
func eglInitialize(dpy C.uintptr_t, major, minor *C.EGLint) C.EGLBoolean {
	return boolean(egl.Initialize(egl.Display(dpy), intPtr(major), intPtr(minor)))
}

//export eglTerminate
func eglTerminate(dpy C.uintptr_t) C.EGLBoolean {
	return boolean(egl.Terminate(egl.Display(dpy)))
}

//export eglGetProcAddress
func eglGetProcAddress(procname *C.char) C.uintptr_t {
	return C.uintptr_t(egl.GetProcAddress(goString(procname)))
}

//export eglDebugMessageControlKHR
func eglDebugMessageControlKHR(callback C.EGLDEBUGPROCKHR, attribList *C.EGLAttrib) C.EGLint {
	fn := uintptr(unsafe.Pointer(callback))
	code := egl.DebugMessageControlTag(bridge.DebugCallback(fn), fn,
		bridge.Narrow(wideAttribs(attribList)))
	return C.EGLint(code)
}

//export eglQueryDebugKHR
func eglQueryDebugKHR(attribute C.EGLint, value *C.EGLAttrib) C.EGLBoolean {
	return boolean(egl.QueryDebug(int32(attribute), (*uintptr)(unsafe.Pointer(value))))
}

//export eglLabelObjectKHR
func eglLabelObjectKHR(dpy C.uintptr_t, objectType C.EGLenum, object, label C.uintptr_t) C.EGLint {
	code := egl.LabelObject(egl.Display(dpy), egl.ObjectType(objectType), uintptr(object), egl.Label(label))
	return C.EGLint(code)
}

//export glGetError
func glGetError() C.EGLenum {
	return C.EGLenum(gles.GetError())
}
