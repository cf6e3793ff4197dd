//go:build cgo && !ios && !android && (amd64 || arm64)

package main

/*
#include <stdlib.h>
#include "egltypes.h"
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/obinnaokechukwu/egl"
	"github.com/obinnaokechukwu/egl/internal/bridge"
)

const (
	eglFalse C.EGLBoolean = 0
	eglTrue  C.EGLBoolean = 1
)

func boolean(ok bool) C.EGLBoolean {
	if ok {
		return eglTrue
	}
	return eglFalse
}

func intPtr(p *C.EGLint) *int32 {
	return (*int32)(unsafe.Pointer(p))
}

func goString(s *C.char) string {
	return bridge.GoString((*byte)(unsafe.Pointer(s)))
}

// attribs reads an EGL_NONE terminated EGLint list.
func attribs(p *C.EGLint) []int32 {
	return bridge.AttribList(intPtr(p), egl.None)
}

// wideAttribs reads an EGL_NONE terminated EGLAttrib list.
func wideAttribs(p *C.EGLAttrib) []int64 {
	return bridge.AttribList((*int64)(unsafe.Pointer(p)), int64(egl.None))
}

func configSlice(p *C.uintptr_t, size C.EGLint) []egl.Config {
	if p == nil || size <= 0 {
		return nil
	}
	return unsafe.Slice((*egl.Config)(unsafe.Pointer(p)), int(size))
}

// Strings returned to C must outlive the call, so each distinct string is
// copied to the C heap once and kept for the life of the process.
var cstrings sync.Map // string -> *C.char

func cString(s string) *C.char {
	if s == "" {
		return nil
	}
	if p, ok := cstrings.Load(s); ok {
		return p.(*C.char)
	}
	p := C.CString(s)
	if prev, loaded := cstrings.LoadOrStore(s, p); loaded {
		C.free(unsafe.Pointer(p))
		return prev.(*C.char)
	}
	return p
}
