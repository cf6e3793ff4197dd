package egl

import (
	"github.com/obinnaokechukwu/egl/internal/handles"
	"github.com/obinnaokechukwu/egl/internal/khrdebug"
)

// Version reported by Initialize.
const (
	VersionMajor int32 = 1
	VersionMinor int32 = 0
)

// None terminates attribute lists (EGL_NONE).
const None int32 = 0x3038

// Display is an opaque handle to an EGL display connection.
type Display uintptr

// NoDisplay is the null display handle (EGL_NO_DISPLAY).
const NoDisplay Display = 0

func (d Display) handle() handles.Handle {
	return handles.Handle(d)
}

// DisplayID selects the native display passed to GetDisplay.
type DisplayID uintptr

// DefaultDisplay requests the default display (EGL_DEFAULT_DISPLAY).
// It is the only display identity this implementation backs.
const DefaultDisplay DisplayID = 0

// Platform identifies the native platform passed to GetPlatformDisplay.
type Platform uint32

// Proc is the address of an entry point returned by GetProcAddress.
type Proc uintptr

// Label is an application supplied tag attached to a thread or display and
// reported with every debug message concerning it.
type Label = khrdebug.Label

// ObjectType names the kind of object passed to LabelObject.
type ObjectType uint32

// Object types, matching EGL_OBJECT_*_KHR.
const (
	ObjectThread  ObjectType = 0x33B0
	ObjectDisplay ObjectType = 0x33B1
	ObjectContext ObjectType = 0x33B2
	ObjectSurface ObjectType = 0x33B3
	ObjectImage   ObjectType = 0x33B4
	ObjectSync    ObjectType = 0x33B5
	ObjectStream  ObjectType = 0x33B6
)
