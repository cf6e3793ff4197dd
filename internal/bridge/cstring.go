// Package bridge turns the raw values that arrive through the C ABI into
// Go values.
package bridge

import (
	"math"
	"unsafe"
)

// MaxStringLen bounds how far GoString scans for the terminating NUL.
const MaxStringLen = 4096

// MaxAttribs bounds the number of (name, value) pairs AttribList reads.
const MaxAttribs = 256

// GoString copies a NUL-terminated C string. A nil pointer yields "".
// Strings longer than MaxStringLen are truncated.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for n < MaxStringLen && *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// Attrib is an element type of a C attribute list: EGLint or EGLAttrib.
type Attrib interface {
	~int32 | ~int64
}

// AttribList copies an attribute list of (name, value) pairs ending with a
// name equal to terminator. The terminator is included in the result; a
// list still unterminated after MaxAttribs pairs is cut off there.
// A nil pointer yields nil, which callers treat as "no attributes".
func AttribList[T Attrib](p *T, terminator T) []T {
	if p == nil {
		return nil
	}
	size := unsafe.Sizeof(*p)
	at := func(i int) T {
		return *(*T)(unsafe.Add(unsafe.Pointer(p), uintptr(i)*size))
	}

	var list []T
	for i := 0; i < MaxAttribs*2; i += 2 {
		name := at(i)
		list = append(list, name)
		if name == terminator {
			break
		}
		list = append(list, at(i+1))
	}
	return list
}

// Narrow converts an EGLAttrib list to EGLint. Entries that do not fit in
// an int32 become -1, which is neither a valid attribute name nor a valid
// boolean value, so such a list is rejected instead of silently truncated.
func Narrow(list []int64) []int32 {
	if list == nil {
		return nil
	}
	out := make([]int32, len(list))
	for i, v := range list {
		if v < math.MinInt32 || v > math.MaxInt32 {
			out[i] = -1
			continue
		}
		out[i] = int32(v)
	}
	return out
}
