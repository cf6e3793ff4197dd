package egl

import (
	"go.uber.org/zap"

	"github.com/obinnaokechukwu/egl/internal/khrdebug"
)

// DebugKind is the severity class of a debug message.
type DebugKind = khrdebug.Kind

// Debug message kinds (EGL_DEBUG_MSG_*_KHR).
const (
	DebugMsgCritical = khrdebug.KindCritical
	DebugMsgError    = khrdebug.KindError
	DebugMsgWarning  = khrdebug.KindWarning
	DebugMsgInfo     = khrdebug.KindInfo
)

// DebugCallbackAttrib is the QueryDebug attribute for the registered
// callback (EGL_DEBUG_CALLBACK_KHR).
const DebugCallbackAttrib = khrdebug.AttribCallback

// DebugMessage is a single debug event delivered to a DebugCallback.
type DebugMessage = khrdebug.Message

// DebugCallback receives debug messages synchronously on the thread that
// caused them. It may call back into this package.
type DebugCallback = khrdebug.Callback

// DebugMessageControl registers cb as the process-wide debug callback and
// applies the kind toggles in attribs, a list of (DebugKind, 1|0) pairs
// optionally terminated by None. Both take effect together or not at all.
// A nil cb removes the callback.
//
// Returns BadAttribute, changing nothing, if attribs is malformed.
func DebugMessageControl(cb DebugCallback, attribs []int32) ErrorCode {
	return DebugMessageControlTag(cb, 0, attribs)
}

// DebugMessageControlTag is DebugMessageControl with an opaque tag that
// QueryDebug(DebugCallbackAttrib) reports back. The C entry point passes the
// callback's address.
func DebugMessageControlTag(cb DebugCallback, tag uintptr, attribs []int32) ErrorCode {
	code := khrdebug.Default().Control(cb, tag, attribs)
	logger().Debug("eglDebugMessageControlKHR",
		zap.Bool("callback", cb != nil),
		zap.Int32s("attribs", attribs),
		zap.Stringer("result", code))
	return code
}

// QueryDebug stores the value of a debug attribute in value: the callback
// tag for DebugCallbackAttrib, or 1/0 for a DebugKind. Returns false and
// records BadAttribute for any other attribute.
func QueryDebug(attr int32, value *uintptr) bool {
	v, ok := khrdebug.Default().Query(attr)
	if !ok {
		setError(BadAttribute)
		return false
	}
	if value != nil {
		*value = v
	}
	setError(Success)
	return true
}

// SetDebugMessageEnabled turns delivery of one kind of debug message on or
// off. Critical, error and warning messages are enabled by default.
func SetDebugMessageEnabled(kind DebugKind, on bool) {
	khrdebug.Default().SetEnabled(kind, on)
}

// LabelObject attaches label to the calling thread (ObjectThread) or to the
// display named by object (ObjectDisplay). Labels are reported in every
// later debug message about that thread or display. A zero label removes it.
//
// Returns BadParameter for other object types and BadDisplay if object is
// not a live display. d is not used and may be NoDisplay.
func LabelObject(d Display, objectType ObjectType, object uintptr, label Label) ErrorCode {
	logger().Debug("eglLabelObjectKHR",
		zap.Uint32("object_type", uint32(objectType)),
		zap.Uintptr("object", object))

	switch objectType {
	case ObjectThread:
		setThreadLabel(label)
		return Success
	case ObjectDisplay:
		ok := displays.Borrow(Display(object).handle(), func(obj *display) {
			obj.label.Store(uintptr(label))
		})
		if !ok {
			return BadDisplay
		}
		return Success
	default:
		return BadParameter
	}
}

func postDebug(code ErrorCode, command string, kind DebugKind, object Label, text string) {
	khrdebug.Default().Post(DebugMessage{
		Error:       code,
		Command:     command,
		Kind:        kind,
		ThreadLabel: threadLabel(),
		ObjectLabel: object,
		Text:        text,
	})
}
