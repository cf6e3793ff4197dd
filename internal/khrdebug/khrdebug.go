// Package khrdebug implements the EGL_KHR_debug message router: a single,
// process-wide place to register a debug callback and decide, per message,
// whether that callback fires.
//
// The router's configuration (callback plus one enable flag per message
// kind) is guarded by one mutex, so a message is always filtered and
// delivered against a consistent pair. Callbacks run synchronously on the
// posting goroutine after the lock is released, which makes it safe for a
// callback to post further messages or reconfigure the router.
package khrdebug

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/obinnaokechukwu/egl/internal/errcode"
)

// Kind is the severity class of a debug message.
type Kind int32

// Message kinds, matching EGL_DEBUG_MSG_*_KHR.
const (
	KindCritical Kind = 0x33B9
	KindError    Kind = 0x33BA
	KindWarning  Kind = 0x33BB
	KindInfo     Kind = 0x33BC
)

// Attribute tokens accepted by Control and Query.
const (
	AttribCallback int32 = 0x33B8 // EGL_DEBUG_CALLBACK_KHR
	AttribNone     int32 = 0x3038 // EGL_NONE

	True  int32 = 1
	False int32 = 0
)

// Kinds lists every message kind, most severe first.
var Kinds = [...]Kind{KindCritical, KindError, KindWarning, KindInfo}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCritical:
		return "critical"
	case KindError:
		return "error"
	case KindWarning:
		return "warning"
	case KindInfo:
		return "info"
	default:
		return fmt.Sprintf("kind(0x%04X)", int32(k))
	}
}

func (k Kind) index() (int, bool) {
	i := int(k - KindCritical)
	if i < 0 || i >= len(Kinds) {
		return 0, false
	}
	return i, true
}

// ParseKind parses a kind name as produced by Kind.String.
// "information" is accepted as an alias of "info".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return KindCritical, nil
	case "error":
		return KindError, nil
	case "warning", "warn":
		return KindWarning, nil
	case "info", "information":
		return KindInfo, nil
	}
	return 0, fmt.Errorf("egl: unknown debug message kind %q", s)
}

// Label is an application supplied tag attached to a thread or object.
type Label uintptr

// Message is a single debug event. It has no identity beyond the call that
// delivers it.
type Message struct {
	Error       errcode.Code
	Command     string
	Kind        Kind
	ThreadLabel Label
	ObjectLabel Label
	Text        string
}

// Callback receives debug messages. It runs on the goroutine that posted the
// message; when the message originates from a C caller, that is the caller's
// thread.
type Callback func(Message)

var defaultEnabled = [len(Kinds)]bool{true, true, true, false}

// Router filters debug messages by kind and delivers them to the registered
// callback.
type Router struct {
	mu       sync.Mutex
	callback Callback
	tag      uintptr
	enabled  [len(Kinds)]bool

	logger atomic.Pointer[zap.Logger]
}

// NewRouter creates a router with no callback and the default kinds
// (critical, error, warning) enabled.
func NewRouter() *Router {
	r := &Router{enabled: defaultEnabled}
	r.logger.Store(zap.NewNop())
	return r
}

var (
	defaultRouter *Router
	defaultOnce   sync.Once
)

// Default returns the process-wide router, creating it on first use.
// Concurrent first callers block until it is ready.
func Default() *Router {
	defaultOnce.Do(func() {
		defaultRouter = NewRouter()
	})
	return defaultRouter
}

// SetLogger sets the logger used to report callback failures.
// Pass nil to discard them.
func (r *Router) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	r.logger.Store(l)
}

// Control replaces the callback and applies the kind toggles in attribs as
// one update. attribs holds (kind, True|False) pairs, optionally terminated
// by AttribNone; a nil list leaves the enable flags untouched. tag is an
// opaque value reported back by Query(AttribCallback), normally the address
// of a C callback. A nil callback clears the tag.
//
// An unknown attribute or a value other than True/False returns BadAttribute
// and leaves the router unchanged.
func (r *Router) Control(cb Callback, tag uintptr, attribs []int32) errcode.Code {
	r.mu.Lock()
	defer r.mu.Unlock()

	enabled, code := applyAttribs(r.enabled, attribs)
	if code != errcode.Success {
		return code
	}
	if cb == nil {
		tag = 0
	}
	r.callback = cb
	r.tag = tag
	r.enabled = enabled
	return errcode.Success
}

// Configure replaces the callback, leaving the enable flags as they are.
// Passing nil removes the callback.
func (r *Router) Configure(cb Callback) {
	r.Control(cb, 0, nil)
}

// SetEnabled turns delivery of one kind on or off. Unknown kinds are ignored.
func (r *Router) SetEnabled(k Kind, on bool) {
	i, ok := k.index()
	if !ok {
		return
	}
	r.mu.Lock()
	r.enabled[i] = on
	r.mu.Unlock()
}

// Enabled reports whether messages of kind k are delivered.
func (r *Router) Enabled(k Kind) bool {
	i, ok := k.index()
	if !ok {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled[i]
}

// Query returns the value of a debug attribute: the callback tag for
// AttribCallback, or True/False for a message kind.
func (r *Router) Query(attr int32) (uintptr, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if attr == AttribCallback {
		return r.tag, true
	}
	i, ok := Kind(attr).index()
	if !ok {
		return 0, false
	}
	if r.enabled[i] {
		return uintptr(True), true
	}
	return uintptr(False), true
}

// Post delivers m to the registered callback if its kind is enabled.
// Messages of unknown kinds, disabled kinds, or posted while no callback is
// registered are dropped.
func (r *Router) Post(m Message) {
	i, ok := m.Kind.index()
	if !ok {
		return
	}

	r.mu.Lock()
	on := r.enabled[i]
	cb := r.callback
	r.mu.Unlock()

	if !on || cb == nil {
		return
	}
	r.dispatch(cb, m)
}

func (r *Router) dispatch(cb Callback, m Message) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Load().Error("debug callback panicked",
				zap.String("command", m.Command),
				zap.Stringer("kind", m.Kind),
				zap.Any("panic", p))
		}
	}()
	cb(m)
}

func applyAttribs(enabled [len(Kinds)]bool, attribs []int32) ([len(Kinds)]bool, errcode.Code) {
	for i := 0; i < len(attribs); i += 2 {
		name := attribs[i]
		if name == AttribNone {
			break
		}
		if i+1 >= len(attribs) {
			return enabled, errcode.BadAttribute
		}
		idx, ok := Kind(name).index()
		if !ok {
			return enabled, errcode.BadAttribute
		}
		switch attribs[i+1] {
		case True:
			enabled[idx] = true
		case False:
			enabled[idx] = false
		default:
			return enabled, errcode.BadAttribute
		}
	}
	return enabled, errcode.Success
}
