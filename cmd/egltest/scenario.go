//go:build (darwin || freebsd || linux) && !android && (amd64 || arm64)

package main

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/obinnaokechukwu/egl/internal/bindings"
	"github.com/obinnaokechukwu/egl/internal/errcode"
	"github.com/obinnaokechukwu/egl/internal/khrdebug"
)

const (
	eglNone          = 0x3038
	eglOpenGLAPI     = 0x30A2
	eglVendor        = 0x3053
	eglObjectThread  = 0x33B0
	eglObjectDisplay = 0x33B1

	threadLabel  = 0x7
	displayLabel = 0xD15
)

var configAttribs = []int32{
	0x3033, 0x0001, // EGL_SURFACE_TYPE, EGL_PBUFFER_BIT
	0x3022, 8, //      EGL_BLUE_SIZE
	0x3023, 8, //      EGL_GREEN_SIZE
	0x3024, 8, //      EGL_RED_SIZE
	0x3025, 8, //      EGL_DEPTH_SIZE
	0x3040, 0x0008, // EGL_RENDERABLE_TYPE, EGL_OPENGL_BIT
	eglNone,
}

var pbufferAttribs = []int32{
	0x3057, 9, // EGL_WIDTH
	0x3056, 9, // EGL_HEIGHT
	eglNone,
}

type scenario struct {
	lib      *bindings.Library
	out      *printer
	callback uintptr
	info     bool
	log      *zap.Logger

	failures int
}

func (s *scenario) check(name string, ok bool, format string, args ...any) bool {
	if ok {
		s.out.line(okStyle.Render("ok   ") + name)
		return true
	}
	s.failures++
	s.out.line(errorStyle.Render("FAIL "+name) + ": " + fmt.Sprintf(format, args...))
	s.log.Debug("check failed", zap.String("check", name))
	return false
}

// expectMessage checks that exactly the wanted debug messages arrived since
// the last call.
func (s *scenario) expectMessage(name, command string, kind khrdebug.Kind, code errcode.Code) {
	got := s.out.messages()
	for _, m := range got {
		if m.Command == command && m.Kind == kind && m.Error == code {
			s.check(name, true, "")
			return
		}
	}
	s.check(name, false, "no %s message from %s with %s among %d received", kind, command, code, len(got))
}

func (s *scenario) expectQuiet(name string) {
	got := s.out.messages()
	s.check(name, len(got) == 0, "unexpected debug messages: %d", len(got))
}

// run drives the library through one session and returns the number of
// failed checks. The session stays on one OS thread so eglGetError sees the
// errors of the calls before it.
func (s *scenario) run() int {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	lib := s.lib
	s.out.line(titleStyle.Render("libgoegl " + lib.Path))

	info := int64(0)
	if s.info {
		info = 1
	}
	control := []int64{int64(khrdebug.KindInfo), info, eglNone}
	code := errcode.Code(lib.DebugMessageControlKHR(s.callback, &control[0]))
	s.check("eglDebugMessageControlKHR", code == errcode.Success, "returned %s", code)

	var tag uintptr
	ok := lib.QueryDebugKHR(khrdebug.AttribCallback, &tag) == 1
	s.check("eglQueryDebugKHR(EGL_DEBUG_CALLBACK_KHR)", ok && tag == s.callback,
		"got %#x, want %#x", tag, s.callback)

	code = errcode.Code(lib.LabelObjectKHR(0, eglObjectThread, 0, threadLabel))
	s.check("eglLabelObjectKHR(thread)", code == errcode.Success, "returned %s", code)

	dpy := lib.GetDisplay(0)
	if !s.check("eglGetDisplay(EGL_DEFAULT_DISPLAY)", dpy != 0, "returned EGL_NO_DISPLAY") {
		return s.failures
	}

	code = errcode.Code(lib.LabelObjectKHR(dpy, eglObjectDisplay, dpy, displayLabel))
	s.check("eglLabelObjectKHR(display)", code == errcode.Success, "returned %s", code)

	var major, minor int32
	ok = lib.Initialize(dpy, &major, &minor) == 1
	s.check("eglInitialize", ok && major == 1 && minor == 0, "ok=%v version %d.%d", ok, major, minor)
	s.out.line(fmt.Sprintf("Version %d.%d", major, minor))

	s.stubs(dpy)
	s.expectQuiet("no debug messages from a live display")

	s.check("eglTerminate", lib.Terminate(dpy) == 1, "returned EGL_FALSE")
	if s.info {
		s.expectMessage("eglTerminate posts info", "eglTerminate", khrdebug.KindInfo, errcode.Success)
	} else {
		s.expectQuiet("eglTerminate posts nothing with info disabled")
	}

	s.check("second eglTerminate fails", lib.Terminate(dpy) == 0, "returned EGL_TRUE")
	code = errcode.Code(lib.GetError())
	s.check("eglGetError after second eglTerminate", code == errcode.BadDisplay, "got %s", code)
	s.expectMessage("second eglTerminate posts error", "eglTerminate", khrdebug.KindError, errcode.BadDisplay)

	code = errcode.Code(lib.GetError())
	s.check("eglGetError resets", code == errcode.Success, "got %s", code)

	proc := lib.GetProcAddress("eglGetPlatformDisplay")
	s.check("eglGetProcAddress(eglGetPlatformDisplay)", proc != 0, "returned NULL")
	if sym := lib.Symbol("eglGetPlatformDisplay"); sym != 0 {
		s.check("eglGetProcAddress matches dlsym", proc == sym, "got %#x, want %#x", proc, sym)
	}
	s.check("eglGetProcAddress(unknown)", lib.GetProcAddress("eglNotAFunction") == 0, "returned non-NULL")

	code = errcode.Code(lib.DebugMessageControlKHR(0, nil))
	s.check("eglDebugMessageControlKHR(NULL)", code == errcode.Success, "returned %s", code)

	return s.failures
}

// stubs walks the calls a rendering client makes next. None of them is
// backed yet; each must fail cleanly.
func (s *scenario) stubs(dpy uintptr) {
	lib := s.lib

	vendor := lib.QueryString(dpy, eglVendor)
	s.check("eglQueryString(EGL_VENDOR)", vendor == "", "returned %q", vendor)

	var config uintptr
	var numConfigs int32
	ok := lib.ChooseConfig(dpy, &configAttribs[0], &config, 1, &numConfigs) == 1
	s.check("eglChooseConfig", !ok && numConfigs == 0, "ok=%v numConfigs=%d", ok, numConfigs)

	surface := lib.CreatePbufferSurface(dpy, config, &pbufferAttribs[0])
	s.check("eglCreatePbufferSurface", surface == 0, "returned %#x", surface)

	s.check("eglBindAPI(EGL_OPENGL_API)", lib.BindAPI(eglOpenGLAPI) == 0, "returned EGL_TRUE")

	ctx := lib.CreateContext(dpy, config, 0, nil)
	s.check("eglCreateContext", ctx == 0, "returned %#x", ctx)

	s.check("eglMakeCurrent", lib.MakeCurrent(dpy, surface, surface, ctx) == 0, "returned EGL_TRUE")

	glErr := lib.GLGetError()
	s.check("glGetError", glErr == 0, "returned %#x", glErr)
}
