package egl

import "go.uber.org/zap"

// Handles for objects this implementation cannot create yet.
type (
	Config       uintptr
	Surface      uintptr
	Context      uintptr
	ClientBuffer uintptr
	NativeWindow uintptr
	NativePixmap uintptr
)

// Null object handles.
const (
	NoConfig  Config  = 0
	NoSurface Surface = 0
	NoContext Context = 0
)

// QueryName selects the string returned by QueryString.
type QueryName int32

// QueryString names.
const (
	QueryVendor     QueryName = 0x3053
	QueryVersion    QueryName = 0x3054
	QueryExtensions QueryName = 0x3055
	QueryClientAPIs QueryName = 0x308D
)

// API is a client rendering API passed to BindAPI.
type API uint32

// Client APIs.
const (
	OpenGLESAPI API = 0x30A0
	OpenVGAPI   API = 0x30A1
	OpenGLAPI   API = 0x30A2
)

// GetCurrentSurface selectors.
const (
	Draw int32 = 0x3059
	Read int32 = 0x305A
)

// The entry points below are placeholders for a rendering backend. Each
// keeps its EGL contract shape and always reports failure or returns the
// null object.

func unsupported(command string, fields ...zap.Field) {
	logger().Debug(command, append(fields, zap.Bool("supported", false))...)
}

// QueryString returns "" (NULL at the C boundary).
func QueryString(d Display, name QueryName) string {
	unsupported("eglQueryString", zap.Int32("name", int32(name)))
	return ""
}

// GetConfigs always fails.
func GetConfigs(d Display, configs []Config, numConfig *int32) bool {
	unsupported("eglGetConfigs")
	return false
}

// ChooseConfig always fails.
func ChooseConfig(d Display, attribs []int32, configs []Config, numConfig *int32) bool {
	unsupported("eglChooseConfig")
	return false
}

// GetConfigAttrib always fails.
func GetConfigAttrib(d Display, config Config, attribute int32, value *int32) bool {
	unsupported("eglGetConfigAttrib", zap.Int32("attribute", attribute))
	return false
}

// CreateWindowSurface always returns NoSurface.
func CreateWindowSurface(d Display, config Config, win NativeWindow, attribs []int32) Surface {
	unsupported("eglCreateWindowSurface")
	return NoSurface
}

// CreatePbufferSurface always returns NoSurface.
func CreatePbufferSurface(d Display, config Config, attribs []int32) Surface {
	unsupported("eglCreatePbufferSurface")
	return NoSurface
}

// CreatePixmapSurface always returns NoSurface.
func CreatePixmapSurface(d Display, config Config, pixmap NativePixmap, attribs []int32) Surface {
	unsupported("eglCreatePixmapSurface")
	return NoSurface
}

// CreatePbufferFromClientBuffer always returns NoSurface.
func CreatePbufferFromClientBuffer(d Display, bufferType uint32, buffer ClientBuffer, config Config, attribs []int32) Surface {
	unsupported("eglCreatePbufferFromClientBuffer", zap.Uint32("buffer_type", bufferType))
	return NoSurface
}

// DestroySurface always fails.
func DestroySurface(d Display, s Surface) bool {
	unsupported("eglDestroySurface")
	return false
}

// QuerySurface always fails.
func QuerySurface(d Display, s Surface, attribute int32, value *int32) bool {
	unsupported("eglQuerySurface", zap.Int32("attribute", attribute))
	return false
}

// SurfaceAttrib always fails.
func SurfaceAttrib(d Display, s Surface, attribute, value int32) bool {
	unsupported("eglSurfaceAttrib", zap.Int32("attribute", attribute))
	return false
}

// BindTexImage always fails.
func BindTexImage(d Display, s Surface, buffer int32) bool {
	unsupported("eglBindTexImage")
	return false
}

// ReleaseTexImage always fails.
func ReleaseTexImage(d Display, s Surface, buffer int32) bool {
	unsupported("eglReleaseTexImage")
	return false
}

// SwapInterval always fails.
func SwapInterval(d Display, interval int32) bool {
	unsupported("eglSwapInterval", zap.Int32("interval", interval))
	return false
}

// SwapBuffers always fails.
func SwapBuffers(d Display, s Surface) bool {
	unsupported("eglSwapBuffers")
	return false
}

// CopyBuffers always fails.
func CopyBuffers(d Display, s Surface, target NativePixmap) bool {
	unsupported("eglCopyBuffers")
	return false
}

// BindAPI always fails.
func BindAPI(api API) bool {
	unsupported("eglBindAPI", zap.Uint32("api", uint32(api)))
	return false
}

// QueryAPI returns 0: no API is bound.
func QueryAPI() API {
	unsupported("eglQueryAPI")
	return 0
}

// CreateContext always returns NoContext.
func CreateContext(d Display, config Config, share Context, attribs []int32) Context {
	unsupported("eglCreateContext")
	return NoContext
}

// DestroyContext always fails.
func DestroyContext(d Display, ctx Context) bool {
	unsupported("eglDestroyContext")
	return false
}

// MakeCurrent always fails.
func MakeCurrent(d Display, draw, read Surface, ctx Context) bool {
	unsupported("eglMakeCurrent")
	return false
}

// GetCurrentContext always returns NoContext.
func GetCurrentContext() Context {
	unsupported("eglGetCurrentContext")
	return NoContext
}

// GetCurrentSurface always returns NoSurface.
func GetCurrentSurface(readDraw int32) Surface {
	unsupported("eglGetCurrentSurface", zap.Int32("read_draw", readDraw))
	return NoSurface
}

// GetCurrentDisplay always returns NoDisplay.
func GetCurrentDisplay() Display {
	unsupported("eglGetCurrentDisplay")
	return NoDisplay
}

// QueryContext always fails.
func QueryContext(d Display, ctx Context, attribute int32, value *int32) bool {
	unsupported("eglQueryContext", zap.Int32("attribute", attribute))
	return false
}

// WaitClient always fails.
func WaitClient() bool {
	unsupported("eglWaitClient")
	return false
}

// WaitGL always fails.
func WaitGL() bool {
	unsupported("eglWaitGL")
	return false
}

// WaitNative always fails.
func WaitNative(engine int32) bool {
	unsupported("eglWaitNative", zap.Int32("engine", engine))
	return false
}

// ReleaseThread always fails.
func ReleaseThread() bool {
	unsupported("eglReleaseThread")
	return false
}
