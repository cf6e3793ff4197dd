//go:build cgo && !ios && !android && (amd64 || arm64)

package main

/*
#include "egltypes.h"
*/
import "C"

import "github.com/obinnaokechukwu/egl"

//export eglQueryString
func eglQueryString(dpy C.uintptr_t, name C.EGLint) *C.char {
	return cString(egl.QueryString(egl.Display(dpy), egl.QueryName(name)))
}

//export eglGetConfigs
func eglGetConfigs(dpy C.uintptr_t, configs *C.uintptr_t, configSize C.EGLint, numConfig *C.EGLint) C.EGLBoolean {
	return boolean(egl.GetConfigs(egl.Display(dpy), configSlice(configs, configSize), intPtr(numConfig)))
}

//export eglChooseConfig
func eglChooseConfig(dpy C.uintptr_t, attribList *C.EGLint, configs *C.uintptr_t, configSize C.EGLint, numConfig *C.EGLint) C.EGLBoolean {
	return boolean(egl.ChooseConfig(egl.Display(dpy), attribs(attribList),
		configSlice(configs, configSize), intPtr(numConfig)))
}

//export eglGetConfigAttrib
func eglGetConfigAttrib(dpy, config C.uintptr_t, attribute C.EGLint, value *C.EGLint) C.EGLBoolean {
	return boolean(egl.GetConfigAttrib(egl.Display(dpy), egl.Config(config), int32(attribute), intPtr(value)))
}

//export eglCreateWindowSurface
func eglCreateWindowSurface(dpy, config, win C.uintptr_t, attribList *C.EGLint) C.uintptr_t {
	return C.uintptr_t(egl.CreateWindowSurface(egl.Display(dpy), egl.Config(config),
		egl.NativeWindow(win), attribs(attribList)))
}

//export eglCreatePbufferSurface
func eglCreatePbufferSurface(dpy, config C.uintptr_t, attribList *C.EGLint) C.uintptr_t {
	return C.uintptr_t(egl.CreatePbufferSurface(egl.Display(dpy), egl.Config(config), attribs(attribList)))
}

//export eglCreatePixmapSurface
func eglCreatePixmapSurface(dpy, config, pixmap C.uintptr_t, attribList *C.EGLint) C.uintptr_t {
	return C.uintptr_t(egl.CreatePixmapSurface(egl.Display(dpy), egl.Config(config),
		egl.NativePixmap(pixmap), attribs(attribList)))
}

//export eglCreatePbufferFromClientBuffer
func eglCreatePbufferFromClientBuffer(dpy C.uintptr_t, buftype C.EGLenum, buffer, config C.uintptr_t, attribList *C.EGLint) C.uintptr_t {
	return C.uintptr_t(egl.CreatePbufferFromClientBuffer(egl.Display(dpy), uint32(buftype),
		egl.ClientBuffer(buffer), egl.Config(config), attribs(attribList)))
}

//export eglDestroySurface
func eglDestroySurface(dpy, surface C.uintptr_t) C.EGLBoolean {
	return boolean(egl.DestroySurface(egl.Display(dpy), egl.Surface(surface)))
}

//export eglQuerySurface
func eglQuerySurface(dpy, surface C.uintptr_t, attribute C.EGLint, value *C.EGLint) C.EGLBoolean {
	return boolean(egl.QuerySurface(egl.Display(dpy), egl.Surface(surface), int32(attribute), intPtr(value)))
}

//export eglSurfaceAttrib
func eglSurfaceAttrib(dpy, surface C.uintptr_t, attribute, value C.EGLint) C.EGLBoolean {
	return boolean(egl.SurfaceAttrib(egl.Display(dpy), egl.Surface(surface), int32(attribute), int32(value)))
}

//export eglBindTexImage
func eglBindTexImage(dpy, surface C.uintptr_t, buffer C.EGLint) C.EGLBoolean {
	return boolean(egl.BindTexImage(egl.Display(dpy), egl.Surface(surface), int32(buffer)))
}

//export eglReleaseTexImage
func eglReleaseTexImage(dpy, surface C.uintptr_t, buffer C.EGLint) C.EGLBoolean {
	return boolean(egl.ReleaseTexImage(egl.Display(dpy), egl.Surface(surface), int32(buffer)))
}

//export eglSwapInterval
func eglSwapInterval(dpy C.uintptr_t, interval C.EGLint) C.EGLBoolean {
	return boolean(egl.SwapInterval(egl.Display(dpy), int32(interval)))
}

//export eglSwapBuffers
func eglSwapBuffers(dpy, surface C.uintptr_t) C.EGLBoolean {
	return boolean(egl.SwapBuffers(egl.Display(dpy), egl.Surface(surface)))
}

//export eglCopyBuffers
func eglCopyBuffers(dpy, surface, target C.uintptr_t) C.EGLBoolean {
	return boolean(egl.CopyBuffers(egl.Display(dpy), egl.Surface(surface), egl.NativePixmap(target)))
}

//export eglBindAPI
func eglBindAPI(api C.EGLenum) C.EGLBoolean {
	return boolean(egl.BindAPI(egl.API(api)))
}

//export eglQueryAPI
func eglQueryAPI() C.EGLenum {
	return C.EGLenum(egl.QueryAPI())
}

//export eglCreateContext
func eglCreateContext(dpy, config, shareContext C.uintptr_t, attribList *C.EGLint) C.uintptr_t {
	return C.uintptr_t(egl.CreateContext(egl.Display(dpy), egl.Config(config),
		egl.Context(shareContext), attribs(attribList)))
}

//export eglDestroyContext
func eglDestroyContext(dpy, ctx C.uintptr_t) C.EGLBoolean {
	return boolean(egl.DestroyContext(egl.Display(dpy), egl.Context(ctx)))
}

//export eglMakeCurrent
func eglMakeCurrent(dpy, draw, read, ctx C.uintptr_t) C.EGLBoolean {
	return boolean(egl.MakeCurrent(egl.Display(dpy), egl.Surface(draw), egl.Surface(read), egl.Context(ctx)))
}

//export eglGetCurrentContext
func eglGetCurrentContext() C.uintptr_t {
	return C.uintptr_t(egl.GetCurrentContext())
}

//export eglGetCurrentSurface
func eglGetCurrentSurface(readdraw C.EGLint) C.uintptr_t {
	return C.uintptr_t(egl.GetCurrentSurface(int32(readdraw)))
}

//export eglGetCurrentDisplay
func eglGetCurrentDisplay() C.uintptr_t {
	return C.uintptr_t(egl.GetCurrentDisplay())
}

//export eglQueryContext
func eglQueryContext(dpy, ctx C.uintptr_t, attribute C.EGLint, value *C.EGLint) C.EGLBoolean {
	return boolean(egl.QueryContext(egl.Display(dpy), egl.Context(ctx), int32(attribute), intPtr(value)))
}

//export eglWaitClient
func eglWaitClient() C.EGLBoolean {
	return boolean(egl.WaitClient())
}

//export eglWaitGL
func eglWaitGL() C.EGLBoolean {
	return boolean(egl.WaitGL())
}

//export eglWaitNative
func eglWaitNative(engine C.EGLint) C.EGLBoolean {
	return boolean(egl.WaitNative(int32(engine)))
}

//export eglReleaseThread
func eglReleaseThread() C.EGLBoolean {
	return boolean(egl.ReleaseThread())
}
