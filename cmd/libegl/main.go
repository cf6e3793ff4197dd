//go:build cgo && !ios && !android && (amd64 || arm64)

// Command libegl is built as a C shared library exporting the EGL 1.5 entry
// points, EGL_KHR_debug, and glGetError:
//
//	go build -buildmode=c-shared -o libgoegl.so ./cmd/libegl
//
// Any C program linked against (or dlopening) libgoegl.so can then call
// eglGetDisplay, eglInitialize and friends. Behavior is configured through
// the environment; see package internal/config.
package main

/*
#include "egltypes.h"

extern uintptr_t eglGetPlatformDisplay(EGLenum platform, uintptr_t nativeDisplay, EGLAttrib *attribs);

static uintptr_t platform_display_addr(void) {
	return (uintptr_t)&eglGetPlatformDisplay;
}
*/
import "C"

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/obinnaokechukwu/egl"
	"github.com/obinnaokechukwu/egl/internal/config"
	"github.com/obinnaokechukwu/egl/internal/khrdebug"
)

func init() {
	cfg, err := config.Load()
	log, lerr := cfg.Logger()
	if err != nil || lerr != nil {
		log = fallbackLogger()
	}
	egl.SetLogger(log)
	if err != nil {
		log.Warn("ignoring invalid environment configuration", zap.Error(err))
	}
	if lerr != nil {
		log.Warn("cannot build configured logger", zap.Error(lerr))
	}

	for _, k := range khrdebug.Kinds {
		if on, set := cfg.DebugMessageEnabled(k); set {
			egl.SetDebugMessageEnabled(k, on)
		}
	}

	if err := egl.RegisterProc("eglGetPlatformDisplay", egl.Proc(C.platform_display_addr())); err != nil {
		log.Error("registering proc address", zap.Error(err))
	}
	log.Debug("libgoegl loaded",
		zap.Int32("major", egl.VersionMajor),
		zap.Int32("minor", egl.VersionMinor))
}

// fallbackLogger reports configuration problems at warn level even though
// the configuration itself could not be trusted.
func fallbackLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.WarnLevel)
	return zap.New(core).With(zap.String("lib", "goegl"))
}

func main() {}
