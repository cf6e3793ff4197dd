//go:build (darwin || freebsd || linux) && !android && (amd64 || arm64)

// Command egltest loads libgoegl the way a C program would and runs a short
// EGL session against it, printing every debug message the library posts.
//
// Usage:
//
//	egltest [-lib path/to/libgoegl.so] [-info] [-v]
//
// It exits with status 1 if any call behaves unexpectedly.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/obinnaokechukwu/egl/internal/bindings"
	"github.com/obinnaokechukwu/egl/internal/bridge"
)

func main() {
	libPath := flag.String("lib", "", "path to libgoegl (default: search GOEGL_LIB_DIR and system paths)")
	info := flag.Bool("info", false, "enable information debug messages")
	verbose := flag.Bool("v", false, "log loader activity")
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			log = l
		}
	}
	defer log.Sync()

	lib, err := open(*libPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Failed to load libgoegl: %v", err)))
		os.Exit(1)
	}
	log.Debug("library loaded", zap.String("path", lib.Path))

	p := newPrinter(os.Stdout)
	callback := purego.NewCallback(func(errorCode uint32, command *byte, kind int32, threadLabel, objectLabel uintptr, message *byte) {
		p.debug(errorCode, bridge.GoString(command), kind, objectLabel, bridge.GoString(message))
	})

	s := &scenario{lib: lib, out: p, callback: callback, info: *info, log: log}
	if failures := s.run(); failures > 0 {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("%d check(s) failed", failures)))
		os.Exit(1)
	}
	p.line(okStyle.Render("!!! DONE !!!"))
}

func open(path string) (*bindings.Library, error) {
	if path != "" {
		return bindings.Open(path)
	}
	return bindings.Load()
}
