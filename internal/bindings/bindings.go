//go:build (darwin || freebsd || linux) && !android && (amd64 || arm64)

// Package bindings loads the libgoegl shared library with purego and binds
// its exported C entry points to Go function values. It drives the library
// exactly as a C program would, which is what cmd/egltest needs.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/egl/internal/config"
	"github.com/obinnaokechukwu/egl/internal/platform"
)

// ErrLibraryNotFound is returned when libgoegl cannot be found.
var ErrLibraryNotFound = errors.New("egl: libgoegl not found")

// ErrMissingSymbol is returned when the library does not export a required
// entry point.
var ErrMissingSymbol = errors.New("egl: missing symbol")

// Library is an opened libgoegl. The function fields follow the C
// prototypes; EGLBoolean results are returned as uint32.
type Library struct {
	Handle uintptr
	Path   string

	GetError             func() int32
	GetDisplay           func(displayID uintptr) uintptr
	GetPlatformDisplay   func(platform uint32, nativeDisplay uintptr, attribs *int64) uintptr
	Initialize           func(dpy uintptr, major, minor *int32) uint32
	Terminate            func(dpy uintptr) uint32
	QueryString          func(dpy uintptr, name int32) string
	GetProcAddress       func(name string) uintptr
	GetConfigs           func(dpy uintptr, configs *uintptr, size int32, numConfig *int32) uint32
	ChooseConfig         func(dpy uintptr, attribs *int32, configs *uintptr, size int32, numConfig *int32) uint32
	CreateWindowSurface  func(dpy, config, win uintptr, attribs *int32) uintptr
	CreatePbufferSurface func(dpy, config uintptr, attribs *int32) uintptr
	CreateContext        func(dpy, config, share uintptr, attribs *int32) uintptr
	MakeCurrent          func(dpy, draw, read, ctx uintptr) uint32
	SwapBuffers          func(dpy, surface uintptr) uint32
	BindAPI              func(api uint32) uint32

	DebugMessageControlKHR func(callback uintptr, attribs *int64) int32
	QueryDebugKHR          func(attribute int32, value *uintptr) uint32
	LabelObjectKHR         func(dpy uintptr, objectType uint32, object, label uintptr) int32

	GLGetError func() uint32
}

var (
	defaultLib *Library
	loadOnce   sync.Once
	loadErr    error
)

// Load finds and opens libgoegl once per process. Later calls return the
// same library or the same error.
func Load() (*Library, error) {
	loadOnce.Do(func() {
		defaultLib, loadErr = doLoad()
	})
	return defaultLib, loadErr
}

func doLoad() (*Library, error) {
	for _, path := range candidates() {
		lib, err := Open(path)
		if err == nil {
			return lib, nil
		}
		if errors.Is(err, ErrMissingSymbol) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: searched %v", ErrLibraryNotFound, LibrarySearchPaths())
}

// candidates lists full paths in search order, then bare names for the
// system loader.
func candidates() []string {
	names := []string{
		platform.FormatLibraryName(platform.LibraryName, 0),
		platform.FormatLibraryName(platform.LibraryName, 1),
	}

	var out []string
	for _, dir := range LibrarySearchPaths() {
		for _, name := range names {
			out = append(out, filepath.Join(dir, name))
		}
	}
	return append(out, names...)
}

// Open opens the library at path and binds every entry point.
func Open(path string) (*Library, error) {
	handle, err := tryOpen(path)
	if err != nil {
		return nil, err
	}

	lib := &Library{Handle: handle, Path: path}
	if err := lib.register(); err != nil {
		purego.Dlclose(handle)
		return nil, err
	}
	return lib, nil
}

func (l *Library) register() error {
	syms := []struct {
		fptr any
		name string
	}{
		{&l.GetError, "eglGetError"},
		{&l.GetDisplay, "eglGetDisplay"},
		{&l.GetPlatformDisplay, "eglGetPlatformDisplay"},
		{&l.Initialize, "eglInitialize"},
		{&l.Terminate, "eglTerminate"},
		{&l.QueryString, "eglQueryString"},
		{&l.GetProcAddress, "eglGetProcAddress"},
		{&l.GetConfigs, "eglGetConfigs"},
		{&l.ChooseConfig, "eglChooseConfig"},
		{&l.CreateWindowSurface, "eglCreateWindowSurface"},
		{&l.CreatePbufferSurface, "eglCreatePbufferSurface"},
		{&l.CreateContext, "eglCreateContext"},
		{&l.MakeCurrent, "eglMakeCurrent"},
		{&l.SwapBuffers, "eglSwapBuffers"},
		{&l.BindAPI, "eglBindAPI"},
		{&l.DebugMessageControlKHR, "eglDebugMessageControlKHR"},
		{&l.QueryDebugKHR, "eglQueryDebugKHR"},
		{&l.LabelObjectKHR, "eglLabelObjectKHR"},
		{&l.GLGetError, "glGetError"},
	}

	for _, s := range syms {
		sym, err := purego.Dlsym(l.Handle, s.name)
		if err != nil || sym == 0 {
			return fmt.Errorf("%w: %s in %s", ErrMissingSymbol, s.name, l.Path)
		}
		purego.RegisterFunc(s.fptr, sym)
	}
	return nil
}

// Symbol returns the address of an exported symbol, or 0.
func (l *Library) Symbol(name string) uintptr {
	sym, err := purego.Dlsym(l.Handle, name)
	if err != nil {
		return 0
	}
	return sym
}

// tryOpen attempts to open a library with RTLD_NOW | RTLD_GLOBAL.
func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// FindLibrary searches for libgoegl and returns its full path.
// This is useful for diagnostics.
func FindLibrary() (string, error) {
	for _, path := range candidates() {
		if filepath.Base(path) == path {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrLibraryNotFound
}

// LibrarySearchPaths returns the directories searched for libgoegl:
// GOEGL_LIB_DIR, the working directory, the executable's directory, then
// the platform's library path variable and standard locations.
func LibrarySearchPaths() []string {
	var paths []string

	if cfg, err := config.Load(); err == nil && cfg.LibDir != "" {
		paths = append(paths, cfg.LibDir)
	}
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, wd)
	}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Dir(exe))
	}

	switch runtime.GOOS {
	case "linux", "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths, "/usr/local/lib", "/usr/lib")

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths, "/opt/homebrew/lib", "/usr/local/lib")
	}

	return paths
}
