//go:build !ios && !android && (amd64 || arm64)

// Package platform names shared libraries the way each operating system
// expects to find them.
package platform

import (
	"fmt"
	"runtime"
	"unsafe"
)

// LibraryName is the base name of the shared library built from cmd/libegl.
const LibraryName = "goegl"

// Is64Bit indicates whether the platform is 64-bit. purego, and so the
// loader, only runs on 64-bit targets.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// LibraryExtension is the file extension for shared libraries on this platform.
var LibraryExtension string

// LibraryPrefix is the prefix for shared library names on this platform.
var LibraryPrefix string

func init() {
	LibraryExtension, LibraryPrefix = naming(runtime.GOOS)
}

func naming(goos string) (ext, prefix string) {
	switch goos {
	case "darwin":
		return ".dylib", "lib"
	case "windows":
		return ".dll", ""
	default: // linux, freebsd, etc.
		return ".so", "lib"
	}
}

// FormatLibraryName returns the platform-specific library filename.
// If version is 0, returns the unversioned library name.
//
// Examples:
//   - Linux:   FormatLibraryName("goegl", 1) -> "libgoegl.so.1"
//   - macOS:   FormatLibraryName("goegl", 1) -> "libgoegl.1.dylib"
//   - Windows: FormatLibraryName("goegl", 1) -> "goegl-1.dll"
func FormatLibraryName(name string, version int) string {
	return formatFor(runtime.GOOS, name, version)
}

func formatFor(goos, name string, version int) string {
	ext, prefix := naming(goos)
	if version <= 0 {
		return prefix + name + ext
	}
	switch goos {
	case "darwin":
		return fmt.Sprintf("%s%s.%d%s", prefix, name, version, ext)
	case "windows":
		return fmt.Sprintf("%s%s-%d%s", prefix, name, version, ext)
	default:
		return fmt.Sprintf("%s%s%s.%d", prefix, name, ext, version)
	}
}

// GOOS returns the current operating system.
func GOOS() string {
	return runtime.GOOS
}

// GOARCH returns the current architecture.
func GOARCH() string {
	return runtime.GOARCH
}
