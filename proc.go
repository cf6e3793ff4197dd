package egl

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// procNames lists the entry points GetProcAddress can resolve.
var procNames = map[string]struct{}{
	"eglGetPlatformDisplay": {},
}

var (
	procMu sync.RWMutex
	procs  = make(map[string]Proc)
)

// RegisterProc records the address of an exported entry point so that
// GetProcAddress can return it. The C boundary calls this at load time.
// Only names GetProcAddress is allowed to resolve are accepted.
func RegisterProc(name string, p Proc) error {
	if _, ok := procNames[name]; !ok {
		return fmt.Errorf("egl: %q is not a resolvable entry point", name)
	}
	if p == 0 {
		return fmt.Errorf("egl: nil address for %q", name)
	}

	procMu.Lock()
	procs[name] = p
	procMu.Unlock()
	return nil
}

// GetProcAddress returns the address of the named entry point, or 0 for an
// empty or unknown name.
func GetProcAddress(name string) Proc {
	logger().Debug("eglGetProcAddress", zap.String("name", name))

	if name == "" {
		return 0
	}
	procMu.RLock()
	defer procMu.RUnlock()
	return procs[name]
}
