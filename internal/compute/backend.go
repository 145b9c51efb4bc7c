package compute

import (
	"fmt"
	"sort"
	"sync"
)

// Backend runs data-parallel loops over index ranges. Implementations must
// call fn on disjoint [start, end) ranges that together cover [0, n) and
// return only after every call has finished.
type Backend interface {
	Name() string
	Available() bool
	ParallelFor(n int, fn func(start, end int))
	Cleanup()
}

var (
	mu            sync.RWMutex
	activeBackend Backend
)

func init() {
	activeBackend = AutoSelectBackend()
}

// SetBackend replaces the process-wide backend. Call it once at startup.
func SetBackend(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	if activeBackend != nil {
		activeBackend.Cleanup()
	}
	activeBackend = b
}

func GetBackend() Backend {
	mu.RLock()
	defer mu.RUnlock()
	return activeBackend
}

// AutoSelectBackend prefers the multi-core backend and falls back to the
// portable serial one.
func AutoSelectBackend() Backend {
	cpu := NewCPUBackend()
	if cpu.Available() {
		return cpu
	}
	return NewSerialBackend()
}

var factories = map[string]func() Backend{
	"cpu":    func() Backend { return NewCPUBackend() },
	"serial": func() Backend { return NewSerialBackend() },
	"auto":   AutoSelectBackend,
}

// Select builds a backend by name: "auto", "cpu" or "serial". An empty name
// means "auto". A named backend that is not available on this host is an
// error rather than a silent fallback.
func Select(name string) (Backend, error) {
	if name == "" {
		name = "auto"
	}
	fn, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend: %s", name)
	}
	b := fn()
	if !b.Available() {
		return nil, fmt.Errorf("backend %s not available", name)
	}
	return b, nil
}

func ListBackends() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
