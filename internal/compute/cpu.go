package compute

import (
	"runtime"
	"sync"
)

// MinChunk is the smallest range handed to a worker; shorter loops run inline.
const MinChunk = 16

type CPUBackend struct {
	workers int
}

func NewCPUBackend() *CPUBackend {
	return NewCPUBackendWorkers(runtime.GOMAXPROCS(0))
}

func NewCPUBackendWorkers(workers int) *CPUBackend {
	if workers < 1 {
		workers = 1
	}
	return &CPUBackend{workers: workers}
}

func (c *CPUBackend) Name() string    { return "cpu" }
func (c *CPUBackend) Available() bool { return c.workers > 1 }
func (c *CPUBackend) Cleanup()        {}

func (c *CPUBackend) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if n <= MinChunk || c.workers <= 1 {
		fn(0, n)
		return
	}

	workers := c.workers
	if n/MinChunk < workers {
		workers = n / MinChunk
	}
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
