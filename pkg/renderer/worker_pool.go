package renderer

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RowChunk is a contiguous range of scanlines [Start, End)
type RowChunk struct {
	Start int
	End   int
}

// SplitRows partitions height rows into at most n contiguous chunks whose
// sizes differ by at most one row
func SplitRows(height, n int) []RowChunk {
	if height <= 0 {
		return nil
	}
	n = max(1, min(n, height))

	chunks := make([]RowChunk, 0, n)
	base, rem := height/n, height%n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		chunks = append(chunks, RowChunk{Start: start, End: start + size})
		start += size
	}
	return chunks
}

// WorkerPool runs render tasks on a bounded number of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count uses one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run calls task for every chunk, at most GetNumWorkers at a time, and
// waits for all of them. It returns the first error reported by a task.
func (wp *WorkerPool) Run(chunks []RowChunk, task func(index int, chunk RowChunk) error) error {
	var g errgroup.Group
	g.SetLimit(wp.numWorkers)

	for i, chunk := range chunks {
		g.Go(func() error {
			return task(i, chunk)
		})
	}
	return g.Wait()
}
