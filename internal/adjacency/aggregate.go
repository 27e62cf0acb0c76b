package adjacency

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrBufferSize indicates the pixel buffer length does not match the
// declared grid dimensions. This is an internal invariant breach: a
// correct decoder never produces such a buffer.
var ErrBufferSize = errors.New("adjacency: buffer length does not match dimensions")

// Aggregate discovers every distinct (origin, neighbor) color pair in
// the buffer using the connectivity's offsets, visiting each pixel
// exactly once.
//
// The buffer is row-major with dims.Rows*dims.Cols pixels; Aggregate
// returns ErrBufferSize (wrapped with the observed sizes) if that
// invariant does not hold. workers <= 0 selects runtime.NumCPU().
//
// Pixel indices are partitioned into contiguous chunks, one per worker.
// Each worker folds its chunk into a private set; finished sets are
// merged smaller-into-larger. The resulting set is identical regardless
// of worker count or merge order.
func Aggregate(buf []Color, dims Dimensions, conn Connectivity, workers int) (*Set, error) {
	if len(buf) != dims.Area() {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d grid", ErrBufferSize, len(buf), dims.Rows, dims.Cols)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(buf) {
		workers = len(buf)
	}
	if len(buf) == 0 {
		return NewSet(), nil
	}

	offsets := conn.Offsets()

	if workers == 1 {
		set := NewSet()
		for i := range buf {
			extractPairs(buf, dims, offsets, i, set.Add)
		}
		return set, nil
	}

	chunk := (len(buf) + workers - 1) / workers
	locals := make(chan *Set, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, len(buf))
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			local := NewSet()
			for i := start; i < end; i++ {
				extractPairs(buf, dims, offsets, i, local.Add)
			}
			locals <- local
		}(start, end)
	}

	go func() {
		wg.Wait()
		close(locals)
	}()

	result := NewSet()
	for local := range locals {
		result = Merge(result, local)
	}
	return result, nil
}
