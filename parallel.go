// seehuhn.de/go/maxrect - largest rectangles in rectilinear polygons
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package maxrect

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ParallelOptions configures SearchParallel.
type ParallelOptions struct {
	// Workers is the number of worker goroutines.
	// Values <= 0 select runtime.GOMAXPROCS(0).
	Workers int

	// OnChunkDone, if not nil, is called once per chunk after all workers
	// have finished, in chunk order.  Valid is the number of accepted
	// candidates in the chunk.
	OnChunkDone func(chunk, chunks, valid int)
}

// WorkerError reports a worker which panicked.
type WorkerError struct {
	Chunk int
	Value any
}

func (err *WorkerError) Error() string {
	return fmt.Sprintf("maxrect: worker for chunk %d failed: %v", err.Chunk, err.Value)
}

// SearchParallel validates all candidates of p with v, using a fixed set
// of worker goroutines.
//
// The candidate list is split into contiguous chunks of equal size
// (rounded up), one per worker.  Workers see only their chunk and the
// polygon, so the area pruning used by Search is not available here.
// After all workers have returned, the accepted candidates are
// concatenated in chunk order and the largest one is selected.  The
// result does not depend on the number of workers.
//
// If any worker fails, the error is returned and no result is produced.
func SearchParallel(p *Polygon, v Validator, opts ParallelOptions) (Result, []Candidate, error) {
	all := Candidates(p)
	chunks := splitChunks(all, opts.Workers)
	logger().Debug("parallel search",
		"candidates", len(all),
		"chunks", len(chunks))

	found := make([][]Candidate, len(chunks))
	errs := make([]error, len(chunks))

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for k, chunk := range chunks {
		go func() {
			defer wg.Done()
			found[k], errs[k] = validateChunk(p, v, k, chunk)
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return Result{}, nil, err
	}

	var valid []Candidate
	for k, f := range found {
		valid = append(valid, f...)
		if opts.OnChunkDone != nil {
			opts.OnChunkDone(k, len(chunks), len(f))
		}
	}
	best := Best(valid)
	logger().Debug("parallel search done",
		"valid", len(valid),
		"area", best.Area)
	return best, valid, nil
}

// validateChunk runs in a worker goroutine.
func validateChunk(p *Polygon, v Validator, k int, chunk []Candidate) (res []Candidate, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = &WorkerError{Chunk: k, Value: r}
		}
	}()

	for _, c := range chunk {
		if v(p, c) {
			res = append(res, c)
		}
	}
	return res, nil
}

// splitChunks divides cands into at most `workers` contiguous chunks of
// size ceil(len(cands)/workers).  The last chunk may be shorter.
func splitChunks(cands []Candidate, workers int) [][]Candidate {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	total := len(cands)
	if total == 0 {
		return nil
	}
	size := (total + workers - 1) / workers

	chunks := make([][]Candidate, 0, workers)
	for start := 0; start < total; start += size {
		end := min(start+size, total)
		chunks = append(chunks, cands[start:end:end])
	}
	return chunks
}
