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

package maxrect_test

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/maxrect"
	"seehuhn.de/go/maxrect/testcases"
)

func TestSearchParallel(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			p, err := maxrect.NewPolygon(tc.Vertices)
			require.NoError(t, err)

			for _, val := range validators {
				seq := maxrect.Search(p, val.v)
				for _, workers := range []int{0, 1, 2, 4, 7, 100} {
					name := fmt.Sprintf("%s_%s_%s_%d", category, tc.Name, val.name, workers)
					t.Run(name, func(t *testing.T) {
						res, valid, err := maxrect.SearchParallel(p, val.v, maxrect.ParallelOptions{Workers: workers})
						require.NoError(t, err)
						require.Equal(t, val.want(tc), res.Area)
						require.Equal(t, seq, res)
						for _, c := range valid {
							require.True(t, val.v(p, c), "candidate %s", c)
						}
					})
				}
			}
		}
	}
}

// TestSearchParallelOrder checks that the accepted candidates are reported
// in enumeration order, whatever the number of workers.
func TestSearchParallelOrder(t *testing.T) {
	p, err := maxrect.NewPolygon(testcases.Staircase(5, 2))
	require.NoError(t, err)

	var want []maxrect.Candidate
	for _, c := range maxrect.Candidates(p) {
		if maxrect.Exhaustive(p, c) {
			want = append(want, c)
		}
	}

	for workers := 1; workers <= 9; workers++ {
		_, valid, err := maxrect.SearchParallel(p, maxrect.Exhaustive, maxrect.ParallelOptions{Workers: workers})
		require.NoError(t, err)
		require.Equal(t, want, valid, "workers=%d", workers)
	}
}

func TestSearchParallelProgress(t *testing.T) {
	// 8 vertices, 28 candidates, chunks of 10, 10 and 8
	p, err := maxrect.NewPolygon(testcases.All["basic"][3].Vertices)
	require.NoError(t, err)

	var chunks []int
	var total atomic.Int64
	opts := maxrect.ParallelOptions{
		Workers: 3,
		OnChunkDone: func(chunk, n, valid int) {
			require.Equal(t, 3, n)
			chunks = append(chunks, chunk)
			total.Add(int64(valid))
		},
	}
	_, valid, err := maxrect.SearchParallel(p, maxrect.Analytic, opts)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, chunks)
	require.Equal(t, int64(len(valid)), total.Load())
}

func TestSearchParallelPanic(t *testing.T) {
	p, err := maxrect.NewPolygon(testcases.Staircase(3, 2))
	require.NoError(t, err)

	// the last candidate ends up in the last chunk
	n := p.Len()
	boom := func(p *maxrect.Polygon, c maxrect.Candidate) bool {
		if c.I == n-2 && c.J == n-1 {
			panic("boom")
		}
		return maxrect.Analytic(p, c)
	}

	res, valid, err := maxrect.SearchParallel(p, boom, maxrect.ParallelOptions{Workers: 4})
	require.Error(t, err)
	require.False(t, res.Found)
	require.Nil(t, valid)

	var workerErr *maxrect.WorkerError
	require.True(t, errors.As(err, &workerErr))
	require.Equal(t, 3, workerErr.Chunk)
	require.Equal(t, "boom", workerErr.Value)
	require.Contains(t, err.Error(), "chunk 3")
}
