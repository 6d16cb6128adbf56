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
	"fmt"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/maxrect"
	"seehuhn.de/go/maxrect/testcases"
)

// rasterise collects the tiles produced by r.Fill and checks the
// ordering guarantees of the callback.
func rasterise(t *testing.T, r *maxrect.TileRasteriser, p *maxrect.Polygon) map[maxrect.Point]bool {
	t.Helper()
	tiles := make(map[maxrect.Point]bool)
	prevY := 0
	first := true
	r.Fill(p, func(y int, spans []maxrect.Span) {
		if !first && y <= prevY {
			t.Errorf("row %d emitted after row %d", y, prevY)
		}
		first = false
		prevY = y
		if len(spans) == 0 {
			t.Errorf("row %d: empty span list", y)
		}
		for k, s := range spans {
			if s.X0 > s.X1 {
				t.Errorf("row %d: invalid span %v", y, s)
			}
			if k > 0 && s.X0 <= spans[k-1].X1+1 {
				t.Errorf("row %d: spans %v and %v not separated", y, spans[k-1], s)
			}
			for x := s.X0; x <= s.X1; x++ {
				tiles[maxrect.Point{X: x, Y: y}] = true
			}
		}
	})
	return tiles
}

func TestTileRasteriser(t *testing.T) {
	polygons := make(map[string][]maxrect.Point)
	for category, cases := range testcases.All {
		for _, tc := range cases {
			polygons[category+"_"+tc.Name] = tc.Vertices
		}
	}
	for _, steps := range []int{1, 2, 5} {
		for _, size := range []int{1, 3} {
			polygons[fmt.Sprintf("stairs_%d_%d", steps, size)] = testcases.Staircase(steps, size)
		}
	}

	// a single rasteriser is reused for all polygons
	r := maxrect.NewTileRasteriser(rect.Rect{})
	for _, name := range slices.Sorted(maps.Keys(polygons)) {
		t.Run(name, func(t *testing.T) {
			p, err := maxrect.NewPolygon(polygons[name])
			if err != nil {
				t.Fatal(err)
			}
			tiles := rasterise(t, r, p)

			lo, hi := p.Bounds()
			for y := lo.Y - 1; y <= hi.Y+1; y++ {
				for x := lo.X - 1; x <= hi.X+1; x++ {
					q := maxrect.Point{X: x, Y: y}
					want := p.Locate(q) != maxrect.Outside
					if tiles[q] != want {
						t.Errorf("tile %s: rasteriser %t, Locate %s", q, tiles[q], p.Locate(q))
					}
				}
			}
		})
	}
}

func TestTileRasteriserClip(t *testing.T) {
	p := mustPolygon(t, 0, 0, 0, 5, 5, 5, 5, 3, 3, 3, 3, 0)
	full := rasterise(t, maxrect.NewTileRasteriser(rect.Rect{}), p)

	clip := rect.Rect{LLx: 2, LLy: 1, URx: 5, URy: 4.5}
	r := maxrect.NewTileRasteriser(clip)
	clipped := rasterise(t, r, p)

	count := 0
	for q := range full {
		inClip := q.X >= 2 && q.X <= 4 && q.Y >= 1 && q.Y <= 3
		if clipped[q] != inClip {
			t.Errorf("tile %s: expected %t, got %t", q, inClip, clipped[q])
		}
		if inClip {
			count++
		}
	}
	if len(clipped) != count {
		t.Errorf("expected %d tiles, got %d", count, len(clipped))
	}

	// a clip rectangle away from the polygon gives no output
	r.Reset(rect.Rect{LLx: 10, LLy: 10, URx: 20, URy: 20})
	r.Fill(p, func(y int, spans []maxrect.Span) {
		t.Errorf("unexpected row %d: %v", y, spans)
	})
}
