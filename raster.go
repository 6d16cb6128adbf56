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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
)

// Span is a horizontal run of tiles from X0 to X1, both inclusive.
type Span struct {
	X0, X1 int
}

// vEdge is a vertical polygon edge.
type vEdge struct {
	x          int
	yMin, yMax int
}

// hEdge is a horizontal polygon edge.
type hEdge struct {
	y          int
	xMin, xMax int
}

// TileRasteriser converts polygons into runs of tiles.  A tile is part of
// the output if Locate reports it as Inside or OnBoundary.
//
// Create one instance and reuse it for multiple polygons.  Internal buffers
// grow as needed but never shrink.
//
// A TileRasteriser is not safe for concurrent use.
type TileRasteriser struct {
	// Clip restricts the output to tiles whose unit square [x, x+1] × [y, y+1]
	// lies inside Clip.  The zero rectangle disables clipping.
	Clip rect.Rect

	// Internal buffers (reused across calls)
	vEdges    []vEdge // vertical edges, sorted by yMin
	hEdges    []hEdge // horizontal edges, sorted by y
	activeIdx []int   // indices of vertical edges touching the current row
	crossings []int   // x positions of edges crossing the current row
	spans     []Span  // output buffer for the current row
}

// NewTileRasteriser returns a TileRasteriser with the given clip rectangle.
func NewTileRasteriser(clip rect.Rect) *TileRasteriser {
	return &TileRasteriser{Clip: clip}
}

// Reset changes the clip rectangle, preserving buffer capacity.
func (r *TileRasteriser) Reset(clip rect.Rect) {
	r.Clip = clip
	r.vEdges = r.vEdges[:0]
	r.hEdges = r.hEdges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.crossings = r.crossings[:0]
	r.spans = r.spans[:0]
}

// Fill rasterises p row by row, from the smallest y to the largest.
// Rows without any tiles are skipped.  The spans passed to emit are sorted,
// non-overlapping and non-adjacent; the slice is only valid for the
// duration of the callback.
func (r *TileRasteriser) Fill(p *Polygon, emit func(y int, spans []Span)) {
	r.collectEdges(p)

	lo, hi := p.Bounds()
	xMin, xMax, yMin, yMax := lo.X, hi.X, lo.Y, hi.Y
	if r.Clip != (rect.Rect{}) {
		xMin = max(xMin, int(math.Ceil(r.Clip.LLx)))
		xMax = min(xMax, int(math.Floor(r.Clip.URx))-1)
		yMin = max(yMin, int(math.Ceil(r.Clip.LLy)))
		yMax = min(yMax, int(math.Floor(r.Clip.URy))-1)
	}
	if xMin > xMax || yMin > yMax {
		return
	}

	r.activeIdx = r.activeIdx[:0]
	nextV, nextH := 0, 0
	for y := yMin; y <= yMax; y++ {
		// Add edges that start at or above this row
		for nextV < len(r.vEdges) && r.vEdges[nextV].yMin <= y {
			r.activeIdx = append(r.activeIdx, nextV)
			nextV++
		}
		// Skip horizontal edges above this row
		for nextH < len(r.hEdges) && r.hEdges[nextH].y < y {
			nextH++
		}

		r.crossings = r.crossings[:0]
		r.spans = r.spans[:0]
		for i := 0; i < len(r.activeIdx); {
			e := &r.vEdges[r.activeIdx[i]]
			if e.yMax < y {
				// Remove from active list (swap with last)
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			if y < e.yMax {
				r.crossings = append(r.crossings, e.x)
			} else {
				// The lower end point is on the boundary, but the edge
				// does not cross the row.
				r.spans = append(r.spans, Span{e.x, e.x})
			}
			i++
		}

		// Interior runs lie between pairs of crossings
		slices.Sort(r.crossings)
		for k := 0; k+1 < len(r.crossings); k += 2 {
			r.spans = append(r.spans, Span{r.crossings[k], r.crossings[k+1]})
		}

		for k := nextH; k < len(r.hEdges) && r.hEdges[k].y == y; k++ {
			h := &r.hEdges[k]
			r.spans = append(r.spans, Span{h.xMin, h.xMax})
		}

		if out := r.mergeSpans(xMin, xMax); len(out) > 0 {
			emit(y, out)
		}
	}
}

// collectEdges splits the polygon outline into vertical and horizontal
// edges and sorts them for the scanline pass.
func (r *TileRasteriser) collectEdges(p *Polygon) {
	r.vEdges = r.vEdges[:0]
	r.hEdges = r.hEdges[:0]
	for _, e := range p.Edges() {
		a, b := e[0], e[1]
		if a.X == b.X {
			r.vEdges = append(r.vEdges, vEdge{x: a.X, yMin: min(a.Y, b.Y), yMax: max(a.Y, b.Y)})
		} else {
			r.hEdges = append(r.hEdges, hEdge{y: a.Y, xMin: min(a.X, b.X), xMax: max(a.X, b.X)})
		}
	}
	slices.SortFunc(r.vEdges, func(a, b vEdge) int {
		return cmp.Compare(a.yMin, b.yMin)
	})
	slices.SortFunc(r.hEdges, func(a, b hEdge) int {
		return cmp.Compare(a.y, b.y)
	})
}

// mergeSpans sorts r.spans, joins overlapping and touching runs, and clamps
// the result to [xMin, xMax].  The merged spans reuse the start of r.spans.
func (r *TileRasteriser) mergeSpans(xMin, xMax int) []Span {
	if len(r.spans) == 0 {
		return nil
	}
	slices.SortFunc(r.spans, func(a, b Span) int {
		return cmp.Compare(a.X0, b.X0)
	})

	out := r.spans[:0]
	for _, s := range r.spans {
		s.X0 = max(s.X0, xMin)
		s.X1 = min(s.X1, xMax)
		if s.X0 > s.X1 {
			continue
		}
		if n := len(out); n > 0 && s.X0 <= out[n-1].X1+1 {
			out[n-1].X1 = max(out[n-1].X1, s.X1)
			continue
		}
		out = append(out, s)
	}
	return out
}
