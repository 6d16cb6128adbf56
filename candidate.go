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
	"fmt"
	"iter"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Candidate is the rectangle spanned by two vertices of a polygon.
// I < J are the vertex indices, A and B the corresponding vertices.
type Candidate struct {
	I, J int
	A, B Point
}

// NewCandidate returns the candidate for vertices i and j of p.
func NewCandidate(p *Polygon, i, j int) Candidate {
	if i > j {
		i, j = j, i
	}
	return Candidate{I: i, J: j, A: p.vertices[i], B: p.vertices[j]}
}

func (c Candidate) String() string {
	return fmt.Sprintf("[%s]-[%s]", c.A, c.B)
}

// Area returns the number of tiles covered by the rectangle, counting
// both end points on each axis.
func (c Candidate) Area() int64 {
	return TileArea(c.A, c.B)
}

// TileArea returns (|a.X-b.X|+1) * (|a.Y-b.Y|+1).
func TileArea(a, b Point) int64 {
	w := int64(abs(a.X-b.X)) + 1
	h := int64(abs(a.Y-b.Y)) + 1
	return w * h
}

// Min returns the corner with the smaller coordinates.
func (c Candidate) Min() Point {
	return Point{X: min(c.A.X, c.B.X), Y: min(c.A.Y, c.B.Y)}
}

// Max returns the corner with the larger coordinates.
func (c Candidate) Max() Point {
	return Point{X: max(c.A.X, c.B.X), Y: max(c.A.Y, c.B.Y)}
}

// Center returns the geometric center of the rectangle.
// The coordinates are integers or half-integers.
func (c Candidate) Center() vec.Vec2 {
	return vec.Vec2{
		X: float64(c.A.X+c.B.X) / 2,
		Y: float64(c.A.Y+c.B.Y) / 2,
	}
}

// Rect returns the area covered by the rectangle's tiles, where tile
// (x, y) is the unit square [x, x+1] × [y, y+1].
func (c Candidate) Rect() rect.Rect {
	lo, hi := c.Min(), c.Max()
	return rect.Rect{
		LLx: float64(lo.X),
		LLy: float64(lo.Y),
		URx: float64(hi.X + 1),
		URy: float64(hi.Y + 1),
	}
}

// Contains reports whether tile q belongs to the rectangle.
func (c Candidate) Contains(q Point) bool {
	lo, hi := c.Min(), c.Max()
	return lo.X <= q.X && q.X <= hi.X && lo.Y <= q.Y && q.Y <= hi.Y
}

// BoundaryTiles iterates over the tiles on the four sides of the
// rectangle, each tile exactly once.  Interior tiles are skipped.
// Tiles are visited row by row.
func (c Candidate) BoundaryTiles() iter.Seq[Point] {
	lo, hi := c.Min(), c.Max()
	return func(yield func(Point) bool) {
		for y := lo.Y; y <= hi.Y; y++ {
			if y == lo.Y || y == hi.Y {
				for x := lo.X; x <= hi.X; x++ {
					if !yield(Point{X: x, Y: y}) {
						return
					}
				}
				continue
			}
			if !yield(Point{X: lo.X, Y: y}) {
				return
			}
			if hi.X != lo.X && !yield(Point{X: hi.X, Y: y}) {
				return
			}
		}
	}
}

// Pairs iterates over all index pairs (i, j) with 0 <= i < j < n,
// in increasing order of i and then j.
func Pairs(n int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}

// Candidates returns all n(n-1)/2 candidates of p, in the order
// produced by Pairs.
func Candidates(p *Polygon) []Candidate {
	n := len(p.vertices)
	res := make([]Candidate, 0, n*(n-1)/2)
	for i, j := range Pairs(n) {
		res = append(res, NewCandidate(p, i, j))
	}
	return res
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
