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
	"iter"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Point is a vertex or tile position on the integer grid.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Vec2 returns the point as a floating point vector.
func (p Point) Vec2() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// ErrInvalidPolygon is matched by every *InvalidPolygonError.
var ErrInvalidPolygon = errors.New("maxrect: invalid polygon")

// InvalidPolygonError reports a vertex list which does not describe an
// axis-aligned polygon.
type InvalidPolygonError struct {
	// Index is the start vertex of the offending edge,
	// or -1 if the vertex count is the problem.
	Index  int
	Reason string
}

func (err *InvalidPolygonError) Error() string {
	if err.Index < 0 {
		return "maxrect: invalid polygon: " + err.Reason
	}
	return fmt.Sprintf("maxrect: invalid polygon: edge %d: %s", err.Index, err.Reason)
}

// Is makes errors.Is(err, ErrInvalidPolygon) succeed.
func (err *InvalidPolygonError) Is(target error) bool {
	return target == ErrInvalidPolygon
}

// Polygon is a closed polygon whose edges are all horizontal or vertical.
// The last vertex connects back to the first one.
//
// A Polygon is immutable and safe for concurrent use.
type Polygon struct {
	vertices []Point
}

// NewPolygon validates the vertex list and returns the polygon it describes.
// At least three vertices are required, and every pair of consecutive
// vertices (including last and first) must agree in exactly one coordinate,
// and the vertices must not all lie on one line.  The slice is copied.
func NewPolygon(pts []Point) (*Polygon, error) {
	n := len(pts)
	if n < 3 {
		return nil, &InvalidPolygonError{
			Index:  -1,
			Reason: fmt.Sprintf("need at least 3 vertices, got %d", n),
		}
	}
	allX, allY := true, true
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		sameX := a.X == b.X
		sameY := a.Y == b.Y
		allX = allX && sameX
		allY = allY && sameY
		switch {
		case sameX && sameY:
			return nil, &InvalidPolygonError{
				Index:  i,
				Reason: fmt.Sprintf("zero length edge at %s", a),
			}
		case !sameX && !sameY:
			return nil, &InvalidPolygonError{
				Index:  i,
				Reason: fmt.Sprintf("edge %s -> %s is not axis-aligned", a, b),
			}
		}
	}
	if allX || allY {
		return nil, &InvalidPolygonError{
			Index:  -1,
			Reason: "all vertices are collinear",
		}
	}

	return &Polygon{vertices: append([]Point(nil), pts...)}, nil
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return len(p.vertices)
}

// Vertex returns the i-th vertex.
func (p *Polygon) Vertex(i int) Point {
	return p.vertices[i]
}

// Vertices returns a copy of the vertex list.
func (p *Polygon) Vertices() []Point {
	return append([]Point(nil), p.vertices...)
}

// Edge returns the i-th edge as (start, end). Wraps around.
func (p *Polygon) Edge(i int) (Point, Point) {
	n := len(p.vertices)
	return p.vertices[i%n], p.vertices[(i+1)%n]
}

// Edges iterates over all edges, yielding the index of the start vertex
// and the two end points.
func (p *Polygon) Edges() iter.Seq2[int, [2]Point] {
	return func(yield func(int, [2]Point) bool) {
		n := len(p.vertices)
		for i := range n {
			if !yield(i, [2]Point{p.vertices[i], p.vertices[(i+1)%n]}) {
				return
			}
		}
	}
}

// Bounds returns the smallest and largest coordinates over all vertices.
func (p *Polygon) Bounds() (lo, hi Point) {
	lo, hi = p.vertices[0], p.vertices[0]
	for _, v := range p.vertices[1:] {
		lo.X = min(lo.X, v.X)
		lo.Y = min(lo.Y, v.Y)
		hi.X = max(hi.X, v.X)
		hi.Y = max(hi.Y, v.Y)
	}
	return lo, hi
}

// Path returns the outline of the polygon as a closed path.
func (p *Polygon) Path() *path.Data {
	res := (&path.Data{}).MoveTo(p.vertices[0].Vec2())
	for _, v := range p.vertices[1:] {
		res = res.LineTo(v.Vec2())
	}
	return res.Close()
}
