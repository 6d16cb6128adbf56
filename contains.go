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

import "seehuhn.de/go/geom/vec"

// Location classifies a tile relative to a polygon.
type Location int

const (
	Outside Location = iota - 1
	OnBoundary
	Inside
)

func (l Location) String() string {
	switch l {
	case Outside:
		return "outside"
	case OnBoundary:
		return "on boundary"
	case Inside:
		return "inside"
	default:
		return "Location(?)"
	}
}

// Contains reports whether q lies inside the polygon, using the crossing
// number of a ray cast from q in the positive x direction.
//
// The result for points exactly on the boundary is unspecified.  The
// method is meant for points like rectangle centers, which can have
// half-integer coordinates.
func (p *Polygon) Contains(q vec.Vec2) bool {
	inside := false
	n := len(p.vertices)
	for i := range n {
		a, b := p.vertices[i], p.vertices[(i+1)%n]
		if a.Y == b.Y {
			// horizontal edges never cross the ray
			continue
		}
		x0, y0 := float64(a.X), float64(a.Y)
		x1, y1 := float64(b.X), float64(b.Y)
		if (y0 > q.Y) == (y1 > q.Y) {
			continue
		}
		dxdy := (x1 - x0) / (y1 - y0)
		if q.X < x0+dxdy*(q.Y-y0) {
			inside = !inside
		}
	}
	return inside
}

// Locate classifies the tile q as inside, on the boundary of, or outside
// the polygon.  All arithmetic is exact.
//
// Points on any edge (endpoints included) are reported as OnBoundary.
// Otherwise, vertical edges to the right of q are counted if q.Y lies in
// the half-open y-range [yMin, yMax) of the edge; an odd count means
// Inside.
func (p *Polygon) Locate(q Point) Location {
	crossings := 0
	n := len(p.vertices)
	for i := range n {
		a, b := p.vertices[i], p.vertices[(i+1)%n]
		if a.X == b.X {
			yMin, yMax := min(a.Y, b.Y), max(a.Y, b.Y)
			if q.X == a.X && yMin <= q.Y && q.Y <= yMax {
				return OnBoundary
			}
			if q.X < a.X && yMin <= q.Y && q.Y < yMax {
				crossings++
			}
		} else {
			xMin, xMax := min(a.X, b.X), max(a.X, b.X)
			if q.Y == a.Y && xMin <= q.X && q.X <= xMax {
				return OnBoundary
			}
		}
	}
	if crossings%2 == 1 {
		return Inside
	}
	return Outside
}
