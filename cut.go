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

// Cuts reports whether some edge of the polygon passes through the open
// interior of the axis-aligned rectangle with opposite corners a and b.
// Edges which only touch the rectangle's boundary do not count.
func (p *Polygon) Cuts(a, b Point) bool {
	xMin, xMax := min(a.X, b.X), max(a.X, b.X)
	yMin, yMax := min(a.Y, b.Y), max(a.Y, b.Y)

	n := len(p.vertices)
	for i := range n {
		e0, e1 := p.vertices[i], p.vertices[(i+1)%n]
		if e0.X == e1.X {
			if xMin < e0.X && e0.X < xMax &&
				openOverlap(yMin, yMax, min(e0.Y, e1.Y), max(e0.Y, e1.Y)) {
				return true
			}
		} else {
			if yMin < e0.Y && e0.Y < yMax &&
				openOverlap(xMin, xMax, min(e0.X, e1.X), max(e0.X, e1.X)) {
				return true
			}
		}
	}
	return false
}

// openOverlap reports whether the open intervals (aMin, aMax) and
// (bMin, bMax) intersect.
func openOverlap(aMin, aMax, bMin, bMax int) bool {
	return max(aMin, bMin) < min(aMax, bMax)
}
