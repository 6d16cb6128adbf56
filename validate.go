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

// A Validator decides whether a candidate rectangle lies inside a polygon.
// Validators must not modify the polygon; they are called concurrently
// by SearchParallel.
type Validator func(p *Polygon, c Candidate) bool

// Analytic accepts a candidate if the rectangle's center lies inside the
// polygon and no polygon edge passes through the rectangle's interior.
//
// The center test only samples a single point.  For unusual concave
// shapes this can accept rectangles which are not fully covered;
// Exhaustive serves as the reference in these cases.
func Analytic(p *Polygon, c Candidate) bool {
	if !p.Contains(c.Center()) {
		return false
	}
	return !p.Cuts(c.A, c.B)
}

// Exhaustive accepts a candidate if none of the tiles along the
// rectangle's boundary lies outside the polygon.
//
// The cost is proportional to the rectangle's perimeter times the number
// of polygon edges, so this is only practical for small inputs.
func Exhaustive(p *Polygon, c Candidate) bool {
	for q := range c.BoundaryTiles() {
		if p.Locate(q) == Outside {
			return false
		}
	}
	return true
}
