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

// Package testcases provides rectilinear polygons with known answers.
package testcases

import "seehuhn.de/go/maxrect"

// TestCase is a polygon together with the expected search results.
type TestCase struct {
	Name     string          // lowercase a-z and _ only
	Vertices []maxrect.Point // in boundary order

	// Analytic is the largest area accepted by maxrect.Analytic.
	Analytic int64

	// Exhaustive is the largest area accepted by maxrect.Exhaustive.
	// This differs from Analytic when edges of zero-width notches cut
	// through an otherwise fully covered rectangle.
	Exhaustive int64

	// Unconstrained is the largest area spanned by any two vertices.
	Unconstrained int64
}

// pts is a helper to create a vertex list from x, y coordinate pairs.
func pts(xy ...int) []maxrect.Point {
	if len(xy)%2 != 0 {
		panic("odd number of coordinates")
	}
	res := make([]maxrect.Point, len(xy)/2)
	for i := range res {
		res[i] = maxrect.Point{X: xy[2*i], Y: xy[2*i+1]}
	}
	return res
}
