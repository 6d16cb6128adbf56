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

package testcases

import "seehuhn.de/go/maxrect"

var concaveCases = []TestCase{
	{
		// The bounding box has vertices at two corners, but its center
		// lies in the gap between the arms.
		Name:          "u_shape",
		Vertices:      pts(0, 0, 0, 4, 1, 4, 1, 1, 3, 1, 3, 4, 4, 4, 4, 0),
		Analytic:      10,
		Exhaustive:    10,
		Unconstrained: 25,
	},
	{
		// A notch of zero tile width bites into the square from the
		// right.  All tiles of the bounding box are on or inside the
		// boundary, but the notch edges cut through its interior.
		Name:          "notched_square",
		Vertices:      pts(0, 0, 0, 3, 3, 3, 3, 2, 1, 2, 1, 1, 3, 1, 3, 0),
		Analytic:      8,
		Exhaustive:    16,
		Unconstrained: 16,
	},
}

// Staircase returns a polygon shaped like a descending staircase with the
// given number of steps.  Each step is `size` tiles wide and high.
// The result has 2*steps+2 vertices; it is meant for benchmarks.
func Staircase(steps, size int) []maxrect.Point {
	h := steps * size
	res := []maxrect.Point{{X: 0, Y: 0}, {X: 0, Y: h}}
	for k := 1; k <= steps; k++ {
		x := k * size
		y := h - (k-1)*size
		if k > 1 {
			res = append(res, maxrect.Point{X: x - size, Y: y})
		}
		res = append(res, maxrect.Point{X: x, Y: y})
	}
	res = append(res, maxrect.Point{X: steps * size, Y: 0})
	return res
}
