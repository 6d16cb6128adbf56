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

var basicCases = []TestCase{
	{
		Name:          "square",
		Vertices:      pts(0, 0, 0, 3, 3, 3, 3, 0),
		Analytic:      16,
		Exhaustive:    16,
		Unconstrained: 16,
	},
	{
		Name:          "l_shape",
		Vertices:      pts(0, 0, 0, 5, 5, 5, 5, 3, 3, 3, 3, 0),
		Analytic:      24,
		Exhaustive:    24,
		Unconstrained: 36,
	},
	{
		Name:          "staircase",
		Vertices:      pts(0, 0, 0, 6, 2, 6, 2, 4, 4, 4, 4, 2, 6, 2, 6, 0),
		Analytic:      25,
		Exhaustive:    25,
		Unconstrained: 49,
	},
	{
		// the worked example from the puzzle statement
		Name:          "example",
		Vertices:      pts(7, 1, 11, 1, 11, 7, 9, 7, 9, 5, 2, 5, 2, 3, 7, 3),
		Analytic:      24,
		Exhaustive:    24,
		Unconstrained: 50,
	},
}
