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

// Package maxrect finds the largest axis-aligned rectangle which has two
// vertices of a rectilinear polygon as opposite corners and which lies
// inside the polygon.
//
// Areas are measured in tiles: a rectangle with corners (x1, y1) and
// (x2, y2) covers (|x1-x2|+1) * (|y1-y2|+1) unit grid cells.
//
// Two validators are provided.  [Analytic] checks the rectangle's center
// and looks for polygon edges cutting through the rectangle; it is fast
// and is used with the pruning [Search].  [Exhaustive] checks every tile on
// the rectangle's boundary and serves as a reference for small inputs.
// [SearchParallel] distributes the candidates over a fixed number of
// goroutines.
package maxrect

//go:generate go run ./testcases/export
