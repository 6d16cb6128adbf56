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

// Result is the outcome of a search.
// If Found is false, no candidate was accepted and Area is zero.
type Result struct {
	Candidate Candidate
	Area      int64
	Found     bool
}

// offer replaces the current best result by c if area is larger.
// Ties keep the earlier candidate.
func (r *Result) offer(c Candidate, area int64) bool {
	if r.Found && area <= r.Area {
		return false
	}
	r.Candidate = c
	r.Area = area
	r.Found = true
	return true
}

// Search finds the candidate with the largest tile area accepted by v.
// Candidates are visited in the order of Pairs.  A candidate whose area
// does not exceed the best area found so far is skipped without calling
// v; this cannot change the result, since such a candidate could never
// replace the current best.
func Search(p *Polygon, v Validator) Result {
	var best Result
	checked, skipped := 0, 0
	for i, j := range Pairs(len(p.vertices)) {
		c := NewCandidate(p, i, j)
		area := c.Area()
		if best.Found && area <= best.Area {
			skipped++
			continue
		}
		checked++
		if v(p, c) {
			best.offer(c, area)
		}
	}
	logger().Debug("sequential search done",
		"vertices", len(p.vertices),
		"checked", checked,
		"skipped", skipped,
		"area", best.Area)
	return best
}

// LargestPair returns the largest rectangle spanned by any two of the
// given points, without checking it against a polygon.
// Fewer than two points give a Result with Found == false.
func LargestPair(pts []Point) Result {
	var best Result
	for i, j := range Pairs(len(pts)) {
		c := Candidate{I: i, J: j, A: pts[i], B: pts[j]}
		best.offer(c, c.Area())
	}
	return best
}

// Best returns the largest candidate in cands, keeping the earliest one
// on ties.
func Best(cands []Candidate) Result {
	var best Result
	for _, c := range cands {
		best.offer(c, c.Area())
	}
	return best
}
