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

package plot

import (
	"bufio"
	"io"

	"seehuhn.de/go/maxrect"
)

// Characters used in character maps.
const (
	charOutside = '.'
	charFilled  = 'X'
	charVertex  = '#'
	charRect    = 'O'
)

// WriteASCII writes a character map of the polygon, one line per tile row.
// Vertices are shown as '#', other tiles inside or on the boundary as 'X',
// and tiles outside as '.'.  If best is not nil, the tiles of this
// rectangle which are not vertices are shown as 'O'.
func WriteASCII(w io.Writer, p *maxrect.Polygon, best *maxrect.Candidate, opt *Options) error {
	opt = getOptions(opt)
	f := newFrame(p, opt.Margin)
	width, height := f.width(), f.height()
	if opt.MaxTiles > 0 && width*height > opt.MaxTiles {
		return ErrTooLarge
	}

	grid := make([][]byte, height)
	for i := range grid {
		row := make([]byte, width+1)
		for j := range width {
			row[j] = charOutside
		}
		row[width] = '\n'
		grid[i] = row
	}

	r := maxrect.NewTileRasteriser(f.clip())
	r.Fill(p, func(y int, spans []maxrect.Span) {
		row := grid[y-f.lo.Y]
		for _, s := range spans {
			for x := s.X0; x <= s.X1; x++ {
				row[x-f.lo.X] = charFilled
			}
		}
	})

	if best != nil {
		lo, hi := best.Min(), best.Max()
		for y := lo.Y; y <= hi.Y; y++ {
			for x := lo.X; x <= hi.X; x++ {
				grid[y-f.lo.Y][x-f.lo.X] = charRect
			}
		}
	}
	for _, v := range p.Vertices() {
		grid[v.Y-f.lo.Y][v.X-f.lo.X] = charVertex
	}

	bw := bufio.NewWriter(w)
	for _, row := range grid {
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
