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

// Package plot draws a polygon together with a selected rectangle,
// as a character map, a PNG image or a PDF file.
package plot

import (
	"errors"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/maxrect"
)

// ErrTooLarge is returned when a character map would exceed Options.MaxTiles.
var ErrTooLarge = errors.New("plot: polygon too large for a character map")

// Options controls the output size.
type Options struct {
	// Margin is the number of empty tiles around the polygon.
	Margin int

	// Size is the length of the longer side of PNG and PDF output,
	// in pixels or PDF points.
	Size float64

	// MaxTiles limits the number of characters in a character map.
	MaxTiles int
}

// DefaultOptions returns the settings used by the command line tool.
func DefaultOptions() *Options {
	return &Options{
		Margin:   1,
		Size:     600,
		MaxTiles: 1 << 20,
	}
}

// frame describes the tile area shown in a plot.
type frame struct {
	lo, hi maxrect.Point // first and last tile shown, inclusive
}

func newFrame(p *maxrect.Polygon, margin int) frame {
	lo, hi := p.Bounds()
	return frame{
		lo: maxrect.Point{X: lo.X - margin, Y: lo.Y - margin},
		hi: maxrect.Point{X: hi.X + margin, Y: hi.Y + margin},
	}
}

func (f frame) width() int  { return f.hi.X - f.lo.X + 1 }
func (f frame) height() int { return f.hi.Y - f.lo.Y + 1 }

// clip returns the frame in the coordinates used by maxrect.TileRasteriser.
func (f frame) clip() rect.Rect {
	return rect.Rect{
		LLx: float64(f.lo.X),
		LLy: float64(f.lo.Y),
		URx: float64(f.hi.X + 1),
		URy: float64(f.hi.Y + 1),
	}
}

// scale returns the number of output units per tile.
func (f frame) scale(size float64) float64 {
	return size / float64(max(f.width(), f.height()))
}

func getOptions(opt *Options) *Options {
	if opt == nil {
		return DefaultOptions()
	}
	return opt
}
