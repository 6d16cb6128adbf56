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
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/maxrect"
)

var (
	pngBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	pngPolygon    = color.RGBA{R: 0x7f, G: 0xc9, B: 0x7f, A: 0xff}
	pngRect       = color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xa0}
)

// DrawPNG renders the polygon as a PNG image.  Tile (x, y) is drawn as a
// square with the vertex positions at the tile centers.  If best is not
// nil, the tiles of this rectangle are overlaid in a translucent color.
func DrawPNG(w io.Writer, p *maxrect.Polygon, best *maxrect.Candidate, opt *Options) error {
	img := Image(p, best, opt)
	return png.Encode(w, img)
}

// Image renders the polygon into a new RGBA image.  See DrawPNG.
func Image(p *maxrect.Polygon, best *maxrect.Candidate, opt *Options) *image.RGBA {
	opt = getOptions(opt)
	f := newFrame(p, opt.Margin)
	s := f.scale(opt.Size)
	width := int(math.Ceil(float64(f.width()) * s))
	height := int(math.Ceil(float64(f.height()) * s))

	// tile coordinates to pixel coordinates, y pointing down
	m := matrix.Matrix{s, 0, 0, s, -s * float64(f.lo.X), -s * float64(f.lo.Y)}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(pngBackground), image.Point{}, draw.Src)

	r := vector.NewRasterizer(width, height)
	addPath(r, m, p.Path(), vec.Vec2{X: 0.5, Y: 0.5})
	r.Draw(dst, dst.Bounds(), image.NewUniform(pngPolygon), image.Point{})

	if best != nil {
		bb := best.Rect()
		r.Reset(width, height)
		corners := (&path.Data{}).
			MoveTo(vec.Vec2{X: bb.LLx, Y: bb.LLy}).
			LineTo(vec.Vec2{X: bb.URx, Y: bb.LLy}).
			LineTo(vec.Vec2{X: bb.URx, Y: bb.URy}).
			LineTo(vec.Vec2{X: bb.LLx, Y: bb.URy}).
			Close()
		addPath(r, m, corners, vec.Vec2{})
		r.Draw(dst, dst.Bounds(), image.NewUniform(pngRect), image.Point{})
	}

	return dst
}

// addPath adds the line segments of d, shifted by offset and transformed
// by m, to the rasterizer.
func addPath(r *vector.Rasterizer, m matrix.Matrix, d *path.Data, offset vec.Vec2) {
	apply := func(p vec.Vec2) (float32, float32) {
		px, py := p.X+offset.X, p.Y+offset.Y
		x := m[0]*px + m[2]*py + m[4]
		y := m[1]*px + m[3]*py + m[5]
		return float32(x), float32(y)
	}

	coordIdx := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(apply(d.Coords[coordIdx]))
			coordIdx++
		case path.CmdLineTo:
			r.LineTo(apply(d.Coords[coordIdx]))
			coordIdx++
		case path.CmdQuadTo:
			coordIdx += 2
		case path.CmdCubeTo:
			coordIdx += 3
		case path.CmdClose:
			r.ClosePath()
		}
	}
}
