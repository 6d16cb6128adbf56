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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/maxrect"
)

// WritePDF writes a single page PDF file showing the polygon outline,
// the covered area, and, if best is not nil, the selected rectangle.
// Tiles are laid out as in DrawPNG, with y pointing down the page.
func WritePDF(fileName string, p *maxrect.Polygon, best *maxrect.Candidate, opt *Options) error {
	opt = getOptions(opt)
	f := newFrame(p, opt.Margin)
	s := f.scale(opt.Size)
	width := float64(f.width()) * s
	height := float64(f.height()) * s

	paper := &pdf.Rectangle{
		URx: width,
		URy: height,
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; tile rows grow downwards.
	page.Transform(matrix.Matrix{s, 0, 0, -s, -s * float64(f.lo.X), height + s*float64(f.lo.Y)})

	outline := p.Path()

	page.SetFillColor(color.DeviceGray(0.85))
	drawPath(page, outline, 0.5)
	page.Fill()

	if best != nil {
		bb := best.Rect()
		page.SetFillColor(color.DeviceGray(0.55))
		page.Rectangle(bb.LLx, bb.LLy, bb.URx-bb.LLx, bb.URy-bb.LLy)
		page.Fill()
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1 / s)
	page.SetLineJoin(graphics.LineJoinMiter)
	drawPath(page, outline, 0.5)
	page.Stroke()

	return page.Close()
}

// pathWriter is the subset of the page API used for path construction.
type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

// drawPath constructs the path d, shifted by offset in both directions.
func drawPath(w pathWriter, d *path.Data, offset float64) {
	coordIdx := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			pt := d.Coords[coordIdx]
			w.MoveTo(pt.X+offset, pt.Y+offset)
			coordIdx++
		case path.CmdLineTo:
			pt := d.Coords[coordIdx]
			w.LineTo(pt.X+offset, pt.Y+offset)
			coordIdx++
		case path.CmdQuadTo:
			coordIdx += 2
		case path.CmdCubeTo:
			coordIdx += 3
		case path.CmdClose:
			w.ClosePath()
		}
	}
}
