// seehuhn.de/go/sandpath - path processing for sand drawing tables
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

package preview

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/sandpath"
)

const (
	pageSize   = 500.0 // longer side of the page, in PDF points
	pageMargin = 10.0
)

// WritePDF writes a single page PDF file showing the machine envelope in
// grey and p in black.
func WritePDF(fileName string, p sandpath.Path, b sandpath.Bounds) error {
	switch bb := b.(type) {
	case *sandpath.Rect:
		b = *bb
	case *sandpath.Polar:
		b = *bb
	}
	switch b.(type) {
	case sandpath.Rect, sandpath.Polar:
	default:
		return fmt.Errorf("preview: unsupported bounds type %T", b)
	}

	proj := newProjection(b.Extent(), pageSize, pageMargin)

	paper := &pdf.Rectangle{
		URx: float64(proj.w),
		URy: float64(proj.h),
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// The projection has the y-axis pointing down, PDF has it pointing up.
	h := float64(proj.h)
	pt := func(v vec.Vec2) (float64, float64) {
		q := proj.apply(v)
		return q.X, h - q.Y
	}

	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	page.SetStrokeColor(color.DeviceGray(0.7))
	page.SetLineWidth(1)
	switch b := b.(type) {
	case sandpath.Rect:
		x0, y0 := pt(vec.Vec2{X: -b.SizeX(), Y: -b.SizeY()})
		x1, y1 := pt(vec.Vec2{X: b.SizeX(), Y: b.SizeY()})
		page.Rectangle(x0, y0, x1-x0, y1-y0)
	case sandpath.Polar:
		cx, cy := pt(vec.Vec2{})
		circle(page, cx, cy, b.MaxRadius*proj.scale)
	}
	page.Stroke()

	if len(p) > 0 {
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(0.75)
		for i, v := range p {
			x, y := pt(v.Vec2)
			if i == 0 {
				page.MoveTo(x, y)
			} else {
				page.LineTo(x, y)
			}
		}
		if len(p) == 1 {
			// a round cap turns this into a dot
			x, y := pt(p[0].Vec2)
			page.LineTo(x, y)
		}
		page.Stroke()
	}

	return page.Close()
}

// circle appends a circle, made of four cubic Bézier curves, to the
// current path of page.
func circle(page *document.Page, cx, cy, r float64) {
	const k = 0.5522847498
	kr := k * r

	page.MoveTo(cx+r, cy)
	page.CurveTo(cx+r, cy+kr, cx+kr, cy+r, cx, cy+r)
	page.CurveTo(cx-kr, cy+r, cx-r, cy+kr, cx-r, cy)
	page.CurveTo(cx-r, cy-kr, cx-kr, cy-r, cx, cy-r)
	page.CurveTo(cx+kr, cy-r, cx+r, cy-kr, cx+r, cy)
	page.ClosePath()
}
