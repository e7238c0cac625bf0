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

// Package preview draws polished paths, for a quick check of the result
// before it is sent to a machine.
package preview

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sandpath"
)

// lineWidth is the width of the drawn path in pixels.
const lineWidth = 1.5

// Image draws p in black on a white background.  The longer side of the
// machine envelope is mapped to size pixels; the shorter side is scaled
// accordingly.
func Image(p sandpath.Path, b sandpath.Bounds, size int) *image.Gray {
	proj := newProjection(b.Extent(), float64(size), 0)

	img := image.NewGray(image.Rect(0, 0, proj.w, proj.h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := vector.NewRasterizer(proj.w, proj.h)
	if len(p) == 1 {
		dot(r, proj.apply(p[0].Vec2))
	}
	for i := 1; i < len(p); i++ {
		segment(r, proj.apply(p[i-1].Vec2), proj.apply(p[i].Vec2))
	}
	r.Draw(img, img.Bounds(), image.Black, image.Point{})

	return img
}

// segment adds the outline of a straight line of width lineWidth to r.
// All outlines have the same orientation, so that overlapping segments
// never cancel out.
func segment(r *vector.Rasterizer, a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(lineWidth / 2 / l)

	r.MoveTo(f32(a.Add(n)))
	r.LineTo(f32(b.Add(n)))
	r.LineTo(f32(b.Sub(n)))
	r.LineTo(f32(a.Sub(n)))
	r.ClosePath()
}

// dot adds a square of side lineWidth, centred at c.
func dot(r *vector.Rasterizer, c vec.Vec2) {
	h := lineWidth / 2
	r.MoveTo(f32(c.Add(vec.Vec2{X: -h, Y: -h})))
	r.LineTo(f32(c.Add(vec.Vec2{X: h, Y: -h})))
	r.LineTo(f32(c.Add(vec.Vec2{X: h, Y: h})))
	r.LineTo(f32(c.Add(vec.Vec2{X: -h, Y: h})))
	r.ClosePath()
}

func f32(v vec.Vec2) (float32, float32) {
	return float32(v.X), float32(v.Y)
}

// projection maps machine coordinates to device coordinates, with the
// y-axis pointing down.
type projection struct {
	ext    rect.Rect
	scale  float64
	margin float64
	w, h   int
}

// newProjection fits ext into a square of the given size, leaving
// margin units free on every side.
func newProjection(ext rect.Rect, size, margin float64) projection {
	dx := ext.URx - ext.LLx
	dy := ext.URy - ext.LLy

	scale := 1.0
	if m := max(dx, dy); m > 0 {
		scale = (size - 2*margin) / m
	}
	// round down sizes which overshoot an integer by rounding errors only
	const slack = 1e-9
	return projection{
		ext:    ext,
		scale:  scale,
		margin: margin,
		w:      max(1, int(math.Ceil(dx*scale+2*margin-slack))),
		h:      max(1, int(math.Ceil(dy*scale+2*margin-slack))),
	}
}

func (p projection) apply(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: p.margin + (v.X-p.ext.LLx)*p.scale,
		Y: p.margin + (p.ext.URy-v.Y)*p.scale,
	}
}
