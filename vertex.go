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

package sandpath

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Vertex is a point of a drawing trajectory in machine coordinates.
// Vertices are values; transforms always create new vertices.
type Vertex struct {
	vec.Vec2

	// Speed is an optional feed rate hint.  Zero means "machine default".
	Speed float64
}

// V returns the vertex (x, y) with zero speed.
func V(x, y float64) Vertex {
	return Vertex{Vec2: vec.Vec2{X: x, Y: y}}
}

// withPos returns a vertex at p which keeps the speed of v.
func (v Vertex) withPos(p vec.Vec2) Vertex {
	return Vertex{Vec2: p, Speed: v.Speed}
}

// Magnitude returns the distance of v from the origin.
func (v Vertex) Magnitude() float64 {
	return v.Vec2.Length()
}

// Angle returns the polar angle of v in the range [-π, π].
func (v Vertex) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Distance returns the Euclidean distance between v and w.
func (v Vertex) Distance(w Vertex) float64 {
	return v.Vec2.Sub(w.Vec2).Length()
}

// Path is an ordered drawing trajectory.
type Path []Vertex

// Reverse returns a copy of p with the vertex order reversed.
func (p Path) Reverse() Path {
	res := make(Path, len(p))
	for i, v := range p {
		res[len(p)-1-i] = v
	}
	return res
}

// Iter returns p as a geometric path: one MoveTo followed by a LineTo for
// every further vertex.
func (p Path) Iter() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for i, v := range p {
			buf[0] = v.Vec2
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, buf[:]) {
				return
			}
		}
	}
}

// coterminal maps an angle into the range [0, 2π).
func coterminal(a float64) float64 {
	return a - math.Floor(a/(2*math.Pi))*2*math.Pi
}

// unit returns the unit vector in the direction of v.
// The zero vector maps to the zero vector.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}

// onSegment reports whether p lies on the segment from a to b.
func onSegment(a, b, p vec.Vec2) bool {
	return a.Sub(p).Length()+b.Sub(p).Length()-a.Sub(b).Length() < 1e-3
}

// arcResolution is the angular step used when tracing the circle.
const arcResolution = 2 * math.Pi / 128

// arc returns points on the circle of the given radius, walking from
// startAngle towards endAngle along the shorter direction.  The end angle
// itself is not included.
func arc(radius, startAngle, endAngle float64) []vec.Vec2 {
	res := arcResolution
	delta := math.Mod(endAngle-startAngle+2*math.Pi, 2*math.Pi)
	if delta > math.Pi {
		delta -= 2 * math.Pi
	}
	if delta < 0 {
		res = -res
	}

	n := delta / res
	var pts []vec.Vec2
	for step := 0; float64(step) < n; step++ {
		a := res*float64(step) + startAngle
		pts = append(pts, vec.Vec2{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
	}
	return pts
}

// angularDistance returns the absolute angle in [0, π] between the polar
// angles of a and b.
func angularDistance(a, b vec.Vec2) float64 {
	d := coterminal(math.Atan2(b.Y, b.X) - math.Atan2(a.Y, a.X))
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
