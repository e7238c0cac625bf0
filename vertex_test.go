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
	"testing"

	"github.com/tdewolff/test"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestVertexBasics(t *testing.T) {
	v := V(3, 4)
	test.Float(t, v.Magnitude(), 5)
	test.Float(t, v.Distance(V(0, 0)), 5)
	test.Float(t, V(0, 1).Angle(), math.Pi/2)
	test.Float(t, V(-1, 0).Angle(), math.Pi)

	w := Vertex{Vec2: v.Vec2, Speed: 9}.withPos(vec.Vec2{X: 1, Y: 2})
	test.T(t, w, Vertex{Vec2: vec.Vec2{X: 1, Y: 2}, Speed: 9})
}

func TestReverse(t *testing.T) {
	p := Path{V(1, 0), V(2, 0), V(3, 0)}
	r := p.Reverse()
	test.T(t, r, Path{V(3, 0), V(2, 0), V(1, 0)})
	test.T(t, p[0], V(1, 0))
	test.T(t, Path{}.Reverse(), Path{})
}

func TestIter(t *testing.T) {
	p := Path{V(0, 0), V(1, 0), V(1, 1)}

	var cmds []path.Command
	var pts []vec.Vec2
	for cmd, args := range p.Iter() {
		cmds = append(cmds, cmd)
		pts = append(pts, args...)
	}
	test.T(t, cmds, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo})
	test.T(t, pts, []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})

	// stopping early
	n := 0
	for range p.Iter() {
		n++
		break
	}
	test.T(t, n, 1)
}

func TestCoterminal(t *testing.T) {
	test.Float(t, coterminal(-math.Pi/2), 3*math.Pi/2)
	test.Float(t, coterminal(5*math.Pi), math.Pi)
	test.Float(t, coterminal(0), 0)
}

func TestUnit(t *testing.T) {
	test.T(t, unit(vec.Vec2{}), vec.Vec2{})
	u := unit(vec.Vec2{X: 3, Y: 4})
	test.Float(t, u.X, 0.6)
	test.Float(t, u.Y, 0.8)
}

func TestOnSegment(t *testing.T) {
	a, b := vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}
	test.That(t, onSegment(a, b, vec.Vec2{X: 5, Y: 0}))
	test.That(t, onSegment(a, b, a))
	test.That(t, !onSegment(a, b, vec.Vec2{X: 5, Y: 1}))
	test.That(t, !onSegment(a, b, vec.Vec2{X: 11, Y: 0}))
}

func TestArc(t *testing.T) {
	end := math.Pi/2 - 0.01
	pts := arc(1, 0, end)
	test.T(t, len(pts), 32)
	test.Float(t, pts[0].X, 1)
	test.Float(t, pts[0].Y, 0)
	prev := -1.0
	for _, p := range pts {
		test.Float(t, p.Length(), 1)
		a := math.Atan2(p.Y, p.X)
		test.That(t, a > prev && a < end, "angle", a)
		prev = a
	}
}

func TestArcClockwise(t *testing.T) {
	pts := arc(2, 0, -1)
	test.T(t, len(pts), 21)
	prev := 1.0
	for _, p := range pts {
		test.Float(t, p.Length(), 2)
		a := math.Atan2(p.Y, p.X)
		test.That(t, a < prev && a > -1, "angle", a)
		prev = a
	}
}

func TestArcShortWay(t *testing.T) {
	// from just below π to just above -π: the short way crosses π
	pts := arc(1, 3, -3)
	test.T(t, len(pts), 6)
	for _, p := range pts {
		test.That(t, p.X < -0.98, "point", p)
	}
	test.That(t, len(arc(1, 1, 1)) == 0)
}

func TestAngularDistance(t *testing.T) {
	tests := []struct {
		a, b vec.Vec2
		want float64
	}{
		{vec.Vec2{X: 1}, vec.Vec2{Y: 1}, math.Pi / 2},
		{vec.Vec2{Y: 1}, vec.Vec2{X: 1}, math.Pi / 2},
		{vec.Vec2{X: 1}, vec.Vec2{X: -1}, math.Pi},
		{vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 2}, 0},
		{vec.Vec2{X: -1, Y: 0.01}, vec.Vec2{X: -1, Y: -0.01}, 2 * math.Atan(0.01)},
	}
	for _, tt := range tests {
		test.FloatDiff(t, angularDistance(tt.a, tt.b), tt.want, 1e-12)
	}
}
