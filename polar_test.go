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
)

var disc100 = Polar{MaxRadius: 100}

func newTestPolar(b Polar) *polarClipper {
	return NewClipper(b).(*polarClipper)
}

func onCircle(t *testing.T, pts []Vertex, r float64) {
	t.Helper()
	for i, v := range pts {
		if math.Abs(v.Magnitude()-r) > 1e-9 {
			t.Errorf("point %d at radius %g, want %g", i, v.Magnitude(), r)
		}
	}
}

func TestPolarClipLineInside(t *testing.T) {
	c := newTestPolar(disc100)
	got, err := c.ClipLine(V(0, 0), V(10, 10))
	test.Error(t, err)
	test.T(t, got, []Vertex{V(0, 0), V(10, 10)})
}

func TestPolarClipLineOutside(t *testing.T) {
	c := newTestPolar(disc100)

	// the chord misses the circle: the result follows the circle instead
	got, err := c.ClipLine(V(150, 0), V(0, 150))
	test.Error(t, err)
	test.That(t, len(got) > 0)
	onCircle(t, got, 100)
	for _, v := range got {
		test.That(t, disc100.Contains(v, 1e-9))
	}
}

func TestPolarClipLineCoincident(t *testing.T) {
	c := newTestPolar(disc100)
	got, err := c.ClipLine(V(200, 0), V(200, 1e-6))
	test.Error(t, err)
	samePoints(t, got, V(100-radiusMargin, 0))
}

func TestPolarClipLineChord(t *testing.T) {
	c := newTestPolar(disc100)
	got, err := c.ClipLine(V(-200, 50), V(200, 50))
	test.Error(t, err)
	onCircle(t, got, 100)

	// the entry point is part of the result
	entry := V(-math.Sqrt(100*100-50*50), 50)
	found := false
	for _, v := range got {
		if v.Distance(entry) < 1e-9 {
			found = true
		}
	}
	test.That(t, found, "entry point missing from", got)
}

func TestPolarClipLineExit(t *testing.T) {
	c := newTestPolar(disc100)
	got, err := c.ClipLine(V(0, 0), V(200, 0))
	test.Error(t, err)
	samePoints(t, got, V(0, 0), V(100-radiusMargin, 0))
}

func TestPolarClipLineEnter(t *testing.T) {
	c := newTestPolar(disc100)
	got, err := c.ClipLine(V(200, 0), V(0, 0))
	test.Error(t, err)
	samePoints(t, got, V(100, 0), V(0, 0))
}

func TestPolarClamp(t *testing.T) {
	c := newTestPolar(disc100)
	test.T(t, c.clamp(V(30, 40)), V(30, 40))

	v := c.clamp(Vertex{Vec2: V(0, -300).Vec2, Speed: 4})
	test.Float(t, v.Magnitude(), 100-radiusMargin)
	test.T(t, v.Speed, 4.0)
}

func TestPolarAddEndpoints(t *testing.T) {
	b := disc100
	b.StartPoint = AnchorCenter
	b.EndPoint = AnchorEdge
	c := newTestPolar(b)

	p := Path{{Vec2: V(10, 0).Vec2, Speed: 2}, V(0, 50)}
	got := c.AddEndpoints(p)
	samePoints(t, got, V(0, 0), V(10, 0), V(0, 50), V(0, 100-radiusMargin))
	test.T(t, got[0].Speed, 2.0)

	// anchors sit exactly where CleanVertices would put them
	test.T(t, c.clamp(got[len(got)-1]), got[len(got)-1])
}

func TestPolarAddEndpointsNone(t *testing.T) {
	c := newTestPolar(disc100)
	p := Path{V(1, 2), V(3, 4)}
	test.T(t, c.AddEndpoints(p), p)
}

func TestPolarEdgeAnchorAtOrigin(t *testing.T) {
	b := disc100
	b.StartPoint = AnchorEdge
	c := newTestPolar(b)

	got := c.AddEndpoints(Path{V(0, 0)})
	samePoints(t, got, V(100-radiusMargin, 0), V(0, 0))
}

func TestPolarOnPerimeter(t *testing.T) {
	c := newTestPolar(disc100)
	a := V(100, 0)
	b := V(100*math.Cos(0.05), 100*math.Sin(0.05))
	test.That(t, c.onPerimeter(a, b))
	test.That(t, !c.onPerimeter(a, V(0, 100)))
	test.That(t, !c.onPerimeter(a, V(50, 0)))
}

func TestPolarPerimeterDistance(t *testing.T) {
	c := newTestPolar(disc100)
	test.Float(t, c.perimeterDistance(V(100, 0), V(0, 100)), 50*math.Pi)
	test.Float(t, c.perimeterDistance(V(0, 100), V(100, 0)), 50*math.Pi)
	test.Float(t, c.perimeterDistance(V(100, 0), V(0, -50)), 50*math.Pi)
}

func TestPolarOptimizePerimeter(t *testing.T) {
	c := newTestPolar(disc100)

	// travels almost all the way round, counter-clockwise
	p := Path{V(0, 0)}
	end := 2*math.Pi - math.Pi/4
	for a := 0.0; a < end; a += 0.05 {
		p = append(p, V(100*math.Cos(a), 100*math.Sin(a)))
	}
	p = append(p, V(100*math.Cos(end), 100*math.Sin(end)), V(0, 0))

	got := c.OptimizePerimeter(p)
	test.T(t, got[0], V(0, 0))
	test.T(t, got[len(got)-1], V(0, 0))
	test.That(t, len(got) < len(p)/2, "got", len(got), "vertices")
	test.That(t, got.Stats().Distance < p.Stats().Distance/2)
	for _, v := range got {
		test.That(t, disc100.Contains(v, 1e-9))
	}
}
