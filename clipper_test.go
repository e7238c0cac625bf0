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
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestCleanVertices(t *testing.T) {
	for _, b := range []Bounds{square500, disc100} {
		c := NewClipper(b)
		got := c.CleanVertices(Path{V(0, 0), V(0, 0.0001), V(1, 1)})
		test.T(t, got, Path{V(0, 0), V(1, 1)})
	}
}

func TestCleanVerticesClamp(t *testing.T) {
	c := NewClipper(square500)
	got := c.CleanVertices(Path{V(0, 0), V(300, 0), V(260, 0), V(10, 10)})
	test.T(t, got, Path{V(0, 0), V(250, 0), V(10, 10)})
}

func TestDedup(t *testing.T) {
	tests := []struct {
		in, want Path
	}{
		{Path{}, Path{}},
		{Path{V(1, 1)}, Path{V(1, 1)}},
		{Path{V(0, 0), V(0, 0.0001)}, Path{V(0, 0)}},
		{Path{V(0, 0), V(5, 5), V(5, 5.0001)}, Path{V(0, 0), V(5, 5.0001)}},
		{Path{V(0, 0), V(1, 0), V(1, 0), V(1, 0), V(2, 0)}, Path{V(0, 0), V(1, 0), V(2, 0)}},

		// the replaced final vertex is also too close to the vertex before
		{
			Path{V(0, 0), V(1, 0), V(1.0011, 0), V(1.0006, 0.0005)},
			Path{V(0, 0), V(1.0006, 0.0005)},
		},
		{
			Path{V(0, 0), V(0.0011, 0), V(0.0011, 0.0011), V(0.0006, 0.0005)},
			Path{V(0, 0)},
		},
	}
	for _, tt := range tests {
		test.T(t, dedup(tt.in), tt.want)
	}
}

// onTop treats moves along the line y = 10 as boundary moves.
func onTop(a, b Vertex) bool {
	return a.Y == 10 && b.Y == 10
}

func TestSplitPerimeter(t *testing.T) {
	p := Path{V(0, 0), V(0, 10), V(1, 10), V(2, 10), V(2, 0)}
	got := splitPerimeter(p, onTop)
	test.T(t, got, [][]Vertex{
		{V(0, 0), V(0, 10)},
		{V(2, 10), V(2, 0)},
	})
}

func TestSplitPerimeterTrailing(t *testing.T) {
	// a path which ends on the boundary keeps its final vertex
	p := Path{V(0, 0), V(0, 10), V(1, 10)}
	got := splitPerimeter(p, onTop)
	test.T(t, got, [][]Vertex{
		{V(0, 0), V(0, 10)},
		{V(1, 10)},
	})
}

func TestOrderSegments(t *testing.T) {
	dist := func(a, b Vertex) float64 { return a.Distance(b) }
	segments := [][]Vertex{
		{V(0, 0), V(1, 0)},
		{V(10, 0), V(11, 0)},
		{V(3, 0), V(2, 0)},
		{V(20, 0)},
	}
	got := orderSegments(segments, dist)
	test.T(t, got, [][]Vertex{
		{V(0, 0), V(1, 0)},
		{V(2, 0), V(3, 0)},
		{V(10, 0), V(11, 0)},
		{V(20, 0)},
	})

	// the input is not modified
	test.T(t, segments[2], []Vertex{V(3, 0), V(2, 0)})
}

func TestJoinSegments(t *testing.T) {
	trace := func(a, b Vertex) []Vertex {
		return []Vertex{V(a.X, 1), V(b.X, 1)}
	}
	got := joinSegments([][]Vertex{
		{V(0, 0), V(1, 0)},
		{V(1, 2), V(0, 2)},
	}, trace)
	test.T(t, got, Path{V(0, 0), V(1, 0), V(1, 1), V(1, 2), V(0, 2)})
}

func TestJoinSegmentsAdjacent(t *testing.T) {
	none := func(a, b Vertex) []Vertex { return nil }
	got := joinSegments([][]Vertex{
		{V(0, 0), V(1, 0)},
		{V(1, 0.0001), V(2, 0)},
	}, none)
	test.T(t, got, Path{V(0, 0), V(1, 0.0001), V(2, 0)})
}

func TestJoinSegmentsSettle(t *testing.T) {
	none := func(a, b Vertex) []Vertex { return nil }
	got := joinSegments([][]Vertex{
		{V(0, 0), V(1, 0), V(1.0011, 0)},
		{V(1.0006, 0.0005), V(2, 0)},
	}, none)
	test.T(t, got, Path{V(0, 0), V(1.0006, 0.0005), V(2, 0)})
}

func TestClipAlongJoints(t *testing.T) {
	c := newTestRect(square500)
	got, err := c.ClipAlongPerimeter(Path{V(0, 0), V(500, 0), V(0, 10)})
	test.Error(t, err)

	// the second segment re-enters through the right edge
	samePoints(t, got, V(0, 0), V(250, 0), V(250, 5), V(0, 10))
}

func TestPolishEmpty(t *testing.T) {
	for _, b := range []Bounds{square500, disc100} {
		got, err := Polish(nil, b)
		test.Error(t, err)
		test.T(t, got, Path{})
	}
}

func TestPolishEndCluster(t *testing.T) {
	// the last vertices of the path lie close together and only collapse
	// once every earlier vertex is compared with the final one
	p := Path{V(0, 0), V(0.0011, 0), V(0.0011, 0.0011), V(0.0006, 0.0005)}
	for _, b := range []Bounds{square500, disc100} {
		got, err := Polish(p, b)
		test.Error(t, err)
		test.T(t, got, Path{V(0, 0)})
	}

	p = Path{V(0, 0), V(100, 0), V(100.0011, 0), V(100.0011, 0.0011), V(100.0006, 0.0005)}
	got, err := Polish(p, square500)
	test.Error(t, err)
	for i := 1; i < len(got); i++ {
		test.That(t, got[i].Distance(got[i-1]) > 1e-3, "vertices", i-1, "and", i, "coincide")
	}
	test.T(t, got[len(got)-1], V(100.0006, 0.0005))
}

func TestPolishLogging(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Polish(Path{V(0, 0), V(1000, 0)}, square500, WithLogger(l))
	test.Error(t, err)
	out := buf.String()
	test.That(t, strings.Contains(out, "clipped"), out)
	test.That(t, strings.Contains(out, "optimized"), out)
}

func TestPolishPointerBounds(t *testing.T) {
	p := Path{V(0, 0), V(1000, 0)}
	a, err := Polish(p, square500)
	test.Error(t, err)
	b, err := Polish(p, &square500)
	test.Error(t, err)
	test.T(t, a, b)
}

func TestPolishInputUnchanged(t *testing.T) {
	p := Path{V(0, 0), V(1000, 0), V(0, 1000)}
	orig := append(Path(nil), p...)
	_, err := Polish(p, square500)
	test.Error(t, err)
	test.T(t, p, orig)
}

type oddBounds struct{ Rect }

func TestNewClipperUnknownBounds(t *testing.T) {
	defer func() {
		test.That(t, recover() != nil, "expected a panic")
	}()
	NewClipper(oddBounds{})
}

func TestGeometryError(t *testing.T) {
	var err error = &GeometryError{Start: V(0, 0), End: V(1, 1), Count: 3}
	err = fmt.Errorf("polishing: %w", err)

	test.That(t, errors.Is(err, ErrGeometry))

	var gerr *GeometryError
	test.That(t, errors.As(err, &gerr))
	test.T(t, gerr.Count, 3)
	test.That(t, strings.Contains(err.Error(), "3 times"), err.Error())
}
