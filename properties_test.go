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

package sandpath_test

import (
	"testing"

	"github.com/tdewolff/test"

	"seehuhn.de/go/sandpath"
	"seehuhn.de/go/sandpath/testcases"
)

// forAllCases runs fn for every case of the catalogue, together with the
// polished path.
func forAllCases(t *testing.T, fn func(t *testing.T, tc testcases.Case, out sandpath.Path)) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"/"+tc.Name, func(t *testing.T) {
				out, err := tc.Polish()
				test.Error(t, err)
				fn(t, tc, out)
			})
		}
	}
}

func TestPolishedInside(t *testing.T) {
	forAllCases(t, func(t *testing.T, tc testcases.Case, out sandpath.Path) {
		test.That(t, len(out) > 0, "empty result")
		for i, v := range out {
			if !tc.Bounds.Contains(v, 1e-9) {
				t.Errorf("vertex %d at (%g, %g) is outside", i, v.X, v.Y)
			}
		}
	})
}

func TestPolishedNoDuplicates(t *testing.T) {
	forAllCases(t, func(t *testing.T, tc testcases.Case, out sandpath.Path) {
		for i := 1; i < len(out); i++ {
			if out[i].Distance(out[i-1]) <= 1e-3 {
				t.Errorf("vertices %d and %d coincide at (%g, %g)",
					i-1, i, out[i].X, out[i].Y)
			}
		}
	})
}

func TestPolishedClipIdempotent(t *testing.T) {
	forAllCases(t, func(t *testing.T, tc testcases.Case, out sandpath.Path) {
		c := sandpath.NewClipper(tc.Bounds)
		again, err := c.ClipAlongPerimeter(out)
		test.Error(t, err)
		test.T(t, again, out)
	})
}

func TestPolishedAnchors(t *testing.T) {
	forAllCases(t, func(t *testing.T, tc testcases.Case, out sandpath.Path) {
		switch b := tc.Bounds.(type) {
		case sandpath.Polar:
			anchored := sandpath.NewClipper(b).AddEndpoints(tc.Input())
			if b.StartPoint != sandpath.AnchorNone {
				test.That(t, out[0].Distance(anchored[0]) < 1e-9,
					"starts at", out[0], "not at", anchored[0])
			}
			if b.EndPoint != sandpath.AnchorNone {
				last := anchored[len(anchored)-1]
				test.That(t, out[len(out)-1].Distance(last) < 1e-9,
					"ends at", out[len(out)-1], "not at", last)
			}
		case sandpath.Rect:
			if b.OriginCorner == sandpath.CornerNone {
				return
			}
			corner := cornerOf(b)
			first, last := out[0], out[len(out)-1]
			test.That(t, first.Distance(corner) < 1e-9 || last.Distance(corner) < 1e-9,
				"path from", first, "to", last, "misses corner", corner)
		}
	})
}

func cornerOf(b sandpath.Rect) sandpath.Vertex {
	sx, sy := b.SizeX(), b.SizeY()
	switch b.OriginCorner {
	case sandpath.CornerBottomLeft:
		return sandpath.V(-sx, -sy)
	case sandpath.CornerTopLeft:
		return sandpath.V(-sx, sy)
	case sandpath.CornerTopRight:
		return sandpath.V(sx, sy)
	default:
		return sandpath.V(sx, -sy)
	}
}

func TestPolishReversed(t *testing.T) {
	// clipping does not depend on the direction of travel
	forAllCases(t, func(t *testing.T, tc testcases.Case, out sandpath.Path) {
		rev, err := sandpath.Polish(tc.Input().Reverse(), tc.Bounds)
		test.Error(t, err)
		for i, v := range rev {
			if !tc.Bounds.Contains(v, 1e-9) {
				t.Errorf("vertex %d at (%g, %g) is outside", i, v.X, v.Y)
			}
		}
	})
}
