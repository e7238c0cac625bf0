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
	"encoding/json"
	"testing"

	"github.com/tdewolff/test"
	"seehuhn.de/go/geom/rect"
)

func TestRectSize(t *testing.T) {
	// only the range matters, not where it lies
	b := Rect{MinX: 100, MaxX: 900, MinY: 300, MaxY: 0}
	test.T(t, b.SizeX(), 400.0)
	test.T(t, b.SizeY(), 150.0)
	test.T(t, b.Extent(), rect.Rect{LLx: -400, LLy: -150, URx: 400, URy: 150})

	test.That(t, b.Contains(V(400, -150), 0))
	test.That(t, !b.Contains(V(400.1, 0), 0))
	test.That(t, b.Contains(V(400.1, 0), 0.2))
}

func TestPolarExtent(t *testing.T) {
	b := Polar{MaxRadius: 7}
	test.T(t, b.Extent(), rect.Rect{LLx: -7, LLy: -7, URx: 7, URy: 7})
	test.That(t, b.Contains(V(0, 7), 0))
	test.That(t, !b.Contains(V(5, 5), 0))
}

func TestCornerText(t *testing.T) {
	for c := CornerNone; c <= CornerBottomRight; c++ {
		text, err := c.MarshalText()
		test.Error(t, err)
		var back Corner
		test.Error(t, back.UnmarshalText(text))
		test.T(t, back, c)
	}
	test.String(t, CornerTopLeft.String(), "top-left")
	test.String(t, Corner(9).String(), "Corner(9)")

	var c Corner
	test.That(t, c.UnmarshalText([]byte("middle")) != nil)
	_, err := Corner(-1).MarshalText()
	test.That(t, err != nil)
}

func TestAnchorModeText(t *testing.T) {
	for m := AnchorNone; m <= AnchorEdge; m++ {
		text, err := m.MarshalText()
		test.Error(t, err)
		var back AnchorMode
		test.Error(t, back.UnmarshalText(text))
		test.T(t, back, m)
	}
	test.String(t, AnchorCenter.String(), "center")

	var m AnchorMode
	test.That(t, m.UnmarshalText([]byte("rim")) != nil)
}

func TestBoundsJSON(t *testing.T) {
	var r Rect
	err := json.Unmarshal([]byte(`{"MaxX": 500, "MaxY": 300, "OriginCorner": "top-right"}`), &r)
	test.Error(t, err)
	test.T(t, r, Rect{MaxX: 500, MaxY: 300, OriginCorner: CornerTopRight})

	var p Polar
	err = json.Unmarshal([]byte(`{"MaxRadius": 250, "StartPoint": "center", "EndPoint": "edge"}`), &p)
	test.Error(t, err)
	test.T(t, p, Polar{MaxRadius: 250, StartPoint: AnchorCenter, EndPoint: AnchorEdge})
}
