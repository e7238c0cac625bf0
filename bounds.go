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
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Bounds describes the physical envelope of a machine.
// The two implementations are [Rect] and [Polar].
type Bounds interface {
	// Extent returns the bounding box of the reachable area.
	Extent() rect.Rect

	// Contains reports whether v lies within the envelope, allowing
	// for an overshoot of eps.
	Contains(v Vertex, eps float64) bool

	isBounds()
}

// Rect describes a rectangular gantry table.  The drawing area is
// centred on the origin and has the size of the configured range.
type Rect struct {
	MinX, MaxX float64
	MinY, MaxY float64

	// MinimizeMoves reorders perimeter segments to shorten travel.
	MinimizeMoves bool

	// OriginCorner, if set, forces the path to start or end in this corner.
	OriginCorner Corner
}

func (Rect) isBounds() {}

// SizeX returns half the width of the drawing area.
func (r Rect) SizeX() float64 {
	return math.Abs(r.MaxX-r.MinX) / 2
}

// SizeY returns half the height of the drawing area.
func (r Rect) SizeY() float64 {
	return math.Abs(r.MaxY-r.MinY) / 2
}

// Extent implements the [Bounds] interface.
func (r Rect) Extent() rect.Rect {
	sx, sy := r.SizeX(), r.SizeY()
	return rect.Rect{LLx: -sx, LLy: -sy, URx: sx, URy: sy}
}

// Contains implements the [Bounds] interface.
func (r Rect) Contains(v Vertex, eps float64) bool {
	return math.Abs(v.X) <= r.SizeX()+eps && math.Abs(v.Y) <= r.SizeY()+eps
}

// Polar describes a circular table of the given radius, centred on the
// origin.
type Polar struct {
	MaxRadius float64

	// MinimizeMoves reorders perimeter segments to shorten travel.
	MinimizeMoves bool

	StartPoint AnchorMode
	EndPoint   AnchorMode
}

func (Polar) isBounds() {}

// Extent implements the [Bounds] interface.
func (p Polar) Extent() rect.Rect {
	r := p.MaxRadius
	return rect.Rect{LLx: -r, LLy: -r, URx: r, URy: r}
}

// Contains implements the [Bounds] interface.
func (p Polar) Contains(v Vertex, eps float64) bool {
	return v.Magnitude() <= p.MaxRadius+eps
}

// Corner selects a corner of a rectangular table.
type Corner int

// These are the possible values for [Corner].  The order of the
// non-empty values matches the corner cycle used for anchoring.
const (
	CornerNone Corner = iota
	CornerBottomLeft
	CornerTopLeft
	CornerTopRight
	CornerBottomRight
)

var cornerNames = []string{"none", "bottom-left", "top-left", "top-right", "bottom-right"}

func (c Corner) String() string {
	if c < 0 || int(c) >= len(cornerNames) {
		return fmt.Sprintf("Corner(%d)", int(c))
	}
	return cornerNames[c]
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c Corner) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(cornerNames) {
		return nil, fmt.Errorf("invalid corner %d", int(c))
	}
	return []byte(cornerNames[c]), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (c *Corner) UnmarshalText(text []byte) error {
	for i, name := range cornerNames {
		if string(text) == name {
			*c = Corner(i)
			return nil
		}
	}
	return fmt.Errorf("unknown corner %q", text)
}

// AnchorMode selects a forced start or end point on a polar table.
type AnchorMode int

// These are the possible values for [AnchorMode].
const (
	AnchorNone AnchorMode = iota
	AnchorCenter
	AnchorEdge
)

var anchorNames = []string{"none", "center", "edge"}

func (m AnchorMode) String() string {
	if m < 0 || int(m) >= len(anchorNames) {
		return fmt.Sprintf("AnchorMode(%d)", int(m))
	}
	return anchorNames[m]
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m AnchorMode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(anchorNames) {
		return nil, fmt.Errorf("invalid anchor mode %d", int(m))
	}
	return []byte(anchorNames[m]), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *AnchorMode) UnmarshalText(text []byte) error {
	for i, name := range anchorNames {
		if string(text) == name {
			*m = AnchorMode(i)
			return nil
		}
	}
	return fmt.Errorf("unknown anchor mode %q", text)
}
