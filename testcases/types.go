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

// Package testcases holds a catalogue of shapes, loop settings and machines
// which is shared by the tests, the benchmarks and the preview commands.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sandpath"
)

// Case defines a single polishing example.
type Case struct {
	Name   string              // lowercase a-z, 0-9 and _ only
	Shape  sandpath.Path       // the outline before repetition
	Loop   sandpath.LoopParams // how the outline is repeated
	Bounds sandpath.Bounds     // the machine envelope
}

// Input returns the raw path which is fed into the polisher.
func (c Case) Input() sandpath.Path {
	return sandpath.TransformShapes(c.Shape, c.Loop)
}

// Polish returns the polished path for the case.
func (c Case) Polish() (sandpath.Path, error) {
	return sandpath.Polish(c.Input(), c.Bounds)
}

// once repeats the shape a single time, without scaling.
var once = sandpath.LoopParams{StartingSize: 1}

// shape flattens a path made of straight segments into a vertex list.
// ClosePath repeats the first point of the subpath; curves contribute
// their end point only.
func shape(p path.Path) sandpath.Path {
	var res sandpath.Path
	var start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			start = pts[0]
			res = append(res, sandpath.Vertex{Vec2: start})
		case path.CmdClose:
			res = append(res, sandpath.Vertex{Vec2: start})
		default:
			res = append(res, sandpath.Vertex{Vec2: pts[len(pts)-1]})
		}
	}
	return res
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
