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

package export

import (
	"fmt"
	"io"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sandpath"
)

// GCode writes a program for gantry tables.
//
// Every vertex becomes one linear move.  Vertices with a positive speed
// carry it as the feed rate of the move.  The placeholders {startx},
// {starty}, {endx}, {endy}, {minx}, {miny}, {maxx} and {maxy} may be used
// in Pre and Post; they refer to machine coordinates, after the offset
// has been applied.
type GCode struct {
	// OffsetX and OffsetY are added to all coordinates, to move the
	// centred drawing into the coordinate system of the machine.
	OffsetX, OffsetY float64

	Pre  string // code to run before the drawing
	Post string // code to run after the drawing
}

// Write implements the [Writer] interface.
func (g *GCode) Write(w io.Writer, p sandpath.Path) error {
	pts := make([]vec.Vec2, len(p))
	for i, v := range p {
		pts[i] = vec.Vec2{X: v.X + g.OffsetX, Y: v.Y + g.OffsetY}
	}
	vars := extremes(pts, "x", "y")

	out := newProgram(w, ";")
	out.comment("")
	out.comment("File type: GCode")
	out.comment("")
	out.block("PRE", expand(g.Pre, vars, 3))

	out.line("")
	for i, pt := range pts {
		move := fmt.Sprintf("G1 X%.3f Y%.3f", pt.X, pt.Y)
		if s := p[i].Speed; s > 0 {
			move += fmt.Sprintf(" F%.0f", s)
		}
		out.line(move)
	}
	out.line("")

	out.block("POST", expand(g.Post, vars, 3))
	return out.flush()
}
