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
	"strings"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/sandpath"
)

// SVG writes the path as a single stroked SVG path element.
//
// The origin of the machine is placed at the centre of the drawing, and
// the y-axis points upwards as on the table.
type SVG struct {
	Width, Height float64

	// StrokeWidth is the line width, including the unit.
	// The default is "0.4mm".
	StrokeWidth string
}

// Write implements the [Writer] interface.
func (s *SVG) Write(w io.Writer, p sandpath.Path) error {
	strokeWidth := s.StrokeWidth
	if strokeWidth == "" {
		strokeWidth = "0.4mm"
	}

	out := newProgram(w, "")
	out.line(`<?xml version="1.0" standalone="no"?>`)
	out.line(`<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">`)
	out.line(fmt.Sprintf(`<svg width="%g" height="%g" version="1.1" viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">`,
		s.Width, s.Height, s.Width, s.Height))
	out.line("  <g>")
	out.line(fmt.Sprintf("    <desc>pwidth:%g;pheight:%g;</desc>", s.Width, s.Height))
	out.line("    <path")
	out.line(`       stroke="#000000"`)
	out.line(fmt.Sprintf(`       stroke-width="%s"`, strokeWidth))
	out.line(`       fill="none"`)
	out.line(fmt.Sprintf(`       d="%s"/>`, s.pathData(p.Iter())))
	out.line("  </g>")
	out.line("</svg>")
	return out.flush()
}

// pathData converts p into the value of an SVG "d" attribute.
func (s *SVG) pathData(p path.Path) string {
	var b strings.Builder
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			b.WriteByte('M')
		case path.CmdLineTo:
			b.WriteByte('L')
		case path.CmdQuadTo:
			b.WriteByte('Q')
		case path.CmdCubeTo:
			b.WriteByte('C')
		case path.CmdClose:
			b.WriteByte('Z')
		}
		for i, pt := range pts {
			if i > 0 {
				b.WriteByte(' ')
			}
			x := pt.X + s.Width/2
			y := s.Height/2 - pt.Y
			fmt.Fprintf(&b, "%.2f,%.2f", x, y)
		}
	}
	return b.String()
}
