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

// Package export writes polished paths in the file formats understood by
// sand drawing machines.
//
// [GCode] serves gantry tables, [ThetaRho] serves polar tables, and [SVG]
// produces a drawing for plotters and for inspection.  The program
// formats accept start and end code blocks in which placeholders like
// {startx} or {MaxRho} are replaced by properties of the exported path.
package export

import (
	"bufio"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sandpath"
)

// Writer is implemented by all exporters in this package.
type Writer interface {
	Write(w io.Writer, p sandpath.Path) error
}

var (
	_ Writer = (*GCode)(nil)
	_ Writer = (*ThetaRho)(nil)
	_ Writer = (*SVG)(nil)
)

// program writes a line-oriented machine program.
type program struct {
	w           *bufio.Writer
	commentChar string
}

func newProgram(w io.Writer, commentChar string) *program {
	return &program{w: bufio.NewWriter(w), commentChar: commentChar}
}

func (p *program) line(s string) {
	p.w.WriteString(s)
	p.w.WriteByte('\n')
}

func (p *program) comment(s string) {
	if s == "" {
		p.line(p.commentChar)
		return
	}
	p.line(p.commentChar + " " + s)
}

// block writes user supplied code between BEGIN and END markers.
// Empty code is left out entirely.
func (p *program) block(name, code string) {
	if code == "" {
		return
	}
	p.comment("BEGIN " + name)
	p.line(code)
	p.comment("END " + name)
}

// flush returns the first write error, if any.
func (p *program) flush() error {
	return p.w.Flush()
}

var placeholder = regexp.MustCompile(`\{([A-Za-z]+)\}`)

// expand replaces the placeholders in code by the values in vars.  Names
// are matched case-insensitively; unknown placeholders are kept.
func expand(code string, vars map[string]float64, digits int) string {
	if code == "" || len(vars) == 0 {
		return code
	}
	return placeholder.ReplaceAllStringFunc(code, func(m string) string {
		name := strings.ToLower(m[1 : len(m)-1])
		val, ok := vars[name]
		if !ok {
			return m
		}
		return strconv.FormatFloat(val, 'f', digits, 64)
	})
}

// extremes returns the start, end, minimum and maximum of both
// coordinates of pts, keyed by placeholder name.  The coordinate names
// are appended to the prefixes "start", "end", "min" and "max".
// For an empty list the result is empty.
func extremes(pts []vec.Vec2, xName, yName string) map[string]float64 {
	if len(pts) == 0 {
		return nil
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	first, last := pts[0], pts[len(pts)-1]
	return map[string]float64{
		"start" + xName: first.X,
		"start" + yName: first.Y,
		"end" + xName:   last.X,
		"end" + yName:   last.Y,
		"min" + xName:   minX,
		"min" + yName:   minY,
		"max" + xName:   maxX,
		"max" + yName:   maxY,
	}
}
