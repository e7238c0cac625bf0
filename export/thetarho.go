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
	"errors"
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sandpath"
)

const (
	// maxStep is the longest move written to a theta-rho file.  Polar
	// tables interpolate linearly in theta and rho, so long straight
	// moves have to be split to stay straight.
	maxStep = 2.0

	// maxSteps limits the number of pieces a single move is split into.
	maxSteps = 1000
)

// ThetaRho writes a program for polar tables.
//
// Theta is measured clockwise from the positive y-axis and grows without
// bounds as the path winds around the centre.  Rho is the distance from
// the centre, scaled so that MaxRadius maps to RhoMax.  The placeholders
// {starttheta}, {startrho}, {endtheta}, {endrho}, {mintheta}, {minrho},
// {maxtheta} and {maxrho} may be used in Pre and Post.
type ThetaRho struct {
	MaxRadius float64

	// RhoMax is the rho value for points on the edge of the table.
	// Values outside (0, 1] are replaced by 1.
	RhoMax float64

	Pre  string // code to run before the drawing
	Post string // code to run after the drawing
}

// Point is a position in theta-rho coordinates.
type Point struct {
	Theta, Rho float64
}

// Points converts p to theta-rho coordinates.  Long moves are split into
// steps of at most 2 units first.
func (t *ThetaRho) Points(p sandpath.Path) []Point {
	rhoMax := t.RhoMax
	if rhoMax <= 0 || rhoMax > 1 {
		rhoMax = 1
	}

	pts := subsample(p, maxStep)
	res := make([]Point, len(pts))
	var theta, prevRaw float64
	for i, pt := range pts {
		rho := min(pt.Length()/t.MaxRadius*rhoMax, rhoMax)

		raw := math.Mod(math.Atan2(pt.X, pt.Y)+2*math.Pi, 2*math.Pi)
		delta := raw - prevRaw
		if delta < -math.Pi {
			delta += 2 * math.Pi
		} else if delta > math.Pi {
			delta -= 2 * math.Pi
		}
		theta += delta
		prevRaw = raw

		res[i] = Point{Theta: theta, Rho: rho}
	}
	return res
}

// Write implements the [Writer] interface.
func (t *ThetaRho) Write(w io.Writer, p sandpath.Path) error {
	if !(t.MaxRadius > 0) {
		return errors.New("export: theta-rho output needs a positive radius")
	}

	pts := t.Points(p)
	tr := make([]vec.Vec2, len(pts))
	for i, pt := range pts {
		tr[i] = vec.Vec2{X: pt.Theta, Y: pt.Rho}
	}
	vars := extremes(tr, "theta", "rho")

	out := newProgram(w, "#")
	out.comment("")
	out.comment("File type: ThetaRho")
	out.comment("")
	out.block("PRE", expand(t.Pre, vars, 5))

	out.line("")
	for _, pt := range pts {
		out.line(fmt.Sprintf("%.5f %.5f", pt.Theta, pt.Rho))
	}
	out.line("")

	out.block("POST", expand(t.Post, vars, 5))
	return out.flush()
}

// subsample splits every move of p into pieces of length at most
// maxLength.  Very long moves are split into maxSteps pieces instead.
// The start of every move is included, and the final vertex is appended
// at the end.
func subsample(p sandpath.Path, maxLength float64) []vec.Vec2 {
	if len(p) == 0 {
		return nil
	}

	var res []vec.Vec2
	for i := 1; i < len(p); i++ {
		start, end := p[i-1].Vec2, p[i].Vec2
		delta := end.Sub(start)
		length := delta.Length()
		if length == 0 {
			continue
		}

		step := max(length/maxSteps, maxLength)
		dir := delta.Mul(step / length)
		for k := 0; float64(k) < length/step; k++ {
			res = append(res, start.Add(dir.Mul(float64(k))))
		}
	}
	return append(res, p[len(p)-1].Vec2)
}
