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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Method selects how the loop counter advances within one loop.
type Method int

const (
	// Smear blends the transform continuously, so that every vertex of a
	// loop sees a slightly larger loop counter than its predecessor.
	Smear Method = iota

	// Intact applies the same transform to all vertices of a loop.
	Intact
)

func (m Method) String() string {
	switch m {
	case Smear:
		return "smear"
	case Intact:
		return "intact"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m Method) MarshalText() ([]byte, error) {
	if m != Smear && m != Intact {
		return nil, fmt.Errorf("invalid transform method %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *Method) UnmarshalText(text []byte) error {
	switch string(text) {
	case "smear":
		*m = Smear
	case "intact":
		*m = Intact
	default:
		return fmt.Errorf("unknown transform method %q", text)
	}
	return nil
}

// LoopParams describes how a shape is repeated.
type LoopParams struct {
	StartingSize float64 `json:"startingSize"` // scale factor for the input shape, 0 means 1
	OffsetX      float64 `json:"offsetX"`
	OffsetY      float64 `json:"offsetY"`

	RepeatEnabled bool   `json:"repeatEnabled"`
	NumLoops      int    `json:"numLoops"`
	Method        Method `json:"method"`

	GrowEnabled bool    `json:"growEnabled"`
	GrowValue   float64 `json:"growValue"` // percent per loop

	SpinEnabled     bool    `json:"spinEnabled"`
	SpinValue       float64 `json:"spinValue"` // degrees per loop
	SpinSwitchbacks int     `json:"spinSwitchbacks"`

	TrackEnabled     bool    `json:"trackEnabled"`
	TrackGrowEnabled bool    `json:"trackGrowEnabled"`
	TrackValue       float64 `json:"trackValue"`  // radius of the track
	TrackLength      float64 `json:"trackLength"` // fraction of the track covered per 16 loops
	TrackGrow        float64 `json:"trackGrow"`   // percent per 10 loops
	TrackNumLoops    int     `json:"trackNumLoops"`

	// DrawPortionPct is the percentage of the final loop which is drawn.
	// The zero value draws the whole loop.
	DrawPortionPct float64 `json:"drawPortionPct"`
}

// DefaultLoopParams returns the settings of a freshly created design.
func DefaultLoopParams() LoopParams {
	return LoopParams{
		StartingSize:   10,
		RepeatEnabled:  true,
		NumLoops:       10,
		Method:         Smear,
		GrowEnabled:    true,
		GrowValue:      100,
		SpinValue:      2,
		TrackValue:     10,
		TrackLength:    0.2,
		TrackGrow:      50,
		TrackNumLoops:  1,
		DrawPortionPct: 100,
	}
}

// loops returns the number of top-level loops.
func (p LoopParams) loops() int {
	if !p.RepeatEnabled {
		return 1
	}
	return max(1, p.NumLoops)
}

// portion returns the number of vertices drawn in the final loop of a
// shape with n vertices.
func (p LoopParams) portion(n int) int {
	pct := p.DrawPortionPct
	if pct <= 0 || pct >= 100 {
		return n
	}
	return min(n, int(math.Round(pct/100*float64(n))))
}

// Transform returns v with the grow, offset, spin and track transforms
// applied.  The loop counter amount controls grow and spin, trackIndex
// selects the position on the track.
func (p LoopParams) Transform(v Vertex, amount, trackIndex float64) Vertex {
	pos := v.Vec2

	if p.RepeatEnabled && p.GrowEnabled {
		s := (100 + p.GrowValue*amount) / 100
		pos = apply(matrix.Scale(s, s), pos)
	}

	pos = pos.Add(vec.Vec2{X: p.OffsetX, Y: p.OffsetY})

	if p.RepeatEnabled && p.SpinEnabled {
		pos = apply(matrix.RotateDeg(p.spinAngle(amount)), pos)
	}

	if p.RepeatEnabled && p.TrackEnabled {
		pos = pos.Add(p.trackOffset(trackIndex))
	}

	return v.withPos(pos)
}

// spinAngle returns the rotation in degrees for the given loop counter.
// The angle rises for one period and then falls back, so that with
// switchbacks the loops fan out and back instead of spiralling.
func (p LoopParams) spinAngle(amount float64) float64 {
	period := float64(p.loops()) / float64(max(0, p.SpinSwitchbacks)+1)

	direction := 1.0
	if math.Mod(amount/period, 2) >= 1 {
		direction = -1.0
	}
	angle := direction * math.Mod(amount, period) * p.SpinValue
	if direction < 0 {
		angle += period * p.SpinValue
	}
	return angle
}

// trackOffset returns the position on the track for the given index.
func (p LoopParams) trackOffset(trackIndex float64) vec.Vec2 {
	angle := p.TrackLength * trackIndex / 16 * 2 * math.Pi
	radius := 1.0
	if p.TrackGrowEnabled {
		radius = 1 + trackIndex/10*p.TrackGrow/100
	}
	r := radius * p.TrackValue
	return vec.Vec2{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}

// apply maps v through the affine transformation m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// TransformShapes repeats shape as described by params and returns the
// resulting raw path.  The result is not clipped to any machine.
func TransformShapes(shape Path, params LoopParams) Path {
	n := len(shape)
	if n == 0 {
		return Path{}
	}

	size := params.StartingSize
	if size == 0 {
		size = 1
	}
	scaled := make(Path, n)
	for i, v := range shape {
		scaled[i] = v.withPos(v.Vec2.Mul(size))
	}

	loops := params.loops()
	res := make(Path, 0, loops*n)

	if params.RepeatEnabled && params.TrackEnabled && params.TrackNumLoops > 1 {
		for i := range loops {
			for t := range params.TrackNumLoops {
				res = append(res, params.buildTrackLoop(scaled, i, t)...)
			}
		}
		return res
	}

	for i := range loops {
		count := n
		if i == loops-1 {
			count = params.portion(n)
		}
		for j := range count {
			amount := float64(i)
			if params.Method == Smear {
				amount += float64(j) / float64(n)
			}
			res = append(res, params.Transform(scaled[j], amount, amount))
		}
	}
	return res
}

// buildTrackLoop returns sub-loop t of loop i.
//
// The last sub-loop of every loop backtracks along its own vertices to the
// one closest to the start of the next track position, so that the jump
// to that position crosses as little of the drawing as possible.
func (p LoopParams) buildTrackLoop(shape Path, i, t int) Path {
	n := len(shape)
	numTrack := p.TrackNumLoops
	lastSub := t == numTrack-1

	completion := n
	if i == p.loops()-1 && lastSub {
		completion = p.portion(n)
	}

	res := make(Path, 0, 2*n)
	for j := range completion {
		amount := float64(i + t)
		if p.Method == Smear {
			amount += float64(j) / float64(n)
		}
		res = append(res, p.Transform(shape[j], amount, float64(i)))
	}

	if !lastSub || completion != n {
		return res
	}

	next := p.Transform(shape[0], 0, float64(i+1))
	minIdx := 0
	minDist := math.Inf(1)
	for j, v := range res {
		if d := v.Distance(next); d < minDist {
			minIdx = j
			minDist = d
		}
	}
	if minIdx == 0 {
		return res
	}
	for j := len(res) - 2; j >= minIdx; j-- {
		res = append(res, res[j])
	}
	return res
}
