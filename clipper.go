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
	"errors"
	"fmt"
	"math"
)

// dedupEps is the distance below which two consecutive vertices are
// considered to be the same point.
const dedupEps = 1e-3

// Clipper keeps a path inside the envelope of a machine.
//
// Every method returns a new path and leaves its argument unchanged.
// [Polish] chains the four stages in the order AddEndpoints,
// ClipAlongPerimeter, CleanVertices, OptimizePerimeter.  Each stage relies
// on the postconditions of the stages before it.
type Clipper interface {
	// AddEndpoints adds the configured start and end anchors.
	// Without anchors the path is returned unchanged.
	AddEndpoints(p Path) Path

	// ClipAlongPerimeter replaces every out-of-bounds excursion by a
	// route along the boundary.
	ClipAlongPerimeter(p Path) (Path, error)

	// CleanVertices removes near-duplicate vertices and clamps the
	// remaining ones into the envelope.
	CleanVertices(p Path) Path

	// OptimizePerimeter removes redundant travel along the boundary.
	OptimizePerimeter(p Path) Path

	// ClipLine clips the single segment from start to end.
	ClipLine(start, end Vertex) ([]Vertex, error)
}

// NewClipper returns the clipper for the given machine envelope.
// Bounds values other than [Rect] and [Polar] cause a panic.
func NewClipper(b Bounds, opts ...Option) Clipper {
	o := newOptions(opts)
	switch b := b.(type) {
	case Rect:
		return newRectClipper(b, o)
	case *Rect:
		return newRectClipper(*b, o)
	case Polar:
		return &polarClipper{Polar: b, log: o.logger}
	case *Polar:
		return &polarClipper{Polar: *b, log: o.logger}
	default:
		panic(fmt.Sprintf("sandpath: unsupported bounds type %T", b))
	}
}

// Polish returns a version of p which stays inside b, starts and ends at
// the configured anchors, and contains no redundant perimeter travel.
//
// The only possible error is a [*GeometryError].
func Polish(p Path, b Bounds, opts ...Option) (Path, error) {
	if len(p) == 0 {
		return Path{}, nil
	}

	o := newOptions(opts)
	c := NewClipper(b, opts...)

	p = c.AddEndpoints(p)
	o.logger.Debug("endpoints added", "vertices", len(p))

	p, err := c.ClipAlongPerimeter(p)
	if err != nil {
		o.logger.Error("clipping failed", "error", err)
		return nil, err
	}
	o.logger.Debug("clipped", "vertices", len(p))

	p = c.CleanVertices(p)
	o.logger.Debug("cleaned", "vertices", len(p))

	p = c.OptimizePerimeter(p)
	o.logger.Debug("optimized", "vertices", len(p))

	return p, nil
}

// ErrGeometry is the error wrapped by every [*GeometryError].
var ErrGeometry = errors.New("geometry invariant violated")

// GeometryError reports a segment whose intersection with the rectangular
// boundary could not be classified.  This indicates a bug, not bad input.
type GeometryError struct {
	Start, End Vertex
	Count      int // number of distinct boundary intersections found
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("segment (%g,%g)-(%g,%g) crosses the boundary %d times: %v",
		e.Start.X, e.Start.Y, e.End.X, e.End.Y, e.Count, ErrGeometry)
}

func (e *GeometryError) Unwrap() error {
	return ErrGeometry
}

// clipAlong feeds every pair of consecutive vertices of p to clipLine.
// Output points equal to the previous raw vertex are dropped, so that
// shared joints appear only once.
func clipAlong(p Path, clipLine func(a, b Vertex) ([]Vertex, error), clamp func(Vertex) Vertex) (Path, error) {
	if len(p) == 0 {
		return Path{}, nil
	}

	res := make(Path, 0, len(p))
	res = append(res, clamp(p[0]))
	for i := 1; i < len(p); i++ {
		prev := p[i-1]
		line, err := clipLine(prev, p[i])
		if err != nil {
			return nil, err
		}
		for _, v := range line {
			if v != prev {
				res = append(res, v)
			}
		}
	}
	return res, nil
}

// cleanPath clamps every vertex and drops vertices within dedupEps of
// the last kept one.
func cleanPath(p Path, clamp func(Vertex) Vertex) Path {
	res := make(Path, len(p))
	for i, v := range p {
		res[i] = clamp(v)
	}
	return dedup(res)
}

// dedup removes every vertex within dedupEps of the previously kept vertex.
// The final vertex of p survives by replacing kept predecessors which are
// too close to it, unless the whole path collapses into its first vertex.
func dedup(p Path) Path {
	if len(p) == 0 {
		return Path{}
	}
	res := make(Path, 0, len(p))
	res = append(res, p[0])
	for i := 1; i < len(p); i++ {
		v := p[i]
		last := res[len(res)-1]
		if v.Distance(last) > dedupEps {
			res = append(res, v)
		} else if i == len(p)-1 && len(res) > 1 {
			res[len(res)-1] = v
			res = settleTail(res)
		}
	}
	return res
}

// settleTail drops the vertices before the last one which have come
// within dedupEps of it.  The first vertex is kept; if the last vertex is
// too close to it, the last vertex goes instead.
func settleTail(res Path) Path {
	for len(res) > 2 && res[len(res)-1].Distance(res[len(res)-2]) <= dedupEps {
		res = append(res[:len(res)-2], res[len(res)-1])
	}
	if len(res) == 2 && res[1].Distance(res[0]) <= dedupEps {
		res = res[:1]
	}
	return res
}

// splitPerimeter cuts p into the parts which do not run along the boundary.
// Every maximal run of perimeter moves is collapsed to its two ends: the
// first end finishes a segment, the second end starts the next one.
func splitPerimeter(p Path, onPerimeter func(a, b Vertex) bool) [][]Vertex {
	var segments [][]Vertex
	var segment []Vertex
	var pending *Vertex

	for i, v := range p {
		if i == 0 || !onPerimeter(p[i-1], v) {
			if pending != nil {
				segment = append(segment, *pending)
				pending = nil
			}
			segment = append(segment, v)
			continue
		}

		if pending == nil {
			segments = append(segments, segment)
			segment = nil
		}
		pending = &p[i]
	}

	if pending != nil {
		segment = append(segment, *pending)
	}
	if len(segment) > 0 {
		segments = append(segments, segment)
	}
	return segments
}

// orderSegments greedily reorders segments to shorten the travel between
// them.  The first segment stays first and the last stays last; every
// other segment is appended in turn, choosing the one with an end closest
// to the current position, reversed if its far end is the closer one.
func orderSegments(segments [][]Vertex, dist func(a, b Vertex) float64) [][]Vertex {
	if len(segments) < 3 {
		return segments
	}

	rest := make([][]Vertex, len(segments)-2)
	copy(rest, segments[1:len(segments)-1])

	walked := make([][]Vertex, 0, len(segments))
	current := segments[0]
	walked = append(walked, current)
	for len(rest) > 0 {
		tail := current[len(current)-1]

		best := 0
		bestDist := math.Inf(1)
		for i, seg := range rest {
			d := min(dist(tail, seg[0]), dist(tail, seg[len(seg)-1]))
			if d < bestDist {
				best = i
				bestDist = d
			}
		}

		next := rest[best]
		rest = append(rest[:best], rest[best+1:]...)
		if dist(tail, next[0]) > dist(tail, next[len(next)-1]) {
			next = Path(next).Reverse()
		}
		walked = append(walked, next)
		current = next
	}
	return append(walked, segments[len(segments)-1])
}

// joinSegments concatenates segments, inserting the route returned by
// trace between the end of each segment and the start of the next.
// Route points too close to their neighbours are left out.
func joinSegments(segments [][]Vertex, trace func(a, b Vertex) []Vertex) Path {
	var res Path
	push := func(v Vertex) {
		if len(res) == 0 || v.Distance(res[len(res)-1]) > dedupEps {
			res = append(res, v)
		}
	}

	for j, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if j > 0 && len(res) > 0 {
			for _, v := range trace(res[len(res)-1], seg[0]) {
				if v.Distance(seg[0]) > dedupEps {
					push(v)
				}
			}
			if len(res) > 1 && seg[0].Distance(res[len(res)-1]) <= dedupEps {
				res[len(res)-1] = seg[0]
				res = settleTail(res)
				seg = seg[1:]
			}
		}
		for _, v := range seg {
			push(v)
		}
	}
	return res
}
