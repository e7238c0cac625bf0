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
	"log/slog"
	"math"

	"seehuhn.de/go/geom/vec"
)

const (
	// radiusMargin keeps clamped points strictly inside the circle, so
	// that rounding errors cannot push them out again.
	radiusMargin = 1e-4

	// coincidentEps is the distance below which the two ends of a
	// segment are treated as the same point.
	coincidentEps = 1e-5

	// perimeterStep is the largest angle between two consecutive points
	// on the circle which still counts as a move along the boundary.
	perimeterStep = 3.0 / 50
)

type polarClipper struct {
	Polar
	log *slog.Logger
}

// clamp scales v back into the circle if it lies outside.
func (c *polarClipper) clamp(v Vertex) Vertex {
	r := v.Magnitude()
	if r <= c.MaxRadius {
		return v
	}
	return v.withPos(v.Vec2.Mul((c.MaxRadius - radiusMargin) / r))
}

// toEdge projects v radially onto the clamping radius.
func (c *polarClipper) toEdge(v Vertex) Vertex {
	dir := unit(v.Vec2)
	if dir == (vec.Vec2{}) {
		dir = vec.Vec2{X: 1}
	}
	return v.withPos(dir.Mul(c.MaxRadius - radiusMargin))
}

func (c *polarClipper) anchor(mode AnchorMode, v Vertex) (Vertex, bool) {
	switch mode {
	case AnchorCenter:
		return v.withPos(vec.Vec2{}), true
	case AnchorEdge:
		return c.toEdge(v), true
	default:
		return Vertex{}, false
	}
}

// AddEndpoints implements the [Clipper] interface.
//
// A start anchor is placed before the first vertex and an end anchor after
// the last one.  Edge anchors are the radial projections of the adjacent
// vertex onto the circle.
func (c *polarClipper) AddEndpoints(p Path) Path {
	if len(p) == 0 {
		return p
	}

	res := make(Path, 0, len(p)+2)
	if a, ok := c.anchor(c.StartPoint, p[0]); ok {
		res = append(res, a)
	}
	res = append(res, p...)
	if a, ok := c.anchor(c.EndPoint, p[len(p)-1]); ok {
		res = append(res, a)
	}
	return res
}

// ClipAlongPerimeter implements the [Clipper] interface.
func (c *polarClipper) ClipAlongPerimeter(p Path) (Path, error) {
	return clipAlong(p, c.ClipLine, c.clamp)
}

// CleanVertices implements the [Clipper] interface.
func (c *polarClipper) CleanVertices(p Path) Path {
	return cleanPath(p, c.clamp)
}

// ClipLine implements the [Clipper] interface.
//
// Parts of the segment outside the circle are replaced by arcs along the
// circle.  ClipLine never fails.
func (c *polarClipper) ClipLine(start, end Vertex) ([]Vertex, error) {
	size := c.MaxRadius
	radStart := start.Magnitude()
	radEnd := end.Magnitude()

	if radStart <= size && radEnd <= size {
		return []Vertex{start, end}, nil
	}

	if start.Distance(end) < coincidentEps {
		return []Vertex{c.clamp(start)}, nil
	}

	p1, on1, p2, on2, ok := c.intersections(start.Vec2, end.Vec2)
	if !ok || (!on1 && !on2) {
		// the segment never enters the circle
		return c.trace(start, end), nil
	}

	if radStart > size+1e-9 && radEnd > size+1e-9 {
		res := c.trace(start, end.withPos(p1))
		res = append(res, end.withPos(p1))
		return append(res, c.trace(end.withPos(p2), end)...), nil
	}

	if radStart <= size {
		res := []Vertex{start}
		res = append(res, c.trace(end.withPos(p2), end)...)
		return append(res, c.clamp(end)), nil
	}

	entry := p2
	if on1 {
		entry = p1
	}
	res := c.trace(start, end.withPos(entry))
	return append(res, end.withPos(entry), end), nil
}

// intersections returns the points where the line through start and end
// meets the circle, in the order they are passed when moving from start
// to end.  The flags report whether each point lies on the segment.
func (c *polarClipper) intersections(start, end vec.Vec2) (p1 vec.Vec2, on1 bool, p2 vec.Vec2, on2 bool, ok bool) {
	size := c.MaxRadius
	dir := unit(end.Sub(start))
	t := -dir.Dot(start)
	foot := start.Add(dir.Mul(t))
	d := foot.Length()
	if d >= size {
		return
	}

	dt := math.Sqrt(size*size - d*d)
	p1 = start.Add(dir.Mul(t - dt))
	p2 = start.Add(dir.Mul(t + dt))
	return p1, onSegment(start, end, p1), p2, onSegment(start, end, p2), true
}

// trace returns points on the circle from the angle of a towards the angle
// of b.  The angle of b itself is not included.
func (c *polarClipper) trace(a, b Vertex) []Vertex {
	pts := arc(c.MaxRadius, a.Angle(), b.Angle())
	res := make([]Vertex, len(pts))
	for i, p := range pts {
		res[i] = b.withPos(p)
	}
	return res
}

// tracePerimeter is trace with every point clamped into the circle.
func (c *polarClipper) tracePerimeter(a, b Vertex) []Vertex {
	res := c.trace(a, b)
	for i, v := range res {
		res[i] = c.clamp(v)
	}
	return res
}

// OptimizePerimeter implements the [Clipper] interface.
//
// Every run of moves along the circle is reduced to its two ends, and the
// resulting pieces are joined again by the shorter arc.  If MinimizeMoves
// is set, the pieces are reordered first to shorten the travel along the
// circle.
func (c *polarClipper) OptimizePerimeter(p Path) Path {
	segments := splitPerimeter(p, c.onPerimeter)
	if c.MinimizeMoves {
		segments = orderSegments(segments, c.perimeterDistance)
	}
	return dedup(joinSegments(segments, c.tracePerimeter))
}

// onPerimeter reports whether the move from a to b follows the circle.
func (c *polarClipper) onPerimeter(a, b Vertex) bool {
	r := c.MaxRadius
	return math.Abs(a.Magnitude()-r) < dedupEps &&
		math.Abs(b.Magnitude()-r) < dedupEps &&
		angularDistance(a.Vec2, b.Vec2) < perimeterStep
}

// perimeterDistance is the length of the shorter arc between the angles
// of a and b.
func (c *polarClipper) perimeterDistance(a, b Vertex) float64 {
	return angularDistance(a.Vec2, b.Vec2) * c.MaxRadius
}
