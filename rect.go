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
	// maxBisectDepth limits the recursion when a segment passes the box
	// without entering it.
	maxBisectDepth = 32

	// minBisectLength is the shortest segment which is still bisected.
	minBisectLength = 1e-9

	// edgeEps is the tolerance for deciding that a point lies on an edge.
	edgeEps = 1e-4
)

// Region codes for points outside the box.
const (
	regionBelow = 1 << iota
	regionAbove
	regionLeft
	regionRight
)

type rectClipper struct {
	Rect
	sx, sy  float64
	corners [4]vec.Vec2
	log     *slog.Logger
}

func newRectClipper(b Rect, o options) *rectClipper {
	sx, sy := b.SizeX(), b.SizeY()
	return &rectClipper{
		Rect: b,
		sx:   sx,
		sy:   sy,
		corners: [4]vec.Vec2{
			{X: -sx, Y: -sy},
			{X: -sx, Y: sy},
			{X: sx, Y: sy},
			{X: sx, Y: -sy},
		},
		log: o.logger,
	}
}

// region classifies v relative to the box.  Points on an edge are inside.
func (c *rectClipper) region(v vec.Vec2) int {
	code := 0
	if v.Y < -c.sy {
		code |= regionBelow
	} else if v.Y > c.sy {
		code |= regionAbove
	}
	if v.X < -c.sx {
		code |= regionLeft
	} else if v.X > c.sx {
		code |= regionRight
	}
	return code
}

// clamp moves v to the nearest point of the box.
func (c *rectClipper) clamp(v Vertex) Vertex {
	return v.withPos(vec.Vec2{
		X: min(c.sx, max(-c.sx, v.X)),
		Y: min(c.sy, max(-c.sy, v.Y)),
	})
}

// AddEndpoints implements the [Clipper] interface.
//
// The end of the path which lies further from the centre is extended
// outwards to the half diagonal of the box, and from there the path walks
// along the corners until it reaches the origin corner.
func (c *rectClipper) AddEndpoints(p Path) Path {
	if c.OriginCorner == CornerNone || len(p) == 0 {
		return p
	}

	first, last := p[0], p[len(p)-1]
	maxRadius := math.Hypot(c.sx, c.sy)
	outward := first.Magnitude() <= last.Magnitude()

	from := first
	if outward {
		from = last
	}
	dir := unit(from.Vec2)
	if dir == (vec.Vec2{}) {
		dir = vec.Vec2{X: 1}
	}
	out := dir.Mul(maxRadius)

	var next int
	switch {
	case out.X >= c.sx:
		next = 2
	case out.X <= -c.sx:
		next = 0
	case out.Y >= c.sy:
		next = 1
	default:
		next = 3
	}

	origin := int(c.OriginCorner) - 1
	added := []Vertex{from.withPos(out)}
	for next != origin {
		added = append(added, first.withPos(c.corners[next]))
		next = (next + 3) % 4
	}
	added = append(added, first.withPos(c.corners[origin]))

	res := make(Path, 0, len(p)+len(added))
	if outward {
		res = append(res, p...)
		res = append(res, added...)
	} else {
		for i := len(added) - 1; i >= 0; i-- {
			res = append(res, added[i])
		}
		res = append(res, p...)
	}
	return res
}

// ClipAlongPerimeter implements the [Clipper] interface.
func (c *rectClipper) ClipAlongPerimeter(p Path) (Path, error) {
	return clipAlong(p, c.ClipLine, c.clamp)
}

// CleanVertices implements the [Clipper] interface.
func (c *rectClipper) CleanVertices(p Path) Path {
	return cleanPath(p, c.clamp)
}

// ClipLine implements the [Clipper] interface.
func (c *rectClipper) ClipLine(start, end Vertex) ([]Vertex, error) {
	return c.clipLine(start, end, 0)
}

func (c *rectClipper) clipLine(start, end Vertex, depth int) ([]Vertex, error) {
	codeStart := c.region(start.Vec2)
	codeEnd := c.region(end.Vec2)

	switch {
	case codeStart == 0 && codeEnd == 0:
		return []Vertex{start, end}, nil
	case codeStart == codeEnd, codeStart&codeEnd != 0:
		// both points are beyond the same edge
		return []Vertex{c.clamp(start), c.clamp(end)}, nil
	case codeStart == 0:
		exit := end.withPos(c.boundPoint(start.Vec2, end.Vec2))
		if last := c.clamp(end); last.Distance(exit) > dedupEps {
			return []Vertex{start, exit, last}, nil
		}
		return []Vertex{start, exit}, nil
	case codeEnd == 0:
		entry := end.withPos(c.boundPoint(end.Vec2, start.Vec2))
		return []Vertex{entry, end}, nil
	}

	hits, err := c.edgeIntersections(start, end)
	if err != nil {
		return nil, err
	}
	switch len(hits) {
	case 2:
		if hits[0].Sub(start.Vec2).Length() > hits[1].Sub(start.Vec2).Length() {
			hits[0], hits[1] = hits[1], hits[0]
		}
		return []Vertex{end.withPos(hits[0]), end.withPos(hits[1]), c.clamp(end)}, nil
	case 1:
		// The segment only touches a corner.  Edge parameters are
		// half-open, so a corner is counted for one of its two edges.
		return []Vertex{end.withPos(hits[0]), c.clamp(end)}, nil
	}

	// The segment passes the box without entering it.  Split it until
	// the halves can be classified.
	if depth >= maxBisectDepth || start.Distance(end) < minBisectLength {
		c.log.Warn("bisection cutoff reached",
			"start", start.Vec2, "end", end.Vec2, "depth", depth)
		return []Vertex{c.clamp(start), c.clamp(end)}, nil
	}
	mid := end.withPos(start.Vec2.Add(end.Vec2).Mul(0.5))
	head, err := c.clipLine(start, mid, depth+1)
	if err != nil {
		return nil, err
	}
	tail, err := c.clipLine(mid, end, depth+1)
	if err != nil {
		return nil, err
	}
	return append(head, tail...), nil
}

// boundPoint returns the point where the segment from the inside point
// good to the outside point bad leaves the box.  The overshot x
// coordinate is fixed first, then y is checked again.
func (c *rectClipper) boundPoint(good, bad vec.Vec2) vec.Vec2 {
	p := bad
	if p.X < -c.sx || p.X > c.sx {
		x := c.sx
		if p.X < -c.sx {
			x = -c.sx
		}
		p.Y = good.Y + (x-good.X)/(good.X-p.X)*(good.Y-p.Y)
		p.X = x
	}
	if p.Y < -c.sy || p.Y > c.sy {
		y := c.sy
		if p.Y < -c.sy {
			y = -c.sy
		}
		p.X = good.X + (y-good.Y)/(good.Y-p.Y)*(good.X-p.X)
		p.Y = y
	}
	return p
}

// edgeIntersections returns the distinct points where the segment from
// start to end crosses the edges of the box.
func (c *rectClipper) edgeIntersections(start, end Vertex) ([]vec.Vec2, error) {
	sx, sy := c.sx, c.sy
	sides := [4][2]vec.Vec2{
		{{X: -sx, Y: -sy}, {X: -sx, Y: sy}}, // left
		{{X: sx, Y: -sy}, {X: sx, Y: sy}},   // right
		{{X: -sx, Y: -sy}, {X: sx, Y: -sy}}, // bottom
		{{X: -sx, Y: sy}, {X: sx, Y: sy}},   // top
	}

	var hits []vec.Vec2
	for _, side := range sides {
		p, ok := intersect(start.Vec2, end.Vec2, side[0], side[1])
		if !ok {
			continue
		}
		dup := false
		for _, q := range hits {
			if p.Sub(q).Length() < minBisectLength {
				dup = true
				break
			}
		}
		if !dup {
			hits = append(hits, p)
		}
	}

	if len(hits) > 2 {
		return nil, &GeometryError{Start: start, End: end, Count: len(hits)}
	}
	return hits, nil
}

// intersect finds the intersection of the segments a0-a1 and b0-b1.
// Parallel segments never intersect.  Both segment parameters must lie in
// the half-open range [0, 1).
func intersect(a0, a1, b0, b1 vec.Vec2) (vec.Vec2, bool) {
	line := a1.Sub(a0)
	side := b1.Sub(b0)
	cross := line.X*side.Y - line.Y*side.X
	if cross == 0 {
		return vec.Vec2{}, false
	}

	diff := b0.Sub(a0)
	t := (diff.X*side.Y - diff.Y*side.X) / cross
	if t < 0 || t >= 1 {
		return vec.Vec2{}, false
	}
	u := (diff.X*line.Y - diff.Y*line.X) / cross
	if u < 0 || u >= 1 {
		return vec.Vec2{}, false
	}
	return a0.Add(line.Mul(t)), true
}

// OptimizePerimeter implements the [Clipper] interface.
//
// Loops which return to a corner already visited during the same run
// along the edges are cut out.  If MinimizeMoves is set, the pieces of the
// path between perimeter runs are then reordered to shorten the travel
// along the edges.
func (c *rectClipper) OptimizePerimeter(p Path) Path {
	p = c.removeCornerLoops(p)
	if c.MinimizeMoves {
		segments := splitPerimeter(p, c.onPerimeter)
		segments = orderSegments(segments, c.perimeterDistance)
		p = joinSegments(segments, c.tracePerimeter)
	}
	return dedup(p)
}

// removeCornerLoops rolls the path back whenever a run along the edges
// visits the same corner twice.
func (c *rectClipper) removeCornerLoops(p Path) Path {
	res := make(Path, 0, len(p))
	visits := make(map[vec.Vec2]int)
	for _, v := range p {
		if len(res) > 0 && !c.onPerimeter(res[len(res)-1], v) {
			clear(visits)
		}

		if key, ok := c.cornerKey(v); ok {
			if idx, seen := visits[key]; seen {
				res = res[:idx+1]
				for k, j := range visits {
					if j > idx {
						delete(visits, k)
					}
				}
				continue
			}
			visits[key] = len(res)
		}
		res = append(res, v)
	}
	return res
}

// cornerKey returns the exact corner coordinates if v lies on a corner.
func (c *rectClipper) cornerKey(v Vertex) (vec.Vec2, bool) {
	if math.Abs(math.Abs(v.X)-c.sx) >= edgeEps || math.Abs(math.Abs(v.Y)-c.sy) >= edgeEps {
		return vec.Vec2{}, false
	}
	return vec.Vec2{X: sign(v.X) * c.sx, Y: sign(v.Y) * c.sy}, true
}

// onPerimeter reports whether the move from a to b runs along one edge.
func (c *rectClipper) onPerimeter(a, b Vertex) bool {
	dx := math.Abs(math.Abs(a.X) - c.sx)
	dy := math.Abs(math.Abs(a.Y) - c.sy)
	return (math.Abs(a.X-b.X) < edgeEps && dx < edgeEps) ||
		(math.Abs(a.Y-b.Y) < edgeEps && dy < edgeEps)
}

// tracePerimeter returns the corners visited on the shortest route along
// the edges from a to b.  Both points must lie on the boundary.
func (c *rectClipper) tracePerimeter(a, b Vertex) []Vertex {
	if (math.Abs(a.X-b.X) < edgeEps && math.Abs(math.Abs(a.X)-c.sx) < edgeEps) ||
		(math.Abs(a.Y-b.Y) < edgeEps && math.Abs(math.Abs(a.Y)-c.sy) < edgeEps) {
		return nil
	}

	// "vertical" points lie on the left or right edge
	aVert := math.Abs(math.Abs(a.X)-c.sx) < dedupEps
	bVert := math.Abs(math.Abs(b.X)-c.sx) < dedupEps

	if aVert != bVert {
		if aVert {
			return []Vertex{b.withPos(vec.Vec2{X: a.X, Y: b.Y})}
		}
		return []Vertex{b.withPos(vec.Vec2{X: b.X, Y: a.Y})}
	}

	if !aVert {
		// opposite horizontal edges: go around the nearer side
		xSign := -1.0
		if math.Abs(-2*c.sx-a.X-b.X) > math.Abs(2*c.sx-a.X-b.X) {
			xSign = 1
		}
		return []Vertex{
			b.withPos(vec.Vec2{X: xSign * c.sx, Y: sign(a.Y) * c.sy}),
			b.withPos(vec.Vec2{X: xSign * c.sx, Y: -sign(a.Y) * c.sy}),
		}
	}

	ySign := -1.0
	if math.Abs(-2*c.sy-a.Y-b.Y) > math.Abs(2*c.sy-a.Y-b.Y) {
		ySign = 1
	}
	return []Vertex{
		b.withPos(vec.Vec2{X: sign(a.X) * c.sx, Y: ySign * c.sy}),
		b.withPos(vec.Vec2{X: -sign(a.X) * c.sx, Y: ySign * c.sy}),
	}
}

// perimeterDistance is the length of the route along the edges from a to b.
func (c *rectClipper) perimeterDistance(a, b Vertex) float64 {
	route := append([]Vertex{a}, c.tracePerimeter(a, b)...)
	route = append(route, b)
	return Path(route).Stats().Distance
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
