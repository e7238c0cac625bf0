package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// polygon returns a closed regular polygon with n corners.
// The first corner lies on the positive x-axis.
func polygon(n int, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for i := range n {
			angle := float64(i) * 2 * math.Pi / float64(n)
			buf[0] = pt(r*math.Cos(angle), r*math.Sin(angle))
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, buf[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// star returns a closed star with the given number of points, alternating
// between the outer and the inner radius.
func star(points int, outer, inner float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for i := range 2 * points {
			r := outer
			if i%2 == 1 {
				r = inner
			}
			angle := float64(i)*math.Pi/float64(points) + math.Pi/2
			buf[0] = pt(r*math.Cos(angle), r*math.Sin(angle))
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, buf[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// fivePointStar draws a pentagram: every second corner of a pentagon.
func fivePointStar(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		pts := make([]vec.Vec2, 5)
		for i := range 5 {
			angle := float64(i)*2*math.Pi/5 + math.Pi/2
			pts[i] = vec.Vec2{
				X: cx + r*math.Cos(angle),
				Y: cy + r*math.Sin(angle),
			}
		}

		// 0 -> 2 -> 4 -> 1 -> 3 -> 0
		order := []int{0, 2, 4, 1, 3}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[order[0]]}) {
			return
		}
		for _, i := range order[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{pts[i]}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// spiral returns an open Archimedean spiral around (cx, cy).
func spiral(cx, cy, rMin, rMax float64, turns float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		steps := max(int(turns*32), 8) // 32 segments per turn

		totalAngle := turns * 2 * math.Pi
		rGrowth := (rMax - rMin) / totalAngle

		if !yield(path.CmdMoveTo, []vec.Vec2{{X: cx + rMin, Y: cy}}) {
			return
		}
		for i := 1; i <= steps; i++ {
			angle := float64(i) / float64(steps) * totalAngle
			r := rMin + rGrowth*angle
			if !yield(path.CmdLineTo, []vec.Vec2{{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}}) {
				return
			}
		}
	}
}

// zigzag returns an open zigzag line with the given number of segments.
func zigzag(x1, cy, x2, amplitude float64, segments int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		segWidth := (x2 - x1) / float64(segments)

		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: cy}}) {
			return
		}
		for i := 1; i <= segments; i++ {
			y := cy + amplitude
			if i%2 == 1 {
				y = cy - amplitude
			}
			if !yield(path.CmdLineTo, []vec.Vec2{{X: x1 + float64(i)*segWidth, Y: y}}) {
				return
			}
		}
	}
}

// line returns the straight segment from (x1, y1) to (x2, y2).
func line(x1, y1, x2, y2 float64) path.Path {
	return (&path.Data{}).MoveTo(pt(x1, y1)).LineTo(pt(x2, y2)).Iter()
}

// rectangle returns the closed axis-aligned rectangle with the given corners.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close().
		Iter()
}

// rose returns the rhodonea curve r = a·cos(k·θ), sampled with n points.
func rose(a float64, k float64, n int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for i := range n + 1 {
			theta := float64(i) / float64(n) * 2 * math.Pi
			r := a * math.Cos(k*theta)
			buf[0] = pt(r*math.Cos(theta), r*math.Sin(theta))
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, buf[:]) {
				return
			}
		}
	}
}
