package testcases

import "seehuhn.de/go/sandpath"

// edgeCases contains degenerate input.
var edgeCases = []Case{
	{
		Name:   "single_point_inside",
		Shape:  sandpath.Path{sandpath.V(10, 20)},
		Loop:   once,
		Bounds: table500,
	},
	{
		Name:   "single_point_outside",
		Shape:  sandpath.Path{sandpath.V(1000, -20)},
		Loop:   once,
		Bounds: disc250,
	},
	{
		Name:   "duplicates",
		Shape:  sandpath.Path{sandpath.V(0, 0), sandpath.V(0, 0.0001), sandpath.V(1, 1), sandpath.V(1, 1)},
		Loop:   once,
		Bounds: table500,
	},
	{
		Name:  "origin_only",
		Shape: sandpath.Path{sandpath.V(0, 0), sandpath.V(0, 0)},
		Loop:  once,
		Bounds: sandpath.Rect{MaxX: 500, MaxY: 500,
			OriginCorner: sandpath.CornerTopLeft},
	},
	{
		Name:  "origin_only_polar",
		Shape: sandpath.Path{sandpath.V(0, 0)},
		Loop:  once,
		Bounds: sandpath.Polar{MaxRadius: 250,
			StartPoint: sandpath.AnchorEdge, EndPoint: sandpath.AnchorEdge},
	},
	{
		Name:   "far_outside",
		Shape:  shape(polygon(4, 5000)),
		Loop:   once,
		Bounds: table500,
	},
	{
		Name:   "far_outside_polar",
		Shape:  shape(polygon(4, 5000)),
		Loop:   once,
		Bounds: disc250,
	},
}
