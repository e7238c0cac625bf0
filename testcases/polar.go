package testcases

import "seehuhn.de/go/sandpath"

// disc250 is a circular table of radius 250.
var disc250 = sandpath.Polar{MaxRadius: 250}

var polarCases = []Case{
	{
		Name:   "inside",
		Shape:  shape(polygon(8, 150)),
		Loop:   once,
		Bounds: disc250,
	},
	{
		Name:   "square_overflow",
		Shape:  shape(rectangle(-220, -220, 220, 220)),
		Loop:   once,
		Bounds: disc250,
	},
	{
		Name:   "outside_chord",
		Shape:  shape(line(300, 0, 0, 300)),
		Loop:   once,
		Bounds: disc250,
	},
	{
		Name:   "crossing_chord",
		Shape:  shape(line(-400, 50, 400, -30)),
		Loop:   once,
		Bounds: disc250,
	},
	{
		Name:   "star_overflow",
		Shape:  shape(star(6, 350, 100)),
		Loop:   once,
		Bounds: disc250,
	},
	{
		Name:  "center_to_edge",
		Shape: shape(spiral(0, 0, 10, 200, 4)),
		Loop:  once,
		Bounds: sandpath.Polar{MaxRadius: 250,
			StartPoint: sandpath.AnchorCenter, EndPoint: sandpath.AnchorEdge},
	},
	{
		Name:  "edge_to_center",
		Shape: shape(polygon(3, 180)),
		Loop: sandpath.LoopParams{
			StartingSize:  1,
			RepeatEnabled: true,
			NumLoops:      5,
			GrowEnabled:   true,
			GrowValue:     -15,
			SpinEnabled:   true,
			SpinValue:     10,
		},
		Bounds: sandpath.Polar{MaxRadius: 250,
			StartPoint: sandpath.AnchorEdge, EndPoint: sandpath.AnchorCenter},
	},
	{
		Name:  "minimize_moves",
		Shape: shape(rose(400, 4, 240)),
		Loop:  once,
		Bounds: sandpath.Polar{MaxRadius: 250,
			MinimizeMoves: true},
	},
}
