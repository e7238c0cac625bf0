package testcases

import "seehuhn.de/go/sandpath"

// table500 is a 500x500 gantry table.
var table500 = sandpath.Rect{MaxX: 500, MaxY: 500}

var rectCases = []Case{
	{
		Name:   "inside",
		Shape:  shape(polygon(6, 100)),
		Loop:   once,
		Bounds: table500,
	},
	{
		Name:   "square_overflow",
		Shape:  shape(rectangle(-300, -200, 300, 200)),
		Loop:   once,
		Bounds: table500,
	},
	{
		Name:   "star_overflow",
		Shape:  shape(star(5, 400, 150)),
		Loop:   once,
		Bounds: table500,
	},
	{
		Name:   "pentagram_offset",
		Shape:  shape(fivePointStar(150, 100, 250)),
		Loop:   once,
		Bounds: table500,
	},
	{
		Name:   "corner_skim",
		Shape:  shape(line(-400, 200, -200, 400)),
		Loop:   once,
		Bounds: table500,
	},
	{
		Name:   "diagonal_through",
		Shape:  shape(line(-400, -300, 350, 320)),
		Loop:   once,
		Bounds: table500,
	},
	{
		Name:   "zigzag_wide",
		Shape:  shape(zigzag(-600, 0, 600, 350, 9)),
		Loop:   once,
		Bounds: table500,
	},
	{
		Name:  "origin_bottom_left",
		Shape: shape(spiral(0, 0, 5, 200, 3)),
		Loop:  once,
		Bounds: sandpath.Rect{MaxX: 500, MaxY: 500,
			OriginCorner: sandpath.CornerBottomLeft},
	},
	{
		Name:  "origin_top_right",
		Shape: shape(polygon(5, 120)),
		Loop: sandpath.LoopParams{
			StartingSize:  1,
			RepeatEnabled: true,
			NumLoops:      4,
			GrowEnabled:   true,
			GrowValue:     40,
		},
		Bounds: sandpath.Rect{MaxX: 500, MaxY: 500,
			OriginCorner: sandpath.CornerTopRight},
	},
	{
		Name:  "minimize_moves",
		Shape: shape(star(7, 380, 60)),
		Loop:  once,
		Bounds: sandpath.Rect{MaxX: 500, MaxY: 500,
			MinimizeMoves: true},
	},
	{
		Name:  "wide_table",
		Shape: shape(rose(300, 3, 180)),
		Loop:  once,
		Bounds: sandpath.Rect{MinX: 100, MaxX: 900, MinY: 0, MaxY: 300,
			OriginCorner: sandpath.CornerBottomRight, MinimizeMoves: true},
	},
}
