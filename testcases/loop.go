package testcases

import "seehuhn.de/go/sandpath"

var loopCases = []Case{
	{
		Name:  "grow_smear",
		Shape: shape(polygon(4, 10)),
		Loop: sandpath.LoopParams{
			StartingSize:  1,
			RepeatEnabled: true,
			NumLoops:      12,
			Method:        sandpath.Smear,
			GrowEnabled:   true,
			GrowValue:     200,
		},
		Bounds: table500,
	},
	{
		Name:  "spin_switchback",
		Shape: shape(polygon(3, 100)),
		Loop: sandpath.LoopParams{
			StartingSize:    1,
			RepeatEnabled:   true,
			NumLoops:        24,
			Method:          sandpath.Intact,
			SpinEnabled:     true,
			SpinValue:       5,
			SpinSwitchbacks: 2,
		},
		Bounds: disc250,
	},
	{
		Name:  "track",
		Shape: shape(polygon(5, 40)),
		Loop: sandpath.LoopParams{
			StartingSize:  1,
			RepeatEnabled: true,
			NumLoops:      16,
			TrackEnabled:  true,
			TrackValue:    120,
			TrackLength:   1,
		},
		Bounds: disc250,
	},
	{
		Name:  "track_backtrack",
		Shape: shape(polygon(6, 30)),
		Loop: sandpath.LoopParams{
			StartingSize:     1,
			RepeatEnabled:    true,
			NumLoops:         8,
			Method:           sandpath.Smear,
			GrowEnabled:      true,
			GrowValue:        10,
			TrackEnabled:     true,
			TrackGrowEnabled: true,
			TrackValue:       100,
			TrackLength:      2,
			TrackGrow:        50,
			TrackNumLoops:    2,
		},
		Bounds: table500,
	},
	{
		Name:  "partial_final_loop",
		Shape: shape(polygon(10, 20)),
		Loop: sandpath.LoopParams{
			StartingSize:   1,
			RepeatEnabled:  true,
			NumLoops:       6,
			GrowEnabled:    true,
			GrowValue:      150,
			DrawPortionPct: 50,
		},
		Bounds: sandpath.Polar{MaxRadius: 250, EndPoint: sandpath.AnchorEdge},
	},
	{
		Name:   "defaults",
		Shape:  shape(star(5, 10, 4)),
		Loop:   sandpath.DefaultLoopParams(),
		Bounds: table500,
	},
}
