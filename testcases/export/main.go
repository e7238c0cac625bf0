// Command export writes the catalogue, together with the polished paths,
// to testdata/testcases.json.  The file is used to compare the output
// against other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/sandpath"
	"seehuhn.de/go/sandpath/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string              `json:"name"`
	Machine  jsonMachine         `json:"machine"`
	Loop     sandpath.LoopParams `json:"loop"`
	Shape    []jsonSegment       `json:"shape"`
	Input    []jsonSegment       `json:"input"`
	Output   []jsonSegment       `json:"output"`
	Points   int                 `json:"points"`
	Distance float64             `json:"distance"`
}

type jsonMachine struct {
	Type          string              `json:"type"`
	MinX          float64             `json:"minX,omitempty"`
	MaxX          float64             `json:"maxX,omitempty"`
	MinY          float64             `json:"minY,omitempty"`
	MaxY          float64             `json:"maxY,omitempty"`
	OriginCorner  sandpath.Corner     `json:"originCorner,omitzero"`
	MaxRadius     float64             `json:"maxRadius,omitempty"`
	StartPoint    sandpath.AnchorMode `json:"startPoint,omitzero"`
	EndPoint      sandpath.AnchorMode `json:"endPoint,omitzero"`
	MinimizeMoves bool                `json:"minimizeMoves,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.Case) (jsonTestCase, error) {
	polished, err := tc.Polish()
	if err != nil {
		return jsonTestCase{}, err
	}
	stats := polished.Stats()

	return jsonTestCase{
		Name:     category + "_" + tc.Name,
		Machine:  machineToJSON(tc.Bounds),
		Loop:     tc.Loop,
		Shape:    pathToJSON(tc.Shape.Iter()),
		Input:    pathToJSON(tc.Input().Iter()),
		Output:   pathToJSON(polished.Iter()),
		Points:   stats.NumPoints,
		Distance: stats.Distance,
	}, nil
}

func machineToJSON(b sandpath.Bounds) jsonMachine {
	switch b := b.(type) {
	case sandpath.Rect:
		return jsonMachine{
			Type:          "rect",
			MinX:          b.MinX,
			MaxX:          b.MaxX,
			MinY:          b.MinY,
			MaxY:          b.MaxY,
			OriginCorner:  b.OriginCorner,
			MinimizeMoves: b.MinimizeMoves,
		}
	case sandpath.Polar:
		return jsonMachine{
			Type:          "polar",
			MaxRadius:     b.MaxRadius,
			StartPoint:    b.StartPoint,
			EndPoint:      b.EndPoint,
			MinimizeMoves: b.MinimizeMoves,
		}
	}
	return jsonMachine{}
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
