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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sandpath"
	"seehuhn.de/go/sandpath/export"
)

// Job is the content of a job file.
type Job struct {
	Shape   []jsonVertex        `json:"shape"`
	Loop    sandpath.LoopParams `json:"loop"`
	Machine Machine             `json:"machine"`
	Export  ExportOptions       `json:"export"`
}

type jsonVertex struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Speed float64 `json:"speed,omitempty"`
}

// Machine describes the table the job is drawn on.
type Machine struct {
	Type string `json:"type"` // "rect" or "polar"

	MinX         float64         `json:"minX"`
	MaxX         float64         `json:"maxX"`
	MinY         float64         `json:"minY"`
	MaxY         float64         `json:"maxY"`
	OriginCorner sandpath.Corner `json:"originCorner"`

	MaxRadius  float64             `json:"maxRadius"`
	StartPoint sandpath.AnchorMode `json:"startPoint"`
	EndPoint   sandpath.AnchorMode `json:"endPoint"`

	MinimizeMoves bool `json:"minimizeMoves"`
}

// ExportOptions holds the settings of the output file.
type ExportOptions struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	RhoMax  float64 `json:"rhoMax"`
	Pre     string  `json:"pre"`
	Post    string  `json:"post"`
}

// decodeJob reads a job file.  Loop settings which are not given in the
// file keep the values of [sandpath.DefaultLoopParams].
func decodeJob(r io.Reader) (*Job, error) {
	job := &Job{Loop: sandpath.DefaultLoopParams()}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(job); err != nil {
		return nil, fmt.Errorf("invalid job file: %w", err)
	}
	if len(job.Shape) == 0 {
		return nil, errors.New("job has no shape")
	}
	return job, nil
}

// ShapePath returns the shape of the job.
func (j *Job) ShapePath() sandpath.Path {
	res := make(sandpath.Path, len(j.Shape))
	for i, v := range j.Shape {
		res[i] = sandpath.Vertex{Vec2: vec.Vec2{X: v.X, Y: v.Y}, Speed: v.Speed}
	}
	return res
}

// Bounds returns the envelope of the machine.
func (m *Machine) Bounds() (sandpath.Bounds, error) {
	switch m.Type {
	case "rect":
		b := sandpath.Rect{
			MinX:          m.MinX,
			MaxX:          m.MaxX,
			MinY:          m.MinY,
			MaxY:          m.MaxY,
			MinimizeMoves: m.MinimizeMoves,
			OriginCorner:  m.OriginCorner,
		}
		if b.SizeX() == 0 || b.SizeY() == 0 {
			return nil, errors.New("rect machine has zero size")
		}
		return b, nil
	case "polar":
		if !(m.MaxRadius > 0) {
			return nil, errors.New("polar machine needs a positive maxRadius")
		}
		return sandpath.Polar{
			MaxRadius:     m.MaxRadius,
			MinimizeMoves: m.MinimizeMoves,
			StartPoint:    m.StartPoint,
			EndPoint:      m.EndPoint,
		}, nil
	case "":
		return nil, errors.New("machine type missing")
	default:
		return nil, fmt.Errorf("unknown machine type %q", m.Type)
	}
}

// output formats
const (
	formatGCode    = "gcode"
	formatThetaRho = "thr"
	formatSVG      = "svg"
)

// outputFormat determines the output format.  An explicit format takes
// precedence over the extension of the output file name.  Without
// either, gantry tables get GCode and polar tables get theta-rho.
func outputFormat(format, fileName string, b sandpath.Bounds) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(fileName)) {
		case ".gcode", ".nc", ".gc":
			format = formatGCode
		case ".thr":
			format = formatThetaRho
		case ".svg":
			format = formatSVG
		}
	}
	if format == "" {
		if _, ok := b.(sandpath.Polar); ok {
			return formatThetaRho, nil
		}
		return formatGCode, nil
	}

	switch format {
	case formatGCode, formatThetaRho, formatSVG:
		return format, nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}

// writer returns the exporter for the given format.
func (j *Job) writer(format string, b sandpath.Bounds) (export.Writer, error) {
	switch format {
	case formatGCode:
		return &export.GCode{
			OffsetX: j.Export.OffsetX,
			OffsetY: j.Export.OffsetY,
			Pre:     j.Export.Pre,
			Post:    j.Export.Post,
		}, nil
	case formatThetaRho:
		p, ok := b.(sandpath.Polar)
		if !ok {
			return nil, errors.New("theta-rho output needs a polar machine")
		}
		return &export.ThetaRho{
			MaxRadius: p.MaxRadius,
			RhoMax:    j.Export.RhoMax,
			Pre:       j.Export.Pre,
			Post:      j.Export.Post,
		}, nil
	case formatSVG:
		ext := b.Extent()
		return &export.SVG{
			Width:  ext.URx - ext.LLx,
			Height: ext.URy - ext.LLy,
		}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
