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

// Package sandpath computes drawing paths for sand tables.
//
// A shape is first repeated into a sequence of loops by [TransformShapes].
// [Polish] then makes the result safe to draw on a given machine: it adds
// the configured start and end points, clips every move against the
// machine envelope, removes duplicate vertices and, if requested, shortens
// the travel along the edge of the table.  Two kinds of machine are
// supported, rectangular gantry tables ([Rect]) and round tables ([Polar]).
//
// Writers for the machine file formats are in the subpackage export.
package sandpath

//go:generate go run ./testcases/export
