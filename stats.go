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

// Stats summarises a path.
type Stats struct {
	NumPoints int
	Distance  float64 // total length of all segments
}

// Stats returns the number of vertices and the total length of p.
func (p Path) Stats() Stats {
	s := Stats{NumPoints: len(p)}
	for i := 1; i < len(p); i++ {
		s.Distance += p[i].Distance(p[i-1])
	}
	return s
}
