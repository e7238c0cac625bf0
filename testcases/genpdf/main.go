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

// Command genpdf draws every case of the catalogue after polishing.
// For each case it writes a PDF file and a PNG image to testdata/preview.
// Run from the module root directory.
package main

import (
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/sandpath/preview"
	"seehuhn.de/go/sandpath/testcases"
)

const (
	outDir  = "testdata/preview"
	pngSize = 512
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.Case, name string) error {
	p, err := tc.Polish()
	if err != nil {
		return err
	}

	err = preview.WritePDF(filepath.Join(outDir, name+".pdf"), p, tc.Bounds)
	if err != nil {
		return err
	}

	return writePNG(filepath.Join(outDir, name+".png"), preview.Image(p, tc.Bounds, pngSize))
}

func writePNG(fileName string, img *image.Gray) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
