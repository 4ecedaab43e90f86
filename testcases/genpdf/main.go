// seehuhn.de/go/lineclip - line clipping for 2D graphics
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

// Command genpdf draws every clipping test case, for visual inspection.
// For each case, a PDF and a PNG file are written to testdata/reference/.
// The input segment is shown in gray, the visible part on top of it.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/lineclip/plot"
	"seehuhn.de/go/lineclip/testcases"
)

const refDir = "testdata/reference"

// size is the width and height of the drawings, in pixels or points.
const size = 200

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if category == "nonfinite" {
			// no sensible view for these
			continue
		}
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			scene := plot.NewScene(tc.Clip, plot.Segment{P1: tc.P1, P2: tc.P2})
			scene.ShowInput = true

			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := scene.WritePDF(pdfPath, size, size); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pngPath := filepath.Join(refDir, name+".png")
			if err := writePNG(scene, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writePNG(scene *plot.Scene, pngPath string) (err error) {
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return scene.WritePNG(f, size, size)
}
