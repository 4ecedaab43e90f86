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

package plot

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes the scene to a single-page PDF file.
// The page is width x height points in size and uses black and shades
// of gray on a white background.
func (s *Scene) WritePDF(fileName string, width, height int) error {
	if err := s.checkView(width, height); err != nil {
		return err
	}
	layers, err := s.layers()
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Round caps make zero-length lines visible as dots.
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	m := s.deviceMatrix(width, height, false)
	for _, l := range layers {
		page.SetStrokeColor(color.DeviceGray(l.gray))
		page.SetLineWidth(l.width)

		var current vec.Vec2
		started := false
		forEachLine(l.path, func(a, b vec.Vec2) {
			a, b = apply(m, a), apply(m, b)
			if !started || a != current {
				page.MoveTo(a.X, a.Y)
			}
			page.LineTo(b.X, b.Y)
			current = b
			started = true
		})
		if started {
			page.Stroke()
		}
	}

	return page.Close()
}
