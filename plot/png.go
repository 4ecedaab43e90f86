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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"
)

// Image renders the scene into a new width x height image with a black
// background. The clip rectangle is drawn in white, the axes in blue,
// the input segments in gray and the visible parts in red.
func (s *Scene) Image(width, height int) (*image.RGBA, error) {
	if err := s.checkView(width, height); err != nil {
		return nil, err
	}
	layers, err := s.layers()
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	m := s.deviceMatrix(width, height, true)
	r := vector.NewRasterizer(width, height)
	for _, l := range layers {
		r.Reset(width, height)
		hw := l.width / 2
		forEachLine(l.path, func(a, b vec.Vec2) {
			addLine(r, apply(m, a), apply(m, b), hw)
		})
		r.Draw(img, img.Bounds(), image.NewUniform(l.rgb), image.Point{})
	}
	return img, nil
}

// WritePNG renders the scene as a width x height PNG image to w.
// See [Scene.Image] for the colours used.
func (s *Scene) WritePNG(w io.Writer, width, height int) error {
	img, err := s.Image(width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// addLine adds the outline of a line from a to b with square caps to r.
// All points are in device coordinates and hw is half the line width.
// A line of length zero becomes a square of side 2*hw centred at a.
//
// The outline always has the same orientation, so that overlapping lines
// accumulate instead of cancelling.
func addLine(r *vector.Rasterizer, a, b vec.Vec2, hw float64) {
	t := vec.Vec2{X: 1, Y: 0}
	if d := b.Sub(a); d.Length() > zeroLengthThreshold {
		t = d.Mul(1 / d.Length())
	}
	t = t.Mul(hw)                  // half width along the line
	n := vec.Vec2{X: -t.Y, Y: t.X} // half width across the line

	a = a.Sub(t)
	b = b.Add(t)
	corners := [4]vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}

	r.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, c := range corners[1:] {
		r.LineTo(float32(c.X), float32(c.Y))
	}
	r.ClosePath()
}

// zeroLengthThreshold is the device-space length below which a line
// is drawn as a square dot.
const zeroLengthThreshold = 1e-10
