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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// layer is a set of lines drawn with the same style.
type layer struct {
	path  *path.Data
	width float64 // line width in device units

	rgb  color.RGBA // colour on a black background (PNG)
	gray float64    // gray level on a white background (PDF)
}

// Styles of the scene elements, from bottom to top.
var (
	inputStyle   = layer{width: 1.5, rgb: color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}, gray: 0.8}
	axesStyle    = layer{width: 1, rgb: color.RGBA{B: 0xFF, A: 0xFF}, gray: 0.5}
	clipStyle    = layer{width: 1, rgb: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, gray: 0}
	visibleStyle = layer{width: 3, rgb: color.RGBA{R: 0xFF, A: 0xFF}, gray: 0}
)

// layers builds the paths for all scene elements in user space,
// in drawing order.
func (s *Scene) layers() ([]layer, error) {
	visible, err := s.Clipped()
	if err != nil {
		return nil, err
	}

	var res []layer

	if s.ShowInput && len(s.Segments) > 0 {
		l := inputStyle
		l.path = segmentsPath(s.Segments)
		res = append(res, l)
	}

	if s.Axes {
		v := s.View
		l := axesStyle
		l.path = (&path.Data{}).
			MoveTo(vec.Vec2{X: v.LLx, Y: 0}).
			LineTo(vec.Vec2{X: v.URx, Y: 0}).
			MoveTo(vec.Vec2{X: 0, Y: v.LLy}).
			LineTo(vec.Vec2{X: 0, Y: v.URy})
		res = append(res, l)
	}

	c := s.Clip
	l := clipStyle
	l.path = (&path.Data{}).
		MoveTo(vec.Vec2{X: c.LLx, Y: c.LLy}).
		LineTo(vec.Vec2{X: c.URx, Y: c.LLy}).
		LineTo(vec.Vec2{X: c.URx, Y: c.URy}).
		LineTo(vec.Vec2{X: c.LLx, Y: c.URy}).
		Close()
	res = append(res, l)

	if len(visible) > 0 {
		l := visibleStyle
		l.path = segmentsPath(visible)
		res = append(res, l)
	}

	return res, nil
}

// segmentsPath returns a path with one subpath per segment.
func segmentsPath(segs []Segment) *path.Data {
	p := &path.Data{}
	for _, seg := range segs {
		p = p.MoveTo(seg.P1).LineTo(seg.P2)
	}
	return p
}

// forEachLine calls fn for every straight line in p. Closing a subpath
// produces a line back to its start point, unless the path is already
// there. Subpaths consisting of a single point are reported as a line of
// length zero. Curves are not used by this package and are skipped.
func forEachLine(p *path.Data, fn func(a, b vec.Vec2)) {
	var current, start vec.Vec2
	drawn := true

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if !drawn {
				fn(current, current)
			}
			current = p.Coords[coordIdx]
			start = current
			drawn = false
			coordIdx++

		case path.CmdLineTo:
			fn(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			drawn = true
			coordIdx++

		case path.CmdQuadTo:
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if current != start {
				fn(current, start)
			}
			current = start
			drawn = true
		}
	}
	if !drawn {
		fn(current, current)
	}
}

// deviceMatrix maps the view rectangle onto a width x height region.
// If flipY is set, the device y axis points downwards, as in images.
func (s *Scene) deviceMatrix(width, height int, flipY bool) matrix.Matrix {
	v := s.View
	sx := float64(width) / (v.URx - v.LLx)
	sy := float64(height) / (v.URy - v.LLy)
	if flipY {
		return matrix.Matrix{sx, 0, 0, -sy, -v.LLx * sx, v.URy * sy}
	}
	return matrix.Matrix{sx, 0, 0, sy, -v.LLx * sx, -v.LLy * sy}
}

// apply transforms p by m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
