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

package lineclip

import (
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// OutCode describes the position of a point relative to the four
// half-planes bounding a clip rectangle.
// The zero value, Inside, means that the point lies in the closed rectangle.
type OutCode uint8

// Region bits of an OutCode.
const (
	Inside OutCode = 0
	Left   OutCode = 1 // x < xMin
	Right  OutCode = 2 // x > xMax
	Bottom OutCode = 4 // y < yMin
	Top    OutCode = 8 // y > yMax
)

// Classify computes the outcode of p with respect to the clip rectangle r.
// Points on the boundary of r are inside.
func Classify(p vec.Vec2, r rect.Rect) OutCode {
	var code OutCode
	if p.X < r.LLx {
		code |= Left
	} else if p.X > r.URx {
		code |= Right
	}
	if p.Y < r.LLy {
		code |= Bottom
	} else if p.Y > r.URy {
		code |= Top
	}
	return code
}

func (c OutCode) String() string {
	if c == Inside {
		return "inside"
	}

	var parts []string
	for _, b := range []struct {
		bit  OutCode
		name string
	}{
		{Left, "left"},
		{Right, "right"},
		{Bottom, "bottom"},
		{Top, "top"},
	} {
		if c&b.bit != 0 {
			parts = append(parts, b.name)
		}
	}
	return strings.Join(parts, "|")
}
