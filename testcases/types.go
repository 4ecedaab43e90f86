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

// Package testcases contains line clipping examples with known results.
package testcases

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single clipping test.
type TestCase struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Clip   rect.Rect // the clip rectangle
	P1, P2 vec.Vec2  // the segment to clip
	Want   Result    // the expected outcome

	// Replacements is the number of endpoint replacements the
	// algorithm performs before reaching a decision.
	Replacements int
}

// Result is the expected outcome of a clipping operation.
type Result interface {
	isResult()
}

// Accepted means that the part of the segment from P1 to P2 is visible.
type Accepted struct {
	P1, P2 vec.Vec2
}

func (Accepted) isResult() {}

// Rejected means that no part of the segment is visible.
type Rejected struct{}

func (Rejected) isResult() {}

// Box is the clip rectangle used by the classic demonstration program,
// [4, 10] x [4, 8].
var Box = rect.Rect{LLx: 4, LLy: 4, URx: 10, URy: 8}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// accept is a helper to create an Accepted result.
func accept(x1, y1, x2, y2 float64) Accepted {
	return Accepted{P1: pt(x1, y1), P2: pt(x2, y2)}
}
