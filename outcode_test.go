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
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/lineclip/testcases"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		p    vec.Vec2
		want OutCode
	}{
		{vec.Vec2{X: 5, Y: 5}, Inside},
		{vec.Vec2{X: 7, Y: 6}, Inside},
		{vec.Vec2{X: 0, Y: 6}, Left},
		{vec.Vec2{X: 11, Y: 6}, Right},
		{vec.Vec2{X: 7, Y: 0}, Bottom},
		{vec.Vec2{X: 7, Y: 9}, Top},
		{vec.Vec2{X: 0, Y: 9}, Left | Top},
		{vec.Vec2{X: 0, Y: 0}, Left | Bottom},
		{vec.Vec2{X: 11, Y: 9}, Right | Top},
		{vec.Vec2{X: 11, Y: 0}, Right | Bottom},

		// the boundary is part of the rectangle
		{vec.Vec2{X: 4, Y: 6}, Inside},
		{vec.Vec2{X: 10, Y: 6}, Inside},
		{vec.Vec2{X: 7, Y: 4}, Inside},
		{vec.Vec2{X: 7, Y: 8}, Inside},
		{vec.Vec2{X: 4, Y: 4}, Inside},
		{vec.Vec2{X: 10, Y: 8}, Inside},
		{vec.Vec2{X: 4, Y: 9}, Top},
	}
	for _, tc := range cases {
		got := Classify(tc.p, testcases.Box)
		if got != tc.want {
			t.Errorf("Classify(%v) = %s, want %s", tc.p, got, tc.want)
		}
	}
}

func TestClassifyExclusive(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 10_000 {
		p := randomPoint(rng)
		code := Classify(p, testcases.Box)
		if code > Left|Right|Bottom|Top {
			t.Fatalf("Classify(%v) = %d, out of range", p, code)
		}
		if code&(Left|Right) == Left|Right {
			t.Fatalf("Classify(%v) = %s", p, code)
		}
		if code&(Bottom|Top) == Bottom|Top {
			t.Fatalf("Classify(%v) = %s", p, code)
		}
	}
}

func TestOutCodeString(t *testing.T) {
	cases := []struct {
		code OutCode
		want string
	}{
		{Inside, "inside"},
		{Left, "left"},
		{Right | Bottom, "right|bottom"},
		{Left | Top, "left|top"},
	}
	for _, tc := range cases {
		if got := tc.code.String(); got != tc.want {
			t.Errorf("OutCode(%d).String() = %q, want %q", tc.code, got, tc.want)
		}
	}
}
