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

// Package lineclip clips line segments against an axis-aligned rectangle,
// using the Cohen-Sutherland algorithm.
//
// Every point is assigned an [OutCode] which records on which sides of the
// clip rectangle it lies. Segments where both endpoints are inside are
// accepted unchanged, segments where both endpoints are beyond the same
// edge are rejected, and all other segments are shortened one edge at a
// time until one of these two cases applies.
package lineclip

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalidRectangle is returned when a clip rectangle has non-finite
// bounds or zero or negative width or height.
var ErrInvalidRectangle = errors.New("invalid clip rectangle")

// A Clipper clips line segments against a fixed rectangle.
// The rectangle cannot be changed after construction; use a [Window] if
// the clip region needs to change over time.
//
// A Clipper is safe for concurrent use.
type Clipper struct {
	r rect.Rect
}

// New returns a Clipper for the clip rectangle r.
// The rectangle must satisfy r.LLx < r.URx and r.LLy < r.URy.
func New(r rect.Rect) (*Clipper, error) {
	if err := checkRect(r); err != nil {
		return nil, err
	}
	return &Clipper{r: r}, nil
}

// Rect returns the clip rectangle.
func (c *Clipper) Rect() rect.Rect {
	return c.r
}

// Classify computes the outcode of p with respect to the clip rectangle.
func (c *Clipper) Classify(p vec.Vec2) OutCode {
	return Classify(p, c.r)
}

// Clip returns the part of the segment from p1 to p2 which lies inside
// the clip rectangle. If no part of the segment is visible, ok is false
// and q1, q2 must be ignored.
//
// If both endpoints are inside, the segment is returned unchanged. Otherwise
// q1 corresponds to p1 and q2 corresponds to p2, i.e. the direction of the
// segment is preserved.
//
// Segments with non-finite coordinates are rejected.
func (c *Clipper) Clip(p1, p2 vec.Vec2) (q1, q2 vec.Vec2, ok bool) {
	q1, q2, _, ok = c.clip(p1, p2)
	return q1, q2, ok
}

// clip implements Clip and additionally reports how many endpoint
// replacements were made.
func (c *Clipper) clip(p1, p2 vec.Vec2) (q1, q2 vec.Vec2, n int, ok bool) {
	if !isFinite(p1) || !isFinite(p2) {
		return vec.Vec2{}, vec.Vec2{}, 0, false
	}

	r := c.r
	code1 := Classify(p1, r)
	code2 := Classify(p2, r)

	for {
		if code1 == Inside && code2 == Inside {
			return p1, p2, n, true
		}
		if code1&code2 != 0 {
			return vec.Vec2{}, vec.Vec2{}, n, false
		}

		if n >= maxReplacements {
			// A visible segment needs at most one replacement per
			// endpoint and axis, up to rounding.
			Logger().Debug("segment rejected after replacement limit",
				slog.Any("p1", p1), slog.Any("p2", p2),
				slog.String("code1", code1.String()),
				slog.String("code2", code2.String()))
			return vec.Vec2{}, vec.Vec2{}, n, false
		}

		out := code1
		if out == Inside {
			out = code2
		}

		// Edges are tried in the fixed order top, bottom, right, left.
		var p vec.Vec2
		switch {
		case out&Top != 0:
			p.X = p1.X + (p2.X-p1.X)*(r.URy-p1.Y)/(p2.Y-p1.Y)
			p.Y = r.URy
		case out&Bottom != 0:
			p.X = p1.X + (p2.X-p1.X)*(r.LLy-p1.Y)/(p2.Y-p1.Y)
			p.Y = r.LLy
		case out&Right != 0:
			p.X = r.URx
			p.Y = p1.Y + (p2.Y-p1.Y)*(r.URx-p1.X)/(p2.X-p1.X)
		default: // Left
			p.X = r.LLx
			p.Y = p1.Y + (p2.Y-p1.Y)*(r.LLx-p1.X)/(p2.X-p1.X)
		}
		n++

		if !isFinite(p) {
			Logger().Debug("segment rejected, non-finite intersection",
				slog.Any("p1", p1), slog.Any("p2", p2),
				slog.String("edge", edgeOf(out).String()))
			return vec.Vec2{}, vec.Vec2{}, n, false
		}

		if code1 != Inside {
			p1 = p
			code1 = Classify(p1, r)
		} else {
			p2 = p
			code2 = Classify(p2, r)
		}
	}
}

// edgeOf returns the edge which Clip intersects for an endpoint
// with outcode out.
func edgeOf(out OutCode) OutCode {
	for _, e := range []OutCode{Top, Bottom, Right, Left} {
		if out&e != 0 {
			return e
		}
	}
	return Inside
}

// checkRect verifies that r can be used as a clip rectangle.
func checkRect(r rect.Rect) error {
	for _, v := range []float64{r.LLx, r.LLy, r.URx, r.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound in [%g,%g]x[%g,%g]",
				ErrInvalidRectangle, r.LLx, r.URx, r.LLy, r.URy)
		}
	}
	if !(r.LLx < r.URx) {
		return fmt.Errorf("%w: xMin=%g is not less than xMax=%g",
			ErrInvalidRectangle, r.LLx, r.URx)
	}
	if !(r.LLy < r.URy) {
		return fmt.Errorf("%w: yMin=%g is not less than yMax=%g",
			ErrInvalidRectangle, r.LLy, r.URy)
	}
	return nil
}

func isFinite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// maxReplacements bounds the number of endpoint replacements in Clip.
const maxReplacements = 4
