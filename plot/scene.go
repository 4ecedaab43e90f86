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

// Package plot draws the result of clipping a set of line segments.
//
// A [Scene] holds a clip rectangle and a list of segments. When the scene
// is drawn, the outline of the clip rectangle is shown together with the
// visible parts of all segments. Optionally, coordinate axes and the
// unclipped input segments are shown as well.
package plot

import (
	"fmt"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/lineclip"
)

// Segment is a line segment from P1 to P2.
type Segment struct {
	P1, P2 vec.Vec2
}

// Scene describes what to draw.
type Scene struct {
	// View is the region of the plane which is mapped onto the output
	// image or page.
	View rect.Rect

	// Clip is the clip rectangle.
	Clip rect.Rect

	// Segments are the input segments. Only the visible parts are drawn,
	// unless ShowInput is set.
	Segments []Segment

	// Axes enables drawing the coordinate axes.
	Axes bool

	// ShowInput enables drawing the unclipped input segments
	// underneath the visible parts.
	ShowInput bool
}

// NewScene returns a scene with the given clip rectangle and segments.
// The view is chosen to contain the clip rectangle and all segments.
func NewScene(clip rect.Rect, segs ...Segment) *Scene {
	return &Scene{
		View:     autoView(clip, segs),
		Clip:     clip,
		Segments: segs,
	}
}

// DemoScene returns the classic demonstration: four lines through the
// origin, clipped against the rectangle [4, 10] x [4, 8], shown in the
// square [-20, 20] x [-20, 20].
func DemoScene() *Scene {
	return &Scene{
		View: rect.Rect{LLx: -20, LLy: -20, URx: 20, URy: 20},
		Clip: rect.Rect{LLx: 4, LLy: 4, URx: 10, URy: 8},
		Segments: []Segment{
			{vec.Vec2{X: -20, Y: -10}, vec.Vec2{X: 20, Y: 10}},
			{vec.Vec2{X: -20, Y: 10}, vec.Vec2{X: 20, Y: -10}},
			{vec.Vec2{X: -10, Y: -20}, vec.Vec2{X: 10, Y: 20}},
			{vec.Vec2{X: 10, Y: -20}, vec.Vec2{X: -10, Y: 20}},
		},
		Axes: true,
	}
}

// Clipped returns the visible parts of all segments, in order.
// Segments which are not visible are omitted.
func (s *Scene) Clipped() ([]Segment, error) {
	c, err := lineclip.New(s.Clip)
	if err != nil {
		return nil, err
	}

	var res []Segment
	for _, seg := range s.Segments {
		q1, q2, ok := c.Clip(seg.P1, seg.P2)
		if !ok {
			continue
		}
		res = append(res, Segment{q1, q2})
	}
	lineclip.Logger().Debug("scene clipped",
		slog.Int("segments", len(s.Segments)),
		slog.Int("visible", len(res)))
	return res, nil
}

// checkView verifies that the view rectangle can be mapped to an
// image of the given size.
func (s *Scene) checkView(width, height int) error {
	v := s.View
	if width <= 0 || height <= 0 {
		return fmt.Errorf("plot: invalid image size %dx%d", width, height)
	}
	for _, x := range []float64{v.LLx, v.LLy, v.URx, v.URy} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("plot: non-finite view bound %g", x)
		}
	}
	if !(v.LLx < v.URx) || !(v.LLy < v.URy) {
		return fmt.Errorf("plot: empty view [%g,%g]x[%g,%g]",
			v.LLx, v.URx, v.LLy, v.URy)
	}
	return nil
}

// autoView returns a view containing the clip rectangle and all
// finite segment endpoints, with a margin of 10% on every side.
func autoView(clip rect.Rect, segs []Segment) rect.Rect {
	v := clip
	for _, seg := range segs {
		for _, p := range []vec.Vec2{seg.P1, seg.P2} {
			if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
				continue
			}
			v.LLx = min(v.LLx, p.X)
			v.LLy = min(v.LLy, p.Y)
			v.URx = max(v.URx, p.X)
			v.URy = max(v.URy, p.Y)
		}
	}
	dx := (v.URx - v.LLx) / 10
	dy := (v.URy - v.LLy) / 10
	return rect.Rect{
		LLx: v.LLx - dx,
		LLy: v.LLy - dy,
		URx: v.URx + dx,
		URy: v.URy + dy,
	}
}
