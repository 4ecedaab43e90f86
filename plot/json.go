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
	"encoding/json"
	"fmt"
	"io"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/lineclip"
)

// jsonScene is the file format read by ReadScene.
// Rectangles are given as [xMin, yMin, xMax, yMax], segments as
// [x1, y1, x2, y2].
type jsonScene struct {
	View      []float64   `json:"view,omitempty"`
	Clip      []float64   `json:"clip"`
	Segments  [][]float64 `json:"segments"`
	Axes      bool        `json:"axes,omitempty"`
	ShowInput bool        `json:"show_input,omitempty"`
}

// ReadScene reads a scene description in JSON format. Example:
//
//	{
//	  "view": [-20, -20, 20, 20],
//	  "clip": [4, 4, 10, 8],
//	  "segments": [[-20, -10, 20, 10], [-20, 10, 20, -10]],
//	  "axes": true
//	}
//
// If "view" is omitted, a view containing the clip rectangle and all
// segments is used.
func ReadScene(r io.Reader) (*Scene, error) {
	var js jsonScene
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&js); err != nil {
		return nil, fmt.Errorf("plot: reading scene: %w", err)
	}

	s := &Scene{
		Axes:      js.Axes,
		ShowInput: js.ShowInput,
	}

	var err error
	s.Clip, err = toRect("clip", js.Clip)
	if err != nil {
		return nil, err
	}
	if _, err := lineclip.New(s.Clip); err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}

	for i, c := range js.Segments {
		if len(c) != 4 {
			return nil, fmt.Errorf("plot: segment %d has %d coordinates, want 4", i, len(c))
		}
		s.Segments = append(s.Segments, Segment{
			P1: vec.Vec2{X: c[0], Y: c[1]},
			P2: vec.Vec2{X: c[2], Y: c[3]},
		})
	}

	if js.View != nil {
		s.View, err = toRect("view", js.View)
		if err != nil {
			return nil, err
		}
	} else {
		s.View = autoView(s.Clip, s.Segments)
	}

	return s, nil
}

// WriteJSON writes the scene in the format read by [ReadScene].
func (s *Scene) WriteJSON(w io.Writer) error {
	js := jsonScene{
		View:      fromRect(s.View),
		Clip:      fromRect(s.Clip),
		Segments:  make([][]float64, 0, len(s.Segments)),
		Axes:      s.Axes,
		ShowInput: s.ShowInput,
	}
	for _, seg := range s.Segments {
		js.Segments = append(js.Segments, []float64{seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(js)
}

func toRect(field string, c []float64) (rect.Rect, error) {
	if len(c) != 4 {
		return rect.Rect{}, fmt.Errorf("plot: %s has %d coordinates, want 4", field, len(c))
	}
	return rect.Rect{LLx: c[0], LLy: c[1], URx: c[2], URy: c[3]}, nil
}

func fromRect(r rect.Rect) []float64 {
	return []float64{r.LLx, r.LLy, r.URx, r.URy}
}
