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
	"log/slog"
	"sync/atomic"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// A Window is a clip region which can be moved or resized while other
// goroutines are clipping against it.
//
// Each call to [Window.Clip] uses a single snapshot of the clip rectangle,
// so a concurrent [Window.Reset] is observed either completely or not at
// all.
type Window struct {
	cur atomic.Pointer[Clipper]
}

// NewWindow returns a Window with clip rectangle r.
func NewWindow(r rect.Rect) (*Window, error) {
	c, err := New(r)
	if err != nil {
		return nil, err
	}
	w := &Window{}
	w.cur.Store(c)
	return w, nil
}

// Reset replaces the clip rectangle.
// If r is not a valid clip rectangle, the window is left unchanged
// and an error wrapping [ErrInvalidRectangle] is returned.
func (w *Window) Reset(r rect.Rect) error {
	c, err := New(r)
	if err != nil {
		return err
	}
	old := w.cur.Swap(c)
	Logger().Debug("clip rectangle changed",
		slog.Any("old", old.r), slog.Any("new", r))
	return nil
}

// Rect returns the current clip rectangle.
func (w *Window) Rect() rect.Rect {
	return w.cur.Load().r
}

// Clipper returns the current clip rectangle as an immutable Clipper.
func (w *Window) Clipper() *Clipper {
	return w.cur.Load()
}

// Clip clips the segment from p1 to p2 against the current clip
// rectangle. See [Clipper.Clip] for details.
func (w *Window) Clip(p1, p2 vec.Vec2) (q1, q2 vec.Vec2, ok bool) {
	return w.cur.Load().Clip(p1, p2)
}
