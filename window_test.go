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
	"errors"
	"sync"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/lineclip/testcases"
)

func TestWindowReset(t *testing.T) {
	w, err := NewWindow(testcases.Box)
	if err != nil {
		t.Fatal(err)
	}

	p1 := vec.Vec2{X: 0, Y: 6}
	p2 := vec.Vec2{X: 20, Y: 6}
	q1, q2, ok := w.Clip(p1, p2)
	if !ok || q1 != (vec.Vec2{X: 4, Y: 6}) || q2 != (vec.Vec2{X: 10, Y: 6}) {
		t.Fatalf("got %v-%v (%t)", q1, q2, ok)
	}

	wide := rect.Rect{LLx: 2, LLy: 0, URx: 12, URy: 10}
	if err := w.Reset(wide); err != nil {
		t.Fatal(err)
	}
	if w.Rect() != wide {
		t.Errorf("Rect() = %v, want %v", w.Rect(), wide)
	}
	q1, q2, ok = w.Clip(p1, p2)
	if !ok || q1 != (vec.Vec2{X: 2, Y: 6}) || q2 != (vec.Vec2{X: 12, Y: 6}) {
		t.Fatalf("after reset: got %v-%v (%t)", q1, q2, ok)
	}

	// an invalid rectangle leaves the window unchanged
	err = w.Reset(rect.Rect{LLx: 1, LLy: 1, URx: 1, URy: 5})
	if !errors.Is(err, ErrInvalidRectangle) {
		t.Errorf("Reset: got error %v, want ErrInvalidRectangle", err)
	}
	if w.Rect() != wide {
		t.Errorf("Rect() = %v after failed reset, want %v", w.Rect(), wide)
	}
}

func TestNewWindowInvalid(t *testing.T) {
	w, err := NewWindow(rect.Rect{})
	if !errors.Is(err, ErrInvalidRectangle) {
		t.Errorf("got error %v, want ErrInvalidRectangle", err)
	}
	if w != nil {
		t.Error("NewWindow returned a window for an empty rectangle")
	}
}

// TestWindowConcurrent clips while the rectangle is switched between
// two values. Every result must match one of the two rectangles exactly.
func TestWindowConcurrent(t *testing.T) {
	a := testcases.Box
	b := rect.Rect{LLx: -5, LLy: -3, URx: 2, URy: 1}
	ca, err := New(a)
	if err != nil {
		t.Fatal(err)
	}
	cb, err := New(b)
	if err != nil {
		t.Fatal(err)
	}

	w, err := NewWindow(a)
	if err != nil {
		t.Fatal(err)
	}

	p1 := vec.Vec2{X: -20, Y: -10}
	p2 := vec.Vec2{X: 20, Y: 10}
	wantA1, wantA2, _ := ca.Clip(p1, p2)
	wantB1, wantB2, _ := cb.Clip(p1, p2)

	stop := make(chan struct{})
	var resetter sync.WaitGroup
	resetter.Add(1)
	go func() {
		defer resetter.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			r := a
			if i%2 == 1 {
				r = b
			}
			if err := w.Reset(r); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	var workers sync.WaitGroup
	errs := make(chan error, 4)
	for range 4 {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for range 10_000 {
				q1, q2, ok := w.Clip(p1, p2)
				if !ok {
					errs <- errors.New("segment rejected")
					return
				}
				isA := q1 == wantA1 && q2 == wantA2
				isB := q1 == wantB1 && q2 == wantB2
				if !isA && !isB {
					errs <- errors.New("result matches neither rectangle")
					return
				}
			}
		}()
	}
	workers.Wait()
	close(stop)
	resetter.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
