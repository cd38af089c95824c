// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package dom

import (
	"syscall/js"
	"time"

	"github.com/yujiangshui/react-web/f32"
	"github.com/yujiangshui/react-web/io/touch"
	"github.com/yujiangshui/react-web/unit"
	"github.com/yujiangshui/react-web/widget"
)

// Scroller adapts a scrollable DOM element to widget.Scroller and
// feeds the element's touch and scroll events into the view. The
// element performs clamping, momentum and bounce natively.
type Scroller struct {
	elem js.Value
	view *widget.ScrollView

	// touches maps touch identifiers to stable touch IDs.
	touches    []js.Value
	funcs      []js.Func
	cleanfuncs []func()
}

var _ widget.Scroller = (*Scroller)(nil)

// Metric reads the display scale of the browser window.
func Metric() unit.Metric {
	ratio := float32(js.Global().Get("devicePixelRatio").Float())
	return unit.Metric{PxPerDp: ratio}
}

// NewScroller wires view to elem. Call Close before discarding the
// element.
func NewScroller(elem js.Value, view *widget.ScrollView) *Scroller {
	s := &Scroller{elem: elem, view: view}
	s.addEventListener("touchstart", func(e js.Value) {
		s.touchEvent(touch.Start, e)
	})
	s.addEventListener("touchmove", func(e js.Value) {
		s.touchEvent(touch.Move, e)
	})
	s.addEventListener("touchend", func(e js.Value) {
		s.touchEvent(touch.End, e)
	})
	s.addEventListener("touchcancel", func(e js.Value) {
		// Cancel all touches even if only one touch was cancelled.
		s.touches = s.touches[:0]
		s.view.Touch(touch.Event{
			Kind: touch.Cancel,
			Time: eventTime(e),
		})
	})
	s.addEventListener("scroll", func(e js.Value) {
		s.view.ScrollChanged(eventTime(e))
	})
	s.addEventListener("scrollend", func(e js.Value) {
		s.view.MomentumSettled()
	})
	return s
}

// Offset implements widget.Scroller.
func (s *Scroller) Offset() f32.Point {
	return f32.Point{
		X: float32(s.elem.Get("scrollLeft").Float()),
		Y: float32(s.elem.Get("scrollTop").Float()),
	}
}

// SetOffset implements widget.Scroller.
func (s *Scroller) SetOffset(p f32.Point) {
	s.elem.Set("scrollLeft", float64(p.X))
	s.elem.Set("scrollTop", float64(p.Y))
}

// Close removes the event listeners and releases their callbacks.
func (s *Scroller) Close() {
	// Cleanup in the opposite order of construction.
	for i := len(s.cleanfuncs) - 1; i >= 0; i-- {
		s.cleanfuncs[i]()
	}
	s.cleanfuncs = nil
	for _, f := range s.funcs {
		f.Release()
	}
	s.funcs = nil
}

func (s *Scroller) touchEvent(kind touch.Kind, e js.Value) {
	e.Call("preventDefault")
	t := eventTime(e)
	rect := s.elem.Call("getBoundingClientRect")
	changedTouches := e.Get("changedTouches")
	n := changedTouches.Length()
	for i := 0; i < n; i++ {
		c := changedTouches.Index(i)
		x := c.Get("clientX").Float() - rect.Get("left").Float()
		y := c.Get("clientY").Float() - rect.Get("top").Float()
		s.view.Touch(touch.Event{
			Kind: kind,
			ID:   s.touchIDFor(c),
			Time: t,
			Position: f32.Point{
				X: float32(x),
				Y: float32(y),
			},
		})
	}
}

func (s *Scroller) touchIDFor(t js.Value) touch.ID {
	id := t.Get("identifier")
	for i, id2 := range s.touches {
		if id2.Equal(id) {
			return touch.ID(i)
		}
	}
	tid := touch.ID(len(s.touches))
	s.touches = append(s.touches, id)
	return tid
}

func (s *Scroller) addEventListener(event string, f func(e js.Value)) {
	jsf := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		f(args[0])
		return nil
	})
	s.funcs = append(s.funcs, jsf)
	s.elem.Call("addEventListener", event, jsf)
	s.cleanfuncs = append(s.cleanfuncs, func() {
		s.elem.Call("removeEventListener", event, jsf)
	})
}

func eventTime(e js.Value) time.Duration {
	return time.Duration(e.Get("timeStamp").Int()) * time.Millisecond
}
