// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"github.com/yujiangshui/react-web/f32"
	"github.com/yujiangshui/react-web/gesture"
	"github.com/yujiangshui/react-web/internal/throttle"
	"github.com/yujiangshui/react-web/io/responder"
	"github.com/yujiangshui/react-web/io/touch"
	"github.com/yujiangshui/react-web/layout"
	"github.com/yujiangshui/react-web/unit"
)

// Scroller is the platform scroll primitive backing a ScrollView. It
// owns offset clamping, momentum and elastic bounce; the widget only
// reads and writes offset intent.
type Scroller interface {
	Offset() f32.Point
	SetOffset(f32.Point)
}

// ScrollView presents unbounded content inside a bounded viewport.
//
// The host delivers raw touch samples through Touch and scroll
// notifications through ScrollChanged and MomentumSettled; the view
// arbitrates gesture ownership against the tree's responder registry
// and forwards throttled notifications to the callback props.
//
// All callback props are optional. Configure the view before Mount;
// Horizontal must not change while mounted.
type ScrollView struct {
	// Horizontal selects the scroll axis. The default is vertical.
	Horizontal bool
	// Disabled suspends gesture arbitration: the view never claims
	// the responder slot.
	Disabled bool
	// CenterContent shrinks the content to fit and centers it when
	// it is smaller than the viewport.
	CenterContent bool
	// AlwaysBounceHorizontal and AlwaysBounceVertical force elastic
	// overscroll even when the content fits the viewport.
	AlwaysBounceHorizontal bool
	AlwaysBounceVertical   bool
	// ScrollEventThrottle is the minimum spacing between OnScroll
	// calls. Zero delivers every notification; negative values are
	// treated as zero.
	ScrollEventThrottle time.Duration
	// Bounds pairs the viewport size with the content size. It is
	// maintained by the host layout.
	Bounds layout.ContentBounds
	// ShouldSetResponder overrides the claim eligibility policy. It
	// receives the touch event that crossed the claim threshold.
	ShouldSetResponder func(e touch.Event) bool

	OnScroll              func(offset f32.Point, t time.Duration)
	OnScrollBeginDrag     func()
	OnScrollEndDrag       func()
	OnMomentumScrollBegin func()
	OnMomentumScrollEnd   func()
	OnResponderGrant      func()
	OnResponderReject     func()
	OnResponderRelease    func()
	OnResponderTerminate  func()

	mounted  bool
	reg      *responder.Registry
	scroller Scroller
	cfg      unit.Converter
	gesture  gesture.Responder
	limiter  *throttle.Limiter
	momentum bool
}

// Mount attaches the view to its tree's responder registry and its
// platform scroll primitive. Mounting a mounted view is a no-op.
func (s *ScrollView) Mount(reg *responder.Registry, sc Scroller, cfg unit.Converter) {
	if s.mounted {
		return
	}
	s.mounted = true
	s.reg = reg
	s.scroller = sc
	s.cfg = cfg
	s.gesture = gesture.Responder{Axis: gesture.Vertical}
	if s.Horizontal {
		s.gesture.Axis = gesture.Horizontal
	}
	s.limiter = throttle.New(s.ScrollEventThrottle, s.forward)
}

// Unmount cancels any deferred scroll notification and releases
// active gesture ownership, emitting OnScrollEndDrag and
// OnResponderRelease as if the touch had ended. No callback fires
// after Unmount returns.
func (s *ScrollView) Unmount() {
	if !s.mounted {
		return
	}
	s.limiter.Close()
	s.momentum = false
	events := s.gesture.Close(s.reg, s)
	s.dispatch(events)
	s.mounted = false
	s.reg = nil
	s.scroller = nil
	s.limiter = nil
}

// Touch feeds one raw touch sample into gesture arbitration.
func (s *ScrollView) Touch(e touch.Event) {
	if !s.mounted {
		return
	}
	s.gesture.Disabled = s.Disabled
	s.gesture.ShouldClaim = s.ShouldSetResponder
	s.dispatch(s.gesture.Update(s.cfg, s.reg, s, e))
}

// ScrollChanged accepts an offset change notification from the
// scroll primitive and forwards it, throttled, to OnScroll.
func (s *ScrollView) ScrollChanged(t time.Duration) {
	if !s.mounted {
		return
	}
	s.limiter.Observe(throttle.Sample{Offset: s.scroller.Offset(), Time: t})
}

// MomentumSettled accepts the primitive's momentum settle
// notification, ending an open momentum session.
func (s *ScrollView) MomentumSettled() {
	if !s.mounted || !s.momentum {
		return
	}
	s.momentum = false
	call(s.OnMomentumScrollEnd)
}

// ScrollTo sets the content offset without animation.
func (s *ScrollView) ScrollTo(x, y float32) {
	if !s.mounted {
		return
	}
	s.scroller.SetOffset(f32.Pt(x, y))
}

// ContentOffset reads the current content offset.
func (s *ScrollView) ContentOffset() f32.Point {
	if !s.mounted {
		return f32.Point{}
	}
	return s.scroller.Offset()
}

// Dragging reports whether an active drag session is in progress.
func (s *ScrollView) Dragging() bool {
	return s.gesture.Dragging()
}

// Frame returns the content container's layout role.
func (s *ScrollView) Frame() layout.Frame {
	return layout.ContentFrame(layout.FrameStyle{
		Horizontal:             s.Horizontal,
		CenterContent:          s.CenterContent,
		AlwaysBounceHorizontal: s.AlwaysBounceHorizontal,
		AlwaysBounceVertical:   s.AlwaysBounceVertical,
	})
}

// MaxOffset returns the largest meaningful content offset for the
// current bounds.
func (s *ScrollView) MaxOffset() f32.Point {
	return s.Bounds.MaxOffset()
}

// AllowTermination implements responder.Claimant.
func (s *ScrollView) AllowTermination() bool {
	return s.gesture.AllowTermination()
}

// Terminated implements responder.Claimant.
func (s *ScrollView) Terminated() {
	s.gesture.Terminated()
	if s.mounted {
		call(s.OnResponderTerminate)
	}
}

func (s *ScrollView) dispatch(events []gesture.Event) {
	for _, e := range events {
		switch e.Kind {
		case gesture.KindGrant:
			call(s.OnResponderGrant)
		case gesture.KindReject:
			call(s.OnResponderReject)
		case gesture.KindBeginDrag:
			call(s.OnScrollBeginDrag)
		case gesture.KindEndDrag:
			call(s.OnScrollEndDrag)
		case gesture.KindMomentumBegin:
			s.momentum = true
			call(s.OnMomentumScrollBegin)
		case gesture.KindRelease:
			call(s.OnResponderRelease)
		default:
			panic("unknown gesture event")
		}
	}
}

// forward delivers a throttled scroll sample to OnScroll.
func (s *ScrollView) forward(sm throttle.Sample) {
	if s.OnScroll != nil {
		s.OnScroll(sm.Offset, sm.Time)
	}
}

func call(f func()) {
	if f != nil {
		f()
	}
}
