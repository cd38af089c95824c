// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture arbitrates ownership of touch gestures.

A Responder reduces low level touch Events to responder lifecycle
events: it decides when a sequence of touches amounts to a claim on
the shared responder slot, tracks the resulting drag, and relinquishes
the slot when the gesture ends or a competing widget wins a
termination round.
*/
package gesture

import (
	"time"

	"github.com/yujiangshui/react-web/f32"
	"github.com/yujiangshui/react-web/internal/fling"
	"github.com/yujiangshui/react-web/io/responder"
	"github.com/yujiangshui/react-web/io/touch"
	"github.com/yujiangshui/react-web/unit"
)

// Responder is the per-widget arbitration state machine. The zero
// value is a vertical responder in StateIdle.
type Responder struct {
	// Axis is the directional lock axis. A claim is attempted only
	// when the movement since touch start is dominated by this
	// axis; afterwards the session never claims again.
	Axis Axis
	// Disabled keeps the responder in StateIdle.
	Disabled bool
	// ShouldClaim, if set, overrides the eligibility policy
	// consulted right before a claim attempt. It receives the touch
	// event that crossed the claim threshold. The default policy
	// claims whenever the responder is not disabled.
	ShouldClaim func(e touch.Event) bool

	state     State
	id        touch.ID
	startPos  f32.Point
	startTime time.Duration
	dragging  bool
	estimator fling.Extrapolation
}

// Event is a responder lifecycle event.
type Event struct {
	Kind Kind
	// Time and Position are taken from the touch sample that
	// produced the event.
	Time     time.Duration
	Position f32.Point
}

// Kind of an Event.
type Kind uint8

// State of a Responder.
type State uint8

// Axis is the directional lock axis.
type Axis uint8

const (
	// KindGrant is emitted when the registry grants a claim.
	KindGrant Kind = iota
	// KindReject is emitted when the current owner refuses to
	// yield the slot.
	KindReject
	// KindBeginDrag is emitted once per granted session, at the
	// first move past the distance threshold.
	KindBeginDrag
	// KindEndDrag is emitted when a drag session ends.
	KindEndDrag
	// KindMomentumBegin is emitted at the end of a drag that
	// leaves residual velocity for the platform to dissipate.
	KindMomentumBegin
	// KindRelease is emitted when the responder gives up the slot
	// at the end of a gesture.
	KindRelease
)

const (
	// StateIdle is the default responder state.
	StateIdle State = iota
	// StateClaiming is reported between a touch start and the
	// resolution of the session's claim.
	StateClaiming
	// StateActive is reported while the responder owns the shared
	// slot.
	StateActive
	// StateTerminating is reported after the responder agreed to
	// yield the slot, until the termination notification arrives.
	StateTerminating
)

const (
	Horizontal Axis = iota
	Vertical
)

// touchSlop is the movement threshold that distinguishes a drag claim
// from a tap.
var touchSlop = unit.Dp(3)

// State reports the responder state.
func (r *Responder) State() State {
	return r.state
}

// Dragging reports whether the current session is a drag scroll.
func (r *Responder) Dragging() bool {
	return r.dragging
}

// AllowTermination implements responder.Claimant. The default policy
// yields the slot whenever it is actively held; a claim still being
// decided cannot be terminated.
func (r *Responder) AllowTermination() bool {
	if r.state != StateActive {
		return false
	}
	r.state = StateTerminating
	return true
}

// Terminated implements responder.Claimant.
func (r *Responder) Terminated() {
	r.state = StateIdle
	r.dragging = false
}

// Update reduces the touch event e, claiming and releasing the shared
// slot in reg on behalf of claimant c. Widgets typically pass
// themselves as c and forward the returned events to their callbacks.
func (r *Responder) Update(cfg unit.Converter, reg *responder.Registry, c responder.Claimant, e touch.Event) []Event {
	var events []Event
	switch e.Kind {
	case touch.Start:
		if r.state != StateIdle || r.Disabled {
			break
		}
		r.state = StateClaiming
		r.id = e.ID
		r.startPos = e.Position
		r.startTime = e.Time
		r.dragging = false
		r.estimator = fling.Extrapolation{}
		r.estimator.Sample(e.Time, r.val(e.Position))
	case touch.Move:
		if e.ID != r.id {
			break
		}
		switch r.state {
		case StateClaiming:
			events = append(events, r.claim(cfg, reg, c, e)...)
		case StateActive:
			r.estimator.Sample(e.Time, r.val(e.Position))
		}
	case touch.End:
		if e.ID != r.id {
			break
		}
		switch r.state {
		case StateClaiming:
			// A tap; never claimed, nothing to release.
			r.state = StateIdle
		case StateActive:
			r.estimator.Sample(e.Time, r.val(e.Position))
			events = r.release(cfg, reg, c, e)
		}
	case touch.Cancel:
		if r.state == StateActive {
			r.estimator = fling.Extrapolation{}
			events = r.release(cfg, reg, c, e)
		}
		r.state = StateIdle
		r.dragging = false
	}
	return events
}

// Close releases active ownership, as if by touch end. It must be
// called when the owning widget is torn down so no other widget is
// locked out of the slot.
func (r *Responder) Close(reg *responder.Registry, c responder.Claimant) []Event {
	if r.state != StateActive {
		r.state = StateIdle
		r.dragging = false
		return nil
	}
	r.estimator = fling.Extrapolation{}
	return r.release(unit.Metric{}, reg, c, touch.Event{Kind: touch.Cancel})
}

// claim resolves the session's single claim attempt. Whatever the
// outcome, the session leaves StateClaiming and never claims again
// until the next touch start.
func (r *Responder) claim(cfg unit.Converter, reg *responder.Registry, c responder.Claimant, e touch.Event) []Event {
	d := e.Position.Sub(r.startPos)
	main, cross := d.X, d.Y
	if r.Axis == Vertical {
		main, cross = cross, main
	}
	slop := float32(cfg.Px(touchSlop))
	if abs(main) < slop && abs(cross) < slop {
		// Still a potential tap.
		return nil
	}
	// Directional lock: ties go to the configured axis.
	if abs(cross) > abs(main) {
		r.state = StateIdle
		return nil
	}
	if !r.eligible(e) {
		r.state = StateIdle
		return nil
	}
	if !reg.TryClaim(c) {
		r.state = StateIdle
		return []Event{{Kind: KindReject, Time: e.Time, Position: e.Position}}
	}
	r.state = StateActive
	r.dragging = true
	r.estimator.Sample(e.Time, r.val(e.Position))
	return []Event{
		{Kind: KindGrant, Time: e.Time, Position: e.Position},
		{Kind: KindBeginDrag, Time: e.Time, Position: e.Position},
	}
}

// release ends an active session and frees the slot.
func (r *Responder) release(cfg unit.Converter, reg *responder.Registry, c responder.Claimant, e touch.Event) []Event {
	var events []Event
	if r.dragging {
		events = append(events, Event{Kind: KindEndDrag, Time: e.Time, Position: e.Position})
		est := r.estimator.Estimate()
		if slop, d := float32(cfg.Px(touchSlop)), est.Distance; d < -slop || d > slop {
			events = append(events, Event{Kind: KindMomentumBegin, Time: e.Time, Position: e.Position})
		}
	}
	events = append(events, Event{Kind: KindRelease, Time: e.Time, Position: e.Position})
	reg.Release(c)
	r.state = StateIdle
	r.dragging = false
	return events
}

func (r *Responder) eligible(e touch.Event) bool {
	if r.Disabled {
		return false
	}
	if r.ShouldClaim != nil {
		return r.ShouldClaim(e)
	}
	return true
}

func (r *Responder) val(p f32.Point) float32 {
	if r.Axis == Horizontal {
		return p.X
	} else {
		return p.Y
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}

func (k Kind) String() string {
	switch k {
	case KindGrant:
		return "KindGrant"
	case KindReject:
		return "KindReject"
	case KindBeginDrag:
		return "KindBeginDrag"
	case KindEndDrag:
		return "KindEndDrag"
	case KindMomentumBegin:
		return "KindMomentumBegin"
	case KindRelease:
		return "KindRelease"
	default:
		panic("invalid Kind")
	}
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StateClaiming:
		return "StateClaiming"
	case StateActive:
		return "StateActive"
	case StateTerminating:
		return "StateTerminating"
	default:
		panic("unreachable")
	}
}
