// SPDX-License-Identifier: Unlicense OR MIT

/*
Package touch contains the raw touch events delivered by the host
event system. Events carry a position and a timestamp and are reduced
to higher level gestures by package gesture.
*/
package touch

import (
	"time"

	"github.com/yujiangshui/react-web/f32"
)

// Event is a single touch sample.
type Event struct {
	Kind Kind
	// ID distinguishes concurrent touches and is stable
	// from Start to End or Cancel.
	ID ID
	// Time is when the event was generated. The timestamp
	// is relative to an undefined base.
	Time time.Duration
	// Position is the coordinates of the event in the local
	// coordinate system of the receiving widget.
	Position f32.Point
}

// Kind of an Event.
type Kind uint8

// ID identifies a touch sequence.
type ID uint16

const (
	// A Cancel event is generated when the gesture is
	// interrupted by the system.
	Cancel Kind = iota
	// Start of a touch.
	Start
	// Move of an active touch.
	Move
	// End of a touch.
	End
)

func (k Kind) String() string {
	switch k {
	case Cancel:
		return "Cancel"
	case Start:
		return "Start"
	case Move:
		return "Move"
	case End:
		return "End"
	default:
		panic("unknown Kind")
	}
}
