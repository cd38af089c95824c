// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "image"

// FrameStyle is the subset of scroll view styling that decides the
// content frame's layout role.
type FrameStyle struct {
	// Horizontal selects the scroll axis.
	Horizontal bool
	// CenterContent shrinks the content to fit and centers it
	// across the scroll axis instead of matching the outer frame.
	CenterContent bool
	// AlwaysBounceHorizontal and AlwaysBounceVertical force elastic
	// overscroll on an axis even when the content fits.
	AlwaysBounceHorizontal bool
	AlwaysBounceVertical   bool
}

// Frame is the layout role of the content container: unconstrained
// along the scroll axis, matching the outer frame across it.
type Frame struct {
	Axis Axis
	// Main is the constraint along the scroll axis.
	Main Constraint
	// CrossFill makes the content match the outer frame across the
	// scroll axis. When unset the content is sized to its children
	// and placed by CrossAlign.
	CrossFill  bool
	CrossAlign Alignment
	// BounceX and BounceY report whether overscroll bounces on
	// each window axis. The scroll axis always bounces.
	BounceX, BounceY bool
}

// ContentFrame computes the content container's layout role from the
// style flags. It is a pure function of its input.
func ContentFrame(s FrameStyle) Frame {
	f := Frame{
		Axis:       Vertical,
		Main:       Constraint{Max: Inf},
		CrossFill:  !s.CenterContent,
		CrossAlign: Start,
		BounceX:    s.AlwaysBounceHorizontal,
		BounceY:    true,
	}
	if s.Horizontal {
		f.Axis = Horizontal
		f.BounceX = true
		f.BounceY = s.AlwaysBounceVertical
	}
	if s.CenterContent {
		f.CrossAlign = Middle
	}
	return f
}

// Constraints pairs the frame with an outer frame of the given size
// and returns the constraints of the content container: unconstrained
// along the scroll axis, rigid across it unless the content is free
// to shrink.
func (f Frame) Constraints(outer image.Point) Constraints {
	cs := RigidConstraints(outer)
	switch f.Axis {
	case Horizontal:
		cs.Width = f.Main
		if !f.CrossFill {
			cs.Height.Min = 0
		}
	case Vertical:
		cs.Height = f.Main
		if !f.CrossFill {
			cs.Width.Min = 0
		}
	default:
		panic("unreachable")
	}
	return cs
}
