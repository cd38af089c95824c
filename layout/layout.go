// SPDX-License-Identifier: Unlicense OR MIT

// Package layout computes the layout roles of a scroll container: a
// bounded outer frame paired with a content frame that is free to
// grow along the scroll axis.
package layout

import (
	"image"

	"github.com/yujiangshui/react-web/f32"
)

// Constraints represent a set of acceptable ranges for
// a widget's width and height.
type Constraints struct {
	Width  Constraint
	Height Constraint
}

// Constraint is a range of acceptable sizes in a single
// dimension.
type Constraint struct {
	Min, Max int
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the alignment of content across the scroll axis.
type Alignment uint8

const (
	Start Alignment = iota
	End
	Middle
)

const (
	Horizontal Axis = iota
	Vertical
)

// Inf is a size large enough to be unconstrained in practice.
const Inf = 1e6

// Constrain a value to the range [Min; Max].
func (c Constraint) Constrain(v int) int {
	if v < c.Min {
		return c.Min
	} else if v > c.Max {
		return c.Max
	}
	return v
}

// Constrain a size to the Width and Height ranges.
func (c Constraints) Constrain(size image.Point) image.Point {
	return image.Point{X: c.Width.Constrain(size.X), Y: c.Height.Constrain(size.Y)}
}

// RigidConstraints returns the constraints that can only be
// satisfied by the given dimensions.
func RigidConstraints(size image.Point) Constraints {
	return Constraints{
		Width:  Constraint{Min: size.X, Max: size.X},
		Height: Constraint{Min: size.Y, Max: size.Y},
	}
}

// ContentBounds pairs the fixed size of the outer frame with the
// free-flowing size of the content inside it.
type ContentBounds struct {
	Outer image.Point
	Inner image.Point
}

// MaxOffset returns the largest meaningful content offset. Clamping
// the live offset to it is the scroll primitive's job.
func (b ContentBounds) MaxOffset() f32.Point {
	max := f32.Point{
		X: float32(b.Inner.X - b.Outer.X),
		Y: float32(b.Inner.Y - b.Outer.Y),
	}
	if max.X < 0 {
		max.X = 0
	}
	if max.Y < 0 {
		max.Y = 0
	}
	return max
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
