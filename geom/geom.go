// Package geom provides exact geometry for rectilinear (Manhattan)
// shapes as used in VLSI physical design.
//
// All types are immutable values over generic integer coordinate
// domains. Every operation returns a new value and never mutates its
// receiver, so values are safe to share across goroutines and to use
// as map keys. Robustness comes from staying in exact domains: there
// is no floating-point arithmetic anywhere in this package.
package geom

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the coordinate types that geom types and
// functions can handle. Coordinates are exact signed domains; callers
// pick a type wide enough to hold coordinates squared, since signed
// areas and cross products multiply coordinates.
type Scalar interface {
	constraints.Signed
}

var (
	// ErrInvalidRange is returned when an interval would be
	// constructed with its lower bound above its upper bound, or when
	// an enlargement would invert an interval or edge.
	ErrInvalidRange = errors.New("geom: lower bound above upper bound")

	// ErrDegeneratePolygon is returned when a polygon is constructed
	// from too few vertices, or when a point set cannot be linearly
	// ordered into a monotone chain.
	ErrDegeneratePolygon = errors.New("geom: degenerate polygon")

	// ErrNoOverlap is returned when an intersection is requested on
	// operands that do not overlap. There is no empty interval in this
	// package, so a vanishing intersection has no representation.
	ErrNoOverlap = errors.New("geom: no overlap")

	// ErrNonConvex is returned when an operation that is exact only
	// for convex polygons is applied to a non-convex one.
	ErrNonConvex = errors.New("geom: polygon not convex")
)

// An Orientation classifies the winding of a polygon by the sign of
// its signed area.
type Orientation int

const (
	Clockwise Orientation = iota - 1
	Degenerate
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "degenerate"
	}
}

func absDiff[T Scalar](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}
