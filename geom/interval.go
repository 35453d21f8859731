package geom

import "fmt"

// An Interval is a closed range [Lo, Hi] over an ordered coordinate
// domain. Lo == Hi is a legal, degenerate interval containing exactly
// one value; there is no empty interval. The zero value is the
// degenerate interval at the domain's zero.
//
// Intervals are comparable and may be used as map keys.
type Interval[T Scalar] struct {
	Lo, Hi T
}

// NewInterval returns the interval [lo, hi]. It returns
// [ErrInvalidRange] if lo > hi.
func NewInterval[T Scalar](lo, hi T) (Interval[T], error) {
	if lo > hi {
		return Interval[T]{}, fmt.Errorf("interval [%v, %v]: %w", lo, hi, ErrInvalidRange)
	}
	return Interval[T]{Lo: lo, Hi: hi}, nil
}

// IntervalOf returns the degenerate interval containing only v.
func IntervalOf[T Scalar](v T) Interval[T] {
	return Interval[T]{Lo: v, Hi: v}
}

// Span returns the interval covering a and b regardless of their
// order. Unlike [NewInterval] it is total.
func Span[T Scalar](a, b T) Interval[T] {
	if a > b {
		a, b = b, a
	}
	return Interval[T]{Lo: a, Hi: b}
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", i.Lo, i.Hi)
}

// Length returns Hi - Lo. A degenerate interval has length zero.
func (i Interval[T]) Length() T {
	return i.Hi - i.Lo
}

// Overlaps reports whether i and other share at least one value.
// Touching endpoints count as overlap since intervals are closed.
func (i Interval[T]) Overlaps(other Interval[T]) bool {
	return i.Lo <= other.Hi && other.Lo <= i.Hi
}

// Contains reports whether v lies within i, endpoints included.
func (i Interval[T]) Contains(v T) bool {
	return i.Lo <= v && v <= i.Hi
}

// ContainsInterval reports whether other lies entirely within i.
func (i Interval[T]) ContainsInterval(other Interval[T]) bool {
	return i.Lo <= other.Lo && other.Hi <= i.Hi
}

// HullWith returns the smallest interval containing both i and other.
// It is total and always succeeds.
func (i Interval[T]) HullWith(other Interval[T]) Interval[T] {
	return Interval[T]{
		Lo: min(i.Lo, other.Lo),
		Hi: max(i.Hi, other.Hi),
	}
}

// IntersectWith returns the interval common to i and other. It
// returns [ErrNoOverlap] if the intervals do not overlap; a vanishing
// intersection has no representation in this package.
func (i Interval[T]) IntersectWith(other Interval[T]) (Interval[T], error) {
	if !i.Overlaps(other) {
		return Interval[T]{}, fmt.Errorf("intersect %v with %v: %w", i, other, ErrNoOverlap)
	}
	return Interval[T]{
		Lo: max(i.Lo, other.Lo),
		Hi: min(i.Hi, other.Hi),
	}, nil
}

// EnlargeBy returns i widened by margin on both ends. A negative
// margin shrinks the interval; if it would shrink past the midpoint,
// EnlargeBy returns [ErrInvalidRange].
func (i Interval[T]) EnlargeBy(margin T) (Interval[T], error) {
	return NewInterval(i.Lo-margin, i.Hi+margin)
}

// ShiftBy returns i translated by d.
func (i Interval[T]) ShiftBy(d T) Interval[T] {
	return Interval[T]{Lo: i.Lo + d, Hi: i.Hi + d}
}

// ScaleBy returns i with both bounds multiplied by k. k must be
// non-negative or the result would invert; a negative k returns
// [ErrInvalidRange].
func (i Interval[T]) ScaleBy(k T) (Interval[T], error) {
	return NewInterval(i.Lo*k, i.Hi*k)
}

// Neg returns the mirror image of i about zero.
func (i Interval[T]) Neg() Interval[T] {
	return Interval[T]{Lo: -i.Hi, Hi: -i.Lo}
}

// MinDistWith returns the gap between i and other: zero when they
// overlap, otherwise the distance between the nearest endpoints.
func (i Interval[T]) MinDistWith(other Interval[T]) T {
	switch {
	case i.Hi < other.Lo:
		return other.Lo - i.Hi
	case other.Hi < i.Lo:
		return i.Lo - other.Hi
	default:
		return 0
	}
}

// MinDistTo returns the distance from i to the value v, zero when i
// contains v.
func (i Interval[T]) MinDistTo(v T) T {
	switch {
	case i.Hi < v:
		return v - i.Hi
	case v < i.Lo:
		return i.Lo - v
	default:
		return 0
	}
}

// DisplaceWith returns the per-bound displacement from other to i,
// i.e. the interval [i.Lo - other.Lo, i.Hi - other.Hi] of shifts that
// carry other's bounds onto i's. The result may be inverted when the
// intervals have different lengths, so it is returned as raw bounds
// via [Span].
func (i Interval[T]) DisplaceWith(other Interval[T]) Interval[T] {
	return Span(i.Lo-other.Lo, i.Hi-other.Hi)
}

// Cmp compares two intervals lexicographically by lower then upper
// bound, returning -1, 0, or +1. It is consistent with == and gives
// interval slices a total, deterministic order.
func (i Interval[T]) Cmp(other Interval[T]) int {
	switch {
	case i.Lo < other.Lo:
		return -1
	case i.Lo > other.Lo:
		return 1
	case i.Hi < other.Hi:
		return -1
	case i.Hi > other.Hi:
		return 1
	default:
		return 0
	}
}
