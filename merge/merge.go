// Package merge implements spacing and clearance testing for
// Manhattan-geometry layout objects under a 45°-rotated coordinate
// system.
//
// The rotation u = x + y, v = x - y is exact for integer coordinates
// and turns Manhattan-distance proximity into axis-aligned interval
// overlap: two objects are within Manhattan distance d of each other
// exactly when their rotated representations are within Chebyshev
// distance d. An [Obj] is therefore just a pair of closed intervals,
// one per rotated axis.
package merge

import (
	"fmt"

	"deedles.dev/rectil/geom"
)

// An Obj is a geometric object in the rotated (u, v) coordinate
// system. It may stand for a single point, with both intervals
// degenerate, or for an already-enlarged clearance region.
//
// Objs are immutable comparable values; equality is structural over
// the two intervals, so deduplicated sets of Objs behave as expected.
type Obj[T geom.Scalar] struct {
	U, V geom.Interval[T]
}

// New returns the object spanning the given rotated-axis intervals.
func New[T geom.Scalar](u, v geom.Interval[T]) Obj[T] {
	return Obj[T]{U: u, V: v}
}

// FromPoint returns the rotated representation of the single layout
// point p: both intervals degenerate to u = x + y and v = x - y.
func FromPoint[T geom.Scalar](p geom.Point[T, T]) Obj[T] {
	return Obj[T]{
		U: geom.IntervalOf(p.X + p.Y),
		V: geom.IntervalOf(p.X - p.Y),
	}
}

func (o Obj[T]) String() string {
	return fmt.Sprintf("/%v, %v/", o.U, o.V)
}

// EnlargeWith returns o's clearance zone for the margin alpha: both
// rotated intervals widened by alpha. In the source coordinate system
// this inflates the object by alpha under the Manhattan metric. A
// negative alpha deflates and returns [geom.ErrInvalidRange] if it
// would invert either interval.
func (o Obj[T]) EnlargeWith(alpha T) (Obj[T], error) {
	u, err := o.U.EnlargeBy(alpha)
	if err != nil {
		return Obj[T]{}, err
	}
	v, err := o.V.EnlargeBy(alpha)
	if err != nil {
		return Obj[T]{}, err
	}
	return Obj[T]{U: u, V: v}, nil
}

// Overlaps reports whether o and other share area on both rotated
// axes.
func (o Obj[T]) Overlaps(other Obj[T]) bool {
	return o.U.Overlaps(other.U) && o.V.Overlaps(other.V)
}

// IntersectWith returns the region common to o and other. This is the
// core merge test: enlarge two objects by a design-rule clearance and
// intersect to decide whether they are too close and must be merged.
// It returns [geom.ErrNoOverlap] if the objects are disjoint on
// either axis.
func (o Obj[T]) IntersectWith(other Obj[T]) (Obj[T], error) {
	u, err := o.U.IntersectWith(other.U)
	if err != nil {
		return Obj[T]{}, fmt.Errorf("u axis: %w", err)
	}
	v, err := o.V.IntersectWith(other.V)
	if err != nil {
		return Obj[T]{}, fmt.Errorf("v axis: %w", err)
	}
	return Obj[T]{U: u, V: v}, nil
}

// HullWith returns the smallest object enclosing both o and other,
// the clearance envelope of the pair.
func (o Obj[T]) HullWith(other Obj[T]) Obj[T] {
	return Obj[T]{
		U: o.U.HullWith(other.U),
		V: o.V.HullWith(other.V),
	}
}

// MinDistWith returns the distance between o and other: the Chebyshev
// gap in rotated space, which equals the Manhattan gap between the
// underlying objects. It is zero when the objects overlap.
func (o Obj[T]) MinDistWith(other Obj[T]) T {
	return max(
		o.U.MinDistWith(other.U),
		o.V.MinDistWith(other.V),
	)
}

// MergeWith returns the merging segment of o and other: each object
// is enlarged by half the separating distance (the odd unit going to
// other) and the enlargements intersected. The result is the locus of
// points equidistant-or-closer to both objects, used to join two
// too-close objects into one. The two enlargements always meet, so
// MergeWith is total.
func (o Obj[T]) MergeWith(other Obj[T]) Obj[T] {
	alpha := o.MinDistWith(other)
	half := alpha / 2
	a, _ := o.EnlargeWith(half)
	b, _ := other.EnlargeWith(alpha - half)
	m, _ := a.IntersectWith(b)
	return m
}

// Translate returns o moved by the source-space vector d. The rotated
// axes shift by dx + dy and dx - dy respectively.
func (o Obj[T]) Translate(d geom.Vector[T, T]) Obj[T] {
	return Obj[T]{
		U: o.U.ShiftBy(d.DX + d.DY),
		V: o.V.ShiftBy(d.DX - d.DY),
	}
}
