package geom

import "fmt"

// A Point is a position given by a pair of orthogonal coordinates.
// The two axes may use distinct coordinate domains, e.g. different
// fixed-point grid pitches per axis.
//
// Points are comparable and may be used as map keys. Two points are
// equal exactly when both coordinates are equal, regardless of how
// they were constructed.
type Point[TX, TY Scalar] struct {
	X TX
	Y TY
}

// Pt is shorthand for Point[TX, TY]{x, y}.
func Pt[TX, TY Scalar](x TX, y TY) Point[TX, TY] {
	return Point[TX, TY]{X: x, Y: y}
}

func (p Point[TX, TY]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Add returns p translated by v.
func (p Point[TX, TY]) Add(v Vector[TX, TY]) Point[TX, TY] {
	return Point[TX, TY]{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Sub returns p translated by the negation of v.
func (p Point[TX, TY]) Sub(v Vector[TX, TY]) Point[TX, TY] {
	return Point[TX, TY]{X: p.X - v.DX, Y: p.Y - v.DY}
}

// Displace returns the vector carrying other onto p, i.e. p - other.
func (p Point[TX, TY]) Displace(other Point[TX, TY]) Vector[TX, TY] {
	return Vector[TX, TY]{DX: p.X - other.X, DY: p.Y - other.Y}
}

// Flip returns p with its axes swapped.
func (p Point[TX, TY]) Flip() Point[TY, TX] {
	return Point[TY, TX]{X: p.Y, Y: p.X}
}

// Cmp compares two points lexicographically, x first and y second,
// returning -1, 0, or +1. It is consistent with ==, so sorting a
// point slice with Cmp groups equal points regardless of origin.
func (p Point[TX, TY]) Cmp(other Point[TX, TY]) int {
	switch {
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	default:
		return 0
	}
}

// MinDistWith returns the Manhattan (L1) distance between p and
// other. Both axes must share a domain for the sum to be meaningful,
// hence the single type parameter.
func MinDistWith[T Scalar](p, other Point[T, T]) T {
	return absDiff(p.X, other.X) + absDiff(p.Y, other.Y)
}

// A Vector is a displacement between two Points. It supports
// componentwise arithmetic and the products that polygon area and
// winding computations need.
//
// Vectors are comparable and may be used as map keys.
type Vector[TX, TY Scalar] struct {
	DX TX
	DY TY
}

// Vec is shorthand for Vector[TX, TY]{dx, dy}.
func Vec[TX, TY Scalar](dx TX, dy TY) Vector[TX, TY] {
	return Vector[TX, TY]{DX: dx, DY: dy}
}

func (v Vector[TX, TY]) String() string {
	return fmt.Sprintf("<%v, %v>", v.DX, v.DY)
}

// Add returns the componentwise sum of v and other.
func (v Vector[TX, TY]) Add(other Vector[TX, TY]) Vector[TX, TY] {
	return Vector[TX, TY]{DX: v.DX + other.DX, DY: v.DY + other.DY}
}

// Sub returns the componentwise difference of v and other.
func (v Vector[TX, TY]) Sub(other Vector[TX, TY]) Vector[TX, TY] {
	return Vector[TX, TY]{DX: v.DX - other.DX, DY: v.DY - other.DY}
}

// Neg returns the vector pointing opposite to v.
func (v Vector[TX, TY]) Neg() Vector[TX, TY] {
	return Vector[TX, TY]{DX: -v.DX, DY: -v.DY}
}

// Cmp compares two vectors lexicographically, like [Point.Cmp].
func (v Vector[TX, TY]) Cmp(other Vector[TX, TY]) int {
	switch {
	case v.DX < other.DX:
		return -1
	case v.DX > other.DX:
		return 1
	case v.DY < other.DY:
		return -1
	case v.DY > other.DY:
		return 1
	default:
		return 0
	}
}

// Scale returns v with both components multiplied by k.
func Scale[T Scalar](v Vector[T, T], k T) Vector[T, T] {
	return Vector[T, T]{DX: v.DX * k, DY: v.DY * k}
}

// Cross returns the z component of the cross product of v and other.
// Its sign gives the turn direction from v to other: positive is a
// left (counter-clockwise) turn.
func Cross[T Scalar](v, other Vector[T, T]) T {
	return v.DX*other.DY - v.DY*other.DX
}

// Dot returns the dot product of v and other.
func Dot[T Scalar](v, other Vector[T, T]) T {
	return v.DX*other.DX + v.DY*other.DY
}

// L1Norm returns |dx| + |dy|, the Manhattan length of v.
func L1Norm[T Scalar](v Vector[T, T]) T {
	return absDiff(v.DX, 0) + absDiff(v.DY, 0)
}

// NormInf returns max(|dx|, |dy|), the Chebyshev length of v.
func NormInf[T Scalar](v Vector[T, T]) T {
	return max(absDiff(v.DX, 0), absDiff(v.DY, 0))
}
