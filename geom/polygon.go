package geom

import (
	"fmt"
	"iter"
	"slices"

	"deedles.dev/xiter"
)

// A Polygon is a closed, ordered sequence of at least three vertices
// describing a simple (non-self-intersecting) region. Simplicity is a
// documented precondition of the combining operations, not a runtime
// check; see [Polygon.HullWith] for the guarantee on outputs.
//
// Internally a polygon stores its first vertex and the displacements
// of the remaining vertices from it, so translation never touches the
// vertex data. The vertex sequence is owned by the polygon; accessors
// hand out copies.
type Polygon[T Scalar] struct {
	origin Point[T, T]
	vecs   []Vector[T, T]
}

// NewPolygon returns the polygon with the given vertex cycle. It
// returns [ErrDegeneratePolygon] if fewer than three vertices are
// given. The last vertex connects back to the first implicitly; do
// not repeat the first vertex at the end.
func NewPolygon[T Scalar](vertices []Point[T, T]) (Polygon[T], error) {
	if len(vertices) < 3 {
		return Polygon[T]{}, fmt.Errorf("%d vertices: %w", len(vertices), ErrDegeneratePolygon)
	}
	origin := vertices[0]
	vecs := make([]Vector[T, T], 0, len(vertices)-1)
	for _, pt := range vertices[1:] {
		vecs = append(vecs, pt.Displace(origin))
	}
	return Polygon[T]{origin: origin, vecs: vecs}, nil
}

// Len returns the number of vertices.
func (p Polygon[T]) Len() int {
	return len(p.vecs) + 1
}

// Vertices returns a fresh slice of the polygon's vertex cycle.
func (p Polygon[T]) Vertices() []Point[T, T] {
	return slices.Collect(p.VertexSeq())
}

// VertexSeq yields the polygon's vertices in order, starting at the
// origin vertex.
func (p Polygon[T]) VertexSeq() iter.Seq[Point[T, T]] {
	return func(yield func(Point[T, T]) bool) {
		if !yield(p.origin) {
			return
		}
		for _, v := range p.vecs {
			if !yield(p.origin.Add(v)) {
				return
			}
		}
	}
}

// Equal reports whether p and other have identical vertex cycles,
// including the choice of starting vertex.
func (p Polygon[T]) Equal(other Polygon[T]) bool {
	return p.origin == other.origin && slices.Equal(p.vecs, other.vecs)
}

// Translate returns p shifted by v. Only the origin moves; the
// relative vertex data is shared with the receiver, which is safe
// because it is never mutated.
func (p Polygon[T]) Translate(v Vector[T, T]) Polygon[T] {
	return Polygon[T]{origin: p.origin.Add(v), vecs: p.vecs}
}

// SignedAreaX2 returns twice the signed area of the polygon, via the
// shoelace sum over its edges. The doubling keeps the result exact in
// the coordinate domain; halve it (outside the kernel) for a true
// area. The sign is positive for counter-clockwise winding.
func (p Polygon[T]) SignedAreaX2() T {
	var area T
	for i := 0; i < len(p.vecs)-1; i++ {
		area += Cross(p.vecs[i], p.vecs[i+1])
	}
	return area
}

// Orientation classifies p's winding by the sign of its signed area.
func (p Polygon[T]) Orientation() Orientation {
	switch area := p.SignedAreaX2(); {
	case area > 0:
		return CounterClockwise
	case area < 0:
		return Clockwise
	default:
		return Degenerate
	}
}

// IsAnticlockwise reports whether p winds counter-clockwise.
func (p Polygon[T]) IsAnticlockwise() bool {
	return p.Orientation() == CounterClockwise
}

// IsRectilinear reports whether every edge of p is axis-aligned.
func (p Polygon[T]) IsRectilinear() bool {
	verts := p.Vertices()
	prev := verts[len(verts)-1]
	for _, pt := range verts {
		d := pt.Displace(prev)
		if d.DX != 0 && d.DY != 0 {
			return false
		}
		prev = pt
	}
	return true
}

// IsConvex reports whether p is convex: every turn along the boundary
// bends the same way as the polygon's winding.
func (p Polygon[T]) IsConvex() bool {
	verts := p.Vertices()
	n := len(verts)
	if n == 3 {
		return true
	}
	ccw := p.IsAnticlockwise()
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%n]
		c := verts[(i+2)%n]
		turn := Cross(b.Displace(a), c.Displace(b))
		if ccw && turn < 0 || !ccw && turn > 0 {
			return false
		}
	}
	return true
}

// BoundingBox returns the polygon's extent as one closed interval per
// axis.
func (p Polygon[T]) BoundingBox() (x, y Interval[T]) {
	x = IntervalOf(p.origin.X)
	y = IntervalOf(p.origin.Y)
	for _, v := range p.vecs {
		pt := p.origin.Add(v)
		x = x.HullWith(IntervalOf(pt.X))
		y = y.HullWith(IntervalOf(pt.Y))
	}
	return x, y
}

// Contains reports whether q lies inside p, by the crossing-count
// winding test. Boundary behavior is the usual half-open convention:
// for a partition of a region into polygons, each point is inside
// exactly one of them.
func (p Polygon[T]) Contains(q Point[T, T]) bool {
	verts := p.Vertices()
	p0 := verts[len(verts)-1]
	in := false
	for _, p1 := range verts {
		if (p1.Y <= q.Y && q.Y < p0.Y) || (p0.Y <= q.Y && q.Y < p1.Y) {
			det := Cross(q.Displace(p0), p1.Displace(p0))
			if p1.Y > p0.Y {
				if det < 0 {
					in = !in
				}
			} else if det > 0 {
				in = !in
			}
		}
		p0 = p1
	}
	return in
}

// HullWith returns the convex polygon enclosing the vertex sets of
// both p and other. The output winds counter-clockwise and never
// self-intersects, for any pair of valid simple polygons. Collinear
// points interior to a hull edge are dropped, so the vertex set is
// minimal and the construction is deterministic. It returns
// [ErrDegeneratePolygon] when the combined vertex set is collinear.
func (p Polygon[T]) HullWith(other Polygon[T]) (Polygon[T], error) {
	points := slices.Collect(xiter.Concat(p.VertexSeq(), other.VertexSeq()))
	hull, err := convexHull(points)
	if err != nil {
		return Polygon[T]{}, err
	}
	return NewPolygon(hull)
}

// EnlargeWith returns the Minkowski sum of p with the L∞ disk
// (axis-aligned square) of radius alpha: every edge moves outward by
// alpha along its outward normal and the corners are squared off.
//
// The receiver must be convex. At a reflex vertex the two offset
// edges meet at a point that is generally off the integer grid, so a
// concave polygon has no exact enlargement in this kernel; rather
// than silently return the enlargement of the convex hull, EnlargeWith
// rejects a non-convex receiver with [ErrNonConvex]. Negative alpha
// would shrink the region, which can invert edges, and returns
// [ErrInvalidRange].
func (p Polygon[T]) EnlargeWith(alpha T) (Polygon[T], error) {
	if alpha < 0 {
		return Polygon[T]{}, fmt.Errorf("enlarge by %v: %w", alpha, ErrInvalidRange)
	}
	if !p.IsConvex() {
		return Polygon[T]{}, fmt.Errorf("enlarge of non-convex polygon: %w", ErrNonConvex)
	}
	offsets := [4]Vector[T, T]{
		Vec(-alpha, -alpha), Vec(alpha, -alpha),
		Vec(alpha, alpha), Vec(-alpha, alpha),
	}
	points := make([]Point[T, T], 0, 4*p.Len())
	for pt := range p.VertexSeq() {
		for _, off := range offsets {
			points = append(points, pt.Add(off))
		}
	}
	hull, err := convexHull(points)
	if err != nil {
		return Polygon[T]{}, err
	}
	return NewPolygon(hull)
}

// convexHull computes the convex hull of points with Andrew's
// monotone chain, in counter-clockwise order. Strict turn tests drop
// points interior to hull edges, keeping only the extreme point at
// each end of a collinear run. The lexicographic pre-sort makes the
// result independent of input order.
func convexHull[T Scalar](points []Point[T, T]) ([]Point[T, T], error) {
	pts := slices.Clone(points)
	slices.SortFunc(pts, Point[T, T].Cmp)
	pts = slices.Compact(pts)
	if len(pts) < 3 {
		return nil, fmt.Errorf("hull of %d distinct points: %w", len(pts), ErrDegeneratePolygon)
	}

	build := func(seq []Point[T, T]) []Point[T, T] {
		var chain []Point[T, T]
		for _, pt := range seq {
			for len(chain) >= 2 {
				a, b := chain[len(chain)-2], chain[len(chain)-1]
				if Cross(b.Displace(a), pt.Displace(b)) > 0 {
					break
				}
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, pt)
		}
		return chain
	}

	lower := build(pts)
	upper := build(reversed(pts))
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return nil, fmt.Errorf("collinear point set: %w", ErrDegeneratePolygon)
	}
	return hull, nil
}

func reversed[T any](s []T) []T {
	r := slices.Clone(s)
	slices.Reverse(r)
	return r
}

// A KeyFunc selects the primary and secondary sort keys that monotone
// construction partitions and orders a point set by.
type KeyFunc[T Scalar] func(Point[T, T]) (T, T)

// XKey orders points by x first, then y. Monotone construction with
// XKey produces an x-monotone polygon.
func XKey[T Scalar](p Point[T, T]) (T, T) { return p.X, p.Y }

// YKey orders points by y first, then x. Monotone construction with
// YKey produces a y-monotone polygon.
func YKey[T Scalar](p Point[T, T]) (T, T) { return p.Y, p.X }

func compareByKey[T Scalar](key KeyFunc[T]) func(a, b Point[T, T]) int {
	return func(a, b Point[T, T]) int {
		a1, a2 := key(a)
		b1, b2 := key(b)
		switch {
		case a1 < b1:
			return -1
		case a1 > b1:
			return 1
		case a2 < b2:
			return -1
		case a2 > b2:
			return 1
		default:
			return 0
		}
	}
}

// CreateMonoPolygon builds the monotone simple polygon through every
// point of pointset, ordered by key. The extreme points under the key
// split the set into two chains, walked forward along one and back
// along the other. The result is simple for any point set with
// distinct keys and winds counter-clockwise. It returns
// [ErrDegeneratePolygon] for fewer than three points.
func CreateMonoPolygon[T Scalar](pointset []Point[T, T], key KeyFunc[T]) (Polygon[T], error) {
	if len(pointset) < 3 {
		return Polygon[T]{}, fmt.Errorf("%d points: %w", len(pointset), ErrDegeneratePolygon)
	}
	cmp := compareByKey(key)
	minPt := slices.MinFunc(pointset, cmp)
	maxPt := slices.MaxFunc(pointset, cmp)
	d := maxPt.Displace(minPt)

	var below, above []Point[T, T]
	for _, pt := range pointset {
		if Cross(d, pt.Displace(minPt)) <= 0 {
			below = append(below, pt)
		} else {
			above = append(above, pt)
		}
	}
	slices.SortFunc(below, cmp)
	slices.SortFunc(above, cmp)
	slices.Reverse(above)
	return NewPolygon(append(below, above...))
}

// CreateXMonoPolygon builds the x-monotone polygon through pointset.
func CreateXMonoPolygon[T Scalar](pointset []Point[T, T]) (Polygon[T], error) {
	return CreateMonoPolygon(pointset, XKey[T])
}

// CreateYMonoPolygon builds the y-monotone polygon through pointset.
func CreateYMonoPolygon[T Scalar](pointset []Point[T, T]) (Polygon[T], error) {
	return CreateMonoPolygon(pointset, YKey[T])
}

// IsMonotone reports whether the polygon's boundary, keyed by key,
// splits into one non-decreasing and one non-increasing chain between
// the key-extreme vertices.
func (p Polygon[T]) IsMonotone(key KeyFunc[T]) bool {
	return isMonotone(p.Vertices(), key)
}

// IsXMonotone reports whether p is monotone along the x axis.
func (p Polygon[T]) IsXMonotone() bool { return p.IsMonotone(XKey[T]) }

// IsYMonotone reports whether p is monotone along the y axis.
func (p Polygon[T]) IsYMonotone() bool { return p.IsMonotone(YKey[T]) }

func isMonotone[T Scalar](verts []Point[T, T], key KeyFunc[T]) bool {
	if len(verts) <= 3 {
		return true
	}
	cmp := compareByKey(key)
	minIdx := 0
	maxIdx := 0
	for i, pt := range verts {
		if cmp(pt, verts[minIdx]) < 0 {
			minIdx = i
		}
		if cmp(pt, verts[maxIdx]) > 0 {
			maxIdx = i
		}
	}

	primary := func(p Point[T, T]) T { k, _ := key(p); return k }
	n := len(verts)
	for i := minIdx; i != maxIdx; i = (i + 1) % n {
		if primary(verts[i]) > primary(verts[(i+1)%n]) {
			return false
		}
	}
	for i := maxIdx; i != minIdx; i = (i + 1) % n {
		if primary(verts[i]) < primary(verts[(i+1)%n]) {
			return false
		}
	}
	return true
}
