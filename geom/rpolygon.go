package geom

import (
	"fmt"
	"iter"
	"slices"
)

// An RPolygon is a rectilinear ("staircase") polygon: a simple
// polygon whose edges are all axis-aligned and strictly alternate
// between horizontal and vertical. The alternation invariant forces
// an even vertex count and is validated at construction.
//
// Like [Polygon], an RPolygon stores its first vertex plus relative
// displacements, so translation is exact and cheap.
type RPolygon[T Scalar] struct {
	origin Point[T, T]
	vecs   []Vector[T, T]
}

// NewRPolygon returns the rectilinear polygon with the given vertex
// cycle. It returns [ErrDegeneratePolygon] if there are fewer than
// four vertices, if any edge is not axis-aligned or has zero length,
// or if consecutive edges do not alternate axis.
func NewRPolygon[T Scalar](vertices []Point[T, T]) (RPolygon[T], error) {
	if err := checkAlternation(vertices); err != nil {
		return RPolygon[T]{}, err
	}
	origin := vertices[0]
	vecs := make([]Vector[T, T], 0, len(vertices)-1)
	for _, pt := range vertices[1:] {
		vecs = append(vecs, pt.Displace(origin))
	}
	return RPolygon[T]{origin: origin, vecs: vecs}, nil
}

func checkAlternation[T Scalar](vertices []Point[T, T]) error {
	if len(vertices) < 4 {
		return fmt.Errorf("%d vertices: %w", len(vertices), ErrDegeneratePolygon)
	}
	n := len(vertices)
	prevHorizontal := false
	for i := range vertices {
		d := vertices[(i+1)%n].Displace(vertices[i])
		horizontal := d.DY == 0
		switch {
		case d.DX == 0 && d.DY == 0:
			return fmt.Errorf("zero-length edge at vertex %d: %w", i, ErrDegeneratePolygon)
		case d.DX != 0 && d.DY != 0:
			return fmt.Errorf("diagonal edge at vertex %d: %w", i, ErrDegeneratePolygon)
		case i > 0 && horizontal == prevHorizontal:
			return fmt.Errorf("consecutive parallel edges at vertex %d: %w", i, ErrDegeneratePolygon)
		}
		prevHorizontal = horizontal
	}
	// The closing edge's successor is the first edge.
	first := vertices[1].Displace(vertices[0])
	if (first.DY == 0) == prevHorizontal {
		return fmt.Errorf("consecutive parallel edges at vertex 0: %w", ErrDegeneratePolygon)
	}
	return nil
}

// Len returns the number of vertices, which is always even.
func (p RPolygon[T]) Len() int {
	return len(p.vecs) + 1
}

// Vertices returns a fresh slice of the polygon's vertex cycle.
func (p RPolygon[T]) Vertices() []Point[T, T] {
	return slices.Collect(p.VertexSeq())
}

// VertexSeq yields the polygon's vertices in order, starting at the
// origin vertex.
func (p RPolygon[T]) VertexSeq() iter.Seq[Point[T, T]] {
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
func (p RPolygon[T]) Equal(other RPolygon[T]) bool {
	return p.origin == other.origin && slices.Equal(p.vecs, other.vecs)
}

// Translate returns p shifted by v.
func (p RPolygon[T]) Translate(v Vector[T, T]) RPolygon[T] {
	return RPolygon[T]{origin: p.origin.Add(v), vecs: p.vecs}
}

// Polygon returns p viewed as a general polygon.
func (p RPolygon[T]) Polygon() Polygon[T] {
	return Polygon[T]{origin: p.origin, vecs: p.vecs}
}

// SignedArea returns the exact signed area of the polygon, positive
// for counter-clockwise winding. Rectilinear areas are integral in
// the coordinate domain, so no doubling is needed: only the vertical
// edges contribute, each a full x·Δy term.
func (p RPolygon[T]) SignedArea() T {
	verts := p.Vertices()
	var area T
	prev := verts[len(verts)-1]
	for _, pt := range verts {
		area += prev.X * (pt.Y - prev.Y)
		prev = pt
	}
	return area
}

// Orientation classifies p's winding by the sign of its signed area.
func (p RPolygon[T]) Orientation() Orientation {
	switch area := p.SignedArea(); {
	case area > 0:
		return CounterClockwise
	case area < 0:
		return Clockwise
	default:
		return Degenerate
	}
}

// IsAnticlockwise reports whether p winds counter-clockwise.
func (p RPolygon[T]) IsAnticlockwise() bool {
	return p.Orientation() == CounterClockwise
}

// BoundingBox returns the polygon's extent as one closed interval per
// axis.
func (p RPolygon[T]) BoundingBox() (x, y Interval[T]) {
	x = IntervalOf(p.origin.X)
	y = IntervalOf(p.origin.Y)
	for _, v := range p.vecs {
		pt := p.origin.Add(v)
		x = x.HullWith(IntervalOf(pt.X))
		y = y.HullWith(IntervalOf(pt.Y))
	}
	return x, y
}

// IsBox reports whether p is an axis-aligned rectangle. Alternation
// makes any four-vertex rectilinear polygon a rectangle.
func (p RPolygon[T]) IsBox() bool {
	return p.Len() == 4
}

// Box returns the counter-clockwise rectangle spanning the two
// intervals. It returns [ErrDegeneratePolygon] if either interval is
// degenerate, since a zero-extent box has zero-length edges.
func Box[T Scalar](x, y Interval[T]) (RPolygon[T], error) {
	return NewRPolygon([]Point[T, T]{
		Pt(x.Lo, y.Lo), Pt(x.Hi, y.Lo), Pt(x.Hi, y.Hi), Pt(x.Lo, y.Hi),
	})
}

// Contains reports whether q lies inside p. Only vertical edges can
// cross a rightward ray, so the test counts vertical edges that
// straddle q's y with x beyond q's x; it is exact, with the usual
// half-open boundary convention of the Franklin crossing test.
func (p RPolygon[T]) Contains(q Point[T, T]) bool {
	verts := p.Vertices()
	p0 := verts[len(verts)-1]
	in := false
	for _, p1 := range verts {
		if p0.X == p1.X && p1.X > q.X {
			if (p1.Y <= q.Y && q.Y < p0.Y) || (p0.Y <= q.Y && q.Y < p1.Y) {
				in = !in
			}
		}
		p0 = p1
	}
	return in
}

// IsMonotone reports whether the boundary, keyed by key, splits into
// one non-decreasing and one non-increasing chain.
func (p RPolygon[T]) IsMonotone(key KeyFunc[T]) bool {
	return isMonotone(p.Vertices(), key)
}

// IsXMonotone reports whether p is monotone along the x axis.
func (p RPolygon[T]) IsXMonotone() bool { return p.IsMonotone(XKey[T]) }

// IsYMonotone reports whether p is monotone along the y axis.
func (p RPolygon[T]) IsYMonotone() bool { return p.IsMonotone(YKey[T]) }

// IsConvex reports whether p is rectilinearly convex: monotone along
// both axes.
func (p RPolygon[T]) IsConvex() bool {
	return p.IsXMonotone() && p.IsYMonotone()
}

// HullWith returns the smallest box enclosing both p and other. The
// tightest rectilinear enclosure of two staircases is not in general a
// staircase itself, so the hull is taken per axis; for a pair of boxes
// it is exact. The error cannot occur for valid operands, whose extent
// is at least one unit on each axis.
func (p RPolygon[T]) HullWith(other RPolygon[T]) (RPolygon[T], error) {
	px, py := p.BoundingBox()
	ox, oy := other.BoundingBox()
	return Box(px.HullWith(ox), py.HullWith(oy))
}

// CreateMonoRPolygon builds the monotone rectilinear polygon through
// every point of pointset, ordered by key. The extreme points under
// the key split the set into two chains; consecutive points that
// differ on both axes are joined by a horizontal-then-vertical step,
// with the corner vertex inserted explicitly, and collinear runs are
// merged so edges alternate strictly. Every input point ends up on
// the result's boundary, as a vertex or interior to an edge.
//
// It returns [ErrDegeneratePolygon] if fewer than two distinct points
// are given, if the set is collinear under the key, or if points
// sharing a key coordinate cannot be linearly ordered into a simple
// staircase — the chain would have to double back over itself, which
// no strictly alternating boundary can do.
func CreateMonoRPolygon[T Scalar](pointset []Point[T, T], key KeyFunc[T]) (RPolygon[T], error) {
	pts := slices.Clone(pointset)
	slices.SortFunc(pts, Point[T, T].Cmp)
	pts = slices.Compact(pts)
	if len(pts) < 2 {
		return RPolygon[T]{}, fmt.Errorf("%d distinct points: %w", len(pts), ErrDegeneratePolygon)
	}

	cmp := compareByKey(key)
	first := slices.MinFunc(pts, cmp)
	last := slices.MaxFunc(pts, cmp)
	_, firstSecondary := key(first)
	_, lastSecondary := key(last)
	// The forward chain keeps the side of the sweep that the far
	// extreme sits on, so the two chains never cross.
	keepLow := lastSecondary <= firstSecondary

	var forward, backward []Point[T, T]
	for _, pt := range pts {
		_, secondary := key(pt)
		onForward := secondary <= firstSecondary
		if !keepLow {
			onForward = secondary >= firstSecondary
		}
		if onForward {
			forward = append(forward, pt)
		} else {
			backward = append(backward, pt)
		}
	}
	slices.SortFunc(forward, cmp)
	slices.SortFunc(backward, cmp)
	slices.Reverse(backward)
	steps := append(forward, backward...)

	verts, lossy := mergeCollinear(insertCorners(steps))
	if lossy {
		return RPolygon[T]{}, fmt.Errorf("point set not orderable by key: %w", ErrDegeneratePolygon)
	}
	if err := checkAlternation(verts); err != nil {
		return RPolygon[T]{}, fmt.Errorf("point set not orderable by key: %w", err)
	}
	return NewRPolygon(verts)
}

// CreateXMonoRPolygon builds the x-monotone staircase through
// pointset.
func CreateXMonoRPolygon[T Scalar](pointset []Point[T, T]) (RPolygon[T], error) {
	return CreateMonoRPolygon(pointset, XKey[T])
}

// CreateYMonoRPolygon builds the y-monotone staircase through
// pointset.
func CreateYMonoRPolygon[T Scalar](pointset []Point[T, T]) (RPolygon[T], error) {
	return CreateMonoRPolygon(pointset, YKey[T])
}

// insertCorners joins consecutive step points that differ on both
// axes with the corner of a horizontal-then-vertical step.
func insertCorners[T Scalar](steps []Point[T, T]) []Point[T, T] {
	verts := make([]Point[T, T], 0, 2*len(steps))
	n := len(steps)
	for i, pt := range steps {
		verts = append(verts, pt)
		next := steps[(i+1)%n]
		if pt.X != next.X && pt.Y != next.Y {
			verts = append(verts, Pt(next.X, pt.Y))
		}
	}
	return verts
}

// mergeCollinear drops duplicate vertices and vertices interior to a
// straight run, including runs that wrap around the cycle's starting
// vertex. It iterates to a fixpoint since removing a vertex can make
// its neighbors collinear in turn.
//
// A vertex on a straight run is only safe to drop when it lies
// between its neighbors: it stays on the merged edge. A vertex
// outside that span is the tip of a zero-width spur, and dropping it
// would deform the boundary, so mergeCollinear reports it as lossy.
func mergeCollinear[T Scalar](verts []Point[T, T]) (_ []Point[T, T], lossy bool) {
	for {
		n := len(verts)
		if n < 3 {
			return verts, lossy
		}
		out := make([]Point[T, T], 0, n)
		for i, pt := range verts {
			prev := verts[(i+n-1)%n]
			next := verts[(i+1)%n]
			switch {
			case pt == prev:
			case prev.X == pt.X && pt.X == next.X:
				if pt.Y < min(prev.Y, next.Y) || pt.Y > max(prev.Y, next.Y) {
					lossy = true
				}
			case prev.Y == pt.Y && pt.Y == next.Y:
				if pt.X < min(prev.X, next.X) || pt.X > max(prev.X, next.X) {
					lossy = true
				}
			default:
				out = append(out, pt)
			}
		}
		if len(out) == len(verts) {
			return out, lossy
		}
		verts = out
	}
}
