package geom_test

import (
	"testing"

	"deedles.dev/rectil/geom"
	"github.com/stretchr/testify/require"
)

func points(coords ...[2]int) []geom.Point[int, int] {
	pts := make([]geom.Point[int, int], 0, len(coords))
	for _, c := range coords {
		pts = append(pts, geom.Pt(c[0], c[1]))
	}
	return pts
}

// scatter is the unordered point set used throughout the monotone
// construction tests.
var scatter = points(
	[2]int{-2, 2}, [2]int{0, -1}, [2]int{-5, 1}, [2]int{-2, 4},
	[2]int{0, -4}, [2]int{-4, 3}, [2]int{-6, -2}, [2]int{5, 1},
	[2]int{2, 2}, [2]int{3, -3}, [2]int{-3, -3}, [2]int{3, 3},
	[2]int{-3, -4}, [2]int{1, 4},
)

func TestNewPolygon(t *testing.T) {
	_, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{1, 1}))
	require.ErrorIs(t, err, geom.ErrDegeneratePolygon)

	p, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}))
	require.NoError(t, err)
	require.Equal(t, 3, p.Len())
}

func TestPolygonSignedArea(t *testing.T) {
	ccw, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{0, 1}))
	require.NoError(t, err)
	require.Equal(t, 2, ccw.SignedAreaX2())
	require.Equal(t, geom.CounterClockwise, ccw.Orientation())

	cw, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{1, 0}))
	require.NoError(t, err)
	require.Equal(t, -2, cw.SignedAreaX2())
	require.Equal(t, geom.Clockwise, cw.Orientation())

	flat, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}))
	require.NoError(t, err)
	require.Equal(t, 0, flat.SignedAreaX2())
	require.Equal(t, geom.Degenerate, flat.Orientation())
}

func TestPolygonTranslate(t *testing.T) {
	p, err := geom.CreateXMonoPolygon(scatter)
	require.NoError(t, err)

	v := geom.Vec(4, 5)
	q := p.Translate(v).Translate(v.Neg())
	require.True(t, q.Equal(p))
}

func TestCreateYMonoPolygon(t *testing.T) {
	p, err := geom.CreateYMonoPolygon(scatter)
	require.NoError(t, err)

	require.True(t, p.IsYMonotone())
	require.False(t, p.IsXMonotone())
	require.True(t, p.IsAnticlockwise())
	require.Equal(t, 102, p.SignedAreaX2())
}

func TestCreateXMonoPolygon(t *testing.T) {
	p, err := geom.CreateXMonoPolygon(scatter)
	require.NoError(t, err)

	require.True(t, p.IsXMonotone())
	require.False(t, p.IsYMonotone())
	require.True(t, p.IsAnticlockwise())
	require.Equal(t, 111, p.SignedAreaX2())
}

func TestCreateMonoPolygonDegenerate(t *testing.T) {
	_, err := geom.CreateXMonoPolygon(points([2]int{0, 0}, [2]int{1, 1}))
	require.ErrorIs(t, err, geom.ErrDegeneratePolygon)
}

func TestPolygonIsRectilinear(t *testing.T) {
	r, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{1, 0}))
	require.NoError(t, err)
	require.True(t, r.IsRectilinear())

	d, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{1, 1}, [2]int{0, 2}))
	require.NoError(t, err)
	require.False(t, d.IsRectilinear())
}

func TestPolygonIsConvex(t *testing.T) {
	square, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{2, 0}, [2]int{2, 2}, [2]int{0, 2}))
	require.NoError(t, err)
	require.True(t, square.IsConvex())

	dented, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{2, 0}, [2]int{1, 1}, [2]int{2, 2}, [2]int{0, 2}))
	require.NoError(t, err)
	require.False(t, dented.IsConvex())

	triangle, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{2, 0}, [2]int{1, 2}))
	require.NoError(t, err)
	require.True(t, triangle.IsConvex())

	// Clockwise convexity is convexity too.
	cw, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{0, 2}, [2]int{2, 2}, [2]int{2, 0}))
	require.NoError(t, err)
	require.True(t, cw.IsConvex())

	cwDented, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{0, 2}, [2]int{1, 1}, [2]int{2, 2}, [2]int{2, 0}))
	require.NoError(t, err)
	require.False(t, cwDented.IsConvex())
}

func TestPolygonContains(t *testing.T) {
	square, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{10, 0}, [2]int{10, 10}, [2]int{0, 10}))
	require.NoError(t, err)

	require.False(t, square.Contains(geom.Pt(5, 10)), "top edge is outside")
	require.True(t, square.Contains(geom.Pt(5, 0)), "bottom edge is inside")
	require.True(t, square.Contains(geom.Pt(5, 5)))
	require.False(t, square.Contains(geom.Pt(11, 5)))

	wedge, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{10, 5}, [2]int{0, 10}))
	require.NoError(t, err)
	require.True(t, wedge.Contains(geom.Pt(1, 5)))

	cwWedge, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{0, 10}, [2]int{10, 5}))
	require.NoError(t, err)
	require.True(t, cwWedge.Contains(geom.Pt(1, 5)))
}

func TestPolygonBoundingBox(t *testing.T) {
	p, err := geom.NewPolygon(points([2]int{1, 2}, [2]int{5, -1}, [2]int{3, 7}))
	require.NoError(t, err)

	x, y := p.BoundingBox()
	require.Equal(t, ival(t, 1, 5), x)
	require.Equal(t, ival(t, -1, 7), y)
}

// requireEnclosedBy asserts that every vertex of p is inside or on
// the boundary of the counter-clockwise convex polygon hull.
func requireEnclosedBy(t *testing.T, p, hull geom.Polygon[int]) {
	t.Helper()
	hv := hull.Vertices()
	for _, pt := range p.Vertices() {
		for i, a := range hv {
			b := hv[(i+1)%len(hv)]
			edge := b.Displace(a)
			require.GreaterOrEqual(t, geom.Cross(edge, pt.Displace(a)), 0,
				"vertex %v outside hull edge %v-%v", pt, a, b)
		}
	}
}

func TestPolygonHullWith(t *testing.T) {
	p1, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{4, 0}, [2]int{2, 3}))
	require.NoError(t, err)
	p2, err := geom.NewPolygon(points([2]int{3, 1}, [2]int{7, 2}, [2]int{5, 5}))
	require.NoError(t, err)

	hull, err := p1.HullWith(p2)
	require.NoError(t, err)
	require.Equal(t, geom.CounterClockwise, hull.Orientation())
	require.True(t, hull.IsConvex())
	requireEnclosedBy(t, p1, hull)
	requireEnclosedBy(t, p2, hull)

	// Hulling is symmetric up to starting vertex; both results
	// describe the same vertex cycle starting at the lexicographic
	// minimum.
	rev, err := p2.HullWith(p1)
	require.NoError(t, err)
	require.True(t, hull.Equal(rev))
}

func TestPolygonHullWithCollinear(t *testing.T) {
	// Collinear interior points are dropped from hull edges: only
	// the extreme points of a collinear run survive.
	p1, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{2, 0}, [2]int{4, 0}, [2]int{4, 4}))
	require.NoError(t, err)
	p2, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{4, 4}, [2]int{0, 4}))
	require.NoError(t, err)

	hull, err := p1.HullWith(p2)
	require.NoError(t, err)
	require.Equal(t,
		points([2]int{0, 0}, [2]int{4, 0}, [2]int{4, 4}, [2]int{0, 4}),
		hull.Vertices())

	flat1, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}))
	require.NoError(t, err)
	flat2, err := geom.NewPolygon(points([2]int{3, 3}, [2]int{4, 4}, [2]int{5, 5}))
	require.NoError(t, err)
	_, err = flat1.HullWith(flat2)
	require.ErrorIs(t, err, geom.ErrDegeneratePolygon)
}

func TestPolygonEnlargeWith(t *testing.T) {
	square, err := geom.NewPolygon(points([2]int{0, 0}, [2]int{2, 0}, [2]int{2, 2}, [2]int{0, 2}))
	require.NoError(t, err)

	big, err := square.EnlargeWith(1)
	require.NoError(t, err)
	require.Equal(t,
		points([2]int{-1, -1}, [2]int{3, -1}, [2]int{3, 3}, [2]int{-1, 3}),
		big.Vertices())

	same, err := square.EnlargeWith(0)
	require.NoError(t, err)
	require.True(t, same.Equal(square), "zero margin is the identity")

	_, err = square.EnlargeWith(-1)
	require.ErrorIs(t, err, geom.ErrInvalidRange)
}

func TestPolygonEnlargeWithNonConvex(t *testing.T) {
	// A concave receiver has no exact enlargement: the offset edges at
	// a reflex vertex meet off the integer grid. The notch must not be
	// silently filled in, not even for a zero margin.
	u, err := geom.NewPolygon(points(
		[2]int{0, 0}, [2]int{6, 0}, [2]int{6, 4}, [2]int{4, 4},
		[2]int{4, 2}, [2]int{2, 2}, [2]int{2, 4}, [2]int{0, 4},
	))
	require.NoError(t, err)
	require.False(t, u.Contains(geom.Pt(3, 3)))

	_, err = u.EnlargeWith(0)
	require.ErrorIs(t, err, geom.ErrNonConvex)
	_, err = u.EnlargeWith(1)
	require.ErrorIs(t, err, geom.ErrNonConvex)
}

func TestPolygonEnlargeSquaresOffCorners(t *testing.T) {
	diamond, err := geom.NewPolygon(points([2]int{0, -2}, [2]int{2, 0}, [2]int{0, 2}, [2]int{-2, 0}))
	require.NoError(t, err)

	big, err := diamond.EnlargeWith(1)
	require.NoError(t, err)
	require.Equal(t, geom.CounterClockwise, big.Orientation())
	require.True(t, big.IsConvex())
	require.Equal(t, 8, big.Len(), "each diamond corner gains an axis-aligned cap")
	requireEnclosedBy(t, diamond, big)
}
