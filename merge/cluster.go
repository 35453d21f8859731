package merge

import (
	"fmt"
	"runtime"
	"slices"

	"deedles.dev/rectil/geom"
	"github.com/tidwall/rtree"
	"golang.org/x/sync/errgroup"
)

// Clusters partitions objs into connected groups of objects that are
// too close under the clearance margin alpha: two objects belong to
// the same group when a chain of pairwise overlaps of their
// alpha-enlarged regions connects them.
//
// Candidate pairs come from an R-tree over the enlarged regions in
// rotated space, queried in parallel, so the work is near-linear in
// the number of overlapping pairs rather than quadratic in the number
// of objects. The float bounds of the index are a conservative filter
// only; the exact integer overlap test decides membership.
//
// The result lists each group's member indices in ascending order,
// with groups ordered by their smallest member, so repeated runs on
// the same input produce identical output. It returns
// [geom.ErrInvalidRange] if a negative alpha would invert any object.
func Clusters[T geom.Scalar](objs []Obj[T], alpha T) ([][]int, error) {
	enlarged := make([]Obj[T], len(objs))
	for i, o := range objs {
		e, err := o.EnlargeWith(alpha)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		enlarged[i] = e
	}

	var tr rtree.RTreeG[int]
	for i, o := range enlarged {
		tr.Insert(
			[2]float64{float64(o.U.Lo), float64(o.V.Lo)},
			[2]float64{float64(o.U.Hi), float64(o.V.Hi)},
			i,
		)
	}

	// Each object queries the shared, now read-only index for its own
	// overlap candidates. Only pairs with j > i are kept so every
	// edge is found exactly once.
	adj := make([][]int, len(objs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range enlarged {
		g.Go(func() error {
			o := enlarged[i]
			tr.Search(
				[2]float64{float64(o.U.Lo), float64(o.V.Lo)},
				[2]float64{float64(o.U.Hi), float64(o.V.Hi)},
				func(_, _ [2]float64, j int) bool {
					if j > i && o.Overlaps(enlarged[j]) {
						adj[i] = append(adj[i], j)
					}
					return true
				},
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sets := newDisjointSets(len(objs))
	for i, neighbors := range adj {
		for _, j := range neighbors {
			sets.union(i, j)
		}
	}

	groups := make(map[int][]int)
	for i := range objs {
		root := sets.find(i)
		groups[root] = append(groups[root], i)
	}
	clusters := make([][]int, 0, len(groups))
	for _, members := range groups {
		slices.Sort(members)
		clusters = append(clusters, members)
	}
	slices.SortFunc(clusters, func(a, b []int) int {
		return a[0] - b[0]
	})
	return clusters, nil
}

// Envelope returns the smallest object enclosing every object in
// objs, the clearance envelope of an already-merged group. An empty
// envelope has no representation, so an empty objs is an error.
func Envelope[T geom.Scalar](objs []Obj[T]) (Obj[T], error) {
	if len(objs) == 0 {
		return Obj[T]{}, fmt.Errorf("envelope of no objects: %w", geom.ErrInvalidRange)
	}
	env := objs[0]
	for _, o := range objs[1:] {
		env = env.HullWith(o)
	}
	return env, nil
}

// disjointSets is a union-find structure with path halving and union
// by size.
type disjointSets struct {
	parent []int
	size   []int
}

func newDisjointSets(n int) *disjointSets {
	d := &disjointSets{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

func (d *disjointSets) find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}
	return i
}

func (d *disjointSets) union(i, j int) {
	ri, rj := d.find(i), d.find(j)
	if ri == rj {
		return
	}
	if d.size[ri] < d.size[rj] {
		ri, rj = rj, ri
	}
	d.parent[rj] = ri
	d.size[ri] += d.size[rj]
}
