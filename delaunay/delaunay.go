package delaunay

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/vicentehelano/delaunay/brio"
	"github.com/vicentehelano/delaunay/geometry"
	"github.com/vicentehelano/delaunay/tds"
)

// Triangulation incrementally builds the Delaunay triangulation of a
// planar point set on top of any tds.TDS implementation.
type Triangulation struct {
	ds    tds.TDS
	opts  Options
	bbox  geometry.BoundingBox
	hint  tds.Face
	seen  map[[2]float64]struct{}
	ready bool
}

// New wraps an empty triangulation data structure (its only vertex the
// infinite one) into a triangulator. The choice of ds — links.New() or
// guards.New() — selects the connectivity variant; the triangulator
// itself is oblivious to it.
func New(ds tds.TDS, opts ...Option) *Triangulation {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Triangulation{
		ds:   ds,
		opts: o,
		bbox: geometry.NewBoundingBox(),
		seen: make(map[[2]float64]struct{}),
	}
}

// TDS returns the underlying triangulation data structure.
func (t *Triangulation) TDS() tds.TDS {
	return t.ds
}

// Vertex returns a handle to the i-th vertex.
func (t *Triangulation) Vertex(i int) tds.Vertex {
	return t.ds.Vertex(i)
}

// NumberOfVertices returns the vertex count, including the infinite
// vertex.
func (t *Triangulation) NumberOfVertices() int {
	return t.ds.NumberOfVertices()
}

// Neighbor returns the face opposite the i-th vertex of f.
func (t *Triangulation) Neighbor(i int, f tds.Face) (tds.Face, bool) {
	return t.ds.Neighbor(i, f)
}

// IncidentFaces returns the faces incident to vertex v, v first.
func (t *Triangulation) IncidentFaces(v int) []tds.Face {
	return t.ds.IncidentFaces(v)
}

// BoundingBox returns the box enclosing the points of every batch that
// Insert completed without error. Points of a batch that failed part-way
// are not added, even those already triangulated.
func (t *Triangulation) BoundingBox() geometry.BoundingBox {
	return t.bbox
}

// Insert triangulates a batch of points. The first batch needs at least
// three points to bootstrap the structure; later batches may be any
// size. Points are permuted by the BRIO before insertion, so the final
// vertex numbering follows the biased random order, not the input
// order.
//
// Recoverable failures surface here: ErrTooFewPoints,
// ErrNonFiniteCoordinate and ErrDuplicatePoint before any mutation,
// ErrCollinearPoints when no valid bootstrap triple exists, and
// ErrDegenerateLocation from the walk. Insertions completed before a
// walk failure are retained.
func (t *Triangulation) Insert(points []geometry.Point) error {
	if !t.ready && len(points) < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	if err := t.validate(points); err != nil {
		return err
	}

	t.opts.Logger.Debug().Int("points", len(points)).Msg("creating BRIO")
	order := brio.New(brio.WithRand(t.opts.Rand), brio.WithLogger(t.opts.Logger))
	perm := order.Reorder(points)

	rest := perm
	if !t.ready {
		t.opts.Logger.Debug().Msg("inserting first three points")
		if err := t.bootstrap(perm); err != nil {
			return err
		}
		t.ready = true
		rest = perm[3:]
	}

	t.opts.Logger.Debug().Int("points", len(rest)).Msg("inserting remaining points")
	for _, p := range rest {
		if err := t.insertPoint(p); err != nil {
			return err
		}
	}

	t.bbox.Expand(points)

	return nil
}

// validate rejects non-finite coordinates and duplicates, both within
// the batch and against previously inserted points, before any
// mutation.
func (t *Triangulation) validate(points []geometry.Point) error {
	batch := make(map[[2]float64]struct{}, len(points))
	for _, p := range points {
		if !p.Finite() {
			return fmt.Errorf("%w: %s", ErrNonFiniteCoordinate, p)
		}
		key := [2]float64{p.X, p.Y}
		if _, dup := t.seen[key]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicatePoint, p)
		}
		if _, dup := batch[key]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicatePoint, p)
		}
		batch[key] = struct{}{}
	}

	return nil
}

// bootstrap creates the first finite face from the first three
// non-collinear points of the permutation, swapping the third one into
// position 2, plus the three infinite faces that close the structure.
func (t *Triangulation) bootstrap(points []geometry.Point) error {
	p0, p1 := points[0], points[1]

	i, found := scanThird(points, p0, p1)
	if !found {
		p0, p1 = points[1], points[0]
		i, found = scanThird(points, p0, p1)
	}
	if !found {
		return ErrCollinearPoints
	}

	p2 := points[i]
	if i != 2 { // the third point is not at the third position, so fix it
		points[2], points[i] = points[i], points[2]
	}

	v1 := t.ds.CreateVertex()
	v2 := t.ds.CreateVertex()
	v3 := t.ds.CreateVertex()

	t.ds.InsertFace(v1, v2, v3)
	t.ds.InsertFace(tds.Infinite, v2, v1)
	t.ds.InsertFace(tds.Infinite, v3, v2)
	t.ds.InsertFace(tds.Infinite, v1, v3)

	t.ds.Vertex(v1).SetPoint(p0)
	t.ds.Vertex(v2).SetPoint(p1)
	t.ds.Vertex(v3).SetPoint(p2)

	t.markSeen(p0, p1, p2)
	t.hint = tds.Face{v1, v2, v3}

	return nil
}

// scanThird looks for the first point after the second with positive
// orientation against the directed line p0→p1.
func scanThird(points []geometry.Point, p0, p1 geometry.Point) (int, bool) {
	for i := 2; i < len(points); i++ {
		if geometry.Orientation(p0, p1, points[i]) > 0 {
			return i, true
		}
	}

	return -1, false
}

// markSeen records coordinates of inserted points for duplicate
// rejection.
func (t *Triangulation) markSeen(points ...geometry.Point) {
	for _, p := range points {
		t.seen[[2]float64{p.X, p.Y}] = struct{}{}
	}
}

// insertPoint runs one Bowyer–Watson step: locate, expand the conflict
// region, clear it, re-fan the cavity around a fresh vertex, and move
// the walk hint onto the new star.
func (t *Triangulation) insertPoint(p geometry.Point) error {
	t.opts.Logger.Debug().Stringer("point", p).Msg("inserting point")

	first, err := t.findFirstConflict(p)
	if err != nil {
		return err
	}

	conflict, cavity := t.findOtherConflicts(p, first)
	t.opts.Logger.Debug().
		Int("conflict", len(conflict)).
		Int("cavity", len(cavity)).
		Msg("conflict region found")

	for _, f := range conflict {
		t.ds.RemoveFace(f[0], f[1], f[2])
	}

	n := t.ds.CreateVertex()
	for _, e := range cavity {
		t.ds.InsertFace(n, e[0], e[1])
	}
	t.ds.Vertex(n).SetPoint(p)
	t.markSeen(p)

	t.hint = t.ds.IncidentFaces(n)[0]

	return nil
}

// choose picks one of two neighbor slots uniformly; walking ties must
// consume the supplied random source so seeded runs stay reproducible.
func (t *Triangulation) choose(a, b int) int {
	if t.opts.Rand.Intn(2) == 0 {
		return a
	}

	return b
}

// findFirstConflict walks from the hint face toward p and returns the
// first face of p's conflict region: the face containing p, or the
// infinite face reached when p is outside the convex hull.
//
// Each step classifies p against the three edges of the current face
// with exact orientation tests, folded into the base-3 mask
// 9*e2 + 3*e1 + e0 with e_i in {0,1,2}. Masks with no defined
// transition only arise under degeneracies the predicates cannot
// resolve and abort the insertion.
func (t *Triangulation) findFirstConflict(p geometry.Point) (tds.Face, error) {
	hint := t.hint
	if j := hint.Index(tds.Infinite); j >= 0 {
		// Infinite hint: restart from its finite neighbor.
		hint = t.step(j, hint)
	}

	for {
		p0 := t.ds.Vertex(hint[0]).Point()
		p1 := t.ds.Vertex(hint[1]).Point()
		p2 := t.ds.Vertex(hint[2]).Point()

		e0 := geometry.Orientation(p0, p1, p) + 1
		e1 := geometry.Orientation(p1, p2, p) + 1
		e2 := geometry.Orientation(p2, p0, p) + 1
		mask := 9*e2 + 3*e1 + e0

		walk := -1
		switch mask {
		case 11, 20, 19: // walk to v0's opposite vertex
			walk = 0
		case 5, 7, 8: // walk to v1's opposite vertex
			walk = 1
		case 15, 21, 24: // walk to v2's opposite vertex
			walk = 2
		case 2: // walk to v0's or v1's opposite vertex
			walk = t.choose(0, 1)
		case 6: // walk to v1's or v2's opposite vertex
			walk = t.choose(1, 2)
		case 18: // walk to v2's or v0's opposite vertex
			walk = t.choose(0, 2)
		case 16: // found at vertex v0
			return hint, nil
		case 22: // found at vertex v1
			return hint.Rotate(1), nil
		case 14: // found at vertex v2
			return hint.Rotate(2), nil
		case 25: // found at edge (v0,v1)
			return hint, nil
		case 23: // found at edge (v1,v2)
			return hint.Rotate(1), nil
		case 17: // found at edge (v2,v0)
			return hint.Rotate(2), nil
		case 26: // found inside face (v0,v1,v2)
			return hint, nil
		default: // 0 | 1 | 3 | 4 | 9 | 10 | 12 | 13
			return tds.Face{}, fmt.Errorf("%w: mask %d at face %s", ErrDegenerateLocation, mask, hint)
		}

		hint = t.step(walk, hint)
		if hint[2] == tds.Infinite { // p is outside the convex hull
			return hint, nil
		}
	}
}

// step crosses to the neighbor opposite the i-th vertex; a missing
// neighbor in a closed triangulation is a topology violation.
func (t *Triangulation) step(i int, f tds.Face) tds.Face {
	n, ok := t.ds.Neighbor(i, f)
	if !ok {
		panic(tds.PanicFaceMissing)
	}

	return n
}

// findOtherConflicts grows the conflict region from the first conflict
// face by breadth-first search. Neighbors whose circumcircle contains p
// join the region; the others contribute their shared edge, oriented as
// the counter-clockwise boundary of the cavity. A vertex-indexed
// visited set prunes faces whose three corners were all seen.
func (t *Triangulation) findOtherConflicts(p geometry.Point, first tds.Face) ([]tds.Face, [][2]int) {
	conflict := []tds.Face{first}
	var cavity [][2]int

	queue := []tds.Face{first}
	visited := bitset.New(uint(t.ds.NumberOfVertices()))

	for len(queue) > 0 {
		face := queue[0]
		queue = queue[1:]

		for i := 0; i < 3; i++ {
			n := t.step(i, face)

			if visited.Test(uint(n[0])) && visited.Test(uint(n[1])) && visited.Test(uint(n[2])) {
				continue
			}

			if t.inConflict(p, n) {
				conflict = append(conflict, n)
				queue = append(queue, n)
			} else { // we've reached the boundary of the cavity
				cavity = append(cavity, [2]int{face[tds.CCW(i)], face[tds.CW(i)]})
			}
		}

		visited.Set(uint(face[0]))
		visited.Set(uint(face[1]))
		visited.Set(uint(face[2]))
	}

	return conflict, cavity
}

// inConflict reports whether face f belongs to p's conflict region. A
// finite face conflicts when p is inside or on its circumcircle. An
// infinite face conflicts when p is strictly outside the hull edge, or
// on its supporting line strictly between its endpoints.
func (t *Triangulation) inConflict(p geometry.Point, f tds.Face) bool {
	if t.ds.IsInfinite(f[0], f[1], f[2]) {
		i := f.Index(tds.Infinite)
		a := t.ds.Vertex(f[tds.CCW(i)]).Point()
		b := t.ds.Vertex(f[tds.CW(i)]).Point()

		switch s := geometry.Orientation(a, b, p); {
		case s > 0:
			return true
		case s == 0:
			return geometry.InBetween(a, b, p)
		default:
			return false
		}
	}

	p0 := t.ds.Vertex(f[0]).Point()
	p1 := t.ds.Vertex(f[1]).Point()
	p2 := t.ds.Vertex(f[2]).Point()

	return geometry.InCircle(p0, p1, p2, p) >= 0
}

// FiniteFaces returns every finite face exactly once, canonically
// rotated so the smallest vertex comes first.
func (t *Triangulation) FiniteFaces() []tds.Face {
	var faces []tds.Face
	for v := 1; v < t.ds.NumberOfVertices(); v++ {
		for _, f := range t.ds.IncidentFaces(v) {
			if t.ds.IsInfinite(f[0], f[1], f[2]) {
				continue
			}
			if c := f.Canonical(); c[0] == v {
				faces = append(faces, c)
			}
		}
	}

	return faces
}

// InfiniteFaces returns the faces incident to the infinite vertex, the
// cycle closing the triangulation around the convex hull.
func (t *Triangulation) InfiniteFaces() []tds.Face {
	return t.ds.IncidentFaces(tds.Infinite)
}

// ConvexHull returns the vertices of the convex hull in counter-
// clockwise order: the link of the infinite vertex, reversed.
func (t *Triangulation) ConvexHull() []int {
	infinite := t.InfiniteFaces()
	if len(infinite) == 0 {
		return nil
	}

	// Each infinite face (0,a,b) contributes the reversed edge b→a.
	next := make(map[int]int, len(infinite))
	start := -1
	for _, f := range infinite {
		next[f[2]] = f[1]
		if start < 0 || f[2] < start {
			start = f[2]
		}
	}

	hull := make([]int, 0, len(next))
	for v, n := start, len(next); n > 0; n-- {
		hull = append(hull, v)
		v = next[v]
	}

	return hull
}
