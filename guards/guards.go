package guards

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vicentehelano/delaunay/geometry"
	"github.com/vicentehelano/delaunay/tds"
)

// Status tells whether a vertex owns link paths or only guard
// references. The values are or-able: a face is unguarded iff the OR of
// its three vertex statuses is StatusOrdinary.
type Status uint8

const (
	// StatusOrdinary marks a vertex storing only a guard set.
	StatusOrdinary Status = 0

	// StatusGuard marks a vertex storing link paths.
	StatusGuard Status = 1
)

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == StatusGuard {
		return "GUARD"
	}

	return "ORDINARY"
}

// Vertex stores one vertex of the guard-vertex structure. Only guards
// populate links; only ordinaries populate the guard set.
type Vertex struct {
	status Status
	links  [][]int
	guards map[int]struct{}
	point  geometry.Point
}

// Point returns the vertex's point.
func (v *Vertex) Point() geometry.Point {
	return v.point
}

// SetPoint assigns the vertex's point.
func (v *Vertex) SetPoint(p geometry.Point) {
	v.point = p
}

// Status returns the vertex's current status.
func (v *Vertex) Status() Status {
	return v.status
}

// Links returns the vertex's link paths (empty unless a guard). The
// slice aliases the stored state; callers must treat it as read-only.
func (v *Vertex) Links() [][]int {
	return v.links
}

// Guards returns the vertex's guard set in ascending order (empty
// unless ordinary).
func (v *Vertex) Guards() []int {
	gs := make([]int, 0, len(v.guards))
	for g := range v.guards {
		gs = append(gs, g)
	}
	slices.Sort(gs)

	return gs
}

// addGuard records g in the vertex's guard set.
func (v *Vertex) addGuard(g int) {
	if v.guards == nil {
		v.guards = make(map[int]struct{})
	}
	v.guards[g] = struct{}{}
}

// TDS is the guard-vertex triangulation data structure. The infinite
// vertex is created at construction with index 0 and is permanently a
// guard.
type TDS struct {
	vertices []*Vertex
}

// interface conformance
var (
	_ tds.TDS     = (*TDS)(nil)
	_ tds.Compact = (*TDS)(nil)
)

// New returns an empty structure holding only the infinite vertex.
func New() *TDS {
	t := &TDS{}
	t.CreateVertex()
	t.vertices[tds.Infinite].SetPoint(geometry.InfinitePoint())
	t.vertices[tds.Infinite].status = StatusGuard

	return t
}

// Vertex returns a handle to the i-th vertex.
func (t *TDS) Vertex(i int) tds.Vertex {
	return t.vertices[i]
}

// VertexRecord returns the concrete i-th vertex, exposing status, link
// and guard-set accessors beyond the tds.Vertex contract.
func (t *TDS) VertexRecord(i int) *Vertex {
	return t.vertices[i]
}

// NumberOfVertices returns the total vertex count, including the
// infinite one.
func (t *TDS) NumberOfVertices() int {
	return len(t.vertices)
}

// NumberOfReferences returns the total number of stored vertex indices:
// link path entries of guards plus guard references of ordinaries.
func (t *TDS) NumberOfReferences() int {
	n := 0
	for _, v := range t.vertices {
		if v.status == StatusGuard {
			for _, path := range v.links {
				n += len(path)
			}
		} else {
			n += len(v.guards)
		}
	}

	return n
}

// NumberOfGuards returns how many vertices are currently guards.
func (t *TDS) NumberOfGuards() int {
	n := 0
	for _, v := range t.vertices {
		if v.status == StatusGuard {
			n++
		}
	}

	return n
}

// NumberOfOrdinaries returns how many vertices are currently ordinary.
func (t *TDS) NumberOfOrdinaries() int {
	return len(t.vertices) - t.NumberOfGuards()
}

// CreateVertex appends a fresh detached ordinary vertex and returns its
// index.
func (t *TDS) CreateVertex() int {
	t.vertices = append(t.vertices, &Vertex{})

	return len(t.vertices) - 1
}

// IsInfinite reports whether any of the given vertices is infinite.
func (t *TDS) IsInfinite(vs ...int) bool {
	for _, v := range vs {
		if v == tds.Infinite {
			return true
		}
	}

	return false
}

// locate finds v inside a list of link paths. It returns the index of
// the first path containing v and the position of v's first occurrence
// in it, or (-1, -1) when absent.
func locate(links [][]int, v int) (pathIdx, pos int) {
	for i, path := range links {
		if j := slices.Index(path, v); j >= 0 {
			return i, j
		}
	}

	return -1, -1
}

// InsertFace adds the oriented face (v0,v1,v2). If none of the three
// vertices is a guard, one is promoted first so the face stays
// recoverable.
func (t *TDS) InsertFace(v0, v1, v2 int) {
	status := t.vertices[v0].status | t.vertices[v1].status | t.vertices[v2].status
	if status == StatusOrdinary {
		t.promote(t.greedyTarget(v0, v1, v2))
	}

	t.extend(v0, v1, v2)
	t.extend(v1, v2, v0)
	t.extend(v2, v0, v1)
}

// Degree returns the number of faces currently incident to vertex v,
// whatever its status.
func (t *TDS) Degree(v int) int {
	return len(t.IncidentFaces(v))
}

// greedyTarget picks the promotion target among an all-ordinary triple:
// the vertex with the largest current incident degree, ties broken by
// the lowest index.
func (t *TDS) greedyTarget(v0, v1, v2 int) int {
	triple := []int{v0, v1, v2}
	slices.Sort(triple)

	best, bestDegree := -1, -1
	for _, v := range triple {
		if d := t.Degree(v); d > bestDegree {
			best, bestDegree = v, d
		}
	}

	return best
}

// promote turns ordinary vertex i into a guard: its faces, currently
// recorded by its guards, move into a link of its own, and every
// ordinary neighbor reachable from that link learns about the new
// guard.
func (t *TDS) promote(i int) {
	v := t.vertices[i]

	// Recover the incident faces while the old guard set still works.
	faces := t.IncidentFaces(i)

	v.status = StatusGuard
	v.guards = nil

	for _, f := range faces {
		t.extendGuard(f[0], f[1], f[2])
	}

	for _, path := range v.links {
		for _, n := range path {
			if t.vertices[n].status == StatusOrdinary {
				t.vertices[n].addGuard(i)
			}
		}
	}
}

// extend inserts the pair (v1,v2) into the representation of v0: link
// extension for a guard, guard-set growth for an ordinary.
func (t *TDS) extend(v0, v1, v2 int) {
	if t.vertices[v0].status == StatusGuard {
		t.extendGuard(v0, v1, v2)

		return
	}

	if t.vertices[v1].status == StatusGuard {
		t.vertices[v0].addGuard(v1)
	}
	if t.vertices[v2].status == StatusGuard {
		t.vertices[v0].addGuard(v2)
	}
}

// extendGuard inserts the pair (v1,v2) into the link of guard v0,
// choosing one of the four extension cases of Blandford et al. (2005).
func (t *TDS) extendGuard(v0, v1, v2 int) {
	lv := t.vertices[v0]
	p1, i1 := locate(lv.links, v1)
	p2, i2 := locate(lv.links, v2)

	switch {
	case p1 < 0 && p2 < 0: // case (i)
		lv.links = append(lv.links, []int{v1, v2})
	case p1 >= 0 && p2 < 0: // case (ii-a)
		lv.links[p1] = slices.Insert(lv.links[p1], i1+1, v2)
	case p1 < 0 && p2 >= 0: // case (ii-b)
		lv.links[p2] = slices.Insert(lv.links[p2], i2, v1)
	case p1 != p2: // case (iii)
		var pmin, pmax, pos int
		if p1 < p2 {
			pmin, pmax, pos = p1, p2, i1+1
		} else {
			pmin, pmax, pos = p2, p1, i2
		}
		lv.links[pmin] = slices.Insert(lv.links[pmin], pos, lv.links[pmax]...)
		lv.links = slices.Delete(lv.links, pmax, pmax+1)
	default: // case (iv): only extreme neighbors may close a cycle
		if i2 != 0 || i1+1 != len(lv.links[p1]) {
			panic(tds.PanicFaceExists)
		}
		lv.links[p1] = append(lv.links[p1], v2)
	}
}

// RemoveFace deletes the oriented face (v0,v1,v2). Guard links are
// split first, then the face's ordinary vertices drop any guard that no
// longer records them, and guards left with empty links are demoted —
// except the infinite vertex.
func (t *TDS) RemoveFace(v0, v1, v2 int) {
	face := tds.Face{v0, v1, v2}

	for i := 0; i < 3; i++ {
		if t.vertices[face[i]].status == StatusGuard {
			t.splitGuard(face[i], face[tds.CCW(i)], face[tds.CW(i)])
		}
	}

	for _, v := range face {
		if t.vertices[v].status == StatusOrdinary {
			t.refreshGuards(v)
		}
	}

	for _, v := range face {
		lv := t.vertices[v]
		if v != tds.Infinite && lv.status == StatusGuard && len(lv.links) == 0 {
			lv.status = StatusOrdinary
		}
	}
}

// splitGuard removes the pair (v1,v2) from the link of guard v0, as in
// the link-vertex structure.
func (t *TDS) splitGuard(v0, v1, v2 int) {
	lv := t.vertices[v0]
	p1, i1 := locate(lv.links, v1)
	p2, i2 := locate(lv.links, v2)

	if i1 < 0 || i2 < 0 || p1 != p2 {
		panic(tds.PanicFaceMissing)
	}

	path := lv.links[p1]
	begin, end := path[0], path[len(path)-1]
	first := slices.Clone(path[:i2])
	latest := slices.Clone(path[i2:])

	lv.links = slices.Delete(lv.links, p1, p1+1)

	if len(first)+len(latest) <= 1 {
		panic(tds.PanicBrokenLink)
	}

	if begin == end { // closed links remain connected
		lv.links = append(lv.links, append(latest[:len(latest)-1], first...))

		return
	}

	if len(first) > 1 {
		lv.links = slices.Insert(lv.links, min(p1, len(lv.links)), first)
	}
	if len(latest) > 1 {
		lv.links = slices.Insert(lv.links, min(p1+1, len(lv.links)), latest)
	}
}

// refreshGuards drops every guard whose link no longer mentions the
// ordinary vertex v.
func (t *TDS) refreshGuards(v int) {
	lv := t.vertices[v]
	for g := range lv.guards {
		if _, pos := locate(t.vertices[g].links, v); pos < 0 {
			delete(lv.guards, g)
		}
	}
}

// Neighbor returns the face sharing the edge opposite the i-th vertex
// of f, oriented with the shared edge reversed and the opposite vertex
// last.
func (t *TDS) Neighbor(i int, f tds.Face) (tds.Face, bool) {
	return t.findUp(f[tds.CW(i)], f[tds.CCW(i)])
}

// findUp returns the unique oriented face containing the directed edge
// (v0,v1), if any, dispatching on the status of v0.
func (t *TDS) findUp(v0, v1 int) (tds.Face, bool) {
	if t.vertices[v0].status == StatusGuard {
		return t.findUpGuard(v0, v1)
	}

	return t.findUpOrdinary(v0, v1)
}

// findUpGuard resolves the lookup on guard v0's own link, as in the
// link-vertex structure.
func (t *TDS) findUpGuard(v0, v1 int) (tds.Face, bool) {
	lv := t.vertices[v0]
	p1, i1 := locate(lv.links, v1)
	if p1 < 0 {
		return tds.Face{}, false
	}

	path := lv.links[p1]
	if i1 == len(path)-1 {
		return tds.Face{}, false
	}

	return tds.Face{v0, v1, path[i1+1]}, true
}

// findUpOrdinary resolves the lookup through the guards of ordinary v0.
// Two sub-cases per guard g: when g is v1 itself, the third vertex
// precedes v0 in g's path (wrapping on a closed path); otherwise g is
// the third vertex whenever v1 immediately follows v0 in g's path.
func (t *TDS) findUpOrdinary(v0, v1 int) (tds.Face, bool) {
	for _, g := range t.vertices[v0].Guards() {
		p0, i0 := locate(t.vertices[g].links, v0)
		if p0 < 0 {
			continue
		}
		path := t.vertices[g].links[p0]

		if g == v1 {
			if i0 > 0 {
				return tds.Face{v0, v1, path[i0-1]}, true
			}
			if len(path) > 1 && path[0] == path[len(path)-1] {
				return tds.Face{v0, v1, path[len(path)-2]}, true
			}

			continue
		}

		if i0+1 < len(path) && path[i0+1] == v1 {
			return tds.Face{v0, v1, g}, true
		}
	}

	return tds.Face{}, false
}

// IncidentFaces returns the faces having v as a vertex, each rotated so
// that v comes first. For an ordinary vertex the faces are recovered
// through its guards and deduplicated, since adjacent guards share
// faces.
func (t *TDS) IncidentFaces(v int) []tds.Face {
	lv := t.vertices[v]
	if lv.status == StatusGuard {
		return t.incidentFacesToGuard(v)
	}

	seen := make(map[tds.Face]struct{})
	var faces []tds.Face
	for _, g := range lv.Guards() {
		for _, f := range t.incidentFacesToGuard(g) {
			if !f.Has(v) {
				continue
			}
			r := f.Rotate(f.Index(v))
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
			faces = append(faces, r)
		}
	}

	return faces
}

// incidentFacesToGuard enumerates the faces recorded by guard v's own
// link paths.
func (t *TDS) incidentFacesToGuard(v int) []tds.Face {
	lv := t.vertices[v]
	var faces []tds.Face
	for _, path := range lv.links {
		for j := 0; j+1 < len(path); j++ {
			faces = append(faces, tds.Face{v, path[j], path[j+1]})
		}
	}

	return faces
}

// String renders the representation of all vertices, one per line:
// link paths for guards, guard sets for ordinaries.
func (t *TDS) String() string {
	var sb strings.Builder
	sb.WriteString("> links:\n")
	for i, v := range t.vertices {
		if v.status == StatusGuard {
			fmt.Fprintf(&sb, "%d: %s %v\n", i, v.status, v.links)
		} else {
			fmt.Fprintf(&sb, "%d: %s %v\n", i, v.status, v.Guards())
		}
	}

	return sb.String()
}
