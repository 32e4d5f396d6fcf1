package links

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vicentehelano/delaunay/geometry"
	"github.com/vicentehelano/delaunay/tds"
)

// Vertex stores one vertex of the link-vertex structure: its link as an
// ordered list of paths, and its underlying point.
type Vertex struct {
	links [][]int
	point geometry.Point
}

// Point returns the vertex's point.
func (v *Vertex) Point() geometry.Point {
	return v.point
}

// SetPoint assigns the vertex's point.
func (v *Vertex) SetPoint(p geometry.Point) {
	v.point = p
}

// Links returns the vertex's link paths. The slice aliases the stored
// state; callers must treat it as read-only.
func (v *Vertex) Links() [][]int {
	return v.links
}

// Degree returns the number of faces incident to the vertex.
func (v *Vertex) Degree() int {
	d := 0
	for _, path := range v.links {
		d += len(path) - 1
	}

	return d
}

// TDS is the link-vertex triangulation data structure. The infinite
// vertex is created at construction with index 0.
type TDS struct {
	vertices []*Vertex
}

// interface conformance
var _ tds.TDS = (*TDS)(nil)

// New returns an empty structure holding only the infinite vertex.
func New() *TDS {
	t := &TDS{}
	t.CreateVertex()
	t.vertices[tds.Infinite].SetPoint(geometry.InfinitePoint())

	return t
}

// Vertex returns a handle to the i-th vertex.
func (t *TDS) Vertex(i int) tds.Vertex {
	return t.vertices[i]
}

// NumberOfVertices returns the total vertex count, including the
// infinite one.
func (t *TDS) NumberOfVertices() int {
	return len(t.vertices)
}

// NumberOfReferences returns the total number of indices stored across
// all link paths.
func (t *TDS) NumberOfReferences() int {
	n := 0
	for _, v := range t.vertices {
		for _, path := range v.links {
			n += len(path)
		}
	}

	return n
}

// CreateVertex appends a fresh detached vertex and returns its index.
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

// InsertFace adds the oriented face (v0,v1,v2) by extending the link of
// each of its three vertices.
func (t *TDS) InsertFace(v0, v1, v2 int) {
	t.extend(v0, v1, v2)
	t.extend(v1, v2, v0)
	t.extend(v2, v0, v1)
}

// extend inserts the pair (v1,v2) into the link of v0, choosing one of
// the four extension cases of Blandford et al. (2005):
//
//	(i)   neither vertex in the link  → append a new path [v1,v2]
//	(ii)  exactly one vertex present  → grow that path by the other
//	(iii) both present, separate paths → splice the paths together
//	(iv)  both ends of the same path  → close the path into a cycle
func (t *TDS) extend(v0, v1, v2 int) {
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

// RemoveFace deletes the oriented face (v0,v1,v2) by splitting the link
// of each of its three vertices.
func (t *TDS) RemoveFace(v0, v1, v2 int) {
	t.split(v0, v1, v2)
	t.split(v1, v2, v0)
	t.split(v2, v0, v1)
}

// split removes the pair (v1,v2) from the link of v0. The vacated path
// is dropped; a closed path reopens as a single path, an open path
// splits in two, and fragments shorter than two entries vanish.
func (t *TDS) split(v0, v1, v2 int) {
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

	// open paths are just split
	if len(first) > 1 {
		lv.links = slices.Insert(lv.links, min(p1, len(lv.links)), first)
	}
	if len(latest) > 1 {
		lv.links = slices.Insert(lv.links, min(p1+1, len(lv.links)), latest)
	}
}

// Neighbor returns the face sharing the edge opposite the i-th vertex
// of f, oriented with the shared edge reversed and the opposite vertex
// last.
func (t *TDS) Neighbor(i int, f tds.Face) (tds.Face, bool) {
	return t.findUp(f[tds.CW(i)], f[tds.CCW(i)])
}

// findUp returns the unique oriented face containing the directed edge
// (v0,v1), if any.
func (t *TDS) findUp(v0, v1 int) (tds.Face, bool) {
	lv := t.vertices[v0]
	p1, i1 := locate(lv.links, v1)
	if p1 < 0 {
		return tds.Face{}, false
	}

	path := lv.links[p1]
	// The first occurrence of v1 equals the last entry only in an open
	// path, where v1 has no successor and no face follows the edge.
	if i1 == len(path)-1 {
		return tds.Face{}, false
	}

	return tds.Face{v0, v1, path[i1+1]}, true
}

// IncidentFaces returns the faces having v as a vertex, each rotated so
// that v comes first.
func (t *TDS) IncidentFaces(v int) []tds.Face {
	lv := t.vertices[v]
	faces := make([]tds.Face, 0, lv.Degree())
	for _, path := range lv.links {
		for j := 0; j+1 < len(path); j++ {
			faces = append(faces, tds.Face{v, path[j], path[j+1]})
		}
	}

	return faces
}

// String renders the link sets of all vertices, one per line.
func (t *TDS) String() string {
	var sb strings.Builder
	sb.WriteString("> links:\n")
	for i, v := range t.vertices {
		fmt.Fprintf(&sb, "%d: %v\n", i, v.links)
	}

	return sb.String()
}
