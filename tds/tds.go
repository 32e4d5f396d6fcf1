package tds

import (
	"fmt"

	"github.com/vicentehelano/delaunay/geometry"
)

// Infinite is the index of the infinite vertex, created by every TDS at
// construction and representing the point at infinity that surrounds
// the convex hull.
const Infinite = 0

// Stable panic messages for topology violations (programmer errors).
const (
	PanicFaceExists  = "tds: face already present"
	PanicFaceMissing = "tds: face does not exist"
	PanicBrokenLink  = "tds: link path invariant violated"
)

// CW returns the index preceding i in a face triple, cyclically.
func CW(i int) int {
	return (i + 2) % 3
}

// CCW returns the index following i in a face triple, cyclically.
func CCW(i int) int {
	return (i + 1) % 3
}

// Face is an oriented triple of vertex indices, counter-clockwise when
// finite. A face is infinite iff one of its vertices is the infinite
// vertex.
type Face [3]int

// Rotate returns the face rotated left by k positions; the vertex set
// and the orientation are preserved.
func (f Face) Rotate(k int) Face {
	k %= 3

	return Face{f[k], f[(k+1)%3], f[(k+2)%3]}
}

// Index returns the position of vertex v in the face, or -1.
func (f Face) Index(v int) int {
	for i, u := range f {
		if u == v {
			return i
		}
	}

	return -1
}

// Has reports whether vertex v belongs to the face.
func (f Face) Has(v int) bool {
	return f.Index(v) >= 0
}

// Canonical returns the rotation of f that puts its smallest vertex
// first. Useful as a set key: the three rotations of a face collapse to
// one representative without changing orientation.
func (f Face) Canonical() Face {
	lowest := 0
	for i := 1; i < 3; i++ {
		if f[i] < f[lowest] {
			lowest = i
		}
	}

	return f.Rotate(lowest)
}

// String implements fmt.Stringer.
func (f Face) String() string {
	return fmt.Sprintf("(%d, %d, %d)", f[0], f[1], f[2])
}

// Vertex is a handle to a stored vertex, giving access to its
// underlying point.
type Vertex interface {
	// Point returns the vertex's point.
	Point() geometry.Point

	// SetPoint assigns the vertex's point.
	SetPoint(p geometry.Point)
}

// TDS is the capability set a planar triangulation data structure
// exposes to the triangulator.
type TDS interface {
	// Vertex returns a handle to the i-th vertex.
	Vertex(i int) Vertex

	// NumberOfVertices returns the total vertex count, including the
	// infinite vertex.
	NumberOfVertices() int

	// NumberOfReferences returns the total number of vertex indices
	// stored by the structure (link path entries plus guard references).
	NumberOfReferences() int

	// CreateVertex appends a fresh vertex, detached from any face, and
	// returns its index. Indices are stable: vertices are never removed.
	CreateVertex() int

	// IsInfinite reports whether any of the given vertices is the
	// infinite vertex.
	IsInfinite(vs ...int) bool

	// InsertFace adds the oriented face (v0,v1,v2). The triple must not
	// already be present and each of its edges must bound fewer than two
	// faces. Inserting a face that is already present panics with
	// PanicFaceExists; an edge that already bounds two faces is not
	// detected.
	InsertFace(v0, v1, v2 int)

	// RemoveFace deletes the oriented face (v0,v1,v2). The face must
	// exist. When v1 or v2 is missing from the link of a vertex, or the
	// two lie on different link paths, the call panics with
	// PanicFaceMissing; an absent face whose v1 and v2 lie non-adjacent
	// on one path is not detected.
	RemoveFace(v0, v1, v2 int)

	// Neighbor returns the face sharing the edge opposite the i-th
	// vertex of f, oriented consistently (the shared edge reversed, the
	// opposite vertex last). ok is false when no such face exists.
	Neighbor(i int, f Face) (n Face, ok bool)

	// IncidentFaces returns the faces having v as a vertex, each rotated
	// so that v comes first.
	IncidentFaces(v int) []Face
}

// Compact is the optional statistics extension implemented by
// compressed structures that distinguish guard and ordinary vertices.
type Compact interface {
	// NumberOfGuards returns how many vertices currently hold links.
	NumberOfGuards() int

	// NumberOfOrdinaries returns how many vertices store only guard
	// references.
	NumberOfOrdinaries() int
}
