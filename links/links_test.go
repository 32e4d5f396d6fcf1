package links_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicentehelano/delaunay/links"
	"github.com/vicentehelano/delaunay/tds"
)

// blandfordFaces is the hand-built triangulation used throughout the
// Blandford et al. examples: nine finite vertices, seven on the hull.
var blandfordFaces = [][3]int{
	// infinite faces
	{6, 0, 3}, {2, 0, 6}, {4, 7, 0}, {1, 4, 0}, {5, 0, 2}, {0, 5, 1}, {7, 3, 0},
	// finite faces
	{1, 5, 4}, {3, 8, 6}, {9, 5, 2}, {4, 8, 7}, {9, 2, 6}, {4, 9, 8}, {5, 9, 4}, {9, 6, 8}, {8, 3, 7},
}

// buildBlandford creates nine vertices and inserts every face.
func buildBlandford(t *testing.T) *links.TDS {
	t.Helper()

	ds := links.New()
	for i := 0; i < 9; i++ {
		ds.CreateVertex()
	}
	require.Equal(t, 10, ds.NumberOfVertices())

	for _, f := range blandfordFaces {
		ds.InsertFace(f[0], f[1], f[2])
	}

	return ds
}

// cycleContains reports whether the closed path contains the sequence
// as a cyclic rotation.
func cycleContains(cycle, seq []int) bool {
	if len(cycle) < 2 || cycle[0] != cycle[len(cycle)-1] {
		return false
	}
	body := cycle[:len(cycle)-1]
	if len(body) != len(seq) {
		return false
	}
	for shift := range body {
		match := true
		for i := range seq {
			if body[(shift+i)%len(body)] != seq[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}

// TestInsertFace_HullCycle replays the Blandford construction and
// checks that the link of the infinite vertex closes into the reversed
// convex hull.
func TestInsertFace_HullCycle(t *testing.T) {
	ds := buildBlandford(t)

	v0, ok := ds.Vertex(0).(*links.Vertex)
	require.True(t, ok)
	require.Len(t, v0.Links(), 1, "the infinite vertex link must be a single path")

	assert.True(t, cycleContains(v0.Links()[0], []int{1, 4, 7, 3, 6, 2, 5}),
		"link of the infinite vertex must cycle through the reversed hull, got %v", v0.Links()[0])
}

// TestIncidentFaces_RecoversRotations checks invariant 1: every
// rotation of an inserted face is recoverable.
func TestIncidentFaces_RecoversRotations(t *testing.T) {
	ds := buildBlandford(t)

	for _, f := range blandfordFaces {
		for r := 0; r < 3; r++ {
			face := tds.Face{f[0], f[1], f[2]}.Rotate(r)
			found := false
			for _, g := range ds.IncidentFaces(face[0]) {
				if g == face {
					found = true
					break
				}
			}
			assert.Truef(t, found, "rotation %v of face %v not recoverable", face, f)
		}
	}
}

// TestNeighbor_SharedEdges verifies neighbor lookups against faces
// known to share an edge.
func TestNeighbor_SharedEdges(t *testing.T) {
	ds := buildBlandford(t)

	// faces (5,9,4) and (9,5,2) share the edge 5-9
	f := tds.Face{5, 9, 4}
	n, ok := ds.Neighbor(2, f) // opposite vertex 4, across edge (5,9)
	require.True(t, ok)
	assert.Equal(t, tds.Face{9, 5, 2}, n)

	// crossing back returns the original face, rotated with the shared
	// edge first
	back, ok := ds.Neighbor(2, n)
	require.True(t, ok)
	assert.Equal(t, f.Canonical(), back.Canonical())
}

// TestRemoveFace_RoundTrip removes everything in insertion order and
// expects the pristine empty state (round-trip law).
func TestRemoveFace_RoundTrip(t *testing.T) {
	ds := buildBlandford(t)

	for _, f := range blandfordFaces {
		ds.RemoveFace(f[0], f[1], f[2])
	}

	for i := 0; i < ds.NumberOfVertices(); i++ {
		v := ds.Vertex(i).(*links.Vertex)
		diff := cmp.Diff([][]int{}, v.Links(), cmpopts.EquateEmpty())
		assert.Emptyf(t, diff, "vertex %d link not empty after round-trip: %s", i, diff)
	}
	assert.Zero(t, ds.NumberOfReferences())
}

// TestRemoveFace_SplitAndReopen exercises the two removal shapes on a
// small fan: splitting an open path and reopening a cycle.
func TestRemoveFace_SplitAndReopen(t *testing.T) {
	ds := links.New()
	for i := 0; i < 4; i++ {
		ds.CreateVertex()
	}

	// the closed triangulation of a single finite triangle: every link
	// is a cycle
	ds.InsertFace(1, 2, 3)
	ds.InsertFace(0, 2, 1)
	ds.InsertFace(0, 3, 2)
	ds.InsertFace(0, 1, 3)

	v1 := ds.Vertex(1).(*links.Vertex)
	require.Len(t, v1.Links(), 1)
	require.Equal(t, v1.Links()[0][0], v1.Links()[0][len(v1.Links()[0])-1], "closed link expected")

	// removing one face reopens the cycle of each touched vertex
	ds.RemoveFace(1, 2, 3)
	v1 = ds.Vertex(1).(*links.Vertex)
	require.Len(t, v1.Links(), 1)
	path := v1.Links()[0]
	assert.NotEqual(t, path[0], path[len(path)-1], "link must reopen")

	// removing a second face splits the open path
	ds.RemoveFace(0, 2, 1)
	assert.Equal(t, 2, ds.Vertex(2).(*links.Vertex).Degree()+1,
		"vertex 2 keeps one face, so its link is one two-entry path")
}

// TestInsertFace_DuplicatePanics pins the topology-violation behavior.
func TestInsertFace_DuplicatePanics(t *testing.T) {
	ds := links.New()
	for i := 0; i < 3; i++ {
		ds.CreateVertex()
	}
	ds.InsertFace(1, 2, 3)

	assert.PanicsWithValue(t, tds.PanicFaceExists, func() {
		ds.InsertFace(1, 2, 3)
	})
}

// TestRemoveFace_AbsentPanics pins the missing-face behavior.
func TestRemoveFace_AbsentPanics(t *testing.T) {
	ds := links.New()
	for i := 0; i < 3; i++ {
		ds.CreateVertex()
	}
	ds.InsertFace(1, 2, 3)
	ds.RemoveFace(1, 2, 3)

	assert.PanicsWithValue(t, tds.PanicFaceMissing, func() {
		ds.RemoveFace(1, 2, 3)
	})
}

// TestIsInfinite covers the variadic membership test.
func TestIsInfinite(t *testing.T) {
	ds := links.New()
	ds.CreateVertex()

	assert.True(t, ds.IsInfinite(0))
	assert.True(t, ds.IsInfinite(1, 0))
	assert.True(t, ds.IsInfinite(1, 1, 0))
	assert.False(t, ds.IsInfinite(1))
	assert.False(t, ds.IsInfinite(1, 1, 1))
}

// TestNumberOfReferences counts link entries on a single closed
// triangle configuration.
func TestNumberOfReferences(t *testing.T) {
	ds := links.New()
	for i := 0; i < 3; i++ {
		ds.CreateVertex()
	}
	ds.InsertFace(1, 2, 3)
	ds.InsertFace(0, 2, 1)
	ds.InsertFace(0, 3, 2)
	ds.InsertFace(0, 1, 3)

	// four vertices, each with one closed 3-cycle stored as 4 entries
	assert.Equal(t, 16, ds.NumberOfReferences())
}
