package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicentehelano/delaunay/geometry"
)

// TestOrientation_Signs checks the wrapper against simple triples.
func TestOrientation_Signs(t *testing.T) {
	a := geometry.NewPoint(0, 0)
	b := geometry.NewPoint(1, 0)

	assert.Equal(t, +1, geometry.Orientation(a, b, geometry.NewPoint(0.5, 3)))
	assert.Equal(t, -1, geometry.Orientation(a, b, geometry.NewPoint(0.5, -3)))
	assert.Equal(t, 0, geometry.Orientation(a, b, geometry.NewPoint(42, 0)))
}

// TestInCircle_Signs checks the wrapper on the unit square.
func TestInCircle_Signs(t *testing.T) {
	a := geometry.NewPoint(0, 0)
	b := geometry.NewPoint(1, 0)
	c := geometry.NewPoint(1, 1)

	assert.Equal(t, 0, geometry.InCircle(a, b, c, geometry.NewPoint(0, 1)))
	assert.Equal(t, +1, geometry.InCircle(a, b, c, geometry.NewPoint(0.5, 0.5)))
	assert.Equal(t, -1, geometry.InCircle(a, b, c, geometry.NewPoint(-1, -1)))
}

// TestInBetween covers horizontal, vertical and endpoint cases; points
// are assumed collinear.
func TestInBetween(t *testing.T) {
	p := geometry.NewPoint(0, 0)
	q := geometry.NewPoint(4, 0)

	assert.True(t, geometry.InBetween(p, q, geometry.NewPoint(2, 0)))
	assert.True(t, geometry.InBetween(q, p, geometry.NewPoint(2, 0)), "orientation of the segment must not matter")
	assert.False(t, geometry.InBetween(p, q, geometry.NewPoint(5, 0)), "beyond q")
	assert.False(t, geometry.InBetween(p, q, geometry.NewPoint(-1, 0)), "before p")
	assert.False(t, geometry.InBetween(p, q, p), "endpoints are excluded")
	assert.False(t, geometry.InBetween(p, q, q), "endpoints are excluded")

	// vertical segment falls back to y comparisons
	vp := geometry.NewPoint(1, -2)
	vq := geometry.NewPoint(1, 6)
	assert.True(t, geometry.InBetween(vp, vq, geometry.NewPoint(1, 0)))
	assert.False(t, geometry.InBetween(vp, vq, geometry.NewPoint(1, 7)))
}

// TestCircumcircle_RightTriangle verifies center and radius on the
// right triangle (0,0),(1,0),(0,1), whose circumcenter is the
// hypotenuse midpoint.
func TestCircumcircle_RightTriangle(t *testing.T) {
	c, err := geometry.Circumcircle(
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 0),
		geometry.NewPoint(0, 1),
	)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, c.Center.X, 1e-15)
	assert.InDelta(t, 0.5, c.Center.Y, 1e-15)
	assert.InDelta(t, math.Sqrt2/2, c.Radius, 1e-15)
}

// TestCircumcircle_Collinear rejects degenerate triangles.
func TestCircumcircle_Collinear(t *testing.T) {
	_, err := geometry.Circumcircle(
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 1),
		geometry.NewPoint(2, 2),
	)
	assert.ErrorIs(t, err, geometry.ErrCollinearPoints)
}

// TestBoundingBox_FitExpandScale exercises the three box operations.
func TestBoundingBox_FitExpandScale(t *testing.T) {
	box := geometry.NewBoundingBox()
	assert.True(t, box.IsEmpty())

	box.Fit([]geometry.Point{
		geometry.NewPoint(1, 2),
		geometry.NewPoint(-3, 5),
		geometry.NewPoint(0, -1),
	})
	assert.Equal(t, geometry.NewPoint(-3, -1), box.Min())
	assert.Equal(t, geometry.NewPoint(1, 5), box.Max())

	box.Expand([]geometry.Point{geometry.NewPoint(10, 0)})
	assert.Equal(t, geometry.NewPoint(-3, -1), box.Min())
	assert.Equal(t, geometry.NewPoint(10, 5), box.Max())

	// doubling about the center keeps the center and doubles each side
	box.Fit([]geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(2, 2)})
	box.Scale(2)
	assert.Equal(t, geometry.NewPoint(-1, -1), box.Min())
	assert.Equal(t, geometry.NewPoint(3, 3), box.Max())

	// refitting after a scale shrinks back to the points
	box.Fit([]geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(2, 2)})
	assert.Equal(t, geometry.NewPoint(0, 0), box.Min())
	assert.Equal(t, geometry.NewPoint(2, 2), box.Max())
}

// TestPoint_Finite classifies coordinates.
func TestPoint_Finite(t *testing.T) {
	assert.True(t, geometry.NewPoint(1, -2.5).Finite())
	assert.False(t, geometry.NewPoint(math.Inf(1), 0).Finite())
	assert.False(t, geometry.NewPoint(0, math.NaN()).Finite())
	assert.False(t, geometry.InfinitePoint().Finite())
}
