package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Point is a 2D cartesian point with double-precision coordinates.
//
// ID is an optional identity assigned externally (for example by the
// BRIO before permuting a point set); the geometric operations ignore it.
type Point struct {
	X, Y float64
	ID   int
}

// NewPoint constructs a Point from its coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// InfinitePoint returns the conventional coordinates of the vertex at
// infinity.
func InfinitePoint() Point {
	return Point{X: math.Inf(1), Y: math.Inf(1)}
}

// Coords returns the point coordinates as a pair.
func (p Point) Coords() (x, y float64) {
	return p.X, p.Y
}

// Finite reports whether both coordinates are finite.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// R2 converts the point to its r2 representation.
func (p Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Circle is a 2D circle given by its center and a non-negative radius.
type Circle struct {
	Center Point
	Radius float64
}
