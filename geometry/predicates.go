package geometry

import (
	"errors"
	"math"

	"github.com/vicentehelano/delaunay/predicates"
)

// ErrCollinearPoints is returned when the circumcircle of three
// collinear points is requested.
var ErrCollinearPoints = errors.New("geometry: circumcircle of collinear points")

// Comparison results, CGAL style.
const (
	smaller = -1
	equal   = 0
	larger  = +1
)

// Orientation returns the sign of the signed area of triangle (p0,p1,p2):
// +1 when the triple turns counter-clockwise, -1 when clockwise, 0 when
// collinear. The result is exact.
func Orientation(p0, p1, p2 Point) int {
	return predicates.Orient2D(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y)
}

// InCircle returns the sign of the power of p3 with respect to the
// circumcircle of the counter-clockwise triangle (p0,p1,p2): +1 strictly
// inside, -1 strictly outside, 0 on the circle. The result is exact.
func InCircle(p0, p1, p2, p3 Point) int {
	return predicates.InCircle(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
}

// compare orders two coordinates.
func compare(a, b float64) int {
	if a < b {
		return smaller
	}
	if a > b {
		return larger
	}

	return equal
}

// InBetween reports whether r lies strictly inside the open segment
// (p,q). The three points are supposed to be collinear; the test is a
// lexicographic comparison on x, falling back to y for vertical
// segments (adapted from CGAL's compare_{x,y}).
func InBetween(p, q, r Point) bool {
	var cPR, cRQ int
	if compare(p.X, q.X) == equal {
		cPR = compare(p.Y, r.Y)
		cRQ = compare(r.Y, q.Y)
	} else {
		cPR = compare(p.X, r.X)
		cRQ = compare(r.X, q.X)
	}

	return (cPR == smaller && cRQ == smaller) || (cPR == larger && cRQ == larger)
}

// det2 returns the determinant of a 2x2 matrix.
func det2(a00, a01, a10, a11 float64) float64 {
	return a00*a11 - a10*a01
}

// Circumcircle constructs the circumcircle of the triangle (p,q,r) using
// Shewchuk's relative-coordinate formulas. It returns ErrCollinearPoints
// when the triangle is degenerate.
func Circumcircle(p, q, r Point) (Circle, error) {
	if Orientation(p, q, r) == 0 {
		return Circle{}, ErrCollinearPoints
	}

	xrp := p.X - r.X
	yrp := p.Y - r.Y
	xrq := q.X - r.X
	yrq := q.Y - r.Y
	xpq := q.X - p.X
	ypq := q.Y - p.Y

	drp := xrp*xrp + yrp*yrp
	drq := xrq*xrq + yrq*yrq
	dpq := xpq*xpq + ypq*ypq

	numX := det2(drp, yrp, drq, yrq)
	numY := det2(xrp, drp, xrq, drq)
	den := 0.5 / det2(xrp, yrp, xrq, yrq)

	center := Point{
		X: r.X + numX*den,
		Y: r.Y + numY*den,
	}
	radius := math.Sqrt(drp*drq*dpq) * den

	return Circle{Center: center, Radius: math.Abs(radius)}, nil
}
