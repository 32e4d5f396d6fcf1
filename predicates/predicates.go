package predicates

import (
	"math"
	"math/big"
)

// epsilon is half the distance between 1.0 and the next larger float64,
// i.e. 2^-53, the unit roundoff used in the error-bound derivations.
const epsilon = 1.1102230246251565e-16

// Static filter coefficients, from Shewchuk's "Adaptive Precision
// Floating-Point Arithmetic and Fast Robust Geometric Predicates".
var (
	ccwErrBound      = (3.0 + 16.0*epsilon) * epsilon
	inCircleErrBound = (10.0 + 96.0*epsilon) * epsilon
)

// Orient2D returns the sign of the signed area of triangle (a,b,c):
// +1 if c lies strictly to the left of the directed line a→b, -1 if
// strictly to the right, and 0 if the three points are collinear.
func Orient2D(ax, ay, bx, by, cx, cy float64) int {
	detLeft := (ax - cx) * (by - cy)
	detRight := (ay - cy) * (bx - cx)
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return sign(det)
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return sign(det)
		}
		detSum = -detLeft - detRight
	default:
		return sign(det)
	}

	errBound := ccwErrBound * detSum
	if det >= errBound || -det >= errBound {
		return sign(det)
	}

	return orient2DExact(ax, ay, bx, by, cx, cy)
}

// InCircle returns the sign of the in-circle determinant of (a,b,c,d):
// assuming (a,b,c) is counter-clockwise, +1 if d lies strictly inside
// the circumcircle of (a,b,c), -1 if strictly outside, 0 if on it.
func InCircle(ax, ay, bx, by, cx, cy, dx, dy float64) int {
	adx := ax - dx
	ady := ay - dy
	bdx := bx - dx
	bdy := by - dy
	cdx := cx - dx
	cdy := cy - dy

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	aLift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	bLift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	cLift := cdx*cdx + cdy*cdy

	det := aLift*(bdxcdy-cdxbdy) + bLift*(cdxady-adxcdy) + cLift*(adxbdy-bdxady)

	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*aLift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*bLift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*cLift
	errBound := inCircleErrBound * permanent
	if det > errBound || -det > errBound {
		return sign(det)
	}

	return inCircleExact(ax, ay, bx, by, cx, cy, dx, dy)
}

// sign maps a float64 onto {-1, 0, +1}.
func sign(x float64) int {
	switch {
	case x > 0:
		return +1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// finite reports whether every coordinate is a finite float64. The exact
// stage cannot represent NaN or ±Inf, so instead of a panic deep in
// big.Rat, orient2DExact falls back to the (unreliable) float sign and
// inCircleExact returns 0 for such inputs.
func finite(coords ...float64) bool {
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}

// rat converts a float64 to an exact rational. Conversion is lossless:
// every finite float64 is a dyadic rational.
func rat(x float64) *big.Rat {
	return new(big.Rat).SetFloat64(x)
}

// ratSub returns a-b over the rationals.
func ratSub(a, b float64) *big.Rat {
	return new(big.Rat).Sub(rat(a), rat(b))
}

// orient2DExact evaluates the 2x2 orientation determinant exactly.
func orient2DExact(ax, ay, bx, by, cx, cy float64) int {
	if !finite(ax, ay, bx, by, cx, cy) {
		return sign((ax-cx)*(by-cy) - (ay-cy)*(bx-cx))
	}

	acx := ratSub(ax, cx)
	acy := ratSub(ay, cy)
	bcx := ratSub(bx, cx)
	bcy := ratSub(by, cy)

	det := new(big.Rat).Sub(
		new(big.Rat).Mul(acx, bcy),
		new(big.Rat).Mul(acy, bcx),
	)

	return det.Sign()
}

// inCircleExact evaluates the 3x3 lifted in-circle determinant exactly.
func inCircleExact(ax, ay, bx, by, cx, cy, dx, dy float64) int {
	if !finite(ax, ay, bx, by, cx, cy, dx, dy) {
		return 0
	}

	adx := ratSub(ax, dx)
	ady := ratSub(ay, dy)
	bdx := ratSub(bx, dx)
	bdy := ratSub(by, dy)
	cdx := ratSub(cx, dx)
	cdy := ratSub(cy, dy)

	aLift := ratNorm2(adx, ady)
	bLift := ratNorm2(bdx, bdy)
	cLift := ratNorm2(cdx, cdy)

	// det = aLift*(bdx*cdy - cdx*bdy)
	//     + bLift*(cdx*ady - adx*cdy)
	//     + cLift*(adx*bdy - bdx*ady)
	det := new(big.Rat).Mul(aLift, ratCross(bdx, bdy, cdx, cdy))
	det.Add(det, new(big.Rat).Mul(bLift, ratCross(cdx, cdy, adx, ady)))
	det.Add(det, new(big.Rat).Mul(cLift, ratCross(adx, ady, bdx, bdy)))

	return det.Sign()
}

// ratNorm2 returns x*x + y*y over the rationals.
func ratNorm2(x, y *big.Rat) *big.Rat {
	xx := new(big.Rat).Mul(x, x)
	yy := new(big.Rat).Mul(y, y)

	return xx.Add(xx, yy)
}

// ratCross returns ux*vy - vx*uy over the rationals.
func ratCross(ux, uy, vx, vy *big.Rat) *big.Rat {
	return new(big.Rat).Sub(
		new(big.Rat).Mul(ux, vy),
		new(big.Rat).Mul(vx, uy),
	)
}
