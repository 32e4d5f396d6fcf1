// Package predicates provides exact 2D geometric sign predicates.
//
// Orient2D and InCircle evaluate the classic orientation and in-circle
// determinants and return only their sign in {-1, 0, +1}. Each predicate
// first evaluates the determinant in ordinary floating point and accepts
// the result when its magnitude exceeds a static forward-error bound on
// the rounding error (Shewchuk's A-stage filter). Ambiguous cases fall
// back to an exact evaluation over arbitrary-precision rationals, so the
// returned sign is always the sign of the true real-arithmetic value.
//
// Complexity:
//
//   - Common case: a handful of float64 multiplications (the filter
//     accepts the vast majority of inputs in practice).
//   - Degenerate or near-degenerate case: a fixed number of big.Rat
//     operations; still O(1), with larger constants.
package predicates
