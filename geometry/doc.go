// Package geometry defines the planar primitives used throughout the
// module — Point, Circle and BoundingBox — together with the predicate
// wrappers Orientation, InCircle and InBetween and the Circumcircle
// constructor.
//
// Orientation and InCircle delegate to the exact sign predicates of
// package predicates; their results are reliable even on degenerate
// input. Circumcircle is a floating-point constructor (its output feeds
// visualization and statistics, not topology) guarded by an exact
// non-collinearity check.
package geometry
