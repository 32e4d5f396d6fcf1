// Package brio produces Biased Randomized Insertion Orders for planar
// point sets, the insertion sequences that keep incremental Delaunay
// construction fast in practice.
//
// The input is split into O(log n) rounds whose sizes follow repeated
// binomial halving: later rounds receive roughly half of what remains,
// the first round the rest. Inside each round the points are reordered
// by an alternating in-order traversal of a 2D kD-tree, which yields a
// Hilbert-curve-like sweep so that consecutive insertions land close to
// each other.
//
// References:
//
//	Amenta, N., Choi, S., and Rote, G., Incremental constructions con
//	  BRIO. Proceedings of the 19th Annual Symposium on Computational
//	  Geometry, p. 211-219, 2003.
//	Liu, J.-F., Yan, J.-H., Lo, S. H., A new insertion sequence for
//	  incremental Delaunay triangulation. Acta Mechanica Sinica, v. 29,
//	  n. 1, p. 99-109, 2013.
package brio
