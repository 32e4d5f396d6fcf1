// Package delaunay (module root) is a 2D Delaunay triangulation engine
// built around compact connectivity structures for planar triangulations.
//
// 🚀 What is it?
//
//	An incremental Bowyer–Watson triangulator with a Biased Randomized
//	Insertion Order (BRIO), backed by two interchangeable triangulation
//	data structures:
//
//	  • Link vertices  — every vertex stores its oriented link as ordered
//	    paths of neighbor indices (Blandford–Blelloch–Cardoze–Kadow).
//	  • Guard vertices — only guard vertices store links; ordinary
//	    vertices keep a small set of guards that record their faces
//	    (Batista).
//
// ✨ Highlights
//
//   - Exact predicates     — orientation and in-circle tests never lie
//   - Cache-friendly BRIO  — kD-tree rounds keep consecutive insertions close
//   - Pluggable storage    — the triangulator sees only the TDS contract
//
// The module is organized in flat subpackages:
//
//	predicates/ — exact Orient2D and InCircle sign predicates
//	geometry/   — Point, Circle, BoundingBox and predicate wrappers
//	brio/       — biased randomized insertion orders via a 2D kD-tree
//	tds/        — the triangulation-data-structure contract
//	links/      — the link-vertex TDS
//	guards/     — the guard-vertex TDS
//	delaunay/   — the Bowyer–Watson triangulator
//
// Quick ASCII example:
//
//	        3
//	       /|\
//	      / | \
//	     1--+--2      the first finite face (1,2,3), surrounded by the
//	      \ | /       infinite faces (0,2,1), (0,3,2) and (0,1,3)
//	       \|/
//	        0 (∞)
//
//	go get github.com/vicentehelano/delaunay
package delaunay
