// Package delaunay constructs the Delaunay triangulation of a planar
// point set with the incremental Bowyer–Watson algorithm con BRIO.
//
// The triangulator drives a triangulation data structure through the
// tds.TDS contract and never learns which concrete variant is behind
// it (link vertices or guard vertices). Each point insertion runs four
// phases:
//
//  1. locate  — walk from a hint face toward the point, steered by
//     exact orientation tests folded into a base-3 mask;
//  2. conflict — breadth-first expansion of the set of faces whose
//     circumcircles contain the point;
//  3. cavity  — removal of the conflict set, leaving a star-shaped hole;
//  4. re-fan  — a fresh vertex connected to every boundary edge of the
//     hole.
//
// The triangulation is bootstrapped from the first three non-collinear
// points together with the infinite vertex, so the structure stays a
// closed triangulation of the sphere throughout and point location
// never falls off the boundary.
//
// It closely follows CGAL's Delaunay_triangulation_2 design.
package delaunay
