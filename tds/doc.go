// Package tds declares the triangulation-data-structure contract shared
// by the link-vertex and guard-vertex connectivity structures.
//
// A TDS stores only combinatorics: vertices are addressed by stable
// non-negative integer indices, with index 0 permanently reserved for
// the infinite vertex, and faces are oriented triples recoverable from
// per-vertex link information. The Bowyer–Watson triangulator operates
// exclusively through this interface and never learns which concrete
// variant is behind it.
//
// Topology preconditions (inserting a duplicate face, removing an absent
// face) are programmer errors, not bad input: implementations panic with
// the stable messages declared here when they detect one. Duplicate
// faces are always detected; absent faces only in the cases listed on
// TDS.RemoveFace.
package tds
