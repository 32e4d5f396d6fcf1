// Package links implements the link-vertex triangulation data structure
// of Blandford, Blelloch, Cardoze and Kadow for planar triangulations.
//
// Every vertex stores its link as an ordered list of paths, each path an
// ordered sequence of neighbor indices in counter-clockwise order. A
// path that is a cycle repeats its first entry at the end. Faces are not
// stored: the face (v, x, y) exists iff y immediately follows x in one
// of v's paths. The infinite vertex always has index 0.
//
// Inserting a face extends the link of each of its three vertices by one
// of four cases — new path, path extension, path join, cycle closure —
// and removing a face splits a path or reopens a cycle. Vertices can be
// created but never removed.
//
// Reference: Blandford, D. K. et al., Compact representations of
// simplicial meshes in two and three dimensions. International Journal
// of Computational Geometry & Applications, v. 15, n. 1, p. 3-24, 2005.
package links
