// Package guards implements the guard-vertex triangulation data
// structure of Batista, a compressed variant of the link-vertex
// structure of Blandford et al.
//
// Vertices come in two flavors. A guard stores its link as ordered
// paths of neighbor indices, exactly like a link vertex. An ordinary
// vertex stores no link at all — only the set of guards whose links
// record its incident faces. Every face keeps at least one guard among
// its vertices, so all connectivity remains recoverable; when a face
// with three ordinary vertices is inserted, one of them is promoted to
// guard first (the GREEDY policy: the vertex with the largest current
// incident degree, ties to the lowest index). Guards whose links empty
// out are demoted back to ordinary, except the infinite vertex, which
// is permanently a guard.
//
// References:
//
//	[1] Batista, V. H. F., Transversais de triângulos e suas aplicações
//	    em triangulações. PhD thesis, Universidade Federal do Rio de
//	    Janeiro, COPPE, 2010.
//	[2] Blandford, D. K. et al., Compact representations of simplicial
//	    meshes in two and three dimensions. International Journal of
//	    Computational Geometry & Applications, v. 15, n. 1, p. 3-24, 2005.
package guards
