// Package cell implements pure arithmetic over a
// toroidal cubical complex: the vertices, edges and faces of a W×H
// rectangular grid with periodic (wraparound) boundary conditions in
// both axes.
//
// All four cell classes share a single integer address space of size
// 4*W*H, addressed row-major (id = y*W + x for vertices, with edges
// and faces offset by multiples of N = W*H):
//
//	[0,   N)  vertices   v(x,y)
//	[N,  2N)  horizontal edges, v(x,y) — v(x+1,y)
//	[2N, 3N)  vertical edges,   v(x,y) — v(x,y+1)
//	[3N, 4N)  faces, top-left vertex v(x,y)
//
// Grid carries only W, H and N; it holds no field values and is safe
// to share across goroutines. Neighbour arithmetic here is adapted
// from the row-major index/coordinate convention of a bounded 4- or
// 8-connected grid, generalized to wrap modulo W (horizontal) and
// modulo N with stride W (vertical) instead of clamping at the
// boundary.
package cell
