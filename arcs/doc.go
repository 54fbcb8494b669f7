// Package arcs traces separatrices — the V-paths connecting a saddle
// to the extrema its discrete gradient flow leads to — and provides
// the path-splicing and mustache-removal operations used when
// cancelling persistence pairs by graph surgery rather than by
// reversing the gradient directly.
//
// Every saddle has exactly four separatrices: two descending along
// vertices to the two minima in its lower link, and two ascending
// along faces to the two maxima in its upper link.
package arcs
