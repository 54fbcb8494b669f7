// Package simplify cancels persistence pairs to topologically simplify
// a discrete gradient field, by one of two interchangeable strategies:
//
//   - MethodGradient reverses the gradient arrows along the unique
//     separatrix connecting the pair, turning the saddle and extremum
//     into regular (non-critical) cells and re-tracing the arcs of
//     any saddle that used to terminate at the cancelled extremum.
//   - MethodArc leaves the gradient untouched and instead performs
//     graph surgery directly on the Morse–Smale graph: the cancelled
//     saddle's surviving separatrix is spliced onto every neighbour
//     that used to terminate at the cancelled extremum, and the
//     spliced arc is shortened by removing any back-and-forth
//     "mustache" the splice introduced.
//
// Both strategies operate on a shared State and converge on the same
// Morse–Smale graph topology; they differ only in whether the
// underlying gradient vector field is touched.
package simplify
