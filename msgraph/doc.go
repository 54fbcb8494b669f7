// Package msgraph builds the Morse–Smale graph: a multigraph whose
// nodes are the critical cells of a discrete gradient field and whose
// edges are the separatrices connecting a saddle to the two extrema
// its ascending and descending V-paths terminate at.
//
// The graph is backed by an adapted core.Graph (undirected, multi-edge
// enabled) so that two distinct V-paths from the same saddle landing
// on the same extremum — routine on a torus — are represented as
// parallel edges rather than collapsed or rejected.
package msgraph
