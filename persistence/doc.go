// Package persistence computes the persistence pairs of a discrete
// Morse function: for each saddle that the reduction pairs, the
// extremum it is paired with in the filtration order, together with
// the persistence (lifetime) of that pairing.
//
// Saddles are first classified negative (kills a component, merging
// two descending basins) or positive (opens a 1-cycle) using a
// union-find over the minimum-connectivity induced by the
// Morse–Smale graph. A forward pass over negative saddles then pairs
// each with the minimum it kills by reducing a bitset column indexed
// by filtration rank — the classic boundary-matrix reduction, applied
// here to the Morse–Smale graph's neighbour sets instead of a full
// simplicial boundary matrix. A symmetric reverse pass pairs positive
// saddles with the maximum that kills their 1-cycle.
package persistence
