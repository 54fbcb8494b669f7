// Package gradient builds a discrete gradient vector field over a
// toroidal cubical complex using the ProcessLowerStars algorithm of
// Robins, Wood and Sheppard: each vertex's lower star is processed
// independently, pairing cells into a partial matching V on the Hasse
// diagram and marking the unmatched cells critical.
//
// Lower stars of distinct vertices are disjoint (every edge and face
// belongs to exactly one vertex's lower star, the vertex carrying its
// maximal field value), so Build partitions vertices into contiguous
// blocks and processes each block on its own goroutine, merging the
// resulting critical-cell lists under a mutex before a final sort.
package gradient
