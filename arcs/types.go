package arcs

import "errors"

// ErrNotSaddle indicates Trace or Find was asked to trace from a cell
// that is not a 1-cell.
var ErrNotSaddle = errors.New("arcs: cell is not a saddle (dimension != 1)")

// ErrArcNotFound indicates no traced separatrix from the saddle
// terminates at the requested extremum.
var ErrArcNotFound = errors.New("arcs: no separatrix connects saddle to extremum")

// Arcs maps each saddle to its four separatrices, each a cell-id
// sequence alternating saddle/vertex/edge/... (descending) or
// saddle/face/edge/... (ascending), ending at a critical cell.
type Arcs map[int32][][]int32
