package msgraph

import (
	"errors"

	"github.com/iknyazeva/gomorse/core"
)

// Sentinel errors for Morse–Smale graph operations.
var (
	// ErrBadSaddleDegree indicates a saddle does not have exactly two
	// neighbours of the requested extremal kind.
	ErrBadSaddleDegree = errors.New("msgraph: saddle does not have exactly two neighbours of that kind")

	// ErrNotSaddle indicates an operation that requires a 1-cell was
	// given a cell of a different dimension.
	ErrNotSaddle = errors.New("msgraph: cell is not a saddle (dimension != 1)")

	// ErrCellNotFound indicates a cell id with no corresponding node.
	ErrCellNotFound = errors.New("msgraph: cell has no node in the graph")
)

// metaX, metaY, metaDim are the Vertex.Metadata keys used to carry a
// critical cell's geometric and topological attributes.
const (
	metaX   = "x"
	metaY   = "y"
	metaDim = "morse_index"
)

// Graph is the Morse–Smale multigraph over critical cells, keyed by
// their cell id formatted as a decimal string.
type Graph struct {
	g *core.Graph
}

// Core exposes the underlying multigraph for callers that need direct
// access (e.g. simplify's graph surgery).
func (ms *Graph) Core() *core.Graph {
	return ms.g
}
