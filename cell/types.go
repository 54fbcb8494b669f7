package cell

import "errors"

// Sentinel errors for cell-indexing operations.
var (
	// ErrBadDimensions indicates a non-positive grid dimension.
	ErrBadDimensions = errors.New("cell: width and height must be > 0")

	// ErrNotEdge indicates a cofacet query on a cell that is not a 1-cell.
	ErrNotEdge = errors.New("cell: cofacets is only defined for 1-cells (edges)")

	// ErrCellOutOfRange indicates an id outside [0, 4N).
	ErrCellOutOfRange = errors.New("cell: id out of range")
)

// Kind distinguishes the four cell classes sharing the flat id space.
type Kind int

const (
	// KindVertex is a 0-cell, id in [0, N).
	KindVertex Kind = iota
	// KindHEdge is a 1-cell connecting a vertex to its right neighbour, id in [N, 2N).
	KindHEdge
	// KindVEdge is a 1-cell connecting a vertex to its bottom neighbour, id in [2N, 3N).
	KindVEdge
	// KindFace is a 2-cell with top-left vertex v, id in [3N, 4N).
	KindFace
)

// Grid is an immutable description of a W×H toroidal cubical complex.
// It stores no field values; Coords/Verts/Facets/Cofacets/Star are
// pure functions of the grid shape and a cell id.
type Grid struct {
	W, H, N int
}

// NewGrid validates w,h > 0 and returns a Grid with N = w*h.
// Complexity: O(1).
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadDimensions
	}

	return &Grid{W: w, H: h, N: w * h}, nil
}

// Size returns the total number of cells, 4*N.
func (g *Grid) Size() int {
	return 4 * g.N
}

// Dim returns the Morse dimension of cell c: 0 for vertices, 1 for
// either edge kind, 2 for faces.
func (g *Grid) Dim(c int32) int {
	n := int32(g.N)
	switch {
	case c < n:
		return 0
	case c < 3*n:
		return 1
	default:
		return 2
	}
}

// KindOf returns the precise cell class of c.
func (g *Grid) KindOf(c int32) Kind {
	n := int32(g.N)
	switch {
	case c < n:
		return KindVertex
	case c < 2*n:
		return KindHEdge
	case c < 3*n:
		return KindVEdge
	default:
		return KindFace
	}
}
