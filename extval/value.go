package extval

import (
	"sort"

	"github.com/iknyazeva/gomorse/cell"
)

// Value is the extended value of a cell: the field values of its
// bounding vertices, sorted descending. Len reports how many of the
// four slots are significant (1 for a vertex, 2 for an edge, 4 for a
// face).
type Value struct {
	V   [4]float64
	Len int
}

// Of computes the extended value of cell c on grid g for the given
// field values, indexed values[y][x].
func Of(g *cell.Grid, values [][]float64, c int32) Value {
	verts := g.Verts(c)

	var out Value
	out.Len = len(verts)
	for i, v := range verts {
		out.V[i] = values[g.CoordY(v)][g.CoordX(v)]
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(out.V[:out.Len])))
	return out
}

// Less reports whether a orders strictly before b: lexicographically
// smaller on the shared prefix of their descending tuples, with the
// shorter tuple winning on a shared-prefix tie.
func Less(a, b Value) bool {
	n := a.Len
	if b.Len < n {
		n = b.Len
	}
	for i := 0; i < n; i++ {
		if a.V[i] != b.V[i] {
			return a.V[i] < b.V[i]
		}
	}
	return a.Len < b.Len
}

// Equal reports whether a and b have identical tuples.
func Equal(a, b Value) bool {
	if a.Len != b.Len {
		return false
	}
	for i := 0; i < a.Len; i++ {
		if a.V[i] != b.V[i] {
			return false
		}
	}
	return true
}

// Compare returns -1, 0 or 1 as a orders before, equal to, or after b.
func Compare(a, b Value) int {
	switch {
	case Equal(a, b):
		return 0
	case Less(a, b):
		return -1
	default:
		return 1
	}
}
