package gradient

import (
	"container/heap"

	"github.com/iknyazeva/gomorse/cell"
	"github.com/iknyazeva/gomorse/extval"
)

// lessCell orders two cells by extended value, breaking ties on id so
// the order is a strict total order even over a constant field.
func lessCell(g *cell.Grid, values [][]float64, a, b int32) bool {
	va := extval.Of(g, values, a)
	vb := extval.Of(g, values, b)
	switch extval.Compare(va, vb) {
	case -1:
		return true
	case 1:
		return false
	default:
		return a < b
	}
}

// cellHeap is a container/heap of cell ids ordered by lessCell.
type cellHeap struct {
	cells  []int32
	g      *cell.Grid
	values [][]float64
}

func (h *cellHeap) Len() int { return len(h.cells) }
func (h *cellHeap) Less(i, j int) bool {
	return lessCell(h.g, h.values, h.cells[i], h.cells[j])
}
func (h *cellHeap) Swap(i, j int) { h.cells[i], h.cells[j] = h.cells[j], h.cells[i] }
func (h *cellHeap) Push(x interface{}) {
	h.cells = append(h.cells, x.(int32))
}
func (h *cellHeap) Pop() interface{} {
	old := h.cells
	n := len(old)
	v := old[n-1]
	h.cells = old[:n-1]
	return v
}

// lowerStar returns the cells in the star of vertex v whose every
// other bounding vertex compares strictly less than v, i.e. the cells
// for which v is the maximal vertex. Candidates are sorted ascending
// by extended value (tie-broken by id).
func lowerStar(g *cell.Grid, values [][]float64, v int32) []int32 {
	star := g.Star(v)
	out := make([]int32, 0, 8)

	for _, c := range star {
		if isMaxVertexOf(g, values, v, c) {
			out = append(out, c)
		}
	}

	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && lessCell(g, values, out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// isMaxVertexOf reports whether v is the strict maximum, under
// (value, id) order, among the bounding vertices of cell c.
func isMaxVertexOf(g *cell.Grid, values [][]float64, v, c int32) bool {
	for _, u := range g.Verts(c) {
		if u == v {
			continue
		}
		if !vertexLess(g, values, u, v) {
			return false
		}
	}
	return true
}

func vertexLess(g *cell.Grid, values [][]float64, u, v int32) bool {
	uv := values[g.CoordY(u)][g.CoordX(u)]
	vv := values[g.CoordY(v)][g.CoordX(v)]
	if uv != vv {
		return uv < vv
	}
	return u < v
}

// facetsInSet returns the facets of c that are members of set.
func facetsInSet(g *cell.Grid, c int32, set map[int32]bool) []int32 {
	facets := g.Facets(c)
	out := make([]int32, 0, len(facets))
	for _, f := range facets {
		if set[f] {
			out = append(out, f)
		}
	}
	return out
}

// processVertex runs ProcessLowerStars for a single vertex, writing
// pairings into v2c/c2v-style arrays V and recording any critical
// cells (including v itself, if its lower star is empty) into crit.
func processVertex(g *cell.Grid, values [][]float64, v int32, V []int32, critOut *[]int32) {
	ls := lowerStar(g, values, v)
	if len(ls) == 0 {
		*critOut = append(*critOut, v)
		return
	}

	lsSet := make(map[int32]bool, len(ls))
	for _, c := range ls {
		lsSet[c] = true
	}

	// delta: the lowest-valued edge in the lower star.
	var delta int32 = Unset
	for _, c := range ls {
		if g.Dim(c) == 1 {
			delta = c
			break
		}
	}
	if delta == Unset {
		// No edge in the lower star: v is critical (a local extremum
		// candidate whose star faces are all paired elsewhere).
		*critOut = append(*critOut, v)
		return
	}

	V[v] = delta
	V[delta] = v

	paired := map[int32]bool{delta: true}

	pqZero := &cellHeap{g: g, values: values}
	heap.Init(pqZero)
	for _, c := range ls {
		if g.Dim(c) == 1 && c != delta {
			heap.Push(pqZero, c)
		}
	}

	var pqOne []int32
	cofacets, err := g.Cofacets(delta)
	if err == nil {
		for _, alpha := range cofacets {
			if lsSet[alpha] && len(unpairedFacets(g, alpha, lsSet, paired)) == 1 {
				pqOne = append(pqOne, alpha)
			}
		}
	}

	inQueue := make(map[int32]bool, len(pqOne))
	for _, a := range pqOne {
		inQueue[a] = true
	}

	pushCofacetsIfReady := func(edge int32) {
		cf, err := g.Cofacets(edge)
		if err != nil {
			return
		}
		for _, beta := range cf {
			if !lsSet[beta] || paired[beta] || inQueue[beta] {
				continue
			}
			if len(unpairedFacets(g, beta, lsSet, paired)) == 1 {
				pqOne = append(pqOne, beta)
				inQueue[beta] = true
			}
		}
	}

	for len(pqOne) > 0 || pqZero.Len() > 0 {
		for len(pqOne) > 0 {
			alpha := pqOne[0]
			pqOne = pqOne[1:]
			inQueue[alpha] = false

			unpaired := unpairedFacets(g, alpha, lsSet, paired)
			if len(unpaired) == 0 {
				heap.Push(pqZero, alpha)
				continue
			}

			pairCell := unpaired[0]
			V[pairCell] = alpha
			V[alpha] = pairCell
			paired[pairCell] = true
			paired[alpha] = true

			removeFromHeap(pqZero, pairCell)
			pushCofacetsIfReady(pairCell)
		}

		if pqZero.Len() == 0 {
			break
		}
		gamma := heap.Pop(pqZero).(int32)
		if paired[gamma] {
			continue
		}
		*critOut = append(*critOut, gamma)
		paired[gamma] = true
		pushCofacetsIfReady(gamma)
	}
}

// unpairedFacets returns the facets of alpha that lie in the local
// lower-star set and have not yet been paired.
func unpairedFacets(g *cell.Grid, alpha int32, lsSet, paired map[int32]bool) []int32 {
	facets := facetsInSet(g, alpha, lsSet)
	out := facets[:0:0]
	for _, f := range facets {
		if !paired[f] {
			out = append(out, f)
		}
	}
	return out
}

// removeFromHeap deletes c from h if present, preserving heap order.
func removeFromHeap(h *cellHeap, c int32) {
	for i, x := range h.cells {
		if x == c {
			heap.Remove(h, i)
			return
		}
	}
}
