package persistence

import (
	"math"
	"sort"

	"github.com/iknyazeva/gomorse/cell"
	"github.com/iknyazeva/gomorse/extval"
	"github.com/iknyazeva/gomorse/gradient"
	"github.com/iknyazeva/gomorse/msgraph"
)

// Pair is a persistence pairing between a saddle and the extremum
// (minimum or maximum) whose basin it kills.
type Pair struct {
	Saddle      int32
	Extremum    int32
	Persistence float64
}

// Compute pairs saddles of gr's critical cells with extrema, returning
// the pairs sorted descending by persistence. A saddle whose reduced
// column becomes empty gets no pair, so on a torus there are fewer
// pairs than saddles.
//
// Critical cells are processed in ascending extended-value order (the
// order gradient.Build already sorted gr.CritCells into). Each saddle
// is first classified, via a union-find over the minimum-neighbour
// connectivity induced by ms, as negative (kills a 0-dimensional
// component) or positive (opens a 1-cycle later killed by a maximum).
func Compute(g *cell.Grid, values [][]float64, gr *gradient.Result, ms *msgraph.Graph) ([]Pair, error) {
	crit := gr.CritCells
	n := len(crit)

	idxOf := make(map[int32]int, n)
	for i, c := range crit {
		idxOf[c] = i
	}

	signs := make([]bool, n) // true = positive
	uf := newUnionFind(n)

	for i, c := range crit {
		switch g.Dim(c) {
		case 0:
			signs[i] = true
		case 2:
			signs[i] = false
		default:
			mn, err := ms.MinNeighbors(c)
			if err != nil {
				return nil, err
			}
			a, b := idxOf[mn[0]], idxOf[mn[1]]
			if uf.find(a) == uf.find(b) {
				signs[i] = true
			} else {
				signs[i] = false
			}
			uf.union(a, b)
		}
	}

	scalar := func(c int32) float64 {
		return extval.Of(g, values, c).V[0]
	}

	var pairs []Pair
	cycles := make([]*bitset, n)

	for i := 0; i < n; i++ {
		c := crit[i]
		if g.Dim(c) != 1 || signs[i] {
			continue
		}

		mn, err := ms.MinNeighbors(c)
		if err != nil {
			return nil, err
		}

		cur := newBitset(n)
		cur.set(idxOf[mn[0]])
		cur.set(idxOf[mn[1]])

		for !cur.isZero() {
			s := cur.highest()
			if cycles[s] == nil {
				cycles[s] = cur.clone()
				extreme := crit[s]
				pairs = append(pairs, Pair{
					Saddle:      c,
					Extremum:    extreme,
					Persistence: math.Abs(scalar(c) - scalar(extreme)),
				})
				break
			}
			cur.xor(cycles[s])
		}
	}

	cycles = make([]*bitset, n)
	for i := n - 1; i >= 0; i-- {
		c := crit[i]
		if g.Dim(c) != 1 || !signs[i] {
			continue
		}

		mx, err := ms.MaxNeighbors(c)
		if err != nil {
			return nil, err
		}

		cur := newBitset(n)
		cur.set(idxOf[mx[0]])
		cur.set(idxOf[mx[1]])

		for !cur.isZero() {
			s := cur.lowest()
			if cycles[s] == nil {
				cycles[s] = cur.clone()
				extreme := crit[s]
				pairs = append(pairs, Pair{
					Saddle:      c,
					Extremum:    extreme,
					Persistence: math.Abs(scalar(c) - scalar(extreme)),
				})
				break
			}
			cur.xor(cycles[s])
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Persistence > pairs[j].Persistence
	})

	return pairs, nil
}
