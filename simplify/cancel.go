package simplify

import (
	"github.com/iknyazeva/gomorse/arcs"
	"github.com/iknyazeva/gomorse/persistence"
)

// extremumDim returns 0 for a minimum and 2 for a maximum, given the
// saddle's grid (all extrema passed here are either dim 0 or dim 2).
func (st *State) extremumDim(c int32) int {
	return st.Grid.Dim(c)
}

func (st *State) popLowestPair() (persistence.Pair, bool) {
	if len(st.Pairs) == 0 {
		return persistence.Pair{}, false
	}
	last := len(st.Pairs) - 1
	p := st.Pairs[last]
	st.Pairs = st.Pairs[:last]
	return p, true
}

// reverseGradientAlong re-pairs the cells of arc pairwise, shifted by
// one position: (arc[0],arc[1]), (arc[2],arc[3]), ..., turning the
// arc's two endpoints into regular cells.
func reverseGradientAlong(V []int32, arc []int32) {
	for i := 0; i+1 < len(arc); i += 2 {
		V[arc[i]] = arc[i+1]
		V[arc[i+1]] = arc[i]
	}
}

// EliminatePairRevertGradient cancels the lowest-persistence remaining
// pair by reversing the gradient along its connecting separatrix. It
// is a no-op (nil error) if no pairs remain.
func (st *State) EliminatePairRevertGradient() error {
	pair, ok := st.popLowestPair()
	if !ok {
		if st.OnProgress != nil {
			st.OnProgress("simplify", 0, 0)
		}
		return nil
	}

	if st.Grid.Dim(pair.Saddle) != 1 {
		return ErrSaddleNotOneCell
	}

	arc, err := arcs.Find(st.Grid, st.Gradient, pair.Saddle, pair.Extremum)
	if err != nil {
		return err
	}

	reverseGradientAlong(st.Gradient.V, arc)
	st.removeCritCell(pair.Saddle)
	st.removeCritCell(pair.Extremum)

	dim := st.extremumDim(pair.Extremum)
	if err := st.rerouteNeighbors(pair.Saddle, pair.Extremum, dim); err != nil {
		return err
	}

	delete(st.Arcs, pair.Saddle)
	return st.retraceArcs()
}

// EliminatePairChangeGraph cancels the lowest-persistence remaining
// pair by Morse–Smale graph surgery and arc splicing, without
// touching the gradient field. It is a no-op (nil error) if no pairs
// remain.
func (st *State) EliminatePairChangeGraph() error {
	pair, ok := st.popLowestPair()
	if !ok {
		if st.OnProgress != nil {
			st.OnProgress("simplify", 0, 0)
		}
		return nil
	}

	if st.Grid.Dim(pair.Saddle) != 1 {
		return ErrSaddleNotOneCell
	}

	dim := st.extremumDim(pair.Extremum)

	sToE, err := arcs.Find(st.Grid, st.Gradient, pair.Saddle, pair.Extremum)
	if err != nil {
		return err
	}

	survivor, err := st.survivingExtremum(pair.Saddle, pair.Extremum, dim)
	if err != nil {
		return err
	}
	sToOther, err := arcs.Find(st.Grid, st.Gradient, pair.Saddle, survivor)
	if err != nil {
		return err
	}
	splice := arcs.Splice(sToE, sToOther)

	others, err := st.otherExtremumSaddles(pair.Saddle, pair.Extremum, dim)
	if err != nil {
		return err
	}

	st.removeCritCell(pair.Saddle)
	st.removeCritCell(pair.Extremum)

	if err := st.MS.RemoveCell(pair.Saddle); err != nil {
		return err
	}
	if err := st.MS.RemoveCell(pair.Extremum); err != nil {
		return err
	}

	for _, s := range others {
		if err := st.MS.AddSeparatrix(s, survivor); err != nil {
			return err
		}

		oldArcs := st.Arcs[s]
		newArc := spliceOnto(oldArcs, pair.Extremum, splice)
		st.Arcs[s] = newArc
	}

	delete(st.Arcs, pair.Saddle)
	return nil
}

// spliceOnto replaces every arc in oldArcs ending at cut with the
// simplified concatenation of that whole arc with splice minus its
// first cell (the shared cut extremum).
func spliceOnto(oldArcs [][]int32, cut int32, splice []int32) [][]int32 {
	out := make([][]int32, len(oldArcs))
	for i, a := range oldArcs {
		if a[len(a)-1] != cut {
			out[i] = a
			continue
		}
		joined := make([]int32, 0, len(a)+len(splice))
		joined = append(joined, a...)
		joined = append(joined, splice[1:]...)
		out[i] = arcs.SimplifyArc(joined)
	}
	return out
}

// rerouteNeighbors reassigns every other saddle that used to connect
// to the cancelled extremum onto the surviving extremum of the
// cancelled saddle, then removes the two cancelled nodes.
func (st *State) rerouteNeighbors(saddle, extremum int32, dim int) error {
	survivor, err := st.survivingExtremum(saddle, extremum, dim)
	if err != nil {
		return err
	}
	others, err := st.otherExtremumSaddles(saddle, extremum, dim)
	if err != nil {
		return err
	}

	if err := st.MS.RemoveCell(saddle); err != nil {
		return err
	}
	if err := st.MS.RemoveCell(extremum); err != nil {
		return err
	}
	for _, s := range others {
		if err := st.MS.AddSeparatrix(s, survivor); err != nil {
			return err
		}
	}
	return nil
}

// survivingExtremum returns the other dim-extremum neighbour of
// saddle besides extremum.
func (st *State) survivingExtremum(saddle, extremum int32, dim int) (int32, error) {
	var neighbors [2]int32
	var err error
	if dim == 0 {
		neighbors, err = st.MS.MinNeighbors(saddle)
	} else {
		neighbors, err = st.MS.MaxNeighbors(saddle)
	}
	if err != nil {
		return 0, err
	}
	if neighbors[0] == extremum {
		return neighbors[1], nil
	}
	return neighbors[0], nil
}

// otherExtremumSaddles returns every saddle, other than saddle itself,
// connected to extremum in the Morse–Smale graph.
func (st *State) otherExtremumSaddles(saddle, extremum int32, dim int) ([]int32, error) {
	neighbors, err := st.MS.NeighborsOfDim(extremum, 1)
	if err != nil {
		return nil, err
	}
	out := make([]int32, 0, len(neighbors))
	for _, s := range neighbors {
		if s != saddle {
			out = append(out, s)
		}
	}
	return out, nil
}

// retraceArcs recomputes every saddle's separatrices against the
// post-reversal gradient field.
func (st *State) retraceArcs() error {
	fresh, err := arcs.BuildAll(st.Grid, st.Gradient, st.Gradient.CritCells)
	if err != nil {
		return err
	}
	st.Arcs = fresh
	return nil
}
