package simplify

import (
	"errors"

	"github.com/iknyazeva/gomorse/arcs"
	"github.com/iknyazeva/gomorse/cell"
	"github.com/iknyazeva/gomorse/gradient"
	"github.com/iknyazeva/gomorse/msgraph"
	"github.com/iknyazeva/gomorse/persistence"
)

// Sentinel errors for simplification operations.
var (
	// ErrSaddleNotOneCell indicates a persistence pair whose saddle
	// is not a 1-cell, which should never occur for a well-formed
	// pair list and signals corrupted state.
	ErrSaddleNotOneCell = errors.New("simplify: persistence pair saddle is not a 1-cell")

	// ErrTooFewPairsRemain indicates a request to simplify down to
	// fewer than two remaining pairs.
	ErrTooFewPairsRemain = errors.New("simplify: fewer than two pairs would remain")

	// ErrUnknownMethod indicates a Method value other than the two
	// defined constants.
	ErrUnknownMethod = errors.New("simplify: unknown cancellation method")
)

// Method selects the pair-cancellation strategy.
type Method int

const (
	// MethodGradient cancels pairs by reversing the gradient along
	// the separatrix connecting them.
	MethodGradient Method = iota
	// MethodArc cancels pairs by Morse–Smale graph surgery, splicing
	// and simplifying arcs without touching the gradient.
	MethodArc
)

// State bundles the mutable artifacts a simplification pass rewrites
// in place: the gradient field, the Morse–Smale graph, the cached
// separatrices, and the remaining persistence pairs (kept sorted
// descending by persistence; the lowest-persistence pair is always
// state.Pairs[len(state.Pairs)-1]).
type State struct {
	Grid     *cell.Grid
	Values   [][]float64
	Gradient *gradient.Result
	MS       *msgraph.Graph
	Arcs     arcs.Arcs
	Pairs    []persistence.Pair

	// OnProgress, if non-nil, is invoked after each pair cancellation
	// and once more if there were no pairs left to cancel.
	OnProgress func(stage string, done, total int)
}

// removeCritCell deletes c from Gradient.Crit/CritCells and marks the
// vector field position unpaired no further (the caller is
// responsible for giving c a new partner before this is observed).
func (st *State) removeCritCell(c int32) {
	st.Gradient.Crit[c] = false
	for i, x := range st.Gradient.CritCells {
		if x == c {
			st.Gradient.CritCells = append(st.Gradient.CritCells[:i], st.Gradient.CritCells[i+1:]...)
			break
		}
	}
}
