package simplify

// eliminateOne dispatches a single pair cancellation to the chosen method.
func (st *State) eliminateOne(method Method) error {
	switch method {
	case MethodGradient:
		return st.EliminatePairRevertGradient()
	case MethodArc:
		return st.EliminatePairChangeGraph()
	default:
		return ErrUnknownMethod
	}
}

// ByPairsRemained cancels pairs, lowest persistence first, until at
// most pairsRemained remain. It is a no-op if fewer pairs than that
// are already present, and fails with ErrTooFewPairsRemain if
// pairsRemained < 2.
func (st *State) ByPairsRemained(method Method, pairsRemained int) error {
	if pairsRemained < 2 {
		return ErrTooFewPairsRemain
	}

	total := len(st.Pairs) - pairsRemained
	if total <= 0 {
		return nil
	}

	for i := 0; i < total; i++ {
		if err := st.eliminateOne(method); err != nil {
			return err
		}
		if st.OnProgress != nil {
			st.OnProgress("simplify", i+1, total)
		}
	}
	return nil
}

// ByPercent cancels the lowest-persistence percent*len(Pairs) pairs
// (0 <= percent <= 1), always keeping at least two pairs.
func (st *State) ByPercent(method Method, percent float64) error {
	n := len(st.Pairs)
	remained := n - int(percent*float64(n))
	if remained < 2 {
		remained = 2
	}
	return st.ByPairsRemained(method, remained)
}

// ByLevel cancels every remaining pair whose persistence is strictly
// below level, except that at least two pairs are always kept.
func (st *State) ByLevel(method Method, level float64) error {
	remained := 0
	for _, p := range st.Pairs {
		if p.Persistence >= level {
			remained++
		}
	}
	if remained < 2 {
		remained = 2
	}
	return st.ByPairsRemained(method, remained)
}
