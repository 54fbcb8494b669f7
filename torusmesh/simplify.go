package torusmesh

import "github.com/iknyazeva/gomorse/simplify"

// ByLevel cancels every pair whose persistence is below level (keeping
// at least two pairs), using method, and syncs the result back into
// the engine.
func (e *Engine) ByLevel(method simplify.Method, level float64) error {
	st := e.state()
	if err := st.ByLevel(method, level); err != nil {
		return err
	}
	e.sync(st)
	return nil
}

// ByPercent cancels the lowest-persistence percent of pairs (keeping
// at least two pairs) using method, and syncs the result back into
// the engine.
func (e *Engine) ByPercent(method simplify.Method, percent float64) error {
	st := e.state()
	if err := st.ByPercent(method, percent); err != nil {
		return err
	}
	e.sync(st)
	return nil
}

// ByPairsRemained cancels pairs, lowest persistence first, until at
// most pairsRemained remain, and syncs the result back into the
// engine.
func (e *Engine) ByPairsRemained(method simplify.Method, pairsRemained int) error {
	st := e.state()
	if err := st.ByPairsRemained(method, pairsRemained); err != nil {
		return err
	}
	e.sync(st)
	return nil
}
