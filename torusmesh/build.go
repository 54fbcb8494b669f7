package torusmesh

import (
	"github.com/iknyazeva/gomorse/arcs"
	"github.com/iknyazeva/gomorse/cell"
	"github.com/iknyazeva/gomorse/gradient"
	"github.com/iknyazeva/gomorse/msgraph"
	"github.com/iknyazeva/gomorse/persistence"
)

// BuildAll constructs the full discrete Morse–Smale complex for
// values, a H×W field sampled on a periodic grid: the discrete
// gradient, the Morse–Smale graph, the separatrices of every saddle,
// and the persistence pairs.
func BuildAll(values [][]float64, opts BuildOptions) (*Engine, error) {
	h := len(values)
	if h == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyField
	}
	w := len(values[0])

	grid, err := cell.NewGrid(w, h)
	if err != nil {
		return nil, err
	}

	gradOpts := gradient.BuildOptions{Threads: opts.Threads, OnProgress: opts.OnProgress}
	gr, err := gradient.Build(grid, values, gradOpts)
	if err != nil {
		return nil, err
	}

	ms, err := msgraph.Build(grid, gr)
	if err != nil {
		return nil, err
	}

	allArcs, err := arcs.BuildAll(grid, gr, gr.CritCells)
	if err != nil {
		return nil, err
	}

	pairs, err := persistence.Compute(grid, values, gr, ms)
	if err != nil {
		return nil, err
	}

	return &Engine{
		Grid:       grid,
		Values:     values,
		Gradient:   gr,
		MS:         ms,
		Arcs:       allArcs,
		Pairs:      pairs,
		onProgress: opts.OnProgress,
	}, nil
}
