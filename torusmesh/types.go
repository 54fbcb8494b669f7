package torusmesh

import (
	"errors"

	"github.com/iknyazeva/gomorse/arcs"
	"github.com/iknyazeva/gomorse/cell"
	"github.com/iknyazeva/gomorse/gradient"
	"github.com/iknyazeva/gomorse/msgraph"
	"github.com/iknyazeva/gomorse/persistence"
	"github.com/iknyazeva/gomorse/simplify"
)

// Sentinel errors surfaced by the Engine façade.
var (
	// ErrEmptyField indicates BuildAll was given a nil or empty
	// values matrix.
	ErrEmptyField = errors.New("torusmesh: values matrix is empty")
)

// BuildOptions configures Engine construction.
type BuildOptions struct {
	// Threads is the gradient construction parallelism.
	Threads int

	// OnProgress is forwarded to gradient construction and
	// simplification passes.
	OnProgress func(stage string, done, total int)
}

// DefaultBuildOptions returns single-threaded options with no
// progress hook.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Threads: 1}
}

// Rect is an axis-aligned cut window in vertex coordinates, used by
// Arcs to drop polyline segments that have no point inside it.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Engine holds the full discrete Morse–Smale complex computed for a
// scalar field on a toroidal grid.
type Engine struct {
	Grid       *cell.Grid
	Values     [][]float64
	Gradient   *gradient.Result
	MS         *msgraph.Graph
	Arcs       arcs.Arcs
	Pairs      []persistence.Pair
	onProgress func(stage string, done, total int)
}

// state returns a simplify.State view over the engine's mutable parts,
// sharing backing storage so simplification mutates the engine itself.
func (e *Engine) state() *simplify.State {
	return &simplify.State{
		Grid:       e.Grid,
		Values:     e.Values,
		Gradient:   e.Gradient,
		MS:         e.MS,
		Arcs:       e.Arcs,
		Pairs:      e.Pairs,
		OnProgress: e.onProgress,
	}
}

// sync copies a simplify.State's results back into the engine after a
// simplification pass.
func (e *Engine) sync(st *simplify.State) {
	e.Gradient = st.Gradient
	e.MS = st.MS
	e.Arcs = st.Arcs
	e.Pairs = st.Pairs
}
