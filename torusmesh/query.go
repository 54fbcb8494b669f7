package torusmesh

import (
	"math"
	"sort"
	"strconv"

	"github.com/iknyazeva/gomorse/bfs"
	"github.com/iknyazeva/gomorse/cell"
	"github.com/iknyazeva/gomorse/core"
	"github.com/iknyazeva/gomorse/extval"
	"github.com/iknyazeva/gomorse/msgraph"
	"github.com/iknyazeva/gomorse/persistence"
)

// cutVertexID renders a cell id as the string vertex key used in
// CutMSGraph, matching msgraph's own decimal convention.
func cutVertexID(c int32) string {
	return strconv.FormatInt(int64(c), 10)
}

// CriticalPoints returns the coordinates of every critical cell whose
// Morse index equals morseIndex (0 = minima, 1 = saddles, 2 = maxima).
func (e *Engine) CriticalPoints(morseIndex int) (xs, ys []float64) {
	for _, c := range e.Gradient.CritCells {
		if e.Grid.Dim(c) != morseIndex {
			continue
		}
		x, y := e.Grid.Coords(c)
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

// MSGraph returns the Morse–Smale multigraph over critical cells.
func (e *Engine) MSGraph() *msgraph.Graph {
	return e.MS
}

// PersistencePairs returns the persistence pairs, sorted descending by
// persistence.
func (e *Engine) PersistencePairs() []persistence.Pair {
	return e.Pairs
}

// isSeamCrossing reports whether any cell in path has a bounding
// vertex on the leftmost column (x==0) or top row (y==0) — the
// toroidal seam under the row-major convention.
func isSeamCrossing(g *cell.Grid, path []int32) bool {
	for _, c := range path {
		for _, v := range g.Verts(c) {
			if g.CoordX(v) == 0 || g.CoordY(v) == 0 {
				return true
			}
		}
	}
	return false
}

// splitSeam breaks a polyline into segments wherever consecutive
// points jump by more than one grid unit in either axis, the
// signature of a cell sequence wrapping across the torus.
func splitSeam(pts [][2]float64) [][][2]float64 {
	if len(pts) == 0 {
		return nil
	}
	var out [][][2]float64
	cur := [][2]float64{pts[0]}
	for i := 1; i < len(pts); i++ {
		dx := math.Abs(pts[i][0] - pts[i-1][0])
		dy := math.Abs(pts[i][1] - pts[i-1][1])
		if dx > 1 || dy > 1 {
			out = append(out, cur)
			cur = [][2]float64{pts[i]}
			continue
		}
		cur = append(cur, pts[i])
	}
	return append(out, cur)
}

func inRect(p [2]float64, r *Rect) bool {
	return p[0] >= r.MinX && p[0] <= r.MaxX && p[1] >= r.MinY && p[1] <= r.MaxY
}

func segmentIntersects(seg [][2]float64, r *Rect) bool {
	for _, p := range seg {
		if inRect(p, r) {
			return true
		}
	}
	return false
}

// Arcs renders every separatrix as a list of polylines, split wherever
// a segment crosses the toroidal seam. When cut is non-nil, segments
// that never enter the rect are dropped.
func (e *Engine) Arcs(cut *Rect) [][][2]float64 {
	saddles := make([]int32, 0, len(e.Arcs))
	for s := range e.Arcs {
		saddles = append(saddles, s)
	}
	sort.Slice(saddles, func(i, j int) bool { return saddles[i] < saddles[j] })

	var out [][][2]float64
	for _, s := range saddles {
		for _, path := range e.Arcs[s] {
			pts := make([][2]float64, len(path))
			for i, c := range path {
				x, y := e.Grid.Coords(c)
				pts[i] = [2]float64{x, y}
			}
			for _, seg := range splitSeam(pts) {
				if cut != nil && !segmentIntersects(seg, cut) {
					continue
				}
				out = append(out, seg)
			}
		}
	}
	return out
}

// CutMSGraph rebuilds the Morse–Smale graph keeping only separatrices
// that never cross the toroidal seam.
func (e *Engine) CutMSGraph() (*core.Graph, error) {
	cg := core.NewGraph(core.WithMultiEdges())

	for _, c := range e.Gradient.CritCells {
		id := cutVertexID(c)
		if err := cg.AddVertex(id); err != nil {
			return nil, err
		}
		x, y := e.Grid.Coords(c)
		v := cg.VerticesMap()[id]
		v.Metadata["x"] = x
		v.Metadata["y"] = y
		v.Metadata["morse_index"] = e.Grid.Dim(c)
	}

	for _, s := range e.Gradient.CritCells {
		if e.Grid.Dim(s) != 1 {
			continue
		}
		for _, path := range e.Arcs[s] {
			if isSeamCrossing(e.Grid, path) {
				continue
			}
			extremum := path[len(path)-1]
			if _, err := cg.AddEdge(cutVertexID(s), cutVertexID(extremum), 0); err != nil {
				return nil, err
			}
		}
	}

	return cg, nil
}

// scalarValue is a critical cell's defining (top) vertex value, the
// same quantity persistence.Compute uses for the persistence gap.
func (e *Engine) scalarValue(c int32) float64 {
	return extval.Of(e.Grid, e.Values, c).V[0]
}

// PersistenceDiagram returns birth/death coordinate lists for the
// persistence pairs. betti==0 keeps pairs with birth>death, then
// swaps the two coordinates (so the returned points still sit above
// the diagonal); betti==1 keeps pairs with birth<death, unswapped; a
// nil betti normalises every pair to (min, max) regardless of which
// side is larger.
func (e *Engine) PersistenceDiagram(betti *int) (births, deaths []float64) {
	for _, p := range e.Pairs {
		b := e.scalarValue(p.Saddle)
		d := e.scalarValue(p.Extremum)

		switch {
		case betti == nil:
			lo, hi := b, d
			if lo > hi {
				lo, hi = hi, lo
			}
			births = append(births, lo)
			deaths = append(deaths, hi)
		case *betti == 0:
			if b > d {
				births = append(births, d)
				deaths = append(deaths, b)
			}
		case *betti == 1:
			if b < d {
				births = append(births, b)
				deaths = append(deaths, d)
			}
		}
	}
	return births, deaths
}

// ConnectedComponents counts the connected components of the
// Morse–Smale graph via repeated bfs.BFS from each unvisited vertex.
func (e *Engine) ConnectedComponents() (int, error) {
	g := e.MS.Core()
	visited := make(map[string]bool)

	components := 0
	for _, id := range g.Vertices() {
		if visited[id] {
			continue
		}
		components++
		result, err := bfs.BFS(g, id)
		if err != nil {
			return 0, err
		}
		for _, v := range result.Order {
			visited[v] = true
		}
		visited[id] = true
	}
	return components, nil
}
