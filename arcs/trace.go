package arcs

import (
	"github.com/iknyazeva/gomorse/cell"
	"github.com/iknyazeva/gomorse/gradient"
)

// traceDescending walks the descending V-path from vertex v0 until it
// reaches a critical vertex, returning the full alternating sequence
// v0, e0, v1, e1, ..., vk.
func traceDescending(g *cell.Grid, gr *gradient.Result, v0 int32) []int32 {
	path := []int32{v0}
	cur := v0
	for !gr.Crit[cur] {
		edge := gr.V[cur]
		path = append(path, edge)
		verts := g.Verts(edge)
		if verts[0] == cur {
			cur = verts[1]
		} else {
			cur = verts[0]
		}
		path = append(path, cur)
	}
	return path
}

// traceAscending walks the ascending V-path from face f0 until it
// reaches a critical face, returning the full alternating sequence
// f0, e0, f1, e1, ..., fk.
func traceAscending(g *cell.Grid, gr *gradient.Result, f0 int32) []int32 {
	path := []int32{f0}
	cur := f0
	for !gr.Crit[cur] {
		edge := gr.V[cur]
		path = append(path, edge)
		cofacets, _ := g.Cofacets(edge)
		if cofacets[0] == cur {
			cur = cofacets[1]
		} else {
			cur = cofacets[0]
		}
		path = append(path, cur)
	}
	return path
}

// Trace returns the four separatrices of saddle, each prefixed by the
// saddle itself: two descending (via the saddle's two vertices) then
// two ascending (via the saddle's two cofacet faces).
func Trace(g *cell.Grid, gr *gradient.Result, saddle int32) ([][]int32, error) {
	if g.Dim(saddle) != 1 {
		return nil, ErrNotSaddle
	}

	out := make([][]int32, 0, 4)
	for _, v := range g.Facets(saddle) {
		out = append(out, prepend(saddle, traceDescending(g, gr, v)))
	}

	cofacets, err := g.Cofacets(saddle)
	if err != nil {
		return nil, err
	}
	for _, f := range cofacets {
		out = append(out, prepend(saddle, traceAscending(g, gr, f)))
	}

	return out, nil
}

func prepend(c int32, path []int32) []int32 {
	out := make([]int32, 0, len(path)+1)
	out = append(out, c)
	out = append(out, path...)
	return out
}

// BuildAll traces separatrices for every saddle among crit.
func BuildAll(g *cell.Grid, gr *gradient.Result, crit []int32) (Arcs, error) {
	out := make(Arcs, len(crit))
	for _, c := range crit {
		if g.Dim(c) != 1 {
			continue
		}
		paths, err := Trace(g, gr, c)
		if err != nil {
			return nil, err
		}
		out[c] = paths
	}
	return out, nil
}

// Find returns the separatrix from saddle to extremum. When more than
// one of the saddle's four separatrices ends at extremum, the first
// one traced (facet/cofacet enumeration order) is returned.
func Find(g *cell.Grid, gr *gradient.Result, saddle, extremum int32) ([]int32, error) {
	paths, err := Trace(g, gr, saddle)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if p[len(p)-1] == extremum {
			return p, nil
		}
	}
	return nil, ErrArcNotFound
}
