package msgraph

import (
	"strconv"

	"github.com/iknyazeva/gomorse/cell"
	"github.com/iknyazeva/gomorse/core"
	"github.com/iknyazeva/gomorse/gradient"
)

// idOf renders a cell id as the string vertex key used by core.Graph.
func idOf(c int32) string {
	return strconv.FormatInt(int64(c), 10)
}

// cellOf parses a core.Graph vertex key back into a cell id.
func cellOf(id string) int32 {
	n, _ := strconv.ParseInt(id, 10, 32)
	return int32(n)
}

// descendToMin follows the descending V-path starting at vertex start
// until it reaches a critical vertex (a minimum).
func descendToMin(g *cell.Grid, gr *gradient.Result, start int32) int32 {
	cur := start
	for !gr.Crit[cur] {
		edge := gr.V[cur]
		verts := g.Verts(edge)
		if verts[0] == cur {
			cur = verts[1]
		} else {
			cur = verts[0]
		}
	}
	return cur
}

// ascendToMax follows the ascending V-path starting at face start
// until it reaches a critical face (a maximum).
func ascendToMax(g *cell.Grid, gr *gradient.Result, start int32) int32 {
	cur := start
	for !gr.Crit[cur] {
		edge := gr.V[cur]
		cofacets, _ := g.Cofacets(edge)
		if cofacets[0] == cur {
			cur = cofacets[1]
		} else {
			cur = cofacets[0]
		}
	}
	return cur
}

// Build constructs the Morse–Smale graph for the critical cells of gr:
// one node per critical cell, and for each saddle, one edge to the
// minimum reached by each of its two descending V-paths and one edge
// to the maximum reached by each of its two ascending V-paths.
func Build(g *cell.Grid, gr *gradient.Result) (*Graph, error) {
	cg := core.NewGraph(core.WithMultiEdges())

	for _, c := range gr.CritCells {
		id := idOf(c)
		if err := cg.AddVertex(id); err != nil {
			return nil, err
		}
		x, y := g.Coords(c)
		v := cg.VerticesMap()[id]
		v.Metadata[metaX] = x
		v.Metadata[metaY] = y
		v.Metadata[metaDim] = g.Dim(c)
	}

	for _, s := range gr.CritCells {
		if g.Dim(s) != 1 {
			continue
		}
		sid := idOf(s)

		for _, vtx := range g.Facets(s) {
			mn := descendToMin(g, gr, vtx)
			if _, err := cg.AddEdge(sid, idOf(mn), 0); err != nil {
				return nil, err
			}
		}

		cofacets, err := g.Cofacets(s)
		if err != nil {
			return nil, err
		}
		for _, f := range cofacets {
			mx := ascendToMax(g, gr, f)
			if _, err := cg.AddEdge(sid, idOf(mx), 0); err != nil {
				return nil, err
			}
		}
	}

	return &Graph{g: cg}, nil
}

// neighborsOfDim returns the ids of cells adjacent to s whose Morse
// index equals dim, one per incident edge (parallel edges to the same
// neighbour appear once per edge, matching arc multiplicity).
func (ms *Graph) neighborsOfDim(s int32, dim int) ([]int32, error) {
	sid := idOf(s)
	if !ms.g.HasVertex(sid) {
		return nil, ErrCellNotFound
	}

	edges, err := ms.g.Neighbors(sid)
	if err != nil {
		return nil, err
	}

	verts := ms.g.VerticesMap()
	out := make([]int32, 0, 2)
	for _, e := range edges {
		other := e.To
		if other == sid {
			other = e.From
		}
		v, ok := verts[other]
		if !ok {
			continue
		}
		if d, _ := v.Metadata[metaDim].(int); d == dim {
			out = append(out, cellOf(other))
		}
	}
	return out, nil
}

// MinNeighbors returns the two minima reached by saddle s's descending
// V-paths. It is an error for s not to have exactly two.
func (ms *Graph) MinNeighbors(s int32) ([2]int32, error) {
	ids, err := ms.neighborsOfDim(s, 0)
	if err != nil {
		return [2]int32{}, err
	}
	if len(ids) != 2 {
		return [2]int32{}, ErrBadSaddleDegree
	}
	return [2]int32{ids[0], ids[1]}, nil
}

// MaxNeighbors returns the two maxima reached by saddle s's ascending
// V-paths. It is an error for s not to have exactly two.
func (ms *Graph) MaxNeighbors(s int32) ([2]int32, error) {
	ids, err := ms.neighborsOfDim(s, 2)
	if err != nil {
		return [2]int32{}, err
	}
	if len(ids) != 2 {
		return [2]int32{}, ErrBadSaddleDegree
	}
	return [2]int32{ids[0], ids[1]}, nil
}

// HasCell reports whether c has a node in the graph.
func (ms *Graph) HasCell(c int32) bool {
	return ms.g.HasVertex(idOf(c))
}

// RemoveCell deletes c's node and all its incident edges.
func (ms *Graph) RemoveCell(c int32) error {
	return ms.g.RemoveVertex(idOf(c))
}

// AddSeparatrix adds an edge between two critical cells, used by the
// simplifier to reroute a separatrix after a pair cancellation.
func (ms *Graph) AddSeparatrix(a, b int32) error {
	_, err := ms.g.AddEdge(idOf(a), idOf(b), 0)
	return err
}

// NeighborsOfDim returns the ids of cells adjacent to c whose Morse
// index equals dim, one entry per incident edge.
func (ms *Graph) NeighborsOfDim(c int32, dim int) ([]int32, error) {
	return ms.neighborsOfDim(c, dim)
}

// Dim returns the Morse index recorded for cell c's node.
func (ms *Graph) Dim(c int32) (int, error) {
	v, ok := ms.g.VerticesMap()[idOf(c)]
	if !ok {
		return 0, ErrCellNotFound
	}
	d, _ := v.Metadata[metaDim].(int)
	return d, nil
}
