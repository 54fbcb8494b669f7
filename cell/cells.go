package cell

// Verts returns the vertex set of cell c, in a fixed geometric order:
// a vertex returns itself; an edge returns its two endpoints; a face
// returns its four corners starting at the top-left and proceeding
// clockwise (top-left, top-right, bottom-right, bottom-left).
func (g *Grid) Verts(c int32) []int32 {
	n := int32(g.N)
	switch {
	case c < n:
		return []int32{c}
	case c < 2*n:
		v := c - n
		return []int32{v, g.VRight(v)}
	case c < 3*n:
		v := c - 2*n
		return []int32{v, g.VBottom(v)}
	default:
		v := c - 3*n
		right := g.VRight(v)
		return []int32{v, right, g.VBottom(right), g.VBottom(v)}
	}
}

// Facets returns the bounding hyperfaces of c: for a face, its four
// edges in (top, left, bottom, right) order; for an edge, its two
// endpoint vertices (identical to Verts); a vertex has no facets.
func (g *Grid) Facets(c int32) []int32 {
	if g.Dim(c) == 2 {
		n := int32(g.N)
		v := c - 3*n
		return []int32{
			g.ERight(v),
			g.EBottom(v),
			g.ERight(g.VBottom(v)),
			g.EBottom(g.VRight(v)),
		}
	}

	return g.Verts(c)
}

// Cofacets returns the two faces incident to edge c. It is only
// defined for 1-cells; calling it on a vertex or face returns
// ErrNotEdge.
func (g *Grid) Cofacets(c int32) ([2]int32, error) {
	if g.Dim(c) != 1 {
		return [2]int32{}, ErrNotEdge
	}
	n := int32(g.N)
	if c < 2*n {
		v := c - n
		return [2]int32{g.FRightTop(v), g.FRightBottom(v)}, nil
	}
	v := c - 2*n
	return [2]int32{g.FLeftBottom(v), g.FRightBottom(v)}, nil
}

// Star returns the eight cells in the combinatorial star of vertex v:
// its four incident edges and four incident faces. Order matches the
// teacher's lower_star enumeration: right, top, left, bottom edges,
// then right-top, left-top, left-bottom, right-bottom faces.
func (g *Grid) Star(v int32) [8]int32 {
	return [8]int32{
		g.ERight(v), g.ETop(v), g.ELeft(v), g.EBottom(v),
		g.FRightTop(v), g.FLeftTop(v), g.FLeftBottom(v), g.FRightBottom(v),
	}
}

// CoordX returns the column of vertex v (0 ≤ x < W).
func (g *Grid) CoordX(v int32) int {
	return int(v) % g.W
}

// CoordY returns the row of vertex v (0 ≤ y < H).
func (g *Grid) CoordY(v int32) int {
	return int(v) / g.W
}

// Coords returns the geometric centre of cell c: a vertex sits at
// integer (x,y); an edge's centre is offset by 0.5 along its axis;
// a face's centre is offset by 0.5 in both axes.
func (g *Grid) Coords(c int32) (x, y float64) {
	n := int32(g.N)
	switch {
	case c < n:
		return float64(g.CoordX(c)), float64(g.CoordY(c))
	case c < 2*n:
		v := c - n
		return float64(g.CoordX(v)) + 0.5, float64(g.CoordY(v))
	case c < 3*n:
		v := c - 2*n
		return float64(g.CoordX(v)), float64(g.CoordY(v)) + 0.5
	default:
		v := c - 3*n
		return float64(g.CoordX(v)) + 0.5, float64(g.CoordY(v)) + 0.5
	}
}
