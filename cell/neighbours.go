package cell

// Vertex-to-vertex toroidal neighbours. idx must be a vertex id
// (in [0, N)); all arithmetic wraps modulo W within the row, or
// modulo N with stride W across rows.

// VLeft returns the vertex immediately to the left of idx, wrapping
// around the row.
func (g *Grid) VLeft(idx int32) int32 {
	w := int32(g.W)
	row := idx - idx%w
	return row + (idx+w-1)%w
}

// VRight returns the vertex immediately to the right of idx, wrapping
// around the row.
func (g *Grid) VRight(idx int32) int32 {
	w := int32(g.W)
	row := idx - idx%w
	return row + (idx+1)%w
}

// VTop returns the vertex immediately above idx, wrapping to the
// bottom row.
func (g *Grid) VTop(idx int32) int32 {
	n := int32(g.N)
	w := int32(g.W)
	return (idx - w + n) % n
}

// VBottom returns the vertex immediately below idx, wrapping to the
// top row.
func (g *Grid) VBottom(idx int32) int32 {
	w := int32(g.W)
	n := int32(g.N)
	return (idx + w) % n
}

// ELeft returns the horizontal edge incident to idx on its left side.
func (g *Grid) ELeft(idx int32) int32 {
	return int32(g.N) + g.VLeft(idx)
}

// ERight returns the horizontal edge incident to idx on its right side.
func (g *Grid) ERight(idx int32) int32 {
	return int32(g.N) + idx
}

// ETop returns the vertical edge incident to idx above it.
func (g *Grid) ETop(idx int32) int32 {
	return 2*int32(g.N) + g.VTop(idx)
}

// EBottom returns the vertical edge incident to idx below it.
func (g *Grid) EBottom(idx int32) int32 {
	return 2*int32(g.N) + idx
}

// FLeftTop returns the face above-and-left of vertex idx.
func (g *Grid) FLeftTop(idx int32) int32 {
	return 3*int32(g.N) + g.VTop(g.VLeft(idx))
}

// FLeftBottom returns the face below-and-left of vertex idx.
func (g *Grid) FLeftBottom(idx int32) int32 {
	return 3*int32(g.N) + g.VLeft(idx)
}

// FRightTop returns the face above-and-right of vertex idx (i.e. the
// face whose bottom-left corner is idx).
func (g *Grid) FRightTop(idx int32) int32 {
	return 3*int32(g.N) + g.VTop(idx)
}

// FRightBottom returns the face below-and-right of vertex idx (the
// face with top-left corner idx).
func (g *Grid) FRightBottom(idx int32) int32 {
	return 3*int32(g.N) + idx
}
