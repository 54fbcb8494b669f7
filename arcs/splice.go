package arcs

// Splice builds the replacement separatrix for a neighbour saddle
// whose arc used to terminate at the cancelled extremum e: the whole
// s→e arc reversed (from e back to s, both endpoints included)
// followed by the surviving s→other arc without its first cell s, so
// the result runs from e, through s, out to other. The leading e is
// kept; callers joining it onto an arc that already ends at e drop it.
func Splice(sToE, sToOther []int32) []int32 {
	out := make([]int32, 0, len(sToE)+len(sToOther)-1)
	for i := len(sToE) - 1; i >= 0; i-- {
		out = append(out, sToE[i])
	}
	out = append(out, sToOther[1:]...)
	return out
}

// SimplifyArc removes "mustaches": maximal palindromic stubs where the
// path doubles back on itself (arc[i-1] == arc[i+1]) before
// continuing toward its true endpoint. It repeatedly collapses the
// widest such stub around each candidate center until none remain.
func SimplifyArc(arc []int32) []int32 {
	out := append([]int32(nil), arc...)

	it := 1
	for it < len(out)-1 {
		if out[it-1] != out[it+1] {
			it++
			continue
		}

		lo, hi := it-1, it+1
		for lo > 0 && hi < len(out)-1 && out[lo-1] == out[hi+1] {
			lo--
			hi++
		}

		out = append(out[:lo+1], out[hi+1:]...)
		if it = lo; it < 1 {
			it = 1
		}
	}

	return out
}
