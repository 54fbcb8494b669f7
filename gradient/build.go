package gradient

import (
	"sort"
	"sync"

	"github.com/iknyazeva/gomorse/cell"
)

// Build computes a discrete gradient vector field for values sampled
// on g via ProcessLowerStars, partitioning the N vertices into
// opts.Threads contiguous blocks processed concurrently.
func Build(g *cell.Grid, values [][]float64, opts BuildOptions) (*Result, error) {
	if len(values) != g.H {
		return nil, ErrBadValues
	}
	for _, row := range values {
		if len(row) != g.W {
			return nil, ErrBadValues
		}
	}

	threads := opts.Threads
	if threads <= 0 {
		return nil, ErrBadThreads
	}

	size := g.Size()
	V := make([]int32, size)
	for i := range V {
		V[i] = Unset
	}

	n := g.N
	if threads > n {
		threads = n
	}
	blockSize := (n + threads - 1) / threads

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		crit []int32
		done int
	)

	for start := 0; start < n; start += blockSize {
		end := start + blockSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			local := make([]int32, 0, end-start)
			for v := int32(start); v < int32(end); v++ {
				processVertex(g, values, v, V, &local)
			}

			mu.Lock()
			crit = append(crit, local...)
			done += end - start
			if opts.OnProgress != nil {
				opts.OnProgress("gradient", done, n)
			}
			mu.Unlock()
		}(start, end)
	}
	wg.Wait()

	critMask := make([]bool, size)
	for _, c := range crit {
		critMask[c] = true
	}

	sort.Slice(crit, func(i, j int) bool {
		return lessCell(g, values, crit[i], crit[j])
	})

	return &Result{V: V, Crit: critMask, CritCells: crit}, nil
}
