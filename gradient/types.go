package gradient

import "errors"

// Unset marks a cell in Result.V as not yet paired (critical or
// untouched). No real cell id is ever negative, so -1 is safe.
const Unset int32 = -1

// Sentinel errors returned by Build.
var (
	// ErrBadValues indicates the values matrix does not match the grid shape.
	ErrBadValues = errors.New("gradient: values shape does not match grid")

	// ErrBadThreads indicates a non-positive thread count.
	ErrBadThreads = errors.New("gradient: threads must be > 0")
)

// BuildOptions configures the ProcessLowerStars construction.
type BuildOptions struct {
	// Threads is the number of goroutines to partition vertices
	// across. Must be > 0; Build rejects Threads <= 0 with
	// ErrBadThreads.
	Threads int

	// OnProgress, if non-nil, is called after each vertex block
	// completes, reporting cumulative vertices processed.
	OnProgress func(stage string, done, total int)
}

// DefaultBuildOptions returns BuildOptions with one worker and no
// progress hook.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Threads: 1}
}

// Option mutates a BuildOptions in place.
type Option func(*BuildOptions)

// WithThreads sets the number of parallel workers.
func WithThreads(n int) Option {
	return func(o *BuildOptions) { o.Threads = n }
}

// WithProgress installs a progress callback.
func WithProgress(fn func(stage string, done, total int)) Option {
	return func(o *BuildOptions) { o.OnProgress = fn }
}

// Result is the discrete gradient vector field over a grid's cells.
type Result struct {
	// V maps a cell id to its paired cell id, or Unset if the cell
	// is critical. Pairing is symmetric: V[V[c]] == c whenever c is
	// paired.
	V []int32

	// Crit marks which cells are critical (unmatched in V).
	Crit []bool

	// CritCells lists the critical cells sorted ascending by extended
	// value, ties broken by id.
	CritCells []int32
}
