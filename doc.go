// Package gomorse is a discrete Morse–Smale complex engine for scalar
// fields sampled on a rectangular grid with periodic (toroidal)
// boundary conditions.
//
// Given a real-valued field f: Z_n × Z_m → R it computes, in order:
//
//   - a discrete gradient vector field V in the sense of Forman
//     (package gradient),
//   - the critical cells with their Morse indices
//     (package cell, package gradient),
//   - the Morse–Smale graph connecting critical cells (package msgraph),
//   - the separatrix arcs / V-paths between them (package arcs),
//   - the persistence pairs (package persistence),
//   - a topological simplification that cancels pairs by persistence
//     (package simplify).
//
// Everything is assembled by package torusmesh, whose Engine type and
// BuildAll constructor are the intended entry point for most callers:
//
//	eng, err := torusmesh.BuildAll(values, torusmesh.DefaultBuildOptions())
//	xs, ys := eng.CriticalPoints(2) // maxima
//
// Under the hood:
//
//	cell/        — toroidal cubical cell indexing (vertex/edge/face arithmetic)
//	extval/      — extended-value lexicographic ordering used as the filtration
//	gradient/    — ProcessLowerStars discrete gradient construction (parallel)
//	msgraph/     — Morse–Smale graph built on an adapted core.Graph multigraph
//	arcs/        — V-path / separatrix tracing and mustache removal
//	persistence/ — union-find + bitset persistence pair computation
//	simplify/    — gradient-reversal and arc-splicing pair cancellation
//	torusmesh/   — Engine façade: BuildAll, accessors, simplification entry points
//	core/        — generic in-memory multigraph substrate (adapted, trimmed)
//	bfs/         — breadth-first traversal over core.Graph (connectivity diagnostics)
//
// Out of scope: field generators, plotting/visualization, and a generic
// simplicial-complex library — this engine is specialised to a 2-D
// toroidal cubical grid.
package gomorse
