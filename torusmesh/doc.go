// Package torusmesh assembles the discrete Morse–Smale complex engine:
// a toroidal scalar field's discrete gradient, Morse–Smale graph,
// separatrices and persistence pairs, wired together behind a single
// Engine façade with accessors and simplification entry points.
package torusmesh
