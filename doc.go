// Package lvlspec is your in-memory toolkit for setting up, orchestrating,
// and querying algebraic eigenvalue problems — from operator assembly to
// converged eigenpairs, standard or generalized, stored or matrix-free.
//
// 🚀 What is lvlspec?
//
//	A focused numerical-core library that brings together:
//		• Operator storage: sparse matrices, shell operators, named slots
//		• Problem taxonomy: A·x = λ·x and A·x = λ·B·x, Hermitian or not
//		• Solver backends: dense (LAPACK via gonum), Krylov (Arnoldi), Jacobi
//		• A solver adapter: one solve boundary, converged-pair queries
//		• The eigen system controller: clear/init/assemble/solve lifecycle
//		• Mesh attributes: a legacy flat-file reader with per-call outcomes
//
// ✨ Why choose lvlspec?
//
//   - Predictable lifecycle – explicit states, explicit errors, no surprises
//   - Non-convergence is data – shortfall shows in counts, never as an error
//   - Swap representations – stored and shell operators behind one slot API
//   - Structured logging – slog with per-solve ids, silent by default
//
// Under the hood, everything is organized under six subpackages:
//
//	operator/ — sparse matrices, shell operators & the slot storage table
//	solver/   — backends (dense, krylov, jacobi), settings & the adapter
//	eigen/    — the system controller: lifecycle, queries, aux registry
//	dof/      — the degree-of-freedom seam sizing every vector and matrix
//	meshfile/ — flat mesh-attribute files: model, query outcomes, codec
//	examples/ — runnable end-to-end demos
//
// Quick sketch:
//
//	space → InitData → Assemble → Solve → Eigenpair(i)
//	                      ↑                    │
//	                      └──── Reinit ←───────┘ (mesh changed)
//
// Dive into DESIGN.md for the architecture notes and into each package's
// doc.go for contracts, error lists, and complexity bounds.
//
//	go get github.com/katalvlaran/lvlspec
package lvlspec
