// Package solver is the boundary to the numerical eigen-solver: a small
// Adapter that hands operator handles to a pluggable Backend and exposes the
// converged eigenpairs of the most recent run.
//
// 🚀 What does it solve?
//
//	Standard problems A·x = λ·x and generalized problems A·x = λ·B·x, for
//	Hermitian (symmetric) and non-Hermitian operators, stored or matrix-free.
//	The caller describes the problem with Problem, tunes the run with
//	Settings, and reads (λ_real, λ_imag, eigenvector) results as Pair values.
//
// ✨ Backends:
//   - Dense  — full-spectrum dense solves on stored operators: symmetric
//     problems through gonum's EigenSym, general ones through Eigen, and
//     generalized ones through the LAPACK Dggev routine. Every spectrum
//     target is available; iteration count is 1.
//   - Krylov — Arnoldi iteration with modified Gram-Schmidt, explicit
//     restarts, and locking of converged Ritz pairs. Works with shell
//     operators; generalized problems apply B⁻¹A through an inner
//     preconditioned conjugate-gradient solve, which is where the
//     preconditioning operator earns its keep. Large-end targets only.
//   - Jacobi — cyclic Jacobi rotations for symmetric stored standard
//     problems; simple, dependable, dense.
//   - Auto   — picks Dense for fully stored problems, Krylov when any
//     operator is matrix-free.
//
// ⚙️ Usage:
//
//	ad, _ := solver.NewAdapter(solver.Auto{}, solver.DefaultSettings())
//	conv, its, err := ad.Solve(solver.Problem{Kind: solver.Hermitian, A: a}, 3)
//	pair, _ := ad.Eigenpair(0) // valid for i < conv
//
// Convergence contract: fewer converged pairs than requested is NOT an
// error — the caller inspects the converged count and decides. Errors are
// reserved for misconfiguration and genuine numerical failure.
//
// Errors:
//
//	ErrNilBackend       - adapter constructed without a backend.
//	ErrNilOperator      - problem without operator A.
//	ErrMissingB         - generalized problem without operator B.
//	ErrUnexpectedB      - standard problem carrying operator B.
//	ErrDimensionMismatch- operator or start-vector dimensions disagree.
//	ErrBadSettings      - negative tolerance, iteration, or pair counts.
//	ErrStoredRequired   - dense-only backend given a shell operator.
//	ErrNotSymmetric     - Hermitian solve on a non-symmetric operator.
//	ErrKindUnsupported  - problem kind outside a backend's range.
//	ErrWhichUnsupported - spectrum target outside a backend's range.
//	ErrBackendFailure   - numerical failure inside a backend.
//	ErrInnerSolve       - inner linear solve did not converge.
//	ErrNoSolve          - eigenpair query before any successful solve.
//	ErrPairOutOfRange   - eigenpair index at or beyond the converged count.
package solver
