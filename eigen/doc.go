// Package eigen implements the controller of an algebraic eigenvalue
// problem: the lifecycle around operator storage and an eigen-solver
// backend, plus the queries that hand results to the surrounding system.
//
// 🚀 What is an eigen system?
//
//	A System owns everything one eigenvalue problem needs: the operator
//	slots (A, optionally B for generalized problems A·x = λ·B·x, a lazy
//	preconditioner, and named auxiliary matrices), a solver adapter with a
//	pluggable backend, and the shared DOF-indexed solution vector. Sizing
//	comes from a dof.Space; when the space changes, Reinit resizes the
//	whole system in one call.
//
// ✨ Key features:
//   - Explicit lifecycle: uninitialized → ready (InitData) → assembled
//     (Assemble) → solved (Solve), with Clear and Reinit returning to the
//     start and to ready respectively
//   - Standard and generalized problems in Hermitian and non-Hermitian
//     flavors (solver.Kind); NumMatrices reports 2 exactly for the
//     generalized ones
//   - Stored or matrix-free ("shell") operators per configuration flag,
//     switchable between reinits; shell actions register via SetShellApply
//   - A preconditioner slot allocated only if ever requested (Precond)
//   - Named auxiliary matrices (AddMatrix/HaveMatrix/Matrix) that survive
//     Reinit and reallocate at the new size
//   - Non-convergence is never an error: NumConverged reports what the
//     backend achieved; backend failures propagate wrapped and are never
//     retried
//   - Eigenpair copies the eigenvector into Solution() as a side effect;
//     Eigenvalue returns the identical value without touching it
//   - Structured slog logging with a per-solve run ID
//
// ⚙️ Usage:
//
//	sys, _ := eigen.New("modes", space,
//	    eigen.WithKind(solver.GeneralizedHermitian),
//	    eigen.WithSettings(solver.Settings{Pairs: 4, Tolerance: 1e-9}),
//	    eigen.WithAssembler(eigen.AssembleFunc(fill)),
//	)
//	_ = sys.InitData()
//	_ = sys.Assemble()
//	_ = sys.Solve()
//	re, im, _ := sys.Eigenpair(0) // eigenvector now in sys.Solution()
//
// Errors:
//
//	ErrEmptyName          - system constructed without a name.
//	ErrNilSpace           - system constructed without a DOF space.
//	ErrAlreadyInitialized - InitData on an initialized system (use Reinit).
//	ErrNotInitialized     - lifecycle operation before InitData.
//	ErrNotAssembled       - Solve before Assemble.
//	ErrNotSolved          - result query before a successful Solve.
//	ErrEmptySpace         - DOF space reports no unknowns at init.
//	ErrNoAssembler        - stored operators with no assembler to fill them.
//
// Registry and solver errors wrap the operator and solver package
// sentinels (operator.ErrDuplicateMatrix, operator.ErrMatrixNotFound,
// solver.ErrPairOutOfRange, ...), so errors.Is works across the boundary.
//
// See also: package operator (storage), package solver (backends), and
// package dof (the sizing seam).
package eigen
