package solver

import "errors"

// Sentinel errors for problem setup, backend execution, and result access.
var (
	// ErrNilBackend indicates an adapter constructed without a backend.
	ErrNilBackend = errors.New("solver: backend is nil")

	// ErrNilOperator indicates a problem without operator A.
	ErrNilOperator = errors.New("solver: problem operator A is nil")

	// ErrMissingB indicates a generalized problem without operator B.
	ErrMissingB = errors.New("solver: generalized problem without operator B")

	// ErrUnexpectedB indicates a standard problem carrying operator B.
	ErrUnexpectedB = errors.New("solver: standard problem carries operator B")

	// ErrDimensionMismatch indicates operators or start vectors of unequal dimension.
	ErrDimensionMismatch = errors.New("solver: operator dimensions disagree")

	// ErrBadSettings indicates negative tolerance, iteration, or pair counts.
	ErrBadSettings = errors.New("solver: invalid settings")

	// ErrStoredRequired indicates a dense-only backend applied to a shell operator.
	ErrStoredRequired = errors.New("solver: backend requires stored operators")

	// ErrNotSymmetric indicates a Hermitian solve on a non-symmetric operator.
	ErrNotSymmetric = errors.New("solver: operator is not symmetric")

	// ErrKindUnsupported indicates a problem kind outside the backend's range.
	ErrKindUnsupported = errors.New("solver: problem kind unsupported by backend")

	// ErrWhichUnsupported indicates a spectrum target outside the backend's range.
	ErrWhichUnsupported = errors.New("solver: spectrum target unsupported by backend")

	// ErrBackendFailure indicates a numerical failure inside a backend.
	ErrBackendFailure = errors.New("solver: backend numerical failure")

	// ErrInnerSolve indicates an inner linear solve that did not converge.
	ErrInnerSolve = errors.New("solver: inner linear solve did not converge")

	// ErrNoSolve indicates an eigenpair query before any successful solve.
	ErrNoSolve = errors.New("solver: no solve has been run")

	// ErrPairOutOfRange indicates an eigenpair index at or beyond the converged count.
	ErrPairOutOfRange = errors.New("solver: eigenpair index out of range")
)
