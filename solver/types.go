// This file declares the problem taxonomy (Kind, Which), the Problem and
// Settings inputs, the Pair/Stats outputs, and the Backend contract.
package solver

import (
	"fmt"

	"github.com/katalvlaran/lvlspec/operator"
)

// Kind classifies the eigenproblem: standard (A·x = λ·x) or generalized
// (A·x = λ·B·x), each in a Hermitian (real symmetric) and a non-Hermitian
// flavor. Generalized Hermitian problems additionally assume B positive
// definite, the usual mass-matrix situation.
type Kind uint8

const (
	// Hermitian is the standard problem with symmetric A.
	Hermitian Kind = iota

	// NonHermitian is the standard problem with general A.
	NonHermitian

	// GeneralizedHermitian is the generalized problem with symmetric A and
	// symmetric positive-definite B.
	GeneralizedHermitian

	// GeneralizedNonHermitian is the generalized problem with general A, B.
	GeneralizedNonHermitian
)

// Generalized reports whether the kind involves a second operator B.
func (k Kind) Generalized() bool {
	return k == GeneralizedHermitian || k == GeneralizedNonHermitian
}

// Hermitian reports whether the kind assumes symmetric operators.
func (k Kind) Hermitian() bool {
	return k == Hermitian || k == GeneralizedHermitian
}

// String returns the conventional short tag for the kind.
func (k Kind) String() string {
	switch k {
	case Hermitian:
		return "HEP"
	case NonHermitian:
		return "NHEP"
	case GeneralizedHermitian:
		return "GHEP"
	case GeneralizedNonHermitian:
		return "GNHEP"
	default:
		return "unknown"
	}
}

// Which selects the end of the spectrum the solve targets.
type Which uint8

const (
	// LargestMagnitude targets eigenvalues of greatest |λ|.
	LargestMagnitude Which = iota

	// SmallestMagnitude targets eigenvalues of least |λ|.
	SmallestMagnitude

	// LargestReal targets eigenvalues of greatest real part.
	LargestReal

	// SmallestReal targets eigenvalues of least real part.
	SmallestReal
)

// String returns the conventional short tag for the target.
func (w Which) String() string {
	switch w {
	case LargestMagnitude:
		return "LM"
	case SmallestMagnitude:
		return "SM"
	case LargestReal:
		return "LR"
	case SmallestReal:
		return "SR"
	default:
		return "unknown"
	}
}

// Problem bundles the operator handles for one solve. A is mandatory; B is
// present exactly for generalized kinds; Precond optionally accelerates the
// backend's inner linear solves (its action approximates the inverse of B)
// and is never part of the problem definition itself. InitialSpace, when
// non-nil, seeds iterative backends with a starting guess.
type Problem struct {
	Kind         Kind
	A            operator.Applier
	B            operator.Applier
	Precond      operator.Applier
	InitialSpace []float64
}

// validate checks the operator handles against the kind.
// Returns ErrNilOperator, ErrMissingB, ErrUnexpectedB, or
// ErrDimensionMismatch.
func (p Problem) validate() error {
	if p.A == nil {
		return ErrNilOperator
	}
	n := p.A.Dim()
	if p.Kind.Generalized() {
		if p.B == nil {
			return ErrMissingB
		}
		if p.B.Dim() != n {
			return fmt.Errorf("validate: A dim %d, B dim %d: %w", n, p.B.Dim(), ErrDimensionMismatch)
		}
	} else if p.B != nil {
		return ErrUnexpectedB
	}
	if p.Precond != nil && p.Precond.Dim() != n {
		return fmt.Errorf("validate: A dim %d, precond dim %d: %w", n, p.Precond.Dim(), ErrDimensionMismatch)
	}
	if p.InitialSpace != nil && len(p.InitialSpace) != n {
		return fmt.Errorf("validate: A dim %d, initial space %d: %w", n, len(p.InitialSpace), ErrDimensionMismatch)
	}

	return nil
}

// Default working parameters, applied where Settings fields are zero.
const (
	// DefaultTolerance is the residual tolerance of iterative backends.
	DefaultTolerance = 1e-10

	// DefaultMaxIter caps outer iterations (restarts, sweeps) per solve.
	DefaultMaxIter = 300

	// DefaultSubspaceFloor is the minimum auto-chosen working subspace.
	DefaultSubspaceFloor = 20
)

// Settings tunes a solve. Zero values mean "use the default": one requested
// pair, DefaultTolerance, DefaultMaxIter, an automatic subspace dimension,
// the largest-magnitude target, and a fixed seed for reproducible start
// vectors.
//
// Fields:
//   - Pairs     — number of eigenpairs requested (nev).
//   - Subspace  — working subspace dimension for iterative backends (ncv);
//     0 picks min(n, max(2·nev+1, DefaultSubspaceFloor)).
//   - Tolerance — convergence tolerance on the residual estimate.
//   - MaxIter   — outer iteration cap (restarts for Krylov, rotation sweeps
//     for Jacobi).
//   - Which     — spectrum end to target.
//   - Seed      — seed of the random start vector when no initial space is
//     supplied.
type Settings struct {
	Pairs     int
	Subspace  int
	Tolerance float64
	MaxIter   int
	Which     Which
	Seed      uint64
}

// DefaultSettings returns the package defaults, suitable for direct use.
func DefaultSettings() Settings {
	return Settings{
		Pairs:     1,
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
		Which:     LargestMagnitude,
	}
}

// normalize validates s and fills zero fields with defaults.
// Returns ErrBadSettings on negative fields.
func (s Settings) normalize() (Settings, error) {
	if s.Pairs < 0 || s.Subspace < 0 || s.Tolerance < 0 || s.MaxIter < 0 {
		return s, fmt.Errorf("normalize: %+v: %w", s, ErrBadSettings)
	}
	if s.Pairs == 0 {
		s.Pairs = 1
	}
	if s.Tolerance == 0 {
		s.Tolerance = DefaultTolerance
	}
	if s.MaxIter == 0 {
		s.MaxIter = DefaultMaxIter
	}

	return s, nil
}

// Pair is one converged eigenpair: the eigenvalue split into real and
// imaginary parts, and the real part of the eigenvector scaled to unit
// 2-norm. The vector's length is the problem dimension.
type Pair struct {
	Re     float64
	Im     float64
	Vector []float64
}

// Stats summarizes a solve: how many of the requested pairs converged and
// how many operator applications (iterations) the backend spent.
type Stats struct {
	Converged  int
	Iterations int
}

// Backend is one eigen-solver algorithm. Solve computes up to
// Settings.Pairs eigenpairs of the problem, ordered by Settings.Which, and
// reports its statistics. A short name identifies the backend in logs.
//
// Fewer pairs than requested is not an error; errors mean misconfiguration
// or numerical failure.
type Backend interface {
	Name() string
	Solve(p Problem, s Settings) ([]Pair, Stats, error)
}
