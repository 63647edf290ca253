// This file implements Krylov, the iterative backend: Arnoldi iteration
// with modified Gram-Schmidt, explicit restarts, and locking of converged
// Ritz pairs. Generalized problems apply B⁻¹A through an inner
// preconditioned conjugate-gradient solve.
package solver

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlspec/operator"
)

// Krylov approximates the large end of the spectrum with restarted Arnoldi
// iteration. It needs only the MulVec action, so shell operators work
// unchanged. Converged Ritz pairs are locked and deflated from later
// restarts; the iteration stops when the requested count is locked or the
// restart budget runs out — the latter is reported through Stats, not as an
// error.
//
// Locking deflates by orthogonalization, which is exact for symmetric
// operators and a good approximation for near-normal ones; strongly
// non-normal problems are better served by the Dense backend.
//
// Supported targets: LargestMagnitude and LargestReal. The smallest-end
// targets need a spectral transformation with a factorization, which this
// backend does not do (ErrWhichUnsupported); use Dense for those.
//
// Stats.Iterations counts applications of the problem operator.
type Krylov struct{}

// Name identifies the backend in logs.
func (Krylov) Name() string { return "krylov" }

// Arnoldi working constants.
const (
	// breakdownEps detects an invariant subspace: a next-basis-vector norm
	// at or below breakdownEps times the pre-orthogonalization norm ends
	// the factorization early with exact Ritz pairs.
	breakdownEps = 1e-12

	// startRetries bounds attempts to draw a start vector independent of
	// the locked subspace.
	startRetries = 5
)

// Solve runs restarted Arnoldi until Settings.Pairs Ritz pairs are locked
// or Settings.MaxIter restarts are spent.
// Complexity per restart: O(ncv · n) memory, O(ncv² · n) time plus ncv
// operator applications.
func (Krylov) Solve(p Problem, s Settings) ([]Pair, Stats, error) {
	// Stage 1: validate problem, settings, and target.
	var err error
	if err = p.validate(); err != nil {
		return nil, Stats{}, fmt.Errorf("Krylov.Solve: %w", err)
	}
	if s, err = s.normalize(); err != nil {
		return nil, Stats{}, fmt.Errorf("Krylov.Solve: %w", err)
	}
	if s.Which == SmallestMagnitude || s.Which == SmallestReal {
		return nil, Stats{}, fmt.Errorf("Krylov.Solve: %s: %w", s.Which, ErrWhichUnsupported)
	}

	// Stage 2: bind the operator action; generalized problems go through
	// the inner solve on B, preconditioned when a preconditioner is given.
	var (
		n       = p.A.Dim()
		matvecs int
		apply   func(dst, src []float64) error
	)
	if p.Kind.Generalized() {
		var (
			tmp      = make([]float64, n)
			innerTol = math.Max(s.Tolerance*1e-2, 1e-14)
			innerCap = innerIterations(n)
		)
		apply = func(dst, src []float64) error {
			if err := p.A.MulVec(tmp, src); err != nil {
				return err
			}
			matvecs++

			return cgSolve(p.B, p.Precond, dst, tmp, innerTol, innerCap)
		}
	} else {
		apply = func(dst, src []float64) error {
			matvecs++

			return p.A.MulVec(dst, src)
		}
	}

	// Stage 3: working sizes.
	nev := s.Pairs
	if nev > n {
		nev = n
	}
	ncv := s.Subspace
	if ncv == 0 {
		ncv = 2*nev + 1
		if ncv < DefaultSubspaceFloor {
			ncv = DefaultSubspaceFloor
		}
	}
	if ncv > n {
		ncv = n
	}

	// Stage 4: workspaces.
	var (
		rng    = rand.New(rand.NewSource(s.Seed))
		start  = make([]float64, n)
		work   = make([]float64, n)
		locked = make([]Pair, 0, nev)
		basis  = make([][]float64, ncv) // orthonormal Arnoldi basis
		hess   = make([][]float64, ncv+1)
	)
	for i := range basis {
		basis[i] = make([]float64, n)
	}
	for i := range hess {
		hess[i] = make([]float64, ncv)
	}
	if p.InitialSpace != nil {
		copy(start, p.InitialSpace)
	} else {
		fillRandom(start, rng)
	}

	// Stage 5: outer restart loop.
	var outer int
	for outer = 0; outer < s.MaxIter && len(locked) < nev; outer++ {
		if !prepareStart(start, locked, rng) {
			return nil, Stats{}, fmt.Errorf("Krylov.Solve: start vector degenerate: %w", ErrBackendFailure)
		}

		// 5a: Arnoldi factorization of dimension up to ncv.
		for i := range hess {
			for j := range hess[i] {
				hess[i][j] = 0
			}
		}
		copy(basis[0], start)
		var (
			m         int // completed steps
			j, i      int
			c, hn, w0 float64
		)
		for j = 0; j < ncv; j++ {
			if err = apply(work, basis[j]); err != nil {
				return nil, Stats{}, fmt.Errorf("Krylov.Solve: operator apply: %w", err)
			}
			deflate(work, locked)
			w0 = floats.Norm(work, 2)
			// Modified Gram-Schmidt with one refinement pass.
			for i = 0; i <= j; i++ {
				c = floats.Dot(basis[i], work)
				hess[i][j] += c
				floats.AddScaled(work, -c, basis[i])
			}
			for i = 0; i <= j; i++ {
				c = floats.Dot(basis[i], work)
				hess[i][j] += c
				floats.AddScaled(work, -c, basis[i])
			}
			hn = floats.Norm(work, 2)
			hess[j+1][j] = hn
			m = j + 1
			if hn <= breakdownEps*math.Max(1, w0) {
				// Invariant subspace: the Ritz residuals below are exact.
				break
			}
			if j+1 < ncv {
				copy(basis[j+1], work)
				floats.Scale(1/hn, basis[j+1])
			}
		}

		// 5b: Ritz extraction from the leading m×m Hessenberg block.
		hm := mat.NewDense(m, m, nil)
		for i = 0; i < m; i++ {
			for j = 0; j < m; j++ {
				hm.Set(i, j, hess[i][j])
			}
		}
		var eig mat.Eigen
		if !eig.Factorize(hm, mat.EigenRight) {
			return nil, Stats{}, fmt.Errorf("Krylov.Solve: Hessenberg decomposition: %w", ErrBackendFailure)
		}
		vals := eig.Values(nil)
		var yc mat.CDense
		eig.VectorsTo(&yc)

		idx := make([]int, m)
		for i = range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return ranksBefore(s.Which,
				real(vals[idx[a]]), imag(vals[idx[a]]),
				real(vals[idx[b]]), imag(vals[idx[b]]))
		})

		// 5c: lock converged Ritz pairs in target order; the first
		// unconverged one restarts the iteration.
		var (
			hlast      = math.Abs(hess[m][m-1])
			restartSet bool
			k          int
		)
		for _, k = range idx {
			if len(locked) >= nev {
				break
			}
			res := hlast * cmplx.Abs(yc.At(m-1, k))
			lam := vals[k]
			if res <= s.Tolerance*math.Max(1, cmplx.Abs(lam)) {
				x := ritzVector(basis, &yc, m, n, k)
				deflate(x, locked)
				if !normalizeVector(x) {
					continue
				}
				locked = append(locked, Pair{Re: real(lam), Im: imag(lam), Vector: x})
			} else if !restartSet {
				copy(start, ritzVector(basis, &yc, m, n, k))
				restartSet = true
			}
		}
		if !restartSet {
			fillRandom(start, rng)
		}
	}

	// Stage 6: final ordering and statistics.
	orderPairs(locked, s.Which)

	return locked, Stats{Converged: len(locked), Iterations: matvecs}, nil
}

// ritzVector assembles the n-dimensional real part of Ritz vector k from
// the basis and the Hessenberg eigenvector column.
func ritzVector(basis [][]float64, yc *mat.CDense, m, n, k int) []float64 {
	x := make([]float64, n)
	for i := 0; i < m; i++ {
		floats.AddScaled(x, real(yc.At(i, k)), basis[i])
	}

	return x
}

// deflate orthogonalizes v against every locked eigenvector in place.
func deflate(v []float64, locked []Pair) {
	for i := range locked {
		c := floats.Dot(locked[i].Vector, v)
		floats.AddScaled(v, -c, locked[i].Vector)
	}
}

// fillRandom overwrites v with standard normal draws.
func fillRandom(v []float64, rng *rand.Rand) {
	for i := range v {
		v[i] = rng.NormFloat64()
	}
}

// prepareStart deflates and normalizes the start vector, redrawing it when
// it collapses into the locked subspace. Reports false when startRetries
// redraws all collapse.
func prepareStart(start []float64, locked []Pair, rng *rand.Rand) bool {
	for try := 0; try < startRetries; try++ {
		deflate(start, locked)
		if normalizeVector(start) {
			return true
		}
		fillRandom(start, rng)
	}

	return false
}

// innerIterations caps the conjugate-gradient solve on B.
func innerIterations(n int) int {
	limit := 4 * n
	if limit < 50 {
		limit = 50
	}

	return limit
}

// cgSolve solves B·x = rhs by preconditioned conjugate gradients, writing
// the solution into x. precond, when non-nil, applies an approximation of
// B⁻¹ to the residual. B must act symmetric positive definite on the
// iterates; an indefinite direction or an exhausted budget yields
// ErrInnerSolve.
func cgSolve(b, precond operator.Applier, x, rhs []float64, tol float64, maxIter int) error {
	n := len(rhs)
	for i := range x {
		x[i] = 0
	}
	rhsNorm := floats.Norm(rhs, 2)
	if rhsNorm == 0 {
		return nil
	}

	var (
		r  = make([]float64, n) // residual
		z  = make([]float64, n) // preconditioned residual
		pv = make([]float64, n) // search direction
		ap = make([]float64, n) // B·pv
	)
	copy(r, rhs)
	if precond != nil {
		if err := precond.MulVec(z, r); err != nil {
			return fmt.Errorf("cg: precondition: %w", err)
		}
	} else {
		copy(z, r)
	}
	copy(pv, z)
	rz := floats.Dot(r, z)

	var (
		k           int
		den, alpha  float64
		rzNew, beta float64
	)
	for k = 0; k < maxIter; k++ {
		if err := b.MulVec(ap, pv); err != nil {
			return fmt.Errorf("cg: apply B: %w", err)
		}
		den = floats.Dot(pv, ap)
		if den <= 0 {
			return fmt.Errorf("cg: indefinite operator B: %w", ErrInnerSolve)
		}
		alpha = rz / den
		floats.AddScaled(x, alpha, pv)
		floats.AddScaled(r, -alpha, ap)
		if floats.Norm(r, 2) <= tol*rhsNorm {
			return nil
		}
		if precond != nil {
			if err := precond.MulVec(z, r); err != nil {
				return fmt.Errorf("cg: precondition: %w", err)
			}
		} else {
			copy(z, r)
		}
		rzNew = floats.Dot(r, z)
		beta = rzNew / rz
		for i := range pv {
			pv[i] = z[i] + beta*pv[i]
		}
		rz = rzNew
	}

	return fmt.Errorf("cg: %d iterations at tolerance %g: %w", maxIter, tol, ErrInnerSolve)
}
