// This file implements Dense, the full-spectrum backend for stored
// operators: EigenSym for symmetric problems, Eigen for general ones, and
// the LAPACK Dggev routine for generalized pencils.
package solver

import (
	"fmt"

	"gonum.org/v1/gonum/lapack"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/mat"
)

// Dense computes the full spectrum of a stored problem and returns the
// requested slice of it. Every Kind and every Which target is supported;
// shell operators are not (ErrStoredRequired). Iterations is always 1.
type Dense struct{}

// Name identifies the backend in logs.
func (Dense) Name() string { return "dense" }

// Solve runs the dense decomposition matching the problem kind.
// Complexity: O(n³) time, O(n²) memory.
func (Dense) Solve(p Problem, s Settings) ([]Pair, Stats, error) {
	// Stage 1: validate problem and settings.
	var err error
	if err = p.validate(); err != nil {
		return nil, Stats{}, fmt.Errorf("Dense.Solve: %w", err)
	}
	if s, err = s.normalize(); err != nil {
		return nil, Stats{}, fmt.Errorf("Dense.Solve: %w", err)
	}

	// Stage 2: export stored entries.
	n := p.A.Dim()
	a, err := denseOf(p.A, "A")
	if err != nil {
		return nil, Stats{}, fmt.Errorf("Dense.Solve: %w", err)
	}

	// Stage 3: decompose per problem kind.
	var pairs []Pair
	switch {
	case p.Kind.Generalized():
		var b *mat.Dense
		if b, err = denseOf(p.B, "B"); err == nil && p.Kind.Hermitian() {
			if err = requireSymmetric(p.A, "A"); err == nil {
				err = requireSymmetric(p.B, "B")
			}
		}
		if err == nil {
			pairs, err = generalizedPairs(a, b, n)
		}
	case p.Kind == Hermitian:
		if err = requireSymmetric(p.A, "A"); err == nil {
			pairs, err = symmetricPairs(a, n)
		}
	default:
		pairs, err = generalPairs(a, n)
	}
	if err != nil {
		return nil, Stats{}, fmt.Errorf("Dense.Solve: %w", err)
	}

	// Stage 4: order by target and keep the requested count.
	orderPairs(pairs, s.Which)
	if len(pairs) > s.Pairs {
		pairs = pairs[:s.Pairs]
	}

	return pairs, Stats{Converged: len(pairs), Iterations: 1}, nil
}

// symmetricPairs decomposes a symmetric matrix through EigenSym.
func symmetricPairs(a *mat.Dense, n int) ([]Pair, error) {
	sym := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sym.SetSym(i, j, a.At(i, j))
		}
	}

	var es mat.EigenSym
	if !es.Factorize(sym, true) {
		return nil, fmt.Errorf("EigenSym: %w", ErrBackendFailure)
	}
	vals := es.Values(nil)
	var q mat.Dense
	es.VectorsTo(&q)

	pairs := make([]Pair, 0, n)
	for j = 0; j < n; j++ {
		vec := mat.Col(nil, j, &q)
		if !normalizeVector(vec) {
			continue
		}
		pairs = append(pairs, Pair{Re: vals[j], Vector: vec})
	}

	return pairs, nil
}

// generalPairs decomposes a general matrix through Eigen, keeping the real
// part of each right eigenvector.
func generalPairs(a *mat.Dense, n int) ([]Pair, error) {
	var eig mat.Eigen
	if !eig.Factorize(a, mat.EigenRight) {
		return nil, fmt.Errorf("Eigen: %w", ErrBackendFailure)
	}
	vals := eig.Values(nil)
	var vc mat.CDense
	eig.VectorsTo(&vc)

	pairs := make([]Pair, 0, n)
	var i, j int
	for j = 0; j < n; j++ {
		vec := make([]float64, n)
		for i = 0; i < n; i++ {
			vec[i] = real(vc.At(i, j))
		}
		if !normalizeVector(vec) {
			continue
		}
		pairs = append(pairs, Pair{Re: real(vals[j]), Im: imag(vals[j]), Vector: vec})
	}

	return pairs, nil
}

// generalizedPairs decomposes the pencil (A, B) through the LAPACK Dggev
// routine. Infinite eigenvalues (zero beta) are dropped from the converged
// set. Conjugate eigenvector pairs arrive packed in adjacent columns of VR;
// both members share the same real part.
func generalizedPairs(a, b *mat.Dense, n int) ([]Pair, error) {
	var (
		impl   lapackgonum.Implementation
		ra     = a.RawMatrix() // overwritten by Dggev; a fresh export
		rb     = b.RawMatrix()
		alphar = make([]float64, n)
		alphai = make([]float64, n)
		beta   = make([]float64, n)
		vr     = make([]float64, n*n)
		query  [1]float64
	)

	// Workspace query, then the real run.
	impl.Dggev(lapack.LeftEVNone, lapack.RightEVCompute, n,
		ra.Data, ra.Stride, rb.Data, rb.Stride,
		alphar, alphai, beta, nil, 1, vr, n, query[:], -1)
	lwork := int(query[0])
	if lwork < 8*n {
		lwork = 8 * n
	}
	work := make([]float64, lwork)
	ok := impl.Dggev(lapack.LeftEVNone, lapack.RightEVCompute, n,
		ra.Data, ra.Stride, rb.Data, rb.Stride,
		alphar, alphai, beta, nil, 1, vr, n, work, lwork)
	if !ok {
		return nil, fmt.Errorf("Dggev: %w", ErrBackendFailure)
	}

	pairs := make([]Pair, 0, n)
	var i, j, col int
	for j = 0; j < n; j++ {
		if beta[j] == 0 {
			continue // infinite eigenvalue
		}
		col = j
		if alphai[j] < 0 {
			col = j - 1 // second member of a conjugate pair
		}
		vec := make([]float64, n)
		for i = 0; i < n; i++ {
			vec[i] = vr[i*n+col]
		}
		if !normalizeVector(vec) {
			continue
		}
		pairs = append(pairs, Pair{Re: alphar[j] / beta[j], Im: alphai[j] / beta[j], Vector: vec})
	}

	return pairs, nil
}
