// This file implements Jacobi, a rotation-based backend for standard
// symmetric problems. It computes the full spectrum, so every Which target
// is available, at O(n³) cost per sweep.
package solver

import (
	"fmt"
	"math"
)

// Jacobi diagonalizes a stored symmetric operator by classical Jacobi
// rotations: each step zeroes the largest off-diagonal element until the
// off-diagonal mass falls below Tolerance relative to the Frobenius norm.
// Only the Hermitian kind is supported; generalized and non-symmetric
// problems belong to the Dense or Krylov backends.
//
// Settings.MaxIter counts sweeps, each worth up to n·(n-1)/2 rotations.
// An exhausted sweep budget reports zero converged pairs, not an error.
// Stats.Iterations counts rotations performed.
type Jacobi struct{}

// Name identifies the backend in logs.
func (Jacobi) Name() string { return "jacobi" }

// Solve diagonalizes A and returns the Settings.Pairs best eigenpairs under
// Settings.Which.
// Complexity: O(n²) per rotation, worst-case O(MaxIter·n⁴); Memory: O(n²).
func (Jacobi) Solve(p Problem, s Settings) ([]Pair, Stats, error) {
	// Stage 1: Validate problem, settings, kind, and operator form.
	var err error
	if err = p.validate(); err != nil {
		return nil, Stats{}, fmt.Errorf("Jacobi.Solve: %w", err)
	}
	if s, err = s.normalize(); err != nil {
		return nil, Stats{}, fmt.Errorf("Jacobi.Solve: %w", err)
	}
	if p.Kind != Hermitian {
		return nil, Stats{}, fmt.Errorf("Jacobi.Solve: %s: %w", p.Kind, ErrKindUnsupported)
	}
	ad, err := denseOf(p.A, "A")
	if err != nil {
		return nil, Stats{}, fmt.Errorf("Jacobi.Solve: %w", err)
	}

	// Stage 2: Prepare the working copy a and the rotation accumulator q,
	// both flat row-major n×n, and check symmetry a[i][j] == a[j][i].
	var (
		n    = p.A.Dim()
		a    = make([]float64, n*n) // working copy, diagonalized in place
		q    = make([]float64, n*n) // accumulated rotations, columns are eigenvectors
		fro  float64                // Frobenius norm of the input
		v    float64
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = ad.At(i, j)
			a[i*n+j] = v
			fro += v * v
		}
		q[i*n+i] = 1.0
	}
	fro = math.Sqrt(fro)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(a[i*n+j]-a[j*n+i]) > symTol*math.Max(1, fro) {
				return nil, Stats{}, fmt.Errorf("Jacobi.Solve: A: %w", ErrNotSymmetric)
			}
		}
	}

	// Stage 3: Execute rotations until the largest off-diagonal element
	// falls below the threshold.
	var (
		budget   = s.MaxIter * n * n          // rotation budget, MaxIter sweeps worth
		thr      = s.Tolerance * math.Max(1, fro)
		rot      int     // rotation counter
		pp, qq   int     // pivot indices
		maxOff   float64 // largest off-diagonal magnitude
		theta, t float64 // rotation parameters
		c, sn    float64 // cosine and sine
		app, aqq float64 // pivot diagonal entries
		apq      float64 // pivot off-diagonal entry
		aip, aiq float64 // row updates
	)
	for rot = 0; rot < budget; rot++ {
		// find largest off-diagonal |a[pp][qq]|
		maxOff = 0.0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if math.Abs(a[i*n+j]) > maxOff {
					maxOff = math.Abs(a[i*n+j])
					pp, qq = i, j
				}
			}
		}
		if maxOff < thr {
			break // converged
		}
		// compute rotation angle theta
		app = a[pp*n+pp]
		aqq = a[qq*n+qq]
		apq = a[pp*n+qq]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1.0 / math.Sqrt(t*t+1) // cosine
		sn = t * c                 // sine

		// apply rotation to a
		for i = 0; i < n; i++ {
			if i != pp && i != qq {
				aip = a[i*n+pp]
				aiq = a[i*n+qq]
				a[i*n+pp] = c*aip - sn*aiq
				a[pp*n+i] = a[i*n+pp]
				a[i*n+qq] = sn*aip + c*aiq
				a[qq*n+i] = a[i*n+qq]
			}
		}
		// update pivot entries
		a[pp*n+pp] = c*c*app - 2*c*sn*apq + sn*sn*aqq
		a[qq*n+qq] = sn*sn*app + 2*c*sn*apq + c*c*aqq
		a[pp*n+qq] = 0.0
		a[qq*n+pp] = 0.0

		// accumulate into q
		for i = 0; i < n; i++ {
			aip = q[i*n+pp]
			aiq = q[i*n+qq]
			q[i*n+pp] = c*aip - sn*aiq
			q[i*n+qq] = sn*aip + c*aiq
		}
	}
	if rot == budget {
		return nil, Stats{Converged: 0, Iterations: rot}, nil
	}

	// Stage 4: Assemble eigenpairs from the diagonal and the columns of q,
	// order by the requested target, and truncate.
	pairs := make([]Pair, n)
	for i = 0; i < n; i++ {
		x := make([]float64, n)
		for j = 0; j < n; j++ {
			x[j] = q[j*n+i]
		}
		pairs[i] = Pair{Re: a[i*n+i], Vector: x}
	}
	orderPairs(pairs, s.Which)
	if s.Pairs < len(pairs) {
		pairs = pairs[:s.Pairs]
	}

	return pairs, Stats{Converged: len(pairs), Iterations: rot}, nil
}
