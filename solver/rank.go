// This file carries the helpers shared by all backends: spectrum ordering,
// eigenvector normalization, and stored-operator export.
package solver

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlspec/operator"
)

// ranksBefore reports whether eigenvalue a=(ar, ai) precedes b=(br, bi)
// under the spectrum target w.
func ranksBefore(w Which, ar, ai, br, bi float64) bool {
	switch w {
	case SmallestMagnitude:
		return math.Hypot(ar, ai) < math.Hypot(br, bi)
	case LargestReal:
		return ar > br
	case SmallestReal:
		return ar < br
	default: // LargestMagnitude
		return math.Hypot(ar, ai) > math.Hypot(br, bi)
	}
}

// orderPairs sorts pairs by the spectrum target, stably, so equal
// eigenvalues keep their backend order and results are deterministic.
func orderPairs(pairs []Pair, w Which) {
	sort.SliceStable(pairs, func(i, j int) bool {
		return ranksBefore(w, pairs[i].Re, pairs[i].Im, pairs[j].Re, pairs[j].Im)
	})
}

// normalizeVector scales v to unit 2-norm in place. It reports false for a
// zero, NaN, or infinite norm, which callers treat as a failed candidate.
func normalizeVector(v []float64) bool {
	n := floats.Norm(v, 2)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	floats.Scale(1/n, v)

	return true
}

// denser is satisfied by stored operators that can export their entries.
type denser interface {
	Dense() *mat.Dense
}

// symmetricChecker is satisfied by stored operators that can report symmetry.
type symmetricChecker interface {
	IsSymmetric(tol float64) bool
}

// denseOf exports a stored operator's entries for a dense backend.
// Returns ErrStoredRequired when the operator is matrix-free.
func denseOf(op operator.Applier, label string) (*mat.Dense, error) {
	d, ok := op.(denser)
	if !ok {
		return nil, fmt.Errorf("operator %s: %w", label, ErrStoredRequired)
	}

	return d.Dense(), nil
}

// symTol is the entry tolerance of the symmetry checks guarding Hermitian
// solves.
const symTol = 1e-12

// requireSymmetric errors when a stored operator can report symmetry and
// reports asymmetry. Operators without the capability pass (the dense
// export already constrains the type in practice).
func requireSymmetric(op operator.Applier, label string) error {
	c, ok := op.(symmetricChecker)
	if ok && !c.IsSymmetric(symTol) {
		return fmt.Errorf("operator %s: %w", label, ErrNotSymmetric)
	}

	return nil
}
