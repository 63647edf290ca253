package eigen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlspec/dof"
	"github.com/katalvlaran/lvlspec/eigen"
	"github.com/katalvlaran/lvlspec/operator"
	"github.com/katalvlaran/lvlspec/solver"
)

// laplacianAssembler fills A with the 1-D [-1, 2, -1] stencil.
func laplacianAssembler(n int) eigen.AssembleFunc {
	return func(sys *eigen.System) error {
		a, err := sys.MatrixA().Sparse()
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = a.Set(i, i, 2); err != nil {
				return err
			}
			if i+1 < n {
				if err = a.Set(i, i+1, -1); err != nil {
					return err
				}
				if err = a.Set(i+1, i, -1); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// TestSystem_SolveIdentity resolves the identity spectrum: every
// requested pair carries the eigenvalue (1, 0).
func TestSystem_SolveIdentity(t *testing.T) {
	const n = 10
	entries := make([]float64, n)
	for i := range entries {
		entries[i] = 1
	}
	sys, err := eigen.New("identity", dof.NewMap(n),
		eigen.WithKind(solver.Hermitian),
		eigen.WithAssembler(diagAssembler(entries...)),
		eigen.WithSettings(solver.Settings{Pairs: 3}))
	require.NoError(t, err)
	require.NoError(t, sys.InitData())
	require.NoError(t, sys.Assemble())
	require.NoError(t, sys.Solve())

	require.Equal(t, 3, sys.NumConverged())
	var i int
	for i = 0; i < sys.NumConverged(); i++ {
		re, im, err := sys.Eigenpair(i)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, re, 1e-12)
		assert.Zero(t, im)
	}
}

// TestSystem_SolveGeneralized carries B through the pencil: diag(2, 4, 6)
// against 2·I yields the spectrum 3, 2, 1.
func TestSystem_SolveGeneralized(t *testing.T) {
	sys, err := eigen.New("pencil", dof.NewMap(3),
		eigen.WithKind(solver.GeneralizedHermitian),
		eigen.WithAssembler(pencilAssembler(2, 2, 4, 6)),
		eigen.WithSettings(solver.Settings{Pairs: 3}))
	require.NoError(t, err)
	require.NoError(t, sys.InitData())
	require.Equal(t, 2, sys.NumMatrices())
	require.NoError(t, sys.Assemble())
	require.NoError(t, sys.Solve())

	require.Equal(t, 3, sys.NumConverged())
	want := []float64{3, 2, 1}
	var i int
	for i = 0; i < 3; i++ {
		re, im, err := sys.Eigenpair(i)
		require.NoError(t, err)
		assert.InDelta(t, want[i], re, 1e-9)
		assert.Zero(t, im)
	}
}

// TestSystem_SolveShell runs the matrix-free path end to end: the
// automatic backend picks the iterative solver and recovers the top of
// the Laplacian spectrum from the action alone.
func TestSystem_SolveShell(t *testing.T) {
	const n = 20
	sys, err := eigen.New("laplacian", dof.NewMap(n),
		eigen.WithKind(solver.Hermitian),
		eigen.WithShellMatrices(),
		eigen.WithSettings(solver.Settings{Pairs: 2, Tolerance: 1e-8, Seed: 3}))
	require.NoError(t, err)
	require.NoError(t, sys.SetShellApply(operator.SlotA, laplacianApply(n)))
	require.NoError(t, sys.InitData())
	require.NoError(t, sys.Assemble())
	require.NoError(t, sys.Solve())

	require.Equal(t, 2, sys.NumConverged())
	assert.Greater(t, sys.NumIterations(), 1)
	var (
		k    int
		re   float64
		want float64
	)
	for k = 0; k < 2; k++ {
		re, _, err = sys.Eigenpair(k)
		require.NoError(t, err)
		want = 2 - 2*math.Cos(float64(n-k)*math.Pi/float64(n+1))
		assert.InDelta(t, want, re, 1e-6)
	}
}

// TestSystem_EigenvalueMatchesEigenpair checks the split query contract:
// identical values, but only Eigenpair writes the solution vector.
func TestSystem_EigenvalueMatchesEigenpair(t *testing.T) {
	sys, err := eigen.New("sys", dof.NewMap(3),
		eigen.WithKind(solver.Hermitian),
		eigen.WithAssembler(diagAssembler(4, 1, 3)),
		eigen.WithSettings(solver.Settings{Pairs: 2}))
	require.NoError(t, err)
	require.NoError(t, sys.InitData())
	require.NoError(t, sys.Assemble())
	require.NoError(t, sys.Solve())

	valRe, valIm, err := sys.Eigenvalue(0)
	require.NoError(t, err)
	var i int
	for i = 0; i < 3; i++ {
		assert.Zero(t, sys.Solution().AtVec(i)) // untouched by Eigenvalue
	}

	pairRe, pairIm, err := sys.Eigenpair(0)
	require.NoError(t, err)
	assert.Equal(t, valRe, pairRe)
	assert.Equal(t, valIm, pairIm)
	assert.InDelta(t, 4.0, pairRe, 1e-12)
	assert.InDelta(t, 1.0, math.Abs(sys.Solution().AtVec(0)), 1e-12)

	// The second pair replaces the solution contents wholesale.
	pairRe, _, err = sys.Eigenpair(1)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, pairRe, 1e-12)
	assert.InDelta(t, 1.0, math.Abs(sys.Solution().AtVec(2)), 1e-12)
	assert.InDelta(t, 0.0, math.Abs(sys.Solution().AtVec(0)), 1e-12)
}

// TestSystem_QueryGuards rejects queries before a solve and outside the
// converged range.
func TestSystem_QueryGuards(t *testing.T) {
	sys, err := eigen.New("sys", dof.NewMap(2),
		eigen.WithKind(solver.Hermitian),
		eigen.WithAssembler(diagAssembler(2, 1)))
	require.NoError(t, err)

	_, _, err = sys.Eigenpair(0)
	require.ErrorIs(t, err, eigen.ErrNotSolved)
	_, _, err = sys.Eigenvalue(0)
	require.ErrorIs(t, err, eigen.ErrNotSolved)

	require.NoError(t, sys.InitData())
	require.NoError(t, sys.Assemble())
	require.NoError(t, sys.Solve())
	require.Equal(t, 1, sys.NumConverged())

	_, _, err = sys.Eigenpair(1)
	require.ErrorIs(t, err, solver.ErrPairOutOfRange)
	_, _, err = sys.Eigenvalue(-1)
	require.ErrorIs(t, err, solver.ErrPairOutOfRange)
}

// TestSystem_SolveFailure drives a fatal backend error: the results are
// gone, the state drops back to assembled, and the failed solve is not
// retried behind the caller's back.
func TestSystem_SolveFailure(t *testing.T) {
	asym := false
	asm := eigen.AssembleFunc(func(sys *eigen.System) error {
		a, err := sys.MatrixA().Sparse()
		if err != nil {
			return err
		}
		if err = a.Set(0, 0, 5); err != nil {
			return err
		}
		if err = a.Set(1, 1, 2); err != nil {
			return err
		}
		if asym {
			return a.Set(0, 1, 3)
		}

		return nil
	})
	sys, err := eigen.New("sys", dof.NewMap(2),
		eigen.WithKind(solver.Hermitian), eigen.WithAssembler(asm))
	require.NoError(t, err)
	require.NoError(t, sys.InitData())
	require.NoError(t, sys.Assemble())
	require.NoError(t, sys.Solve())
	require.Equal(t, 1, sys.NumConverged())

	// Re-assemble with a one-sided entry; the dense backend now refuses.
	asym = true
	require.NoError(t, sys.Assemble())
	err = sys.Solve()
	require.ErrorIs(t, err, solver.ErrNotSymmetric)

	assert.Equal(t, eigen.StateAssembled, sys.State())
	assert.Zero(t, sys.NumConverged())
	_, _, err = sys.Eigenpair(0)
	require.ErrorIs(t, err, eigen.ErrNotSolved)
}

// TestSystem_SolveNonConvergence starves the iterative backend: the solve
// itself succeeds and the shortfall shows up only in the converged count.
func TestSystem_SolveNonConvergence(t *testing.T) {
	const n = 30
	sys, err := eigen.New("starved", dof.NewMap(n),
		eigen.WithKind(solver.Hermitian),
		eigen.WithBackend(solver.Krylov{}),
		eigen.WithAssembler(laplacianAssembler(n)),
		eigen.WithSettings(solver.Settings{
			Pairs: 5, Subspace: 6, Tolerance: 1e-14, MaxIter: 1, Seed: 11,
		}))
	require.NoError(t, err)
	require.NoError(t, sys.InitData())
	require.NoError(t, sys.Assemble())

	require.NoError(t, sys.Solve())
	assert.Equal(t, eigen.StateSolved, sys.State())
	assert.Less(t, sys.NumConverged(), 5)
	assert.Positive(t, sys.NumIterations())
	_, _, err = sys.Eigenpair(sys.NumConverged())
	require.ErrorIs(t, err, solver.ErrPairOutOfRange)
}

// TestSystem_SolveInitialSpace seeds the iteration with an exact
// eigenvector; one operator application settles it.
func TestSystem_SolveInitialSpace(t *testing.T) {
	sys, err := eigen.New("seeded", dof.NewMap(4),
		eigen.WithKind(solver.Hermitian),
		eigen.WithBackend(solver.Krylov{}),
		eigen.WithAssembler(diagAssembler(5, 1, 1, 1)))
	require.NoError(t, err)
	require.NoError(t, sys.InitData())
	require.NoError(t, sys.Assemble())

	start := mat.NewVecDense(4, []float64{1, 0, 0, 0})
	sys.SetInitialSpace(start)
	require.NoError(t, sys.Solve())

	require.Equal(t, 1, sys.NumConverged())
	assert.Equal(t, 1, sys.NumIterations())
	re, _, err := sys.Eigenpair(0)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, re, 1e-12)
	assert.InDelta(t, 1.0, math.Abs(sys.Solution().AtVec(0)), 1e-12)

	// Dropping the seed leaves the solve on its random start.
	sys.SetInitialSpace(nil)
	require.NoError(t, sys.Solve())
	assert.Equal(t, 1, sys.NumConverged())
}

// TestSystem_SolveRepeatable allows a second solve without re-assembly.
func TestSystem_SolveRepeatable(t *testing.T) {
	sys, err := eigen.New("sys", dof.NewMap(3),
		eigen.WithKind(solver.Hermitian),
		eigen.WithAssembler(diagAssembler(6, 2, 4)))
	require.NoError(t, err)
	require.NoError(t, sys.InitData())
	require.NoError(t, sys.Assemble())

	require.NoError(t, sys.Solve())
	require.NoError(t, sys.Solve())
	assert.Equal(t, eigen.StateSolved, sys.State())
	re, _, err := sys.Eigenpair(0)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, re, 1e-12)
}
