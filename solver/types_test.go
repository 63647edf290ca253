package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlspec/solver"
)

// TestKind_Properties checks the generalized/Hermitian split and the
// conventional tags.
func TestKind_Properties(t *testing.T) {
	cases := []struct {
		kind        solver.Kind
		generalized bool
		hermitian   bool
		tag         string
	}{
		{solver.Hermitian, false, true, "HEP"},
		{solver.NonHermitian, false, false, "NHEP"},
		{solver.GeneralizedHermitian, true, true, "GHEP"},
		{solver.GeneralizedNonHermitian, true, false, "GNHEP"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.generalized, tc.kind.Generalized(), tc.tag)
		assert.Equal(t, tc.hermitian, tc.kind.Hermitian(), tc.tag)
		assert.Equal(t, tc.tag, tc.kind.String())
	}
	assert.Equal(t, "unknown", solver.Kind(99).String())
}

// TestWhich_String checks the conventional spectrum-target tags.
func TestWhich_String(t *testing.T) {
	assert.Equal(t, "LM", solver.LargestMagnitude.String())
	assert.Equal(t, "SM", solver.SmallestMagnitude.String())
	assert.Equal(t, "LR", solver.LargestReal.String())
	assert.Equal(t, "SR", solver.SmallestReal.String())
	assert.Equal(t, "unknown", solver.Which(99).String())
}

// TestDefaultSettings pins the package defaults.
func TestDefaultSettings(t *testing.T) {
	s := solver.DefaultSettings()
	assert.Equal(t, 1, s.Pairs)
	assert.Equal(t, solver.DefaultTolerance, s.Tolerance)
	assert.Equal(t, solver.DefaultMaxIter, s.MaxIter)
	assert.Equal(t, solver.LargestMagnitude, s.Which)
	assert.Zero(t, s.Subspace)
	assert.Zero(t, s.Seed)
}
