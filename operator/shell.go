// This file implements Shell, the matrix-free representation: a nominal
// dimension plus an apply action, with no stored entries.
package operator

import "fmt"

// Shell is a matrix-free operator. It carries only the dimension and the
// ApplyFunc that realizes dst = Op·src; there are no entries to assemble,
// inspect, or export. The zero value is not usable; construct with NewShell.
type Shell struct {
	n     int       // nominal dimension
	apply ApplyFunc // the operator action
}

// NewShell returns a shell operator of dimension n with the given action.
// Returns ErrBadDimension if n <= 0 and ErrNilApply if apply is nil.
func NewShell(n int, apply ApplyFunc) (*Shell, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewShell: n=%d: %w", n, ErrBadDimension)
	}
	if apply == nil {
		return nil, fmt.Errorf("NewShell: %w", ErrNilApply)
	}

	return &Shell{n: n, apply: apply}, nil
}

// Dim returns the nominal dimension n.
func (s *Shell) Dim() int { return s.n }

// MulVec computes dst = Op·src through the apply action. dst and src must
// not alias. Returns ErrDimensionMismatch if either slice length differs
// from Dim; errors from the action propagate wrapped.
func (s *Shell) MulVec(dst, src []float64) error {
	if len(dst) != s.n || len(src) != s.n {
		return fmt.Errorf("MulVec: dst %d, src %d, dim %d: %w", len(dst), len(src), s.n, ErrDimensionMismatch)
	}
	if err := s.apply(dst, src); err != nil {
		return fmt.Errorf("MulVec: apply: %w", err)
	}

	return nil
}
