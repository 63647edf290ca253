// This file implements the result queries of a solved system.
package eigen

import "fmt"

// Eigenpair returns eigenvalue i of the last solve and copies eigenvector
// i into the shared solution vector — the one query with a side effect.
// Valid for 0 ≤ i < NumConverged().
// Returns ErrNotSolved out of order; a bad index wraps
// solver.ErrPairOutOfRange.
func (s *System) Eigenpair(i int) (re, im float64, err error) {
	if s.state != StateSolved {
		return 0, 0, fmt.Errorf("Eigenpair(%q, %d): state %s: %w", s.name, i, s.state, ErrNotSolved)
	}
	pair, err := s.adapter.Eigenpair(i)
	if err != nil {
		return 0, 0, fmt.Errorf("Eigenpair(%q, %d): %w", s.name, i, err)
	}
	for j, v := range pair.Vector {
		s.solution.SetVec(j, v)
	}

	return pair.Re, pair.Im, nil
}

// Eigenvalue returns eigenvalue i of the last solve — the value Eigenpair
// reports, bit for bit — without touching the solution vector.
// Returns ErrNotSolved out of order; a bad index wraps
// solver.ErrPairOutOfRange.
func (s *System) Eigenvalue(i int) (re, im float64, err error) {
	if s.state != StateSolved {
		return 0, 0, fmt.Errorf("Eigenvalue(%q, %d): state %s: %w", s.name, i, s.state, ErrNotSolved)
	}
	pair, err := s.adapter.Eigenpair(i)
	if err != nil {
		return 0, 0, fmt.Errorf("Eigenvalue(%q, %d): %w", s.name, i, err)
	}

	return pair.Re, pair.Im, nil
}

// NumConverged reports how many pairs the last solve produced, 0 before
// any solve.
func (s *System) NumConverged() int { return s.adapter.Converged() }

// NumIterations reports the iteration count of the last solve, 0 before
// any solve.
func (s *System) NumIterations() int { return s.adapter.Iterations() }
