// This file implements the named auxiliary-matrix registry: scaling
// matrices, lumped masses, and other problem companions registered by name
// and reallocated together with the system.
package eigen

import (
	"fmt"

	"github.com/katalvlaran/lvlspec/operator"
)

// AddMatrix registers an auxiliary matrix under name, recording the
// requested distribution and build kinds. On an initialized system the
// matrix is allocated immediately at the current size; otherwise
// InitMatrices allocates it. Registrations survive Reinit (reallocated
// empty at the new size) and are dropped by Clear.
// Returns operator.ErrEmptyName, operator.ErrReservedName, or
// operator.ErrDuplicateMatrix wrapped.
func (s *System) AddMatrix(name string, dist operator.DistKind, build operator.BuildKind) (*operator.Slot, error) {
	slot, err := s.storage.Define(name, dist, build)
	if err != nil {
		return nil, fmt.Errorf("AddMatrix(%q, %q): %w", s.name, name, err)
	}
	if s.dim > 0 {
		if _, err = slot.AllocateStored(s.dim, build); err != nil {
			return nil, fmt.Errorf("AddMatrix(%q, %q): %w", s.name, name, err)
		}
	}

	return slot, nil
}

// HaveMatrix reports whether an auxiliary matrix is registered under name.
// The primary slots are not registrations and report false.
func (s *System) HaveMatrix(name string) bool { return s.storage.Has(name) }

// Matrix returns the slot of the auxiliary matrix registered under name.
// The primary operators are reached through MatrixA, MatrixB, and Precond
// instead.
// Returns operator.ErrMatrixNotFound wrapped for unknown names.
func (s *System) Matrix(name string) (*operator.Slot, error) {
	if !s.storage.Has(name) {
		return nil, fmt.Errorf("Matrix(%q, %q): %w", s.name, name, operator.ErrMatrixNotFound)
	}
	slot, err := s.storage.Slot(name)
	if err != nil {
		return nil, fmt.Errorf("Matrix(%q, %q): %w", s.name, name, err)
	}

	return slot, nil
}
