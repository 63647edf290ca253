// This file implements Slot, the stored-XOR-shell tagged variant with
// explicit allocate/release transitions.
package operator

import "fmt"

// Slot is one logical operator position. It is always in exactly one of
// three states — empty, stored, or shell — and every allocation releases the
// previous occupant first, so the two representations can never coexist or
// leak. The zero value is an empty slot, ready for use.
type Slot struct {
	form   Form    // active representation tag
	sparse *Sparse // set iff form == FormStored
	shell  *Shell  // set iff form == FormShell
}

// Form returns the active representation tag.
func (s *Slot) Form() Form { return s.form }

// Empty reports whether the slot holds no operator.
func (s *Slot) Empty() bool { return s.form == FormEmpty }

// Dim returns the dimension of the held operator, or 0 when empty.
func (s *Slot) Dim() int {
	switch s.form {
	case FormStored:
		return s.sparse.Dim()
	case FormShell:
		return s.shell.Dim()
	default:
		return 0
	}
}

// Release returns the slot to the empty state, dropping any held operator.
// Idempotent.
func (s *Slot) Release() {
	s.form = FormEmpty
	s.sparse = nil
	s.shell = nil
}

// AllocateStored releases the current occupant and installs a fresh stored
// matrix of dimension n with the given build kind, returning it.
// Returns ErrBadDimension if n <= 0; the slot is left empty on failure.
func (s *Slot) AllocateStored(n int, build BuildKind) (*Sparse, error) {
	s.Release()
	m, err := newSparse(n, build)
	if err != nil {
		return nil, fmt.Errorf("AllocateStored: %w", err)
	}
	s.form = FormStored
	s.sparse = m

	return m, nil
}

// AllocateShell releases the current occupant and installs a fresh shell
// operator of dimension n with the given action, returning it.
// Returns ErrBadDimension or ErrNilApply; the slot is left empty on failure.
func (s *Slot) AllocateShell(n int, apply ApplyFunc) (*Shell, error) {
	s.Release()
	sh, err := NewShell(n, apply)
	if err != nil {
		return nil, fmt.Errorf("AllocateShell: %w", err)
	}
	s.form = FormShell
	s.shell = sh

	return sh, nil
}

// Active returns the held operator as an Applier, whichever form is active.
// Returns ErrSlotEmpty when nothing is allocated.
func (s *Slot) Active() (Applier, error) {
	switch s.form {
	case FormStored:
		return s.sparse, nil
	case FormShell:
		return s.shell, nil
	default:
		return nil, ErrSlotEmpty
	}
}

// Sparse returns the held stored matrix.
// Returns ErrSlotEmpty when empty and ErrFormMismatch when a shell is active.
func (s *Slot) Sparse() (*Sparse, error) {
	switch s.form {
	case FormStored:
		return s.sparse, nil
	case FormShell:
		return nil, fmt.Errorf("Sparse: slot is %s: %w", s.form, ErrFormMismatch)
	default:
		return nil, ErrSlotEmpty
	}
}

// Shell returns the held shell operator.
// Returns ErrSlotEmpty when empty and ErrFormMismatch when a stored matrix
// is active.
func (s *Slot) Shell() (*Shell, error) {
	switch s.form {
	case FormShell:
		return s.shell, nil
	case FormStored:
		return nil, fmt.Errorf("Shell: slot is %s: %w", s.form, ErrFormMismatch)
	default:
		return nil, ErrSlotEmpty
	}
}
