// This file implements the lifecycle operations: Clear, InitData,
// InitMatrices, Reinit, Assemble, and Solve.
package eigen

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlspec/operator"
	"github.com/katalvlaran/lvlspec/solver"
)

// Clear releases every operator, drops the auxiliary registrations, the
// solver results, and the solution vector, and returns the system to its
// construction state. Configuration persists: kind, representation flags,
// settings, assembler, logger, registered shell actions, and the
// preconditioner request. Idempotent.
func (s *System) Clear() {
	s.storage.Reset()
	s.adapter.Reset()
	s.solution = nil
	s.initialSpace = nil
	s.dim = 0
	s.state = StateUninitialized
}

// InitData performs the first-time sizing: it derives the DOF count from
// the space, allocates the solution vector, allocates the operators via
// InitMatrices, and moves to Ready.
// Returns ErrAlreadyInitialized when called out of the construction state
// (use Reinit), ErrEmptySpace when the space reports no unknowns, or an
// InitMatrices error (the system stays uninitialized then).
func (s *System) InitData() error {
	if s.state != StateUninitialized {
		return fmt.Errorf("InitData(%q): state %s: %w", s.name, s.state, ErrAlreadyInitialized)
	}
	n := s.space.NumDofs()
	if n <= 0 {
		return fmt.Errorf("InitData(%q): %d unknowns: %w", s.name, n, ErrEmptySpace)
	}

	s.dim = n
	s.solution = mat.NewVecDense(n, nil)
	if err := s.InitMatrices(); err != nil {
		s.dim = 0
		s.solution = nil

		return fmt.Errorf("InitData(%q): %w", s.name, err)
	}
	s.log.Info("system initialized",
		"system", s.name, "dofs", n, "kind", s.kind.String(), "matrices", s.NumMatrices())

	return nil
}

// InitMatrices allocates the operator slots at the current DOF count: A
// always; B exactly when the kind is generalized; the preconditioner when
// it has been requested; every registered auxiliary matrix in stored form.
// Slots the configuration no longer needs are released. Shell slots need
// their action registered through SetShellApply first. Callable again on
// an initialized system to re-apply changed kind or representation flags —
// entries are lost and the state returns to Ready.
// Returns ErrNotInitialized before InitData; allocation errors wrap
// operator.ErrNilApply for an unregistered shell action.
func (s *System) InitMatrices() error {
	if s.dim == 0 {
		return fmt.Errorf("InitMatrices(%q): %w", s.name, ErrNotInitialized)
	}

	// Stage 1: the problem operators.
	if err := s.allocatePrimary(operator.SlotA); err != nil {
		return fmt.Errorf("InitMatrices(%q): %w", s.name, err)
	}
	slotB, _ := s.storage.Slot(operator.SlotB)
	if s.kind.Generalized() {
		if err := s.allocatePrimary(operator.SlotB); err != nil {
			return fmt.Errorf("InitMatrices(%q): %w", s.name, err)
		}
	} else {
		slotB.Release()
	}

	// Stage 2: the preconditioner, only ever allocated on request.
	slotP, _ := s.storage.Slot(operator.SlotPrecond)
	if s.precondRequested {
		if err := s.allocatePrecond(slotP); err != nil {
			return fmt.Errorf("InitMatrices(%q): %w", s.name, err)
		}
	} else {
		slotP.Release()
	}

	// Stage 3: the registered auxiliaries, always stored.
	if err := s.storage.AllocateAux(s.dim); err != nil {
		return fmt.Errorf("InitMatrices(%q): %w", s.name, err)
	}
	s.state = StateReady

	return nil
}

// allocatePrimary allocates one problem slot per the shell/stored flag.
func (s *System) allocatePrimary(name string) error {
	slot, err := s.storage.Slot(name)
	if err != nil {
		return err
	}
	if s.shellMats {
		_, err = slot.AllocateShell(s.dim, s.shellApply[name])
	} else {
		_, err = slot.AllocateStored(s.dim, operator.BuildAutomatic)
	}
	if err != nil {
		return fmt.Errorf("matrix %s: %w", name, err)
	}

	return nil
}

// allocatePrecond allocates the preconditioner slot per its flag.
func (s *System) allocatePrecond(slot *operator.Slot) error {
	var err error
	if s.shellPrecond {
		_, err = slot.AllocateShell(s.dim, s.shellApply[operator.SlotPrecond])
	} else {
		_, err = slot.AllocateStored(s.dim, operator.BuildAutomatic)
	}
	if err != nil {
		return fmt.Errorf("matrix %s: %w", operator.SlotPrecond, err)
	}

	return nil
}

// Reinit re-derives the DOF count from the space and reallocates the
// solution vector and every operator at the new size. Kind, representation
// flags, and auxiliary registrations survive; entries and solver results
// do not. Call it after any change to the underlying space, before the
// next Assemble.
// Returns ErrNotInitialized before InitData and ErrEmptySpace when the
// space reports no unknowns.
func (s *System) Reinit() error {
	if s.state == StateUninitialized {
		return fmt.Errorf("Reinit(%q): %w", s.name, ErrNotInitialized)
	}
	n := s.space.NumDofs()
	if n <= 0 {
		return fmt.Errorf("Reinit(%q): %d unknowns: %w", s.name, n, ErrEmptySpace)
	}

	s.dim = n
	s.solution = mat.NewVecDense(n, nil)
	s.initialSpace = nil
	if err := s.InitMatrices(); err != nil {
		return fmt.Errorf("Reinit(%q): %w", s.name, err)
	}
	s.adapter.Reset()
	s.log.Info("system reinitialized", "system", s.name, "dofs", n)

	return nil
}

// Assemble invokes the configured assembler to fill the operators, then
// compiles the stored ones. Repeatable from Assembled or Solved — the
// assembler sees the entries as it left them; call Reinit first for a
// clean slate. With all-shell problem operators the assembler is optional.
// Returns ErrNotInitialized before InitData, ErrNoAssembler when a stored
// problem operator has no assembler to fill it, or the assembler's error.
func (s *System) Assemble() error {
	if s.state == StateUninitialized {
		return fmt.Errorf("Assemble(%q): %w", s.name, ErrNotInitialized)
	}
	if s.assembler == nil && s.storedPrimaries() {
		return fmt.Errorf("Assemble(%q): %w", s.name, ErrNoAssembler)
	}
	if s.assembler != nil {
		if err := s.assembler.Assemble(s); err != nil {
			return fmt.Errorf("Assemble(%q): %w", s.name, err)
		}
	}
	s.compileStored()
	s.state = StateAssembled
	s.log.Debug("system assembled", "system", s.name, "dofs", s.dim)

	return nil
}

// storedPrimaries reports whether any problem operator is a stored matrix.
func (s *System) storedPrimaries() bool {
	if s.MatrixA().Form() == operator.FormStored {
		return true
	}

	return s.MatrixB().Form() == operator.FormStored
}

// compileStored closes every stored slot so MulVec and dense export see
// the compiled entries.
func (s *System) compileStored() {
	names := []string{operator.SlotA, operator.SlotB, operator.SlotPrecond}
	names = append(names, s.storage.Names()...)
	for _, name := range names {
		slot, err := s.storage.Slot(name)
		if err != nil {
			continue
		}
		if m, err := slot.Sparse(); err == nil {
			m.Close()
		}
	}
}

// Solve hands the assembled problem to the adapter, requesting the
// configured number of pairs (Settings.Pairs). Convergence shortfall is
// visible through NumConverged and is never an error; a backend failure
// propagates wrapped, drops any previous results, leaves the state at
// Assembled, and is not retried here.
// Returns ErrNotInitialized or ErrNotAssembled out of order, an empty-slot
// error for a missing operator, or the backend error.
func (s *System) Solve() error {
	switch s.state {
	case StateUninitialized:
		return fmt.Errorf("Solve(%q): %w", s.name, ErrNotInitialized)
	case StateReady:
		return fmt.Errorf("Solve(%q): %w", s.name, ErrNotAssembled)
	}

	problem, err := s.problem()
	if err != nil {
		return fmt.Errorf("Solve(%q): %w", s.name, err)
	}
	var (
		solveID   = uuid.NewString()
		requested = s.adapter.Settings().Pairs
	)
	s.log.Info("solve started",
		"system", s.name, "solve_id", solveID,
		"kind", s.kind.String(), "dofs", s.dim, "requested", requested)

	converged, iterations, err := s.adapter.Solve(problem, requested)
	if err != nil {
		s.state = StateAssembled
		s.log.Error("solve failed", "system", s.name, "solve_id", solveID, "err", err)

		return fmt.Errorf("Solve(%q): %w", s.name, err)
	}
	s.state = StateSolved
	s.log.Info("solve finished",
		"system", s.name, "solve_id", solveID,
		"converged", converged, "iterations", iterations)

	return nil
}

// problem binds the active operator representations into a solver problem.
func (s *System) problem() (solver.Problem, error) {
	a, err := s.MatrixA().Active()
	if err != nil {
		return solver.Problem{}, fmt.Errorf("matrix %s: %w", operator.SlotA, err)
	}
	p := solver.Problem{Kind: s.kind, A: a, InitialSpace: s.initialSpace}
	if s.kind.Generalized() {
		if p.B, err = s.MatrixB().Active(); err != nil {
			return solver.Problem{}, fmt.Errorf("matrix %s: %w", operator.SlotB, err)
		}
	}
	if s.precondRequested {
		slot, _ := s.storage.Slot(operator.SlotPrecond)
		if p.Precond, err = slot.Active(); err != nil {
			return solver.Problem{}, fmt.Errorf("matrix %s: %w", operator.SlotPrecond, err)
		}
	}

	return p, nil
}
