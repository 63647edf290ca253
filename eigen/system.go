// This file declares the System controller, its construction, and its
// configuration surface.
package eigen

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlspec/dof"
	"github.com/katalvlaran/lvlspec/operator"
	"github.com/katalvlaran/lvlspec/solver"
)

// System is the eigenvalue-problem controller. It owns the operator
// storage and the solver adapter, walks the lifecycle
// uninitialized → ready → assembled → solved, and answers eigenpair
// queries against the shared solution vector.
//
// One goroutine drives a System at a time; Assemble and Solve block until
// done and never reenter.
type System struct {
	name    string
	space   dof.Space
	storage *operator.Storage
	adapter *solver.Adapter

	kind             solver.Kind
	shellMats        bool
	shellPrecond     bool
	precondRequested bool
	shellApply       map[string]operator.ApplyFunc
	assembler        Assembler
	initialSpace     []float64

	solution *mat.VecDense
	state    State
	dim      int
	log      *slog.Logger
}

// New constructs an uninitialized System over space. The DOF count is not
// read until InitData, so the space may still be under construction.
// Returns ErrEmptyName, ErrNilSpace, or an adapter construction error
// (solver.ErrNilBackend, solver.ErrBadSettings).
func New(name string, space dof.Space, opts ...Option) (*System, error) {
	if name == "" {
		return nil, fmt.Errorf("New: %w", ErrEmptyName)
	}
	if space == nil {
		return nil, fmt.Errorf("New(%q): %w", name, ErrNilSpace)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	adapter, err := solver.NewAdapter(cfg.backend, cfg.settings)
	if err != nil {
		return nil, fmt.Errorf("New(%q): %w", name, err)
	}

	return &System{
		name:         name,
		space:        space,
		storage:      operator.NewStorage(),
		adapter:      adapter,
		kind:         cfg.kind,
		shellMats:    cfg.shellMats,
		shellPrecond: cfg.shellPrecond,
		shellApply:   make(map[string]operator.ApplyFunc),
		assembler:    cfg.assembler,
		state:        StateUninitialized,
		log:          cfg.log,
	}, nil
}

// Name returns the system name.
func (s *System) Name() string { return s.name }

// State returns the lifecycle state.
func (s *System) State() State { return s.state }

// Dim returns the DOF count the operators are allocated at, 0 before
// InitData.
func (s *System) Dim() int { return s.dim }

// Kind returns the configured problem kind.
func (s *System) Kind() solver.Kind { return s.kind }

// Generalized reports whether the problem involves operator B.
func (s *System) Generalized() bool { return s.kind.Generalized() }

// NumMatrices reports how many operators define the problem: 2 for
// generalized kinds, 1 otherwise.
func (s *System) NumMatrices() int {
	if s.kind.Generalized() {
		return 2
	}

	return 1
}

// Solution returns the shared DOF-indexed solution vector, nil before
// InitData. Eigenpair overwrites it; nothing else in the controller does.
func (s *System) Solution() *mat.VecDense { return s.solution }

// MatrixA returns the slot of the problem operator A. The handle is valid
// until the next Clear; re-fetch afterwards.
func (s *System) MatrixA() *operator.Slot {
	slot, _ := s.storage.Slot(operator.SlotA)

	return slot
}

// MatrixB returns the slot of the second operator B. The slot exists for
// every kind; only generalized kinds allocate into it.
func (s *System) MatrixB() *operator.Slot {
	slot, _ := s.storage.Slot(operator.SlotB)

	return slot
}

// SetProblemKind switches the problem kind. The change takes effect at the
// next InitMatrices or Reinit; on an already initialized system the
// allocated operators stay inconsistent with the new kind until then,
// which is the caller's responsibility.
func (s *System) SetProblemKind(k solver.Kind) { s.kind = k }

// UseShellMatrices switches the problem operators between stored and shell
// allocation. Takes effect at the next InitMatrices or Reinit.
func (s *System) UseShellMatrices(shell bool) { s.shellMats = shell }

// UseShellPrecond switches the preconditioner between stored and shell
// allocation. Takes effect at the next InitMatrices or Reinit.
func (s *System) UseShellPrecond(shell bool) { s.shellPrecond = shell }

// SetShellApply registers the action evaluated by the named shell slot —
// operator.SlotA, operator.SlotB, or operator.SlotPrecond — ahead of its
// allocation.
// Returns operator.ErrNilApply for a nil fn and operator.ErrMatrixNotFound
// for names outside the primary slots.
func (s *System) SetShellApply(slotName string, fn operator.ApplyFunc) error {
	if fn == nil {
		return fmt.Errorf("SetShellApply(%q): %w", slotName, operator.ErrNilApply)
	}
	switch slotName {
	case operator.SlotA, operator.SlotB, operator.SlotPrecond:
		s.shellApply[slotName] = fn

		return nil
	default:
		return fmt.Errorf("SetShellApply(%q): %w", slotName, operator.ErrMatrixNotFound)
	}
}

// SetInitialSpace hands iterative backends a starting guess for the next
// solves. The vector is copied; nil drops a previously set guess. Clear
// and Reinit drop it as well, since it is sized to the current DOF count.
func (s *System) SetInitialSpace(v *mat.VecDense) {
	if v == nil {
		s.initialSpace = nil

		return
	}
	s.initialSpace = make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		s.initialSpace[i] = v.AtVec(i)
	}
}

// Precond marks the preconditioning operator as requested and returns its
// slot. On an initialized system an empty slot is allocated immediately
// (late request); otherwise allocation happens at InitMatrices. The
// request persists like any other configuration flag.
// Returns an allocation error for a late shell request whose apply
// function was never registered.
func (s *System) Precond() (*operator.Slot, error) {
	s.precondRequested = true
	slot, _ := s.storage.Slot(operator.SlotPrecond)
	if s.dim > 0 && slot.Empty() {
		if err := s.allocatePrecond(slot); err != nil {
			return nil, fmt.Errorf("Precond(%q): %w", s.name, err)
		}
	}

	return slot, nil
}
