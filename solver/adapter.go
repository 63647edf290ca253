// This file implements Adapter, the stateful boundary between problem
// owners and backends: it runs solves, retains the converged pairs, and
// answers indexed queries until the next solve or Reset. The Auto backend
// and Select implement configuration-time backend choice.
package solver

import (
	"fmt"

	"github.com/katalvlaran/lvlspec/operator"
)

// Adapter owns one Backend and the result lifecycle around it. A solve
// replaces any previous results; a backend error drops them entirely, so
// queries after a failed solve report the unsolved state. The zero Adapter
// is not usable — construct with NewAdapter.
//
// Adapter is not safe for concurrent use.
type Adapter struct {
	backend  Backend  // solving strategy, fixed at construction
	settings Settings // defaults applied to every solve
	pairs    []Pair   // results of the last successful solve
	stats    Stats    // counters of the last successful solve
	solved   bool     // true after a successful solve, until Reset
}

// NewAdapter wraps backend b with per-solve settings s.
// Returns ErrNilBackend when b is nil and ErrBadSettings when s carries
// negative values.
func NewAdapter(b Backend, s Settings) (*Adapter, error) {
	if b == nil {
		return nil, fmt.Errorf("NewAdapter: %w", ErrNilBackend)
	}
	var err error
	if s, err = s.normalize(); err != nil {
		return nil, fmt.Errorf("NewAdapter: %w", err)
	}

	return &Adapter{backend: b, settings: s}, nil
}

// Backend reports the wrapped backend.
func (ad *Adapter) Backend() Backend { return ad.backend }

// Settings reports the per-solve settings.
func (ad *Adapter) Settings() Settings { return ad.settings }

// SetSettings replaces the per-solve settings. It does not touch retained
// results; the new settings apply from the next Solve.
// Returns ErrBadSettings when s carries negative values.
func (ad *Adapter) SetSettings(s Settings) error {
	var err error
	if s, err = s.normalize(); err != nil {
		return fmt.Errorf("Adapter.SetSettings: %w", err)
	}
	ad.settings = s

	return nil
}

// Solve runs the backend on p, asking for requested eigenpairs, and
// reports how many converged and how many iterations the backend spent.
// Convergence shortfall is not an error: converged may be anything from 0
// to requested. A backend error is returned as-is after dropping any
// previously retained results — failed solves are never retried here.
func (ad *Adapter) Solve(p Problem, requested int) (converged, iterations int, err error) {
	if requested <= 0 {
		return 0, 0, fmt.Errorf("Adapter.Solve: requested %d pairs: %w", requested, ErrBadSettings)
	}
	s := ad.settings
	s.Pairs = requested

	pairs, stats, err := ad.backend.Solve(p, s)
	if err != nil {
		ad.Reset()

		return 0, 0, fmt.Errorf("Adapter.Solve: %s: %w", ad.backend.Name(), err)
	}
	ad.pairs = pairs
	ad.stats = stats
	ad.solved = true

	return stats.Converged, stats.Iterations, nil
}

// Eigenpair reports converged pair i of the last solve, 0 ≤ i < Converged().
// The vector inside the pair is owned by the adapter; callers copy it
// before mutating. Returns ErrNoSolve before the first successful solve and
// ErrPairOutOfRange when i is outside the converged range.
func (ad *Adapter) Eigenpair(i int) (Pair, error) {
	if !ad.solved {
		return Pair{}, fmt.Errorf("Adapter.Eigenpair: %w", ErrNoSolve)
	}
	if i < 0 || i >= len(ad.pairs) {
		return Pair{}, fmt.Errorf("Adapter.Eigenpair: index %d of %d converged: %w", i, len(ad.pairs), ErrPairOutOfRange)
	}

	return ad.pairs[i], nil
}

// Converged reports how many pairs the last successful solve produced,
// zero before any solve.
func (ad *Adapter) Converged() int { return ad.stats.Converged }

// Iterations reports the iteration count of the last successful solve,
// zero before any solve.
func (ad *Adapter) Iterations() int { return ad.stats.Iterations }

// Solved reports whether results from a successful solve are retained.
func (ad *Adapter) Solved() bool { return ad.solved }

// Reset drops retained results and counters. The backend and settings
// survive, so the adapter is immediately reusable.
func (ad *Adapter) Reset() {
	ad.pairs = nil
	ad.stats = Stats{}
	ad.solved = false
}

// Auto defers the backend choice to Select at solve time, so one adapter
// serves both stored and shell operator configurations.
type Auto struct{}

// Name identifies the backend in logs.
func (Auto) Name() string { return "auto" }

// Solve delegates to the backend Select picks for p.
func (Auto) Solve(p Problem, s Settings) ([]Pair, Stats, error) {
	return Select(p).Solve(p, s)
}

// Select picks the backend for p: Dense when both problem operators expose
// a dense form, Krylov when either is action-only. The preconditioner does
// not influence the choice — Dense ignores it, Krylov uses it.
func Select(p Problem) Backend {
	if actionOnly(p.A) || actionOnly(p.B) {
		return Krylov{}
	}

	return Dense{}
}

// actionOnly reports whether op offers nothing beyond MulVec.
func actionOnly(op operator.Applier) bool {
	if op == nil {
		return false
	}
	_, ok := op.(denser)

	return !ok
}
