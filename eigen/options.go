// This file declares the construction options of New and the assembler
// callback contract.
package eigen

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvlspec/solver"
)

// Assembler fills the system operators with problem entries through the
// slot handles (MatrixA, MatrixB, Matrix). Assemble invokes it; the
// controller never inspects the values it writes.
type Assembler interface {
	Assemble(sys *System) error
}

// AssembleFunc adapts a plain function to the Assembler interface.
type AssembleFunc func(sys *System) error

// Assemble calls f.
func (f AssembleFunc) Assemble(sys *System) error { return f(sys) }

// config collects construction-time choices before the System exists.
type config struct {
	kind         solver.Kind
	backend      solver.Backend
	settings     solver.Settings
	assembler    Assembler
	shellMats    bool
	shellPrecond bool
	log          *slog.Logger
}

// defaultConfig returns the construction defaults: a standard
// non-Hermitian problem, automatic backend choice, default solver
// settings, stored operators, and a discard logger.
func defaultConfig() config {
	return config{
		kind:     solver.NonHermitian,
		backend:  solver.Auto{},
		settings: solver.DefaultSettings(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option adjusts one construction choice of New.
type Option func(*config)

// WithKind sets the problem kind (default NonHermitian).
func WithKind(k solver.Kind) Option {
	return func(c *config) { c.kind = k }
}

// WithBackend sets the solving backend (default Auto). A nil backend
// surfaces as solver.ErrNilBackend from New.
func WithBackend(b solver.Backend) Option {
	return func(c *config) { c.backend = b }
}

// WithSettings sets the solver working parameters (default
// solver.DefaultSettings). Settings.Pairs is the per-solve pair request.
func WithSettings(s solver.Settings) Option {
	return func(c *config) { c.settings = s }
}

// WithAssembler sets the operator fill callback invoked by Assemble.
func WithAssembler(a Assembler) Option {
	return func(c *config) { c.assembler = a }
}

// WithShellMatrices allocates the problem operators as shells instead of
// stored matrices. Register their actions with SetShellApply before
// InitData.
func WithShellMatrices() Option {
	return func(c *config) { c.shellMats = true }
}

// WithShellPrecond allocates the preconditioner as a shell when it is
// requested.
func WithShellPrecond() Option {
	return func(c *config) { c.shellPrecond = true }
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
