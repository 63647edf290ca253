// Package dof is the degree-of-freedom seam between a discretization and the
// eigen system controller: it reports how many scalar unknowns the current
// mesh numbering carries, and therefore how large every vector and operator
// must be.
//
// The controller depends only on the Space interface; any mesh or numbering
// component that can report its unknown count plugs in directly. Map is the
// bundled implementation for tests, examples, and simple drivers — its
// Resize models a mesh refinement or renumbering, after which the controller
// must be reinitialized.
package dof

// Space reports the current number of degrees of freedom. Implementations
// are queried at initialization and reinitialization time; the count they
// report sizes the solution vector and every operator slot.
type Space interface {
	// NumDofs returns the current number of scalar unknowns.
	NumDofs() int
}

// Map is a renumberable Space: a plain unknown counter whose Resize stands
// in for mesh adaptation or renumbering.
type Map struct {
	n int // current unknown count
}

// NewMap returns a Map with n unknowns.
func NewMap(n int) *Map { return &Map{n: n} }

// NumDofs returns the current unknown count.
func (m *Map) NumDofs() int { return m.n }

// Resize sets the unknown count to n. Systems sized against the old count
// must be reinitialized before further use.
func (m *Map) Resize(n int) { m.n = n }
