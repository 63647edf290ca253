// This file declares the controller lifecycle states.
package eigen

// State is the lifecycle position of a System. Operations that need
// allocated operators, assembled entries, or solved results check it and
// fail fast with the matching sentinel.
type State uint8

const (
	// StateUninitialized is the construction state: no dimension, no
	// operators, no solution vector.
	StateUninitialized State = iota

	// StateReady means the operators are allocated at the current DOF
	// count and accept entries.
	StateReady

	// StateAssembled means the operators are filled and stored primaries
	// are compiled; the system can solve.
	StateAssembled

	// StateSolved means the last solve succeeded and its results answer
	// the eigenpair queries.
	StateSolved
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateAssembled:
		return "assembled"
	case StateSolved:
		return "solved"
	default:
		return "unknown"
	}
}
