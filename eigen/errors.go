package eigen

import "errors"

// Sentinel errors for system construction and lifecycle ordering.
var (
	// ErrEmptyName indicates a system constructed without a name.
	ErrEmptyName = errors.New("eigen: system name is empty")

	// ErrNilSpace indicates a system constructed without a DOF space.
	ErrNilSpace = errors.New("eigen: DOF space is nil")

	// ErrAlreadyInitialized indicates InitData on an initialized system.
	ErrAlreadyInitialized = errors.New("eigen: system already initialized")

	// ErrNotInitialized indicates a lifecycle operation before InitData.
	ErrNotInitialized = errors.New("eigen: system not initialized")

	// ErrNotAssembled indicates Solve before Assemble.
	ErrNotAssembled = errors.New("eigen: system not assembled")

	// ErrNotSolved indicates a result query before a successful Solve.
	ErrNotSolved = errors.New("eigen: system not solved")

	// ErrEmptySpace indicates a DOF space reporting no unknowns at init.
	ErrEmptySpace = errors.New("eigen: DOF space reports no unknowns")

	// ErrNoAssembler indicates Assemble with stored operators but no
	// assembler to fill them.
	ErrNoAssembler = errors.New("eigen: no assembler configured")
)
