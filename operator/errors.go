package operator

import "errors"

// Sentinel errors for operator storage and application.
var (
	// ErrBadDimension indicates a non-positive operator dimension.
	ErrBadDimension = errors.New("operator: dimension must be positive")

	// ErrDimensionMismatch indicates a vector whose length differs from the operator dimension.
	ErrDimensionMismatch = errors.New("operator: vector length does not match operator dimension")

	// ErrIndexOutOfRange indicates an entry index outside [0, n).
	ErrIndexOutOfRange = errors.New("operator: index out of range")

	// ErrOffDiagonal indicates an off-diagonal entry written to a diagonal-build matrix.
	ErrOffDiagonal = errors.New("operator: off-diagonal entry in diagonal-build matrix")

	// ErrNilApply indicates a shell operator constructed without an apply function.
	ErrNilApply = errors.New("operator: shell apply function is nil")

	// ErrSlotEmpty indicates access to a slot that holds no operator.
	ErrSlotEmpty = errors.New("operator: slot holds no operator")

	// ErrFormMismatch indicates typed access to a slot holding the other representation.
	ErrFormMismatch = errors.New("operator: slot holds a different representation")

	// ErrEmptyName indicates a matrix registration under an empty name.
	ErrEmptyName = errors.New("operator: matrix name is empty")

	// ErrReservedName indicates a matrix registration under a primary-slot name.
	ErrReservedName = errors.New("operator: matrix name is reserved for a primary slot")

	// ErrDuplicateMatrix indicates a matrix name registered twice.
	ErrDuplicateMatrix = errors.New("operator: matrix name already registered")

	// ErrMatrixNotFound indicates a lookup of a matrix name that was never registered.
	ErrMatrixNotFound = errors.New("operator: matrix not found")
)
