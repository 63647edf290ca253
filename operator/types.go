// This file declares the Applier capability, the ApplyFunc shell action,
// and the Form/DistKind/BuildKind enumerations shared across the package.
package operator

// ApplyFunc is the action of a matrix-free operator: it computes dst = Op·src.
// Implementations must treat src as read-only and must not retain either slice.
// dst and src are guaranteed to have the operator's dimension and to be
// distinct slices.
type ApplyFunc func(dst, src []float64) error

// Applier is the single capability eigen-solvers require from an operator:
// a nominal dimension and the matrix-vector product. Both stored and shell
// representations satisfy it, so solver code never branches on the form.
type Applier interface {
	// Dim returns the operator's nominal dimension n.
	Dim() int

	// MulVec computes dst = Op·src. Both slices must have length Dim and
	// must not alias each other.
	// Returns ErrDimensionMismatch on a length violation.
	MulVec(dst, src []float64) error
}

// Form tags the active representation of a Slot.
// Exactly one form is active per slot at any time.
type Form uint8

const (
	// FormEmpty marks a slot with no operator allocated.
	FormEmpty Form = iota

	// FormStored marks a slot holding an explicitly stored Sparse matrix.
	FormStored

	// FormShell marks a slot holding a matrix-free Shell operator.
	FormShell
)

// String returns a short human-readable form tag.
func (f Form) String() string {
	switch f {
	case FormEmpty:
		return "empty"
	case FormStored:
		return "stored"
	case FormShell:
		return "shell"
	default:
		return "unknown"
	}
}

// DistKind records the requested row distribution of a registered matrix.
// This build keeps every row local; the kind is recorded and reported so the
// registration contract carries through unchanged.
type DistKind uint8

const (
	// DistAutomatic lets the storage layer pick the distribution.
	DistAutomatic DistKind = iota

	// DistSerial requests a fully local (replicated) matrix.
	DistSerial
)

// String returns a short human-readable distribution tag.
func (d DistKind) String() string {
	switch d {
	case DistAutomatic:
		return "automatic"
	case DistSerial:
		return "serial"
	default:
		return "unknown"
	}
}

// BuildKind selects the stored-matrix build: a general sparse matrix or a
// diagonal-only matrix that rejects off-diagonal entries.
type BuildKind uint8

const (
	// BuildAutomatic builds a general sparse matrix.
	BuildAutomatic BuildKind = iota

	// BuildDiagonal builds a matrix restricted to diagonal entries.
	BuildDiagonal
)

// String returns a short human-readable build tag.
func (b BuildKind) String() string {
	switch b {
	case BuildAutomatic:
		return "automatic"
	case BuildDiagonal:
		return "diagonal"
	default:
		return "unknown"
	}
}
