// This file defines the sentinel errors of the meshfile package.
package meshfile

import "errors"

var (
	// ErrUnknownObjectType indicates an object type outside the known classes,
	// or an operation the type does not support (side sets carry no
	// attributes, the node block has no status table).
	ErrUnknownObjectType = errors.New("meshfile: unknown object type")

	// ErrMissingVariable indicates a required variable absent from the file.
	ErrMissingVariable = errors.New("meshfile: required variable missing")

	// ErrMissingDimension indicates a required dimension absent from the file.
	ErrMissingDimension = errors.New("meshfile: required dimension missing")

	// ErrNullEntity indicates a query against an object marked null in its
	// status table.
	ErrNullEntity = errors.New("meshfile: object is a null entity")

	// ErrObjectNotFound indicates an object id absent from its id table.
	ErrObjectNotFound = errors.New("meshfile: object id not found")

	// ErrNoAttributes indicates an object with no attribute dimension defined.
	ErrNoAttributes = errors.New("meshfile: no attributes defined")

	// ErrDuplicateDim indicates a dimension name defined twice.
	ErrDuplicateDim = errors.New("meshfile: dimension already defined")

	// ErrDuplicateVar indicates a variable name defined twice.
	ErrDuplicateVar = errors.New("meshfile: variable already defined")

	// ErrDuplicateObject indicates an object id registered twice for one type.
	ErrDuplicateObject = errors.New("meshfile: object id already registered")

	// ErrUnknownDim indicates a variable declared over an undefined dimension.
	ErrUnknownDim = errors.New("meshfile: unknown dimension")

	// ErrShapeMismatch indicates a payload whose length disagrees with the
	// product of its dimension extents.
	ErrShapeMismatch = errors.New("meshfile: payload does not match dimensions")

	// ErrBadMagic indicates a stream that does not start with the format magic.
	ErrBadMagic = errors.New("meshfile: bad magic")

	// ErrBadVersion indicates a format version this package cannot read.
	ErrBadVersion = errors.New("meshfile: unsupported format version")

	// ErrCorrupt indicates a truncated or internally inconsistent stream.
	ErrCorrupt = errors.New("meshfile: corrupt stream")
)
