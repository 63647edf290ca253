// Package meshfile reads and writes a flat scientific array-file format for
// mesh attributes: named integer dimensions plus named dimensioned variables
// (float64 or int64 payloads), with per-call outcomes instead of shared
// error state.
//
// 🚀 What is a mesh attribute file?
//
//	Simulation meshes carry per-entity attribute values (material constants,
//	thicknesses, penalties) grouped by object: the whole-mesh node block,
//	element/edge/face blocks, and named sets. The file stores each object's
//	attributes as a dense entries-by-attributes variable, found through a
//	fixed naming scheme and, for every type except the node block, an
//	id-lookup table with a parallel status table (status 0 marks a null
//	entity).
//
// ✨ Key features:
//   - File: in-memory model with ordered dimension and variable tables
//   - AddObject/MarkNull: object-level writers that maintain the id and
//     status tables and the per-object naming scheme
//   - Attributes: the reader query; every call returns its own Outcome
//     (ok, warning, or fatal) so the reader is reentrant and testable
//   - warnings mean "empty result, safe to continue": unknown id, null
//     entity, or an object with no attributes defined
//   - Encode/Decode: canonical little-endian binary layout with magic and
//     version, order-preserving round trip
//
// ⚙️ Usage:
//
//	f := meshfile.NewFile()
//	_ = f.AddObject(meshfile.ElemBlock, 10, 2, [][]float64{{1.5, 0.5}, {2.5, 0.25}})
//	attrs, out := f.Attributes(meshfile.ElemBlock, 10)
//	if out.Fatal() {
//	    return out.Err
//	}
//	// attrs is row-major entries×attributes; warnings leave it empty.
//
// Errors:
//
//	ErrUnknownObjectType - type outside the known classes, or unsupported op.
//	ErrMissingVariable   - required variable absent (fatal outcome).
//	ErrMissingDimension  - required dimension absent (fatal outcome).
//	ErrNullEntity        - object marked null in its status table (warning).
//	ErrObjectNotFound    - id absent from the id table (warning).
//	ErrNoAttributes      - no attribute dimension for the object (warning).
//	ErrDuplicateDim      - dimension name defined twice.
//	ErrDuplicateVar      - variable name defined twice.
//	ErrDuplicateObject   - object id registered twice for one type.
//	ErrUnknownDim        - variable declared over an undefined dimension.
//	ErrShapeMismatch     - payload length disagrees with dimension extents.
//	ErrBadMagic          - stream does not open with the format magic.
//	ErrBadVersion        - format version this package cannot read.
//	ErrCorrupt           - truncated or internally inconsistent stream.
//
// Complexity: queries O(objects) for the id scan plus O(entries·attributes)
// for the payload copy; Encode/Decode linear in the file size.
package meshfile
