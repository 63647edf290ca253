// This file implements the in-memory File model: named dimensions, typed
// dimensioned variables, and the object-level convenience writers.
package meshfile

import "fmt"

// variable is one named payload: float64 or int64 values laid out row-major
// over the named dimensions.
type variable struct {
	dims   []string
	floats []float64
	ints   []int64
	isInt  bool
}

// File is the in-memory model of a flat scientific array file: an ordered
// dimension table (name to extent) and an ordered variable table (name to
// typed payload). Build one with the Add methods or Decode, query it with
// Dim/Floats/Ints and Attributes.
//
// A File is not safe for concurrent mutation; concurrent reads are fine.
type File struct {
	dims     map[string]int64
	dimOrder []string
	vars     map[string]*variable
	varOrder []string
}

// NewFile returns an empty file model.
func NewFile() *File {
	return &File{
		dims: make(map[string]int64),
		vars: make(map[string]*variable),
	}
}

// AddDim defines dimension name with the given extent.
// Returns ErrDuplicateDim on a redefined name and ErrShapeMismatch on a
// negative extent.
func (f *File) AddDim(name string, extent int64) error {
	if _, ok := f.dims[name]; ok {
		return fmt.Errorf("AddDim(%q): %w", name, ErrDuplicateDim)
	}
	if extent < 0 {
		return fmt.Errorf("AddDim(%q): extent %d: %w", name, extent, ErrShapeMismatch)
	}
	f.dims[name] = extent
	f.dimOrder = append(f.dimOrder, name)

	return nil
}

// shape validates a new variable declaration and returns the payload length
// the dimensions demand (1 for a dimensionless scalar).
func (f *File) shape(op, name string, dims []string) (int64, error) {
	if _, ok := f.vars[name]; ok {
		return 0, fmt.Errorf("%s(%q): %w", op, name, ErrDuplicateVar)
	}
	var (
		want = int64(1)
		ext  int64
		ok   bool
	)
	for _, d := range dims {
		if ext, ok = f.dims[d]; !ok {
			return 0, fmt.Errorf("%s(%q): dimension %q: %w", op, name, d, ErrUnknownDim)
		}
		want *= ext
	}

	return want, nil
}

// AddFloats defines a float64 variable over the named dimensions, copying
// data in. The payload length must equal the product of the extents.
// Returns ErrDuplicateVar, ErrUnknownDim, or ErrShapeMismatch.
func (f *File) AddFloats(name string, dims []string, data []float64) error {
	want, err := f.shape("AddFloats", name, dims)
	if err != nil {
		return err
	}
	if int64(len(data)) != want {
		return fmt.Errorf("AddFloats(%q): %d values for extent %d: %w", name, len(data), want, ErrShapeMismatch)
	}
	f.vars[name] = &variable{
		dims:   append([]string(nil), dims...),
		floats: append([]float64(nil), data...),
	}
	f.varOrder = append(f.varOrder, name)

	return nil
}

// AddInts defines an int64 variable over the named dimensions, copying data
// in. The payload length must equal the product of the extents.
// Returns ErrDuplicateVar, ErrUnknownDim, or ErrShapeMismatch.
func (f *File) AddInts(name string, dims []string, data []int64) error {
	want, err := f.shape("AddInts", name, dims)
	if err != nil {
		return err
	}
	if int64(len(data)) != want {
		return fmt.Errorf("AddInts(%q): %d values for extent %d: %w", name, len(data), want, ErrShapeMismatch)
	}
	f.vars[name] = &variable{
		dims:  append([]string(nil), dims...),
		ints:  append([]int64(nil), data...),
		isInt: true,
	}
	f.varOrder = append(f.varOrder, name)

	return nil
}

// Dim returns the extent of the named dimension.
func (f *File) Dim(name string) (int64, bool) {
	ext, ok := f.dims[name]

	return ext, ok
}

// Floats returns the payload of a float64 variable. The slice is the
// file's own storage; callers must not modify it.
func (f *File) Floats(name string) ([]float64, bool) {
	v, ok := f.vars[name]
	if !ok || v.isInt {
		return nil, false
	}

	return v.floats, true
}

// Ints returns the payload of an int64 variable. The slice is the file's
// own storage; callers must not modify it.
func (f *File) Ints(name string) ([]int64, bool) {
	v, ok := f.vars[name]
	if !ok || !v.isInt {
		return nil, false
	}

	return v.ints, true
}

// VarDims returns a copy of the dimension names of a variable.
func (f *File) VarDims(name string) ([]string, bool) {
	v, ok := f.vars[name]
	if !ok {
		return nil, false
	}

	return append([]string(nil), v.dims...), true
}

// DimNames returns the dimension names in definition order.
func (f *File) DimNames() []string {
	return append([]string(nil), f.dimOrder...)
}

// VarNames returns the variable names in definition order.
func (f *File) VarNames() []string {
	return append([]string(nil), f.varOrder...)
}

// findID returns the position of id in the type's id table, or -1.
func (f *File) findID(t ObjectType, id int64) int {
	v, ok := f.vars[t.idsVar()]
	if !ok {
		return -1
	}
	for i, got := range v.ints {
		if got == id {
			return i
		}
	}

	return -1
}

// objectCount returns the number of registered objects of the type.
func (f *File) objectCount(t ObjectType) int {
	v, ok := f.vars[t.idsVar()]
	if !ok {
		return 0
	}

	return len(v.ints)
}

// registerObject appends id to the type's id table with status 1, creating
// the count dimension and both tables on first use. Callers validate first;
// this step cannot fail.
func (f *File) registerObject(t ObjectType, id int64) {
	var (
		cd = t.countDim()
		iv = t.idsVar()
		sv = t.statusVar()
	)
	if _, ok := f.dims[cd]; !ok {
		f.dims[cd] = 0
		f.dimOrder = append(f.dimOrder, cd)
		f.vars[iv] = &variable{dims: []string{cd}, isInt: true}
		f.varOrder = append(f.varOrder, iv)
		f.vars[sv] = &variable{dims: []string{cd}, isInt: true}
		f.varOrder = append(f.varOrder, sv)
	}
	f.dims[cd]++
	f.vars[iv].ints = append(f.vars[iv].ints, id)
	f.vars[sv].ints = append(f.vars[sv].ints, 1)
}

// AddObject registers one mesh object and its per-entity attributes: the
// id and status table rows (for indexed types), the entry-count dimension,
// and, when attribs is non-empty, the attribute dimension and variable.
// attribs holds one row per entity; all rows must share one length. The
// node block ignores id and may be added once.
// Returns ErrUnknownObjectType for an unknown type or side-set attributes,
// ErrShapeMismatch on inconsistent shapes, ErrDuplicateObject on a re-used
// id, and ErrDuplicateDim/ErrDuplicateVar on colliding manual definitions.
func (f *File) AddObject(t ObjectType, id int64, entries int, attribs [][]float64) error {
	if !t.Valid() {
		return fmt.Errorf("AddObject: %s: %w", t, ErrUnknownObjectType)
	}
	if entries < 0 {
		return fmt.Errorf("AddObject(%s): %d entries: %w", t, entries, ErrShapeMismatch)
	}

	// Stage 1: validate the attribute block shape.
	nattr := 0
	if len(attribs) > 0 {
		if len(attribs) != entries {
			return fmt.Errorf("AddObject(%s %d): %d attribute rows for %d entries: %w",
				t, id, len(attribs), entries, ErrShapeMismatch)
		}
		nattr = len(attribs[0])
		for _, row := range attribs {
			if len(row) != nattr {
				return fmt.Errorf("AddObject(%s %d): ragged attribute rows: %w", t, id, ErrShapeMismatch)
			}
		}
	}
	if nattr > 0 && !namings[t].attribs {
		return fmt.Errorf("AddObject(%s %d): attributes: %w", t, id, ErrUnknownObjectType)
	}

	// Stage 2: pre-check every name the registration will claim.
	k := 0
	if namings[t].indexed {
		if f.findID(t, id) >= 0 {
			return fmt.Errorf("AddObject(%s %d): %w", t, id, ErrDuplicateObject)
		}
		k = f.objectCount(t) + 1
	}
	if _, ok := f.dims[t.entriesDim(k)]; ok {
		return fmt.Errorf("AddObject(%s %d): %s: %w", t, id, t.entriesDim(k), ErrDuplicateDim)
	}
	if nattr > 0 {
		if _, ok := f.dims[t.attribDim(k)]; ok {
			return fmt.Errorf("AddObject(%s %d): %s: %w", t, id, t.attribDim(k), ErrDuplicateDim)
		}
		if _, ok := f.vars[t.attribVar(k)]; ok {
			return fmt.Errorf("AddObject(%s %d): %s: %w", t, id, t.attribVar(k), ErrDuplicateVar)
		}
	}

	// Stage 3: mutate; nothing below can fail.
	if namings[t].indexed {
		f.registerObject(t, id)
	}
	_ = f.AddDim(t.entriesDim(k), int64(entries))
	if nattr == 0 {
		return nil
	}
	_ = f.AddDim(t.attribDim(k), int64(nattr))
	flat := make([]float64, 0, entries*nattr)
	for _, row := range attribs {
		flat = append(flat, row...)
	}
	_ = f.AddFloats(t.attribVar(k), []string{t.entriesDim(k), t.attribDim(k)}, flat)

	return nil
}

// MarkNull sets the status-table entry of the object to 0, marking it a
// null entity. Queries against it then warn with ErrNullEntity.
// Returns ErrUnknownObjectType for types without a status table (the node
// block included), ErrMissingVariable when the table was never created,
// and ErrObjectNotFound for an unregistered id.
func (f *File) MarkNull(t ObjectType, id int64) error {
	if !t.Valid() || !namings[t].indexed {
		return fmt.Errorf("MarkNull(%s): %w", t, ErrUnknownObjectType)
	}
	st, ok := f.vars[t.statusVar()]
	if !ok {
		return fmt.Errorf("MarkNull(%s %d): %s: %w", t, id, t.statusVar(), ErrMissingVariable)
	}
	pos := f.findID(t, id)
	if pos < 0 {
		return fmt.Errorf("MarkNull(%s %d): %w", t, id, ErrObjectNotFound)
	}
	st.ints[pos] = 0

	return nil
}
