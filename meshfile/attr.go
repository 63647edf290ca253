// This file implements the attribute query, the reader contract of the
// package.
package meshfile

// Attributes returns the per-entity attribute values of one mesh object as
// a dense row-major entries-by-attributes slice, with a per-call Outcome
// instead of shared error state.
//
// Index resolution: every type except the node block resolves id through
// its id table; the node block always reads the whole-mesh variables and
// ignores id. A missing id table is fatal; an id that is not in the table,
// or one whose status entry is 0 (a null entity), is a warning with an
// empty result.
//
// A missing entry-count dimension is fatal. A missing attribute dimension
// means the object simply has no attributes: a warning with an empty
// result, safe to continue past. A missing or short attribute variable
// underneath present dimensions is fatal.
func (f *File) Attributes(t ObjectType, id int64) ([]float64, Outcome) {
	nm, known := namings[t]
	if !known || !nm.attribs {
		return nil, fatal(ErrUnknownObjectType, "invalid object type %s", t)
	}

	// Stage 1: resolve the object's index.
	k := 0
	if nm.indexed {
		ids, ok := f.Ints(t.idsVar())
		if !ok {
			return nil, fatal(ErrMissingVariable,
				"failed to locate %s array for %s %d", t.idsVar(), nm.label, id)
		}
		pos := -1
		for i, got := range ids {
			if got == id {
				pos = i
				break
			}
		}
		if pos < 0 {
			return nil, warning(ErrObjectNotFound,
				"failed to locate %s id %d in %s", nm.label, id, t.idsVar())
		}
		if st, ok := f.Ints(t.statusVar()); ok && pos < len(st) && st[pos] == 0 {
			return nil, warning(ErrNullEntity,
				"no attributes found for null %s %d", nm.label, id)
		}
		k = pos + 1
	}

	// Stage 2: the dimensions.
	entries, ok := f.Dim(t.entriesDim(k))
	if !ok {
		return nil, fatal(ErrMissingDimension,
			"failed to locate number of entries for %s %d", nm.label, id)
	}
	nattr, ok := f.Dim(t.attribDim(k))
	if !ok {
		return nil, warning(ErrNoAttributes,
			"no attributes found for %s %d", nm.label, id)
	}

	// Stage 3: the payload.
	vals, ok := f.Floats(t.attribVar(k))
	if !ok {
		return nil, fatal(ErrMissingVariable,
			"failed to locate attributes for %s %d", nm.label, id)
	}
	if int64(len(vals)) != entries*nattr {
		return nil, fatal(ErrShapeMismatch,
			"attributes for %s %d hold %d values, want %d", nm.label, id, len(vals), entries*nattr)
	}
	out := make([]float64, len(vals))
	copy(out, vals)

	return out, okOutcome()
}
