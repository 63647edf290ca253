// This file implements Storage, the single ownership table for every
// operator of a system: the reserved primary slots and the registered
// auxiliary matrices.
package operator

import (
	"fmt"
	"sort"
)

// Reserved names of the primary slots. Auxiliary registrations under these
// names are rejected.
const (
	// SlotA names the problem operator A.
	SlotA = "A"

	// SlotB names the second operator B of a generalized problem.
	SlotB = "B"

	// SlotPrecond names the preconditioning operator.
	SlotPrecond = "Precond"
)

// record is one table entry: the slot plus the registration metadata that
// drives reallocation on resize.
type record struct {
	slot  Slot     // the operator position
	dist  DistKind // requested distribution, recorded
	build BuildKind
	aux   bool // registered via Define (not a primary)
}

// Storage is the ownership table keyed by matrix name. The three primary
// slots exist from construction under reserved names; auxiliary matrices
// join through Define and are always allocated in stored form.
// Storage is not safe for concurrent use.
type Storage struct {
	table map[string]*record
	aux   []string // registered auxiliary names, kept sorted
}

// NewStorage returns a table holding the three primary slots, all empty.
func NewStorage() *Storage {
	st := &Storage{table: make(map[string]*record)}
	for _, name := range []string{SlotA, SlotB, SlotPrecond} {
		st.table[name] = &record{}
	}

	return st
}

// reserved reports whether name belongs to a primary slot.
func reserved(name string) bool {
	return name == SlotA || name == SlotB || name == SlotPrecond
}

// Slot returns the slot registered under name, primary or auxiliary.
// Returns ErrMatrixNotFound for names never registered.
func (st *Storage) Slot(name string) (*Slot, error) {
	rec, ok := st.table[name]
	if !ok {
		return nil, fmt.Errorf("Slot(%q): %w", name, ErrMatrixNotFound)
	}

	return &rec.slot, nil
}

// Define registers a new auxiliary matrix under name, recording the
// requested distribution and build kinds, and returns its (empty) slot.
// Allocation happens later, through AllocateAux.
// Returns ErrEmptyName, ErrReservedName, or ErrDuplicateMatrix.
func (st *Storage) Define(name string, dist DistKind, build BuildKind) (*Slot, error) {
	if name == "" {
		return nil, fmt.Errorf("Define: %w", ErrEmptyName)
	}
	if reserved(name) {
		return nil, fmt.Errorf("Define(%q): %w", name, ErrReservedName)
	}
	if _, ok := st.table[name]; ok {
		return nil, fmt.Errorf("Define(%q): %w", name, ErrDuplicateMatrix)
	}

	rec := &record{dist: dist, build: build, aux: true}
	st.table[name] = rec
	st.aux = append(st.aux, name)
	sort.Strings(st.aux)

	return &rec.slot, nil
}

// Has reports whether name was registered via Define. Primary slots are not
// registrations and report false.
func (st *Storage) Has(name string) bool {
	rec, ok := st.table[name]

	return ok && rec.aux
}

// Names returns the registered auxiliary names in sorted order.
func (st *Storage) Names() []string {
	out := make([]string, len(st.aux))
	copy(out, st.aux)

	return out
}

// Spec returns the distribution and build kinds recorded for a registered
// auxiliary matrix. Returns ErrMatrixNotFound for unregistered names
// (primaries included).
func (st *Storage) Spec(name string) (DistKind, BuildKind, error) {
	rec, ok := st.table[name]
	if !ok || !rec.aux {
		return 0, 0, fmt.Errorf("Spec(%q): %w", name, ErrMatrixNotFound)
	}

	return rec.dist, rec.build, nil
}

// AllocateAux (re)allocates every registered auxiliary matrix in stored form
// at dimension n, per its recorded build kind. Previously held operators are
// released first.
// Returns ErrBadDimension (wrapped with the failing name) if n <= 0.
func (st *Storage) AllocateAux(n int) error {
	for _, name := range st.aux {
		if _, err := st.table[name].slot.AllocateStored(n, st.table[name].build); err != nil {
			return fmt.Errorf("AllocateAux(%q): %w", name, err)
		}
	}

	return nil
}

// ReleaseAll empties every slot, primary and auxiliary, keeping the
// registrations.
func (st *Storage) ReleaseAll() {
	for _, rec := range st.table {
		rec.slot.Release()
	}
}

// Reset empties every slot and drops all auxiliary registrations, returning
// the table to its construction state.
func (st *Storage) Reset() {
	st.table = make(map[string]*record)
	for _, name := range []string{SlotA, SlotB, SlotPrecond} {
		st.table[name] = &record{}
	}
	st.aux = nil
}
