// Package operator owns the matrices of an algebraic eigenvalue problem:
// explicitly stored sparse operators, matrix-free "shell" operators, and the
// named storage table that keeps exactly one representation alive per slot.
//
// 🚀 What is an operator slot?
//
//	A Slot is one logical operator position (the problem matrix A, the mass
//	matrix B, the preconditioner, or a named auxiliary matrix). At any moment
//	a slot is Empty, holds a stored Sparse matrix, or holds a Shell operator
//	— never two at once. Allocation over a populated slot releases the old
//	value first, so switching representations can never leak or alias.
//
// ✨ Key features:
//   - Applier: the one capability solvers need — Dim() and MulVec(dst, src)
//   - Sparse: coordinate-map assembly (Add/Set/Zero) compiled on demand to
//     CSR for fast MulVec; Dense() export for direct dense solvers
//   - Shell: a dimension plus an ApplyFunc; no stored entries at all
//   - Slot: the stored-XOR-shell tagged variant with explicit transitions
//   - Storage: a single ownership table keyed by name; the primary slots
//     (SlotA, SlotB, SlotPrecond) are reserved names, auxiliary matrices
//     register through Define and reallocate together on resize
//
// ⚙️ Usage:
//
//	st := operator.NewStorage()
//	slot, _ := st.Slot(operator.SlotA)
//	a, _ := slot.AllocateStored(n, operator.BuildAutomatic)
//	_ = a.Add(0, 0, 2.0)       // assemble entries
//	a.Close()                  // compile to CSR
//	_ = a.MulVec(dst, src)     // dst = A·src
//
// Errors:
//
//	ErrBadDimension      - non-positive operator dimension.
//	ErrDimensionMismatch - vector length differs from operator dimension.
//	ErrIndexOutOfRange   - entry index outside [0, n).
//	ErrOffDiagonal       - off-diagonal entry in a diagonal-build matrix.
//	ErrNilApply          - shell operator constructed without an apply function.
//	ErrSlotEmpty         - slot access while no operator is allocated.
//	ErrFormMismatch      - typed access to a slot holding the other form.
//	ErrEmptyName         - registering a matrix under an empty name.
//	ErrReservedName      - registering a matrix under a primary-slot name.
//	ErrDuplicateMatrix   - registering a name twice.
//	ErrMatrixNotFound    - lookup of a name never registered.
//
// Complexity: assembly O(1) amortized per entry; CSR compile O(nnz·log nnz);
// MulVec O(nnz) stored, user-defined for shells.
package operator
