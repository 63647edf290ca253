// This file implements Sparse, the stored representation: coordinate-map
// assembly compiled on demand to compressed-sparse-row form.
package operator

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// entryKey addresses one stored entry by row and column.
type entryKey struct {
	row int
	col int
}

// Sparse is an explicitly stored sparse matrix of fixed square dimension.
//
// Assembly is a coordinate map: Add accumulates, Set overwrites, Zero drops
// every entry. Close compiles the map to CSR; MulVec compiles lazily when
// needed and reuses the compiled form until the entries change again.
// The zero value is not usable; construct with NewSparse or NewDiagonal.
type Sparse struct {
	n        int                  // square dimension
	build    BuildKind            // general or diagonal-only
	entries  map[entryKey]float64 // assembly storage
	compiled bool                 // CSR arrays are current
	rowPtr   []int                // CSR row pointers, length n+1
	colIdx   []int                // CSR column indices, length nnz
	vals     []float64            // CSR values, length nnz
}

// NewSparse returns an empty general sparse matrix of dimension n×n.
// Returns ErrBadDimension if n <= 0.
func NewSparse(n int) (*Sparse, error) {
	return newSparse(n, BuildAutomatic)
}

// NewDiagonal returns an empty diagonal-build sparse matrix of dimension n×n.
// Add and Set reject entries with row != col.
// Returns ErrBadDimension if n <= 0.
func NewDiagonal(n int) (*Sparse, error) {
	return newSparse(n, BuildDiagonal)
}

func newSparse(n int, build BuildKind) (*Sparse, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewSparse: n=%d: %w", n, ErrBadDimension)
	}

	return &Sparse{
		n:       n,
		build:   build,
		entries: make(map[entryKey]float64),
	}, nil
}

// Dim returns the square dimension n.
func (m *Sparse) Dim() int { return m.n }

// Build returns the build kind the matrix was constructed with.
func (m *Sparse) Build() BuildKind { return m.build }

// NNZ returns the number of stored entries (explicit zeros included).
func (m *Sparse) NNZ() int { return len(m.entries) }

// Closed reports whether the compiled CSR form is current.
func (m *Sparse) Closed() bool { return m.compiled }

// check validates an entry index against the dimension and build kind.
func (m *Sparse) check(op string, i, j int) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("%s(%d,%d): dim %d: %w", op, i, j, m.n, ErrIndexOutOfRange)
	}
	if m.build == BuildDiagonal && i != j {
		return fmt.Errorf("%s(%d,%d): %w", op, i, j, ErrOffDiagonal)
	}

	return nil
}

// Add accumulates v into entry (i, j), reopening assembly if the matrix was
// compiled. Returns ErrIndexOutOfRange or ErrOffDiagonal on a bad index.
// Complexity: O(1) amortized.
func (m *Sparse) Add(i, j int, v float64) error {
	if err := m.check("Add", i, j); err != nil {
		return err
	}
	m.entries[entryKey{i, j}] += v
	m.compiled = false

	return nil
}

// Set overwrites entry (i, j) with v, reopening assembly if the matrix was
// compiled. Returns ErrIndexOutOfRange or ErrOffDiagonal on a bad index.
// Complexity: O(1) amortized.
func (m *Sparse) Set(i, j int, v float64) error {
	if err := m.check("Set", i, j); err != nil {
		return err
	}
	m.entries[entryKey{i, j}] = v
	m.compiled = false

	return nil
}

// At returns entry (i, j); absent entries read as zero.
// Returns ErrIndexOutOfRange on a bad index (diagonal builds read
// off-diagonal positions as zero without error).
func (m *Sparse) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("At(%d,%d): dim %d: %w", i, j, m.n, ErrIndexOutOfRange)
	}

	return m.entries[entryKey{i, j}], nil
}

// Zero drops every stored entry, keeping the dimension and build kind.
func (m *Sparse) Zero() {
	m.entries = make(map[entryKey]float64)
	m.compiled = false
	m.rowPtr = nil
	m.colIdx = nil
	m.vals = nil
}

// Close compiles the coordinate map into CSR form with rows in order and
// columns sorted within each row. Idempotent; assembly calls after Close
// reopen the matrix and invalidate the compiled form.
// Complexity: O(nnz·log nnz) time, O(nnz) extra memory.
func (m *Sparse) Close() {
	if m.compiled {
		return
	}

	// Stage 1: collect and order the entry keys row-major.
	keys := make([]entryKey, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].row != keys[b].row {
			return keys[a].row < keys[b].row
		}

		return keys[a].col < keys[b].col
	})

	// Stage 2: fill the CSR arrays.
	m.rowPtr = make([]int, m.n+1)
	m.colIdx = make([]int, len(keys))
	m.vals = make([]float64, len(keys))
	var (
		row int // current fill row
		k   int // key cursor
		key entryKey
	)
	for k, key = range keys {
		for row < key.row {
			row++
			m.rowPtr[row] = k
		}
		m.colIdx[k] = key.col
		m.vals[k] = m.entries[key]
	}
	for row < m.n {
		row++
		m.rowPtr[row] = len(keys)
	}
	m.compiled = true
}

// MulVec computes dst = M·src over the compiled CSR form, compiling first if
// assembly reopened the matrix. dst and src must not alias.
// Returns ErrDimensionMismatch if either slice length differs from Dim.
// Complexity: O(nnz).
func (m *Sparse) MulVec(dst, src []float64) error {
	if len(dst) != m.n || len(src) != m.n {
		return fmt.Errorf("MulVec: dst %d, src %d, dim %d: %w", len(dst), len(src), m.n, ErrDimensionMismatch)
	}
	m.Close()

	var (
		r   int     // row cursor
		k   int     // CSR cursor
		sum float64 // row accumulator
	)
	for r = 0; r < m.n; r++ {
		sum = 0
		for k = m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			sum += m.vals[k] * src[m.colIdx[k]]
		}
		dst[r] = sum
	}

	return nil
}

// Dense exports the matrix as a dense gonum matrix, for backends that need
// explicit entries. Complexity: O(n² + nnz) time and O(n²) memory.
func (m *Sparse) Dense() *mat.Dense {
	d := mat.NewDense(m.n, m.n, nil)
	for k, v := range m.entries {
		d.Set(k.row, k.col, v)
	}

	return d
}

// IsSymmetric reports whether every entry matches its transpose within tol.
// Complexity: O(nnz).
func (m *Sparse) IsSymmetric(tol float64) bool {
	for k, v := range m.entries {
		if math.Abs(v-m.entries[entryKey{k.col, k.row}]) > tol {
			return false
		}
	}

	return true
}
