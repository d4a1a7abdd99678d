// SPDX-License-Identifier: MIT
// Package matrix: Sparse, a compressed-sparse-column matrix of int8 values.

package matrix

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"
)

// Entry is one coordinate-form value.
type Entry struct {
	Row, Col int
	Val      int8
}

// Sparse stores nonzeros column by column: the values of column j are
// vals[colPtr[j]:colPtr[j+1]] at rows rowIdx[colPtr[j]:colPtr[j+1]],
// rows strictly increasing within a column.
type Sparse struct {
	rows, cols int
	colPtr     []int
	rowIdx     []int
	vals       []int8
}

// NewSparse builds a rows×cols matrix from coordinate entries.
// Stage 1 (Validate): shape ≥ 0, every entry in range.
// Stage 2 (Prepare): sort entries column-major; sum duplicates, drop zeros.
// Stage 3 (Finalize): compress into column pointers.
// Complexity: O(nnz log nnz + cols).
func NewSparse(rows, cols int, entries []Entry) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewSparse(%d,%d): %w", rows, cols, ErrBadShape)
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, fmt.Errorf("NewSparse: entry (%d,%d) in %dx%d: %w", e.Row, e.Col, rows, cols, ErrOutOfRange)
		}
	}

	es := slices.Clone(entries)
	slices.SortFunc(es, func(a, b Entry) int {
		if c := cmp.Compare(a.Col, b.Col); c != 0 {
			return c
		}
		return cmp.Compare(a.Row, b.Row)
	})

	m := &Sparse{rows: rows, cols: cols, colPtr: make([]int, cols+1)}
	for i := 0; i < len(es); {
		e := es[i]
		sum := 0
		for ; i < len(es) && es[i].Row == e.Row && es[i].Col == e.Col; i++ {
			sum += int(es[i].Val)
		}
		if sum == 0 {
			continue
		}
		if sum < math.MinInt8 || sum > math.MaxInt8 {
			return nil, fmt.Errorf("NewSparse: entry (%d,%d) sums to %d: %w", e.Row, e.Col, sum, ErrValueOverflow)
		}
		m.rowIdx = append(m.rowIdx, e.Row)
		m.vals = append(m.vals, int8(sum))
		m.colPtr[e.Col+1]++
	}
	for j := 0; j < cols; j++ {
		m.colPtr[j+1] += m.colPtr[j]
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Sparse) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Sparse) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Sparse) Shape() (int, int) { return m.rows, m.cols }

// NNZ returns the number of stored nonzeros.
func (m *Sparse) NNZ() int { return len(m.vals) }

// IsZero reports whether the matrix has no nonzeros.
func (m *Sparse) IsZero() bool { return len(m.vals) == 0 }

// At returns the value at (row, col).
// Complexity: O(log nnz_col).
func (m *Sparse) At(row, col int) (int8, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("Sparse.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	lo, hi := m.colPtr[col], m.colPtr[col+1]
	k := lo + sort.SearchInts(m.rowIdx[lo:hi], row)
	if k < hi && m.rowIdx[k] == row {
		return m.vals[k], nil
	}

	return 0, nil
}

// Column returns copies of the row indices and values of column j, or
// nils when j is out of range.
func (m *Sparse) Column(j int) ([]int, []int8) {
	if j < 0 || j >= m.cols {
		return nil, nil
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]

	return slices.Clone(m.rowIdx[lo:hi]), slices.Clone(m.vals[lo:hi])
}

// Entries returns the nonzeros in column-major order.
func (m *Sparse) Entries() []Entry {
	out := make([]Entry, 0, len(m.vals))
	for j := 0; j < m.cols; j++ {
		for k := m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			out = append(out, Entry{Row: m.rowIdx[k], Col: j, Val: m.vals[k]})
		}
	}

	return out
}

// Transpose returns mᵀ.
// Complexity: O(nnz + rows).
func (m *Sparse) Transpose() *Sparse {
	t := &Sparse{
		rows:   m.cols,
		cols:   m.rows,
		colPtr: make([]int, m.rows+1),
		rowIdx: make([]int, len(m.vals)),
		vals:   make([]int8, len(m.vals)),
	}
	for _, r := range m.rowIdx {
		t.colPtr[r+1]++
	}
	for i := 0; i < m.rows; i++ {
		t.colPtr[i+1] += t.colPtr[i]
	}
	next := slices.Clone(t.colPtr[:m.rows])
	// columns of m are visited in order, so rows of t stay sorted
	for j := 0; j < m.cols; j++ {
		for k := m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			r := m.rowIdx[k]
			t.rowIdx[next[r]] = j
			t.vals[next[r]] = m.vals[k]
			next[r]++
		}
	}

	return t
}

// Mul returns the product a·b as a Dense matrix.
// Stage 1 (Validate): a.Cols must equal b.Rows.
// Stage 2 (Execute): for each column j of b, scatter a's columns scaled by b[k,j].
// Complexity: O(rows·cols_b + Σ flops).
func Mul(a, b *Sparse) (*Dense, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("Mul: %dx%d · %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	out, err := NewDense(a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	for j := 0; j < b.cols; j++ {
		for kb := b.colPtr[j]; kb < b.colPtr[j+1]; kb++ {
			k, bv := b.rowIdx[kb], float64(b.vals[kb])
			for ka := a.colPtr[k]; ka < a.colPtr[k+1]; ka++ {
				out.data[a.rowIdx[ka]*out.c+j] += float64(a.vals[ka]) * bv
			}
		}
	}

	return out, nil
}

// Dense expands m into a Dense matrix.
// Complexity: O(rows·cols + nnz).
func (m *Sparse) Dense() *Dense {
	d, _ := NewDense(m.rows, m.cols)
	for j := 0; j < m.cols; j++ {
		for k := m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			d.data[m.rowIdx[k]*d.c+j] = float64(m.vals[k])
		}
	}

	return d
}

// String renders the dense form.
func (m *Sparse) String() string { return m.Dense().String() }
