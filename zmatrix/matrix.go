package zmatrix

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Matrix is a rectangular matrix of exact integers stored as rows.
// The column count is explicit so that a matrix with zero rows still knows
// the ambient dimension it lives in — empty inequality and equation sets
// are the norm in polyhedral geometry, not an edge case.
type Matrix struct {
	rows []Vector
	cols int
}

// NewMatrix returns a rows×cols zero matrix.
// Returns ErrBadShape if either count is negative.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewMatrix(%d,%d): %w", rows, cols, ErrBadShape)
	}
	m := &Matrix{rows: make([]Vector, rows), cols: cols}
	for i := range m.rows {
		m.rows[i] = NewVector(cols)
	}

	return m, nil
}

// FromRows builds a matrix with the given column count from copies of the
// supplied rows. Returns ErrDimensionMismatch if any row has a different
// length, ErrBadShape if cols is negative.
func FromRows(cols int, rows ...Vector) (*Matrix, error) {
	if cols < 0 {
		return nil, fmt.Errorf("FromRows(cols=%d): %w", cols, ErrBadShape)
	}
	m := &Matrix{rows: make([]Vector, 0, len(rows)), cols: cols}
	for i, r := range rows {
		if r.Len() != cols {
			return nil, fmt.Errorf("FromRows: row %d has length %d, want %d: %w", i, r.Len(), cols, ErrDimensionMismatch)
		}
		m.rows = append(m.rows, r.Clone())
	}

	return m, nil
}

// FromInt64 builds a rows×cols matrix from entries in row-major order.
// Returns ErrDimensionMismatch if len(entries) != rows*cols.
func FromInt64(rows, cols int, entries ...int64) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(entries) != rows*cols {
		return nil, fmt.Errorf("FromInt64: %d entries for a %d×%d matrix: %w", len(entries), rows, cols, ErrDimensionMismatch)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.rows[i][j].SetInt64(entries[i*cols+j])
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m, err := NewMatrix(n, n)
	if err != nil {
		panic(fmt.Sprintf("zmatrix: Identity(%d): %v", n, err))
	}
	for i := 0; i < n; i++ {
		m.rows[i][i].SetInt64(1)
	}

	return m
}

// NumRows returns the number of rows.
func (m *Matrix) NumRows() int { return len(m.rows) }

// NumCols returns the number of columns.
func (m *Matrix) NumCols() int { return m.cols }

// Row returns row i without copying; mutating the result mutates the
// matrix. Panics if i is out of range.
func (m *Matrix) Row(i int) Vector {
	if i < 0 || i >= len(m.rows) {
		panic(fmt.Sprintf("zmatrix: Row(%d): matrix has %d rows", i, len(m.rows)))
	}

	return m.rows[i]
}

// AppendRow appends a copy of v as the last row.
// Returns ErrDimensionMismatch if v has the wrong length.
func (m *Matrix) AppendRow(v Vector) error {
	if v.Len() != m.cols {
		return fmt.Errorf("AppendRow: row length %d, want %d: %w", v.Len(), m.cols, ErrDimensionMismatch)
	}
	m.rows = append(m.rows, v.Clone())

	return nil
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{rows: make([]Vector, len(m.rows)), cols: m.cols}
	for i := range m.rows {
		c.rows[i] = m.rows[i].Clone()
	}

	return c
}

// Transpose returns a new cols×rows matrix with m's rows as columns.
func (m *Matrix) Transpose() *Matrix {
	t, err := NewMatrix(m.cols, len(m.rows))
	if err != nil {
		panic(fmt.Sprintf("zmatrix: Transpose: %v", err))
	}
	for i := range m.rows {
		for j := 0; j < m.cols; j++ {
			t.rows[j][i].Set(m.rows[i][j])
		}
	}

	return t
}

// VStack returns a new matrix whose rows are a's rows followed by b's rows.
// Returns ErrDimensionMismatch if the column counts differ.
func VStack(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.cols {
		return nil, fmt.Errorf("VStack: widths %d and %d: %w", a.cols, b.cols, ErrDimensionMismatch)
	}
	c := &Matrix{rows: make([]Vector, 0, len(a.rows)+len(b.rows)), cols: a.cols}
	for i := range a.rows {
		c.rows = append(c.rows, a.rows[i].Clone())
	}
	for i := range b.rows {
		c.rows = append(c.rows, b.rows[i].Clone())
	}

	return c, nil
}

// Mul returns the matrix product a·b.
// Returns ErrDimensionMismatch unless a.NumCols() == b.NumRows().
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.cols != len(b.rows) {
		return nil, fmt.Errorf("Mul: inner dimensions %d and %d: %w", a.cols, len(b.rows), ErrDimensionMismatch)
	}
	c, err := NewMatrix(len(a.rows), b.cols)
	if err != nil {
		return nil, err
	}
	for i := range a.rows {
		for k := 0; k < a.cols; k++ {
			if a.rows[i][k].Sign() == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				c.rows[i][j].Add(c.rows[i][j], mulInto(a.rows[i][k], b.rows[k][j]))
			}
		}
	}

	return c, nil
}

// Equal reports whether m and o have identical shape and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.cols != o.cols || len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// SortRows sorts the rows in ascending lexicographic order, in place.
// The sort is deterministic; duplicate rows keep a stable relative order.
func (m *Matrix) SortRows() {
	sort.SliceStable(m.rows, func(i, j int) bool {
		return m.rows[i].Cmp(m.rows[j]) < 0
	})
}

// mulInto returns a·b as a fresh big.Int.
func mulInto(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

// String renders the matrix as {(..),(..)} on one line.
func (m *Matrix) String() string {
	parts := make([]string, len(m.rows))
	for i := range m.rows {
		parts[i] = m.rows[i].String()
	}

	return "{" + strings.Join(parts, ",") + "}"
}
