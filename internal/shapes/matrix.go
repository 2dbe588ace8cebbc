package shapes

import (
	"fmt"
	"strings"
)

// Matrix is an immutable binary occupancy grid for one orientation of a piece.
// The zero value is an empty 0x0 matrix.
type Matrix struct {
	rows, cols int
	cells      []bool // row-major
}

// NewMatrix builds a matrix from rows of 0/1 values.
// Rows must all have the same length and at least one cell must be occupied.
func NewMatrix(rows [][]int) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, fmt.Errorf("shapes: matrix must not be empty")
	}

	cols := len(rows[0])
	m := Matrix{rows: len(rows), cols: cols, cells: make([]bool, len(rows)*cols)}
	filled := 0
	for r, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("shapes: row %d has %d cells, want %d", r, len(row), cols)
		}
		for c, v := range row {
			switch v {
			case 0:
			case 1:
				m.cells[r*cols+c] = true
				filled++
			default:
				return Matrix{}, fmt.Errorf("shapes: cell (%d,%d) is %d, want 0 or 1", r, c, v)
			}
		}
	}
	if filled == 0 {
		return Matrix{}, fmt.Errorf("shapes: matrix has no occupied cell")
	}
	return m, nil
}

// mustMatrix is for the built-in shape table only.
func mustMatrix(rows [][]int) Matrix {
	m, err := NewMatrix(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// Filled reports whether the cell at (r, c) is occupied.
// Out-of-range coordinates are empty.
func (m Matrix) Filled(r, c int) bool {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return false
	}
	return m.cells[r*m.cols+c]
}

// Count returns the number of occupied cells.
func (m Matrix) Count() int {
	n := 0
	for _, v := range m.cells {
		if v {
			n++
		}
	}
	return n
}

// Cells returns a fresh copy of the grid as rows of 0/1.
func (m Matrix) Cells() [][]int {
	out := make([][]int, m.rows)
	for r := range out {
		out[r] = make([]int, m.cols)
		for c := range out[r] {
			if m.Filled(r, c) {
				out[r][c] = 1
			}
		}
	}
	return out
}

// Equal reports whether two matrices have the same shape and cells.
func (m Matrix) Equal(o Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// RotateCW returns the matrix turned 90 degrees clockwise.
func (m Matrix) RotateCW() Matrix {
	out := Matrix{rows: m.cols, cols: m.rows, cells: make([]bool, len(m.cells))}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			// (r, c) -> (c, rows-1-r)
			out.cells[c*out.cols+(m.rows-1-r)] = m.cells[r*m.cols+c]
		}
	}
	return out
}

// RotateCCW returns the matrix turned 90 degrees counter-clockwise.
func (m Matrix) RotateCCW() Matrix {
	out := Matrix{rows: m.cols, cols: m.rows, cells: make([]bool, len(m.cells))}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.cells[(m.cols-1-c)*out.cols+r] = m.cells[r*m.cols+c]
		}
	}
	return out
}

// String renders the matrix with '#' for occupied and '.' for empty cells.
func (m Matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < m.cols; c++ {
			if m.Filled(r, c) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
