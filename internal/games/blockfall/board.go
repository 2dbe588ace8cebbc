package blockfall

import "github.com/vovakirdan/blockfall/internal/shapes"

// cell is one board position. Locked cells remember their kind for coloring.
type cell struct {
	filled bool
	kind   shapes.Kind
}

// Board is the grid of locked cells, indexed [row][col] with row 0 at the top.
type Board struct {
	cols, rows int
	cells      [][]cell
}

// NewBoard creates an empty board.
func NewBoard(cols, rows int) *Board {
	b := &Board{cols: cols, rows: rows, cells: make([][]cell, rows)}
	for r := range b.cells {
		b.cells[r] = make([]cell, cols)
	}
	return b
}

// Cols returns the board width in cells.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height in cells.
func (b *Board) Rows() int { return b.rows }

// At returns the kind locked at (row, col) and whether the cell is filled.
func (b *Board) At(row, col int) (shapes.Kind, bool) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return 0, false
	}
	c := b.cells[row][col]
	return c.kind, c.filled
}

// Collides reports whether matrix m placed with its top-left at (row, col)
// leaves the board sideways or through the floor, or overlaps a locked cell.
// Cells above row 0 are allowed so pieces can enter from the top.
func (b *Board) Collides(m shapes.Matrix, row, col int) bool {
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if !m.Filled(r, c) {
				continue
			}
			br, bc := row+r, col+c
			if bc < 0 || bc >= b.cols || br >= b.rows {
				return true
			}
			if br >= 0 && b.cells[br][bc].filled {
				return true
			}
		}
	}
	return false
}

// Lock writes the piece into the board.
// Returns false if any of its cells is above the visible field.
func (b *Board) Lock(p Piece) bool {
	inside := true
	p.each(func(row, col int) {
		if row < 0 {
			inside = false
			return
		}
		b.cells[row][col] = cell{filled: true, kind: p.Kind}
	})
	return inside
}

// ClearLines removes every full row, drops the rows above, and returns
// how many rows were removed.
func (b *Board) ClearLines() int {
	write := b.rows - 1
	cleared := 0
	for read := b.rows - 1; read >= 0; read-- {
		if b.rowFull(read) {
			cleared++
			continue
		}
		if write != read {
			copy(b.cells[write], b.cells[read])
		}
		write--
	}
	for ; write >= 0; write-- {
		for c := range b.cells[write] {
			b.cells[write][c] = cell{}
		}
	}
	return cleared
}

func (b *Board) rowFull(row int) bool {
	for _, c := range b.cells[row] {
		if !c.filled {
			return false
		}
	}
	return true
}

// Height returns the number of rows from the highest filled cell to the floor.
func (b *Board) Height() int {
	for r := 0; r < b.rows; r++ {
		for _, c := range b.cells[r] {
			if c.filled {
				return b.rows - r
			}
		}
	}
	return 0
}
