package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

// kickOffsets are the horizontal shifts tried, in order, when a rotation collides.
var kickOffsets = [...]int{0, -1, 1, -2, 2}

// Piece is the falling tetromino: its kind, current orientation and the
// board position of the matrix's top-left cell.
type Piece struct {
	Kind   shapes.Kind
	Matrix shapes.Matrix
	Row    int
	Col    int
}

// spawnPiece places a kind's spawn orientation horizontally centered at the top.
func spawnPiece(cat *shapes.Catalog, kind shapes.Kind, cols int) (Piece, error) {
	m, err := cat.Shape(kind)
	if err != nil {
		return Piece{}, err
	}
	return Piece{
		Kind:   kind,
		Matrix: m,
		Row:    0,
		Col:    (cols - m.Cols()) / 2,
	}, nil
}

// Moved returns the piece shifted by (dr, dc).
func (p Piece) Moved(dr, dc int) Piece {
	p.Row += dr
	p.Col += dc
	return p
}

// Rotated returns the piece turned clockwise around the same top-left cell.
func (p Piece) Rotated() Piece {
	p.Matrix = p.Matrix.RotateCW()
	return p
}

// each calls fn for every occupied board cell of the piece.
func (p Piece) each(fn func(row, col int)) {
	for r := 0; r < p.Matrix.Rows(); r++ {
		for c := 0; c < p.Matrix.Cols(); c++ {
			if p.Matrix.Filled(r, c) {
				fn(p.Row+r, p.Col+c)
			}
		}
	}
}

// fits reports whether the piece can occupy its position on b.
func (p Piece) fits(b *Board) bool {
	return !b.Collides(p.Matrix, p.Row, p.Col)
}

// rotateOn returns the rotated piece with the first kick offset that fits.
// A rotation that pokes through a wall is pulled back inside before kicking.
func (p Piece) rotateOn(b *Board) (Piece, bool) {
	r := p.Rotated()
	r.Col = core.Clamp(r.Col, 0, b.Cols()-r.Matrix.Cols())
	for _, dc := range kickOffsets {
		if k := r.Moved(0, dc); k.fits(b) {
			return k, true
		}
	}
	return p, false
}

// dropDistance returns how many rows the piece can fall before landing.
func (p Piece) dropDistance(b *Board) int {
	n := 0
	for p.Moved(n+1, 0).fits(b) {
		n++
	}
	return n
}
