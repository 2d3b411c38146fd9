package board

import (
	"errors"
	"fmt"
)

// Dim is the board dimension.
const Dim = 8

// SquareCount is the number of characters in a serialized board.
const SquareCount = Dim * Dim

// A Board is a chess board; a mutable 8x8 grid of pieces. A single
// instance is shared by the move generator and the search, which mutate
// it in place via move.Make / move.Unmake.
type Board struct {
	squares [Dim][Dim]Piece
}

var ErrBadBoardString = errors.New("board string must be exactly 64 characters")

// Parse turns a 64-character row-major board string into a Board. Row 0
// comes first. It fails fast on a wrong length or an unknown symbol;
// the engine assumes an always well-formed board past this boundary.
func Parse(repr string) (*Board, error) {
	if len(repr) != SquareCount {
		return nil, fmt.Errorf("%w (got %d)", ErrBadBoardString, len(repr))
	}
	b := &Board{}
	for i := 0; i < SquareCount; i++ {
		p, err := PieceFromSymbol(repr[i])
		if err != nil {
			return nil, fmt.Errorf("square %d: %w", i, err)
		}
		b.squares[i/Dim][i%Dim] = p
	}
	return b, nil
}

// At returns the piece at the given square.
func (b *Board) At(row, col int) Piece {
	return b.squares[row][col]
}

// Set places a piece at the given square.
func (b *Board) Set(row, col int, p Piece) {
	b.squares[row][col] = p
}

// PosOnBoard returns true if the position is on the board.
func PosOnBoard(row, col int) bool {
	return row >= 0 && row < Dim && col >= 0 && col < Dim
}

// String serializes the board back to its 64-character row-major form.
func (b *Board) String() string {
	var out [SquareCount]byte
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			out[r*Dim+c] = b.squares[r][c].Symbol()
		}
	}
	return string(out[:])
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	c := &Board{}
	c.squares = b.squares
	return c
}

// Equals compares two boards square by square.
func (b *Board) Equals(o *Board) bool {
	return b.squares == o.squares
}
