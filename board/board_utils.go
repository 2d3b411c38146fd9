package board

import "strings"

var displayRunes = map[Piece]rune{
	NewPiece(Pawn, White):   '♙',
	NewPiece(Rook, White):   '♖',
	NewPiece(Bishop, White): '♗',
	NewPiece(Queen, White):  '♕',
	NewPiece(King, White):   '♔',
	NewPiece(Knight, White): '♘',
	NewPiece(Pawn, Black):   '♟',
	NewPiece(Rook, Black):   '♜',
	NewPiece(Bishop, Black): '♝',
	NewPiece(Queen, Black):  '♛',
	NewPiece(King, Black):   '♚',
	NewPiece(Knight, Black): '♞',
	Empty:                   '▢',
}

// ToDisplayText returns a multi-line unicode rendering of the board,
// for debugging and the shell.
func (b *Board) ToDisplayText() string {
	var str strings.Builder
	str.WriteString("  0 1 2 3 4 5 6 7\n")
	for r := 0; r < Dim; r++ {
		str.WriteByte(byte('0' + r))
		for c := 0; c < Dim; c++ {
			str.WriteByte(' ')
			str.WriteRune(displayRunes[b.squares[r][c]])
		}
		str.WriteByte('\n')
	}
	return str.String()
}
