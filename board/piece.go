package board

import "fmt"

// Color is the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// ParseColor parses the one-letter color tokens used on the command line.
func ParseColor(tok string) (Color, error) {
	switch tok {
	case "w", "W", "white":
		return White, nil
	case "b", "B", "black":
		return Black, nil
	}
	return White, fmt.Errorf("unrecognized color %q", tok)
}

// Kind is a piece kind, without its color.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is a kind and a color packed into one byte. The zero value is an
// empty square.
type Piece uint8

// Empty is an empty square.
const Empty Piece = 0

// NewPiece creates a piece of the given kind and color.
func NewPiece(k Kind, c Color) Piece {
	return Piece(uint8(k) | uint8(c)<<3)
}

func (p Piece) Kind() Kind {
	return Kind(p & 7)
}

func (p Piece) Color() Color {
	return Color(p>>3) & 1
}

func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Relative piece values; see
// https://en.wikipedia.org/wiki/Chess_piece_relative_value
var kindValues = [7]float32{0, 1.0, 3.5, 3.5, 5.25, 10.0, 200.0}

// Value returns the signed material value of the piece: positive for
// white, negative for black, zero for an empty square.
func (p Piece) Value() float32 {
	v := kindValues[p.Kind()]
	if p.Color() == Black {
		return -v
	}
	return v
}

const kindSymbols = ".PNBRQK"

// EmptySymbol is the board-string representation of an empty square.
const EmptySymbol = '.'

// Symbol returns the one-character representation used in 64-character
// board strings: uppercase for white, lowercase for black.
func (p Piece) Symbol() byte {
	s := kindSymbols[p.Kind()]
	if !p.IsEmpty() && p.Color() == Black {
		return s | 0x20
	}
	return s
}

// PieceFromSymbol parses a board-string symbol into a piece.
func PieceFromSymbol(s byte) (Piece, error) {
	if s == EmptySymbol {
		return Empty, nil
	}
	color := White
	upper := s
	if s >= 'a' && s <= 'z' {
		color = Black
		upper = s &^ 0x20
	}
	for k := Pawn; k <= King; k++ {
		if kindSymbols[k] == upper {
			return NewPiece(k, color), nil
		}
	}
	return Empty, fmt.Errorf("unrecognized piece symbol %q", string(rune(s)))
}

func (p Piece) String() string {
	return string(rune(p.Symbol()))
}
