package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/hardikrakholiya/chess-ai/board"
)

func rookTakesPawn(b *board.Board) *Move {
	// White rook on (2,2) captures the black pawn on (2,5).
	m := &Move{}
	m.AddChange(b, 2, 5, board.NewPiece(board.Rook, board.White))
	m.AddChange(b, 2, 2, board.Empty)
	return m
}

func TestMakeUnmakeInverse(t *testing.T) {
	is := is.New(t)
	b := board.MustParse(board.EmptyPosition)
	b.Set(2, 2, board.NewPiece(board.Rook, board.White))
	b.Set(2, 5, board.NewPiece(board.Pawn, board.Black))
	before := b.Copy()

	m := rookTakesPawn(b)
	m.Make(b)
	is.Equal(b.At(2, 5), board.NewPiece(board.Rook, board.White))
	is.True(b.At(2, 2).IsEmpty())
	m.Unmake(b)
	is.True(b.Equals(before))
}

func TestRepeatedMakeUnmake(t *testing.T) {
	// Undo values are captured at construction, so a move must survive
	// any number of make/unmake cycles.
	is := is.New(t)
	b := board.MustParse(board.EmptyPosition)
	b.Set(2, 2, board.NewPiece(board.Rook, board.White))
	b.Set(2, 5, board.NewPiece(board.Pawn, board.Black))
	before := b.Copy()

	m := rookTakesPawn(b)
	for i := 0; i < 5; i++ {
		m.Make(b)
		m.Unmake(b)
	}
	is.True(b.Equals(before))
}

func TestCapturedPiece(t *testing.T) {
	is := is.New(t)
	b := board.MustParse(board.EmptyPosition)
	b.Set(2, 2, board.NewPiece(board.Rook, board.White))
	b.Set(2, 5, board.NewPiece(board.Pawn, board.Black))

	m := rookTakesPawn(b)
	captured, ok := m.CapturedPiece()
	is.True(ok)
	is.Equal(captured, board.NewPiece(board.Pawn, board.Black))

	// A quiet move captures nothing.
	quiet := &Move{}
	quiet.AddChange(b, 3, 2, board.NewPiece(board.Rook, board.White))
	quiet.AddChange(b, 2, 2, board.Empty)
	_, ok = quiet.CapturedPiece()
	is.True(!ok)
}

func TestCapturedKing(t *testing.T) {
	is := is.New(t)
	b := board.MustParse(board.EmptyPosition)
	b.Set(0, 0, board.NewPiece(board.Rook, board.White))
	b.Set(0, 3, board.NewPiece(board.King, board.Black))

	m := &Move{}
	m.AddChange(b, 0, 3, board.NewPiece(board.Rook, board.White))
	m.AddChange(b, 0, 0, board.Empty)

	color, ok := m.CapturedKing()
	is.True(ok)
	is.Equal(color, board.Black)

	// The undo side mirrors the writes: what stood on each touched
	// square, king included.
	undo := m.Undo()
	is.Equal(len(undo), len(m.Changes()))
	is.Equal(undo[0].Piece, board.NewPiece(board.King, board.Black))
	is.Equal(undo[1].Piece, board.NewPiece(board.Rook, board.White))

	pawnGrab := rookTakesPawn(b)
	_, ok = pawnGrab.CapturedKing()
	is.True(!ok)
}
