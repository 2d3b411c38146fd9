// Package movegen generates pseudo-legal chess moves. Moves follow the
// piece-movement rules but are not checked for leaving one's own king
// attackable; the search handles king captures as terminal positions
// instead.
//
// The generated order doubles as the search's move ordering: captures of
// a more valuable piece by a less valuable one go to the front of the
// list, which improves alpha-beta cutoffs. See
// https://www.chessprogramming.org/Move_Ordering
package movegen

import (
	"github.com/hardikrakholiya/chess-ai/board"
	"github.com/hardikrakholiya/chess-ai/move"
)

// Generator generates moves for one side on a shared board. It must
// only be used while the board is in the position the caller intends to
// generate for; the search guarantees this via its make/unmake
// discipline.
type Generator struct {
	board *board.Board
}

// NewGenerator creates a move generator bound to a board.
func NewGenerator(b *board.Board) *Generator {
	return &Generator{board: b}
}

// Board returns the board this generator is bound to.
func (g *Generator) Board() *board.Board {
	return g.board
}

// GenAll generates every pseudo-legal move for the given color, scanning
// the board in row-major order. High-priority captures are placed at the
// front of the returned list.
func (g *Generator) GenAll(color board.Color) []*move.Move {
	plays := []*move.Move{}
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			p := g.board.At(r, c)
			if p.IsEmpty() || p.Color() != color {
				continue
			}
			switch p.Kind() {
			case board.Pawn:
				plays = g.pawnMoves(plays, r, c, color)
			case board.Rook:
				plays = g.rookMoves(plays, color, r, c)
			case board.Bishop:
				plays = g.bishopMoves(plays, color, r, c)
			case board.Queen:
				plays = g.rookMoves(plays, color, r, c)
				plays = g.bishopMoves(plays, color, r, c)
			case board.Knight:
				plays = g.knightMoves(plays, color, r, c)
			case board.King:
				plays = g.kingMoves(plays, color, r, c)
			}
		}
	}
	return plays
}

// pawnForward is +1 for white (toward row 7) and -1 for black.
func pawnForward(color board.Color) int {
	if color == board.White {
		return 1
	}
	return -1
}

func pawnStartRow(color board.Color) int {
	if color == board.White {
		return 1
	}
	return 6
}

func pawnPromoRow(color board.Color) int {
	if color == board.White {
		return board.Dim - 1
	}
	return 0
}

// pawnPiece is the piece a pawn of this color becomes on reaching the
// given row: a queen on the farthest rank, itself otherwise. Pawns
// always promote to queens here; there is no under-promotion.
func pawnPiece(color board.Color, row int) board.Piece {
	if row == pawnPromoRow(color) {
		return board.NewPiece(board.Queen, color)
	}
	return board.NewPiece(board.Pawn, color)
}

func (g *Generator) pawnMoves(plays []*move.Move, r, c int, color board.Color) []*move.Move {
	r1 := r + pawnForward(color)
	if r1 < 0 || r1 >= board.Dim {
		return plays
	}

	// Diagonal captures always jump the queue, even ahead of other
	// captures already at the front.
	for _, c1 := range []int{c + 1, c - 1} {
		if c1 < 0 || c1 >= board.Dim {
			continue
		}
		target := g.board.At(r1, c1)
		if !target.IsEmpty() && target.Color() != color {
			m := &move.Move{}
			m.AddChange(g.board, r1, c1, pawnPiece(color, r1))
			m.AddChange(g.board, r, c, board.Empty)
			plays = prepend(plays, m)
		}
	}

	if g.board.At(r1, c).IsEmpty() {
		m := &move.Move{}
		m.AddChange(g.board, r1, c, pawnPiece(color, r1))
		m.AddChange(g.board, r, c, board.Empty)
		plays = append(plays, m)
	}

	// Two-square advance from the pawn's starting rank, through an
	// empty intermediate square.
	r2 := r + 2*pawnForward(color)
	if r == pawnStartRow(color) && g.board.At(r1, c).IsEmpty() && g.board.At(r2, c).IsEmpty() {
		m := &move.Move{}
		m.AddChange(g.board, r2, c, board.NewPiece(board.Pawn, color))
		m.AddChange(g.board, r, c, board.Empty)
		plays = append(plays, m)
	}
	return plays
}

func (g *Generator) rookMoves(plays []*move.Move, color board.Color, r, c int) []*move.Move {
	plays = g.addMoveInDir(plays, color, r, c, +1, 0, 1)
	plays = g.addMoveInDir(plays, color, r, c, -1, 0, 1)
	plays = g.addMoveInDir(plays, color, r, c, 0, +1, 1)
	plays = g.addMoveInDir(plays, color, r, c, 0, -1, 1)
	return plays
}

func (g *Generator) bishopMoves(plays []*move.Move, color board.Color, r, c int) []*move.Move {
	for _, dr := range []int{-1, 1} {
		for _, dc := range []int{-1, 1} {
			plays = g.addMoveInDir(plays, color, r, c, dr, dc, 1)
		}
	}
	return plays
}

func (g *Generator) knightMoves(plays []*move.Move, color board.Color, r, c int) []*move.Move {
	for _, dr := range []int{-2, -1, 1, 2} {
		for _, dc := range []int{-2, -1, 1, 2} {
			if abs(dr)+abs(dc) == 3 {
				plays = g.addMoveInDir(plays, color, r, c, dr, dc, 1)
			}
		}
	}
	return plays
}

func (g *Generator) kingMoves(plays []*move.Move, color board.Color, r, c int) []*move.Move {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			plays = g.addMoveInDir(plays, color, r, c, dr, dc, 1)
		}
	}
	return plays
}

// addMoveInDir walks outward from (r, c) in direction (dr, dc), starting
// at the given distance. It stops at the board edge or an own piece,
// emits a capture and stops at an opposing piece, and on an empty square
// emits a quiet move and keeps walking for sliding pieces.
func (g *Generator) addMoveInDir(plays []*move.Move, color board.Color, r, c, dr, dc, depth int) []*move.Move {
	r1 := r + depth*dr
	c1 := c + depth*dc

	if !board.PosOnBoard(r1, c1) {
		return plays
	}

	mover := g.board.At(r, c)
	target := g.board.At(r1, c1)

	// Own piece blocks the ray.
	if !target.IsEmpty() && target.Color() == color {
		return plays
	}

	if !target.IsEmpty() {
		// Capture; the ray stops here. Winning captures (victim worth
		// more than attacker) go to the front of the list.
		m := &move.Move{}
		m.AddChange(g.board, r1, c1, mover)
		m.AddChange(g.board, r, c, board.Empty)
		if absf(target.Value()) > absf(mover.Value()) {
			plays = prepend(plays, m)
		} else {
			plays = append(plays, m)
		}
		return plays
	}

	m := &move.Move{}
	m.AddChange(g.board, r1, c1, mover)
	m.AddChange(g.board, r, c, board.Empty)
	plays = append(plays, m)
	if mover.Kind() == board.King || mover.Kind() == board.Knight {
		return plays
	}
	return g.addMoveInDir(plays, color, r, c, dr, dc, depth+1)
}

func prepend(plays []*move.Move, m *move.Move) []*move.Move {
	return append([]*move.Move{m}, plays...)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
