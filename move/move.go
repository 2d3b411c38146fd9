// Package move implements a sparse, reversible board mutation. A move
// records the squares it writes along with their prior contents, so that
// making and unmaking it are exact inverses. See
// https://www.chessprogramming.org/Unmake_Move
package move

import (
	"fmt"
	"strings"

	"github.com/hardikrakholiya/chess-ai/board"
)

// A Change is a single square write.
type Change struct {
	Row, Col int
	Piece    board.Piece
}

// A Move is an ordered set of square writes plus the prior contents of
// the same squares. For this rule set a move always touches exactly two
// squares: the origin (cleared) and the destination.
//
// The undo values are captured when the move is built, not when it is
// made; a move stays correct across repeated make/unmake cycles as long
// as they follow the strict last-made-first-unmade discipline the search
// uses.
type Move struct {
	changes []Change
	undo    []Change
}

// AddChange records that making this move sets (row, col) to p. The
// square's current content on b is captured for undo.
func (m *Move) AddChange(b *board.Board, row, col int, p board.Piece) {
	m.undo = append(m.undo, Change{Row: row, Col: col, Piece: b.At(row, col)})
	m.changes = append(m.changes, Change{Row: row, Col: col, Piece: p})
}

// Make applies the move's writes to the board.
func (m *Move) Make(b *board.Board) {
	for _, ch := range m.changes {
		b.Set(ch.Row, ch.Col, ch.Piece)
	}
}

// Unmake restores every square the move touched to its prior content.
func (m *Move) Unmake(b *board.Board) {
	for _, ch := range m.undo {
		b.Set(ch.Row, ch.Col, ch.Piece)
	}
}

// Changes returns the move's square writes.
func (m *Move) Changes() []Change {
	return m.changes
}

// Undo returns the prior contents of the touched squares.
func (m *Move) Undo() []Change {
	return m.undo
}

// CapturedPiece returns the piece this move captures, if any. The
// captured piece is a prior square content overwritten with a piece of
// the other color.
func (m *Move) CapturedPiece() (board.Piece, bool) {
	for i, u := range m.undo {
		if u.Piece.IsEmpty() {
			continue
		}
		placed := m.changes[i].Piece
		if !placed.IsEmpty() && placed.Color() != u.Piece.Color() {
			return u.Piece, true
		}
	}
	return board.Empty, false
}

// CapturedKing reports whether this move captured a king, and whose.
// A node reached by a king capture is terminal for the search.
func (m *Move) CapturedKing() (board.Color, bool) {
	p, ok := m.CapturedPiece()
	if ok && p.Kind() == board.King {
		return p.Color(), true
	}
	return board.White, false
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	var str strings.Builder
	for i, ch := range m.changes {
		if i > 0 {
			str.WriteByte(' ')
		}
		fmt.Fprintf(&str, "(%d,%d)=%s", ch.Row, ch.Col, ch.Piece)
	}
	return str.String()
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<move %s undo %v>", m.ShortDescription(), m.undo)
}
