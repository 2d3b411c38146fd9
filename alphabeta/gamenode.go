package alphabeta

import (
	"fmt"

	"github.com/hardikrakholiya/chess-ai/move"
)

// a game node is one ply of the search tree: the move that leads into
// it from the parent position, whose turn it is once that move is made,
// and the lazily computed replies.
type GameNode struct {
	move   *move.Move // nil at the root
	parent *GameNode
	// ourTurn is true when the principal player (the side we are
	// recommending a move for) is to move at this node.
	ourTurn bool
	value   float32
	// children is computed at most once and then cached. The cache is
	// only valid for the board position the node was expanded at; see
	// Children.
	children []*GameNode
}

// Children expands and caches this node's child nodes, one per
// pseudo-legal reply of the side to move.
//
// The expansion reads the solver's shared board, so it must only be
// called while the board is in exactly the position this node
// represents, i.e. immediately after the node's own move was made (or,
// for the root, in the initial position). Subsequent calls return the
// cached list without looking at the board at all; that is what lets
// the root's children survive across iterative-deepening rounds.
func (g *GameNode) Children(s *Solver) []*GameNode {
	if g.children == nil {
		color := s.principal
		if !g.ourTurn {
			color = s.principal.Other()
		}
		plays := s.gen.GenAll(color)
		g.children = make([]*GameNode, len(plays))
		for i, play := range plays {
			g.children[i] = &GameNode{
				move:    play,
				parent:  g,
				ourTurn: !g.ourTurn,
			}
		}
		s.totalNodes += len(plays)
	}
	return g.children
}

// isTerminal reports whether the move leading into this node ended the
// game by capturing a king.
func (g *GameNode) isTerminal() bool {
	if g.move == nil {
		return false
	}
	_, captured := g.move.CapturedKing()
	return captured
}

// Move returns the move that leads into this node from its parent.
func (g *GameNode) Move() *move.Move {
	return g.move
}

// Value returns the node's cached score. It is meaningless until the
// node has been searched or evaluated.
func (g *GameNode) Value() float32 {
	return g.value
}

func (g *GameNode) Parent() *GameNode {
	return g.parent
}

// String provides a string just for debugging purposes.
func (g *GameNode) String() string {
	return fmt.Sprintf("<gamenode move %v, ourTurn %v, val %v, children %d>",
		g.move, g.ourTurn, g.value, len(g.children))
}
