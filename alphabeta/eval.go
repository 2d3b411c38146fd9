package alphabeta

import (
	"github.com/hardikrakholiya/chess-ai/board"
)

// Evaluation weights. The score of a position is
//
//	10*material + 1*pawnStructure + 5*mobility
//
// always from the principal player's point of view.
const (
	materialWeight      = float32(10)
	pawnStructureWeight = float32(1)
	mobilityWeight      = float32(5)
)

// squareValues rewards controlling the center: the four center squares
// are worth the most, tapering off toward the edges, zero elsewhere.
var squareValues = [board.Dim][board.Dim]float32{
	2: {0, 0.25, 0.5, 0.5, 0.5, 0.5, 0.25, 0},
	3: {0, 0.25, 0.5, 1.0, 1.0, 0.5, 0.25, 0},
	4: {0, 0.25, 0.5, 1.0, 1.0, 0.5, 0.25, 0},
	5: {0, 0.25, 0.5, 0.5, 0.5, 0.5, 0.25, 0},
}

// calculateValue computes the heuristic value of this node, and caches
// it on the node.
func (g *GameNode) calculateValue(s *Solver) {
	g.value = materialWeight*s.material() +
		pawnStructureWeight*s.pawnStructure(g) +
		mobilityWeight*s.mobility(g)
}

// material is the signed sum of piece values over the whole board,
// normalized so that a positive result is a material advantage for the
// principal player.
func (s *Solver) material() float32 {
	var pts float32
	b := s.gen.Board()
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			pts += b.At(r, c).Value()
		}
	}
	if s.principal == board.Black {
		return -pts
	}
	return pts
}

// pawnStructure counts the principal player's pawns that are diagonally
// defended by another of their pawns one rank behind. It is only
// counted at nodes where the principal player is to move; at opponent
// plies it contributes nothing.
func (s *Solver) pawnStructure(g *GameNode) float32 {
	if !g.ourTurn {
		return 0
	}
	var pts float32
	b := s.gen.Board()
	pawn := board.NewPiece(board.Pawn, s.principal)
	// A defender sits one rank behind, i.e. opposite the pawn's
	// direction of travel.
	behind := -1
	if s.principal == board.Black {
		behind = 1
	}
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			if b.At(r, c) != pawn {
				continue
			}
			for _, dc := range []int{-1, 1} {
				if board.PosOnBoard(r+behind, c+dc) && b.At(r+behind, c+dc) == pawn {
					pts++
				}
			}
		}
	}
	return pts
}

// mobility scores how much of the center the side to move can reach:
// it expands the node's children and sums the square bonuses of every
// destination a reply puts a non-king piece on. The total is negated at
// opponent plies, matching the minimax sign convention.
func (s *Solver) mobility(g *GameNode) float32 {
	var m float32
	for _, child := range g.Children(s) {
		for _, ch := range child.move.Changes() {
			if ch.Piece.IsEmpty() || ch.Piece.Kind() == board.King {
				continue
			}
			m += squareValues[ch.Row][ch.Col]
		}
	}
	if !g.ourTurn {
		return -m
	}
	return m
}
