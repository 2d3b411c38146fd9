// Package alphabeta implements the move recommender's search: a
// depth-limited minimax with alpha-beta pruning over a lazily expanded
// game tree, driven by an iterative-deepening loop.
package alphabeta

import (
	"context"
	"errors"

	"github.com/hardikrakholiya/chess-ai/board"
	"github.com/hardikrakholiya/chess-ai/config"
	"github.com/hardikrakholiya/chess-ai/movegen"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
		for each child of node do
			play(child)
			value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
			unplayLastMove()
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
		for each child of node do
			play(child)
			value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
			unplayLastMove()
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/

// Infinity is beyond any reachable evaluation (a full board tops out
// in the mid-thousands after weighting).
const Infinity = float32(1000000)

var ErrNoSolution = errors.New("no completed search depth; no move to recommend")

// Solver implements the minimax + alphabeta algorithm.
type Solver struct {
	gen       *movegen.Generator
	principal board.Color
	rootNode  *GameNode

	totalNodes     int
	currentIDDepth int

	config *config.Config
}

// max returns the larger of x or y.
func max(x, y float32) float32 {
	if x < y {
		return y
	}
	return x
}

func min(x, y float32) float32 {
	if x < y {
		return x
	}
	return y
}

// Init initializes the solver to recommend moves for the given color.
func (s *Solver) Init(gen *movegen.Generator, principal board.Color, cfg *config.Config) error {
	if gen == nil || gen.Board() == nil {
		return errors.New("solver needs a move generator bound to a board")
	}
	s.gen = gen
	s.principal = principal
	s.config = cfg
	s.totalNodes = 0
	return nil
}

// Principal returns the color this solver recommends moves for.
func (s *Solver) Principal() board.Color {
	return s.principal
}

// RootNode returns the root of the search tree. Its children stay
// cached across iterative-deepening rounds.
func (s *Solver) RootNode() *GameNode {
	return s.rootNode
}

// alphabeta searches below node with the board already in node's
// position. It leaves the board exactly as it found it: every child
// move is unmade right after its subtree returns.
func (s *Solver) alphabeta(ctx context.Context, node *GameNode, depth int,
	α float32, β float32) (float32, error) {

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	if depth == 0 || node.isTerminal() {
		node.calculateValue(s)
		return node.value, nil
	}

	b := s.gen.Board()
	if node.ourTurn {
		// Maximizing
		node.value = -Infinity
		for _, child := range node.Children(s) {
			child.move.Make(b)
			childValue, err := s.alphabeta(ctx, child, depth-1, α, β)
			child.move.Unmake(b)
			if err != nil {
				return node.value, err
			}
			node.value = max(node.value, childValue)
			α = max(α, node.value)
			if β <= α {
				break // β cut-off
			}
		}
		return node.value, nil
	}
	// Minimizing
	node.value = Infinity
	for _, child := range node.Children(s) {
		child.move.Make(b)
		childValue, err := s.alphabeta(ctx, child, depth-1, α, β)
		child.move.Unmake(b)
		if err != nil {
			return node.value, err
		}
		node.value = min(node.value, childValue)
		β = min(β, node.value)
		if β <= α {
			break // α cut-off
		}
	}
	return node.value, nil
}
