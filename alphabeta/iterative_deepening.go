package alphabeta

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/hardikrakholiya/chess-ai/move"
)

// DepthResult is what one completed round of iterative deepening
// recommends: the best root move found at that depth and the board it
// leads to, serialized in the 64-character wire form.
type DepthResult struct {
	Depth int
	Value float32
	Move  *move.Move
	Board string
}

// Solve runs the iterative-deepening loop: alpha-beta from the root at
// depth 2, then 3, and so on up to the configured ceiling, each round
// with a fresh search window. After every completed round the per-depth
// callback receives that round's recommendation; deeper rounds may
// revise it. There is no convergence test. The loop stops at the depth
// ceiling or when ctx is done, whichever comes first, and returns the
// last completed round's result.
//
// The shared board is guaranteed to be back in its initial position
// whenever cb runs and when Solve returns.
func (s *Solver) Solve(ctx context.Context, cb func(DepthResult)) (float32, *move.Move, error) {
	tstart := time.Now()
	log.Debug().
		Int("depth-ceiling", s.config.SearchDepthCeiling).
		Str("principal", s.principal.String()).
		Msg("iterative-deepening-config")

	// The root node is the board position prior to making any moves;
	// its children are cached once and reused at every depth, since the
	// root position never changes.
	s.rootNode = &GameNode{ourTurn: true}

	var bestV float32
	var bestMove *move.Move
	var solveErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func(ctx context.Context) {
		defer wg.Done()
		for p := 2; p <= s.config.SearchDepthCeiling; p++ {
			s.currentIDDepth = p
			val, err := s.alphabeta(ctx, s.rootNode, p, -Infinity, Infinity)
			if err != nil {
				log.Debug().Err(err).Int("depth", p).Msg("round-abandoned")
				return
			}
			best, ok := lo.Find(s.rootNode.children, func(c *GameNode) bool {
				return c.value == val
			})
			if !ok {
				// Can only happen on a board with no moves at all for
				// the principal player.
				solveErr = ErrNoSolution
				return
			}
			bestV = val
			bestMove = best.move

			b := s.gen.Board()
			best.move.Make(b)
			serialized := b.String()
			best.move.Unmake(b)

			log.Debug().
				Int("depth", p).
				Float32("value", val).
				Str("move", best.move.ShortDescription()).
				Int("expanded-nodes", s.totalNodes).
				Msg("round-complete")
			if cb != nil {
				cb(DepthResult{Depth: p, Value: val, Move: best.move, Board: serialized})
			}
		}
	}(ctx)

	wg.Wait()
	if bestMove == nil && solveErr == nil {
		solveErr = ErrNoSolution
	}
	log.Info().
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Int("expanded-nodes", s.totalNodes).
		Int("deepest-round", s.currentIDDepth).
		Msg("solve-returning")
	return bestV, bestMove, solveErr
}
