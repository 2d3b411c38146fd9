package alphabeta

import (
	"context"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/hardikrakholiya/chess-ai/board"
	"github.com/hardikrakholiya/chess-ai/config"
	"github.com/hardikrakholiya/chess-ai/movegen"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func setUpSolver(tp board.TestPosition, principal board.Color, depthCeiling int) (*Solver, *board.Board) {
	b := board.MustParse(tp)
	gen := movegen.NewGenerator(b)
	cfg := config.DefaultConfig()
	cfg.SearchDepthCeiling = depthCeiling
	s := new(Solver)
	err := s.Init(gen, principal, cfg)
	if err != nil {
		panic(err)
	}
	return s, b
}

func TestDepthZeroEquivalence(t *testing.T) {
	is := is.New(t)
	s, _ := setUpSolver(board.StartingPosition, board.White, 100)

	searched := &GameNode{ourTurn: true}
	val, err := s.alphabeta(context.Background(), searched, 0, -Infinity, Infinity)
	is.NoErr(err)

	evaluated := &GameNode{ourTurn: true}
	evaluated.calculateValue(s)
	is.Equal(val, evaluated.value)
}

func TestEvaluateStartingPosition(t *testing.T) {
	// From the start, material is even and no pawn is defended by
	// another pawn, so the whole score is mobility: the pawn pushes and
	// knight hops into the center-bonus region add up to 7.0 points,
	// weighted by 5.
	is := is.New(t)
	s, _ := setUpSolver(board.StartingPosition, board.White, 100)

	node := &GameNode{ourTurn: true}
	node.calculateValue(s)
	is.Equal(node.value, float32(35.0))
}

func TestMaterialPerspective(t *testing.T) {
	is := is.New(t)
	pos := board.TestPosition("R..k...." +
		"........" + "........" + "........" +
		"........" + "........" + "........" + "....K...")

	s, _ := setUpSolver(pos, board.White, 100)
	is.Equal(s.material(), float32(5.25)) // both kings cancel; the rook remains

	s2, _ := setUpSolver(pos, board.Black, 100)
	is.Equal(s2.material(), float32(-5.25))
}

func TestPawnStructureOnlyAtPrincipalPlies(t *testing.T) {
	is := is.New(t)
	pos := board.TestPosition("........" +
		"........" + "...P...." + "....P..." +
		"........" + "........" + "........" + "........")
	s, _ := setUpSolver(pos, board.White, 100)

	ours := &GameNode{ourTurn: true}
	is.Equal(s.pawnStructure(ours), float32(1)) // (3,4) defended from (2,3)

	theirs := &GameNode{ourTurn: false}
	is.Equal(s.pawnStructure(theirs), float32(0))
}

func TestPawnStructureForBlack(t *testing.T) {
	is := is.New(t)
	// Black pawns advance toward row 0, so the defender sits one row up.
	pos := board.TestPosition("........" +
		"........" + "........" + "....p..." +
		"...p...." + "........" + "........" + "........")
	s, _ := setUpSolver(pos, board.Black, 100)

	ours := &GameNode{ourTurn: true}
	is.Equal(s.pawnStructure(ours), float32(1))
}

func TestMobilitySignConvention(t *testing.T) {
	is := is.New(t)
	// A knight on (4,4) reaches 2.5 points of center bonus.
	wpos := board.TestPosition("........" +
		"........" + "........" + "........" +
		"....N..." + "........" + "........" + "........")
	s, _ := setUpSolver(wpos, board.White, 100)
	ours := &GameNode{ourTurn: true}
	is.Equal(s.mobility(ours), float32(2.5))

	bpos := board.TestPosition("........" +
		"........" + "........" + "........" +
		"....n..." + "........" + "........" + "........")
	s2, _ := setUpSolver(bpos, board.White, 100)
	theirs := &GameNode{ourTurn: false}
	is.Equal(s2.mobility(theirs), float32(-2.5))
}

func TestKingCaptureIsTerminal(t *testing.T) {
	is := is.New(t)
	s, b := setUpSolver(board.VsBareKings, board.White, 100)

	root := &GameNode{ourTurn: true}
	var kingGrab *GameNode
	for _, child := range root.Children(s) {
		if _, ok := child.move.CapturedKing(); ok {
			kingGrab = child
		}
	}
	is.True(kingGrab != nil)

	kingGrab.move.Make(b)
	defer kingGrab.move.Unmake(b)
	is.True(kingGrab.isTerminal())

	// Any remaining depth short-circuits to a static evaluation, so
	// deep and depth-0 searches agree exactly.
	v0, err := s.alphabeta(context.Background(), kingGrab, 0, -Infinity, Infinity)
	is.NoErr(err)
	v3, err := s.alphabeta(context.Background(), kingGrab, 3, -Infinity, Infinity)
	is.NoErr(err)
	is.Equal(v0, v3)
}

func TestSolveRecommendsKingCapture(t *testing.T) {
	is := is.New(t)
	s, _ := setUpSolver(board.VsBareKings, board.White, 2)

	_, best, err := s.Solve(context.Background(), nil)
	is.NoErr(err)
	_, ok := best.CapturedKing()
	is.True(ok)
}

func TestIterativeDeepeningStability(t *testing.T) {
	// Two deepening rounds from a fixed board. The board must
	// be untouched afterwards, and every per-depth output well-formed.
	is := is.New(t)
	s, b := setUpSolver(board.VsRookEndgame, board.White, 3)
	initial := b.Copy()

	var results []DepthResult
	_, _, err := s.Solve(context.Background(), func(res DepthResult) {
		is.True(b.Equals(initial)) // restored before every callback
		results = append(results, res)
	})
	is.NoErr(err)
	is.True(b.Equals(initial))

	is.Equal(len(results), 2)
	is.Equal(results[0].Depth, 2)
	is.Equal(results[1].Depth, 3)
	for _, res := range results {
		is.Equal(len(res.Board), board.SquareCount)
		_, err := board.Parse(res.Board)
		is.NoErr(err)
	}
}

func TestRootChildrenCachedAcrossRounds(t *testing.T) {
	is := is.New(t)
	s, _ := setUpSolver(board.VsRookEndgame, board.White, 3)

	var rounds [][]*GameNode
	val, _, err := s.Solve(context.Background(), func(res DepthResult) {
		rounds = append(rounds, s.RootNode().children)
	})
	is.NoErr(err)

	is.Equal(len(rounds), 2)
	is.True(len(rounds[0]) > 0)
	is.Equal(len(rounds[0]), len(rounds[1]))
	is.True(rounds[0][0] == rounds[1][0]) // same nodes, not regenerated

	root := s.RootNode()
	is.Equal(root.Value(), val) // the root keeps the last round's score
	for _, child := range root.children {
		is.True(child.Parent() == root)
	}
}

func TestChildrenMemoizedEvenIfBoardChanges(t *testing.T) {
	// The child cache is only valid for the position the node was
	// expanded at; it deliberately does not watch the board. Callers
	// must expand a node only while its position is current.
	is := is.New(t)
	s, b := setUpSolver(board.VsRookEndgame, board.White, 100)

	node := &GameNode{ourTurn: true}
	before := node.Children(s)
	b.Set(7, 7, board.NewPiece(board.Queen, board.White))
	after := node.Children(s)
	is.Equal(len(before), len(after))
	is.True(before[0] == after[0])
}

func TestSolveCancelledBeforeAnyRound(t *testing.T) {
	is := is.New(t)
	s, b := setUpSolver(board.VsRookEndgame, board.White, 100)
	initial := b.Copy()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := s.Solve(ctx, nil)
	is.True(err == ErrNoSolution)
	is.True(b.Equals(initial)) // unwound cleanly
}

func TestSolveOnBoardWithNoMoves(t *testing.T) {
	is := is.New(t)
	s, _ := setUpSolver(board.EmptyPosition, board.White, 2)
	_, _, err := s.Solve(context.Background(), nil)
	is.True(err == ErrNoSolution)
}
