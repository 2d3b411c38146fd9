// Package shell is an interactive analysis front end for the move
// recommender: load a position, inspect it, generate moves, and run the
// solver while it streams per-depth recommendations.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/hardikrakholiya/chess-ai/alphabeta"
	"github.com/hardikrakholiya/chess-ai/board"
	"github.com/hardikrakholiya/chess-ai/config"
	"github.com/hardikrakholiya/chess-ai/move"
	"github.com/hardikrakholiya/chess-ai/movegen"
)

var errNoData = errors.New("no data in command")

type shellcmd struct {
	cmd  string
	args []string
}

// extractFields tokenizes one input line, honoring shell-style quoting
// (board strings of dots survive unharmed either way, but quoted
// arguments should behave as a user expects).
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(strings.TrimSpace(line))
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	return &shellcmd{cmd: fields[0], args: fields[1:]}, nil
}

func (c *shellcmd) arg(i int) string {
	if i < len(c.args) {
		return c.args[i]
	}
	return ""
}

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	curBoard *board.Board
	curColor board.Color

	// solveCancel is only touched from the command loop; solving is how
	// the loop learns the worker goroutine finished on its own.
	solveCancel context.CancelFunc
	solveWg     sync.WaitGroup
	solving     atomic.Bool
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mchess-ai>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) loadPosition(colorTok, repr string) error {
	color, err := board.ParseColor(colorTok)
	if err != nil {
		return err
	}
	b, err := board.Parse(repr)
	if err != nil {
		return err
	}
	sc.curColor = color
	sc.curBoard = b
	showMessage(b.ToDisplayText(), sc.l.Stderr())
	return nil
}

func (sc *ShellController) showPosition() error {
	if sc.curBoard == nil {
		return fmt.Errorf("no position loaded; use `load <w|b> <64-char board>`")
	}
	showMessage(fmt.Sprintf("%s to move\n%s", sc.curColor, sc.curBoard.ToDisplayText()),
		sc.l.Stderr())
	return nil
}

func (sc *ShellController) generateMoves(colorTok string) error {
	if sc.curBoard == nil {
		return fmt.Errorf("no position loaded")
	}
	color := sc.curColor
	if colorTok != "" {
		var err error
		color, err = board.ParseColor(colorTok)
		if err != nil {
			return err
		}
	}
	gen := movegen.NewGenerator(sc.curBoard)
	plays := gen.GenAll(color)
	lines := lo.Map(plays, func(m *move.Move, i int) string {
		return fmt.Sprintf("%3d: %s", i+1, m.ShortDescription())
	})
	showMessage(strings.Join(lines, "\n"), sc.l.Stderr())
	showMessage(fmt.Sprintf("%d moves for %s", len(plays), color), sc.l.Stderr())
	return nil
}

// solve kicks off the iterative-deepening search in the background and
// streams one line per completed depth. Only one search runs at a time;
// `stop` cancels it and waits for the worker to unwind.
func (sc *ShellController) solve(pliesTok string) error {
	if sc.curBoard == nil {
		return fmt.Errorf("no position loaded")
	}
	if sc.solving.Load() {
		return fmt.Errorf("a search is already running; `stop` it first")
	}
	cfg := *sc.cfg
	if pliesTok != "" {
		plies, err := strconv.Atoi(pliesTok)
		if err != nil || plies < 2 {
			return fmt.Errorf("plies must be an integer >= 2")
		}
		cfg.SearchDepthCeiling = plies
	}

	// Search a copy so the loaded position stays untouched while the
	// solver mutates its working board.
	gen := movegen.NewGenerator(sc.curBoard.Copy())
	s := new(alphabeta.Solver)
	if err := s.Init(gen, sc.curColor, &cfg); err != nil {
		return err
	}

	if sc.solveCancel != nil {
		// release the previous, already-finished search's context
		sc.solveCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	sc.solveCancel = cancel
	sc.solving.Store(true)
	sc.solveWg.Add(1)
	go func() {
		defer sc.solveWg.Done()
		defer sc.solving.Store(false)
		val, m, err := s.Solve(ctx, func(res alphabeta.DepthResult) {
			showMessage(fmt.Sprintf("depth %d (%.2f): %s -> %s",
				res.Depth, res.Value, res.Move.ShortDescription(), res.Board), sc.l.Stderr())
		})
		if err != nil {
			showMessage("solve: "+err.Error(), sc.l.Stderr())
		} else {
			showMessage(fmt.Sprintf("best move %s (%.2f)", m.ShortDescription(), val),
				sc.l.Stderr())
		}
	}()
	return nil
}

func (sc *ShellController) stop() error {
	if !sc.solving.Load() {
		return fmt.Errorf("no search is running")
	}
	sc.solveCancel()
	sc.solveWg.Wait()
	return nil
}

func (sc *ShellController) set(key, val string) error {
	switch key {
	case "depth":
		n, err := strconv.Atoi(val)
		if err != nil || n < 2 {
			return fmt.Errorf("depth must be an integer >= 2")
		}
		sc.cfg.SearchDepthCeiling = n
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func usage(w io.Writer) {
	showMessage(`Commands:
  load <w|b> <64-char board>   load a position and side to move
  show                         display the current position
  gen [w|b]                    list generated moves (default: side to move)
  solve [plies]                search, printing each completed depth
  stop                         cancel a running search
  set depth <n>                set the iterative-deepening ceiling
  exit                         quit`, w)
}

func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		cmd, err := extractFields(line)
		if err == errNoData {
			continue
		} else if err != nil {
			showMessage("parse: "+err.Error(), sc.l.Stderr())
			continue
		}

		switch cmd.cmd {
		case "exit", "quit":
			if sc.solveCancel != nil {
				sc.solveCancel()
			}
			sc.solveWg.Wait()
			log.Debug().Msg("exiting shell")
			return
		case "help":
			usage(sc.l.Stderr())
		case "load":
			if len(cmd.args) != 2 {
				err = fmt.Errorf("usage: load <w|b> <64-char board>")
			} else {
				err = sc.loadPosition(cmd.arg(0), cmd.arg(1))
			}
		case "show":
			err = sc.showPosition()
		case "gen":
			err = sc.generateMoves(cmd.arg(0))
		case "solve":
			err = sc.solve(cmd.arg(0))
		case "stop":
			err = sc.stop()
		case "set":
			if len(cmd.args) != 2 {
				err = fmt.Errorf("usage: set <key> <value>")
			} else {
				err = sc.set(cmd.arg(0), cmd.arg(1))
			}
		default:
			err = fmt.Errorf("unknown command %q; try `help`", cmd.cmd)
		}
		if err != nil {
			showMessage(err.Error(), sc.l.Stderr())
		}
	}
}
