// chess-ai recommends moves for one side of a chess position. It takes
// a side to move and a 64-character row-major board string, and prints
// the board after its currently best move once per completed search
// depth, refining forever until stopped or until the depth ceiling.
//
// Usage:
//
//	chess-ai w "RNBQKBNR PPPPPPPP ... "   (spaces shown for clarity only)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hardikrakholiya/chess-ai/alphabeta"
	"github.com/hardikrakholiya/chess-ai/board"
	"github.com/hardikrakholiya/chess-ai/config"
	"github.com/hardikrakholiya/chess-ai/movegen"
)

func main() {
	cfgPath := flag.String("config", "", "optional path to a config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	if *debug || cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <w|b> <64-char board>\n", os.Args[0])
		os.Exit(2)
	}

	color, err := board.ParseColor(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("bad side-to-move")
	}
	b, err := board.Parse(args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("bad board string")
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if cfg.SearchTimeLimitSeconds > 0 {
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.SearchTimeLimitSeconds)*time.Second)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Debug().Msg("signal received; stopping search")
		cancel()
	}()

	gen := movegen.NewGenerator(b)
	s := new(alphabeta.Solver)
	if err := s.Init(gen, color, cfg); err != nil {
		log.Fatal().Err(err).Msg("solver init")
	}

	_, _, err = s.Solve(ctx, func(res alphabeta.DepthResult) {
		fmt.Println(res.Board)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("solve failed")
	}
}
