package main

import (
	"flag"
	"fmt"
	"os"

	"checkers/experiments"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var runners = map[string]func(){
	"depth":           experiments.RunDepthExperiment,
	"weights":         experiments.RunWeightsExperiment,
	"pruning":         experiments.RunPruningExperiment,
	"sampled_pruning": experiments.RunSampledPruningExperiment,
}

func main() {
	fen := flag.String("fen", "", "Position in FEN, e.g. R:R9,10:B21,K30 (default: the opening)")
	depth := flag.Int("depth", meta.DefaultDepth, "Search depth in plies")
	side := flag.String("side", "", "Side to search for, red or black (default: the side to move)")
	experiment := flag.String("experiment", "", "Run an experiment instead: depth, weights, pruning or sampled_pruning")
	noPruning := flag.Bool("minimax", false, "Search without alpha-beta pruning")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *experiment != "" {
		run, ok := runners[*experiment]
		if !ok {
			log.Fatal().Msgf("unknown experiment %q", *experiment)
		}
		run()
		return
	}

	board := game.NewBoard()
	if *fen != "" {
		var err error
		board, err = game.ParseFEN(*fen)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to parse position")
		}
	}
	if *side != "" {
		s, ok := game.ParseSide(*side)
		if !ok {
			log.Fatal().Msgf("unknown side %q", *side)
		}
		board = board.WithTurn(s)
	}
	if *depth < 0 {
		log.Fatal().Msgf("depth must not be negative, got %d", *depth)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if *noPruning {
		options = append(options, searcher.WithoutPruning())
	}
	result := searcher.NewAlphaBeta(options...).FindBestMove(board, board.Turn(), *depth)

	fmt.Println(board)
	if !result.HasMove() {
		if winner, over := board.Winner(); over {
			fmt.Printf("no legal move, %s wins (score %d)\n", winner, result.Score)
		} else {
			fmt.Printf("no move searched (score %d)\n", result.Score)
		}
		return
	}
	fmt.Printf("best move for %s: %v (score %d)\n", board.Turn(), result.Move, result.Score)
	log.Info().Msgf("searched %d nodes, %d leaves, %d cutoffs in %v", result.Metric.Nodes, result.Metric.Leaves, result.Metric.Cutoffs, result.Metric.Duration)
}
