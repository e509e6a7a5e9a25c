package agent

import (
	"checkers/game"
	"checkers/searcher"

	"golang.org/x/exp/rand"
)

type samplingAgent struct {
	searcher *searcher.AlphaBeta
	depth    int
	window   int
	rng      *rand.Rand
}

// NewSamplingAgent returns an agent for varied self-play. It picks uniformly
// among the root moves scoring within window of the best move. A window of 0
// only breaks ties randomly.
func NewSamplingAgent(s *searcher.AlphaBeta, depth, window int, seed uint64) Agent {
	return &samplingAgent{
		searcher: s,
		depth:    max(depth, 1),
		window:   max(window, 0),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a *samplingAgent) FindMove(board game.Board) searcher.SearchResult {
	scored, metric := a.searcher.ScoreMoves(board, board.Turn(), a.depth)
	if len(scored) == 0 {
		return searcher.SearchResult{Score: game.LossScore, Metric: metric}
	}

	chosen := sample(a.rng, candidates(scored, a.window))
	return searcher.SearchResult{Move: chosen.Move, Score: chosen.Score, Metric: metric}
}

// candidates keeps the moves whose score is within window of the best.
func candidates(scored []searcher.ScoredMove, window int) []searcher.ScoredMove {
	best := scored[0].Score
	for _, s := range scored[1:] {
		best = max(best, s.Score)
	}
	kept := make([]searcher.ScoredMove, 0, len(scored))
	for _, s := range scored {
		if s.Score >= best-window {
			kept = append(kept, s)
		}
	}
	return kept
}

func sample(rng *rand.Rand, moves []searcher.ScoredMove) searcher.ScoredMove {
	return moves[rng.Intn(len(moves))]
}
