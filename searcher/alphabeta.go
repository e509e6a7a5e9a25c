package searcher

import (
	"fmt"

	"checkers/experiments/metrics"
	"checkers/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *AlphaBeta)

// AlphaBeta is a fixed-depth negamax searcher. It holds configuration only,
// so one value can serve any number of sequential or concurrent searches.
//
// Terminal positions are scored by the searcher itself: the evaluator only
// ever sees positions whose side to move has a legal move.
type AlphaBeta struct {
	evaluate     game.Evaluator
	pruning      bool
	newCollector func() metrics.Collector
}

func WithEvaluator(evaluate game.Evaluator) Option {
	return func(s *AlphaBeta) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithWeights evaluates with material weights. It panics on weights that fail
// game.Weights.Validate.
func WithWeights(weights game.Weights) Option {
	if err := weights.Validate(); err != nil {
		panic(fmt.Errorf("search weights: %w", err))
	}
	return func(s *AlphaBeta) {
		s.evaluate = weights.Material
	}
}

func WithMetrics() Option {
	return func(s *AlphaBeta) {
		s.newCollector = metrics.NewCollector
	}
}

// WithoutPruning turns the search into plain minimax.
func WithoutPruning() Option {
	return func(s *AlphaBeta) {
		s.pruning = false
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := &AlphaBeta{ // Default values
		evaluate:     game.DefaultWeights.Material,
		pruning:      true,
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// FindBestMove searches depth plies ahead for side, which must be the side to
// move. Among equally scored moves the first in generation order wins.
// It panics when the request breaks the search contract.
func (s *AlphaBeta) FindBestMove(board game.Board, side game.Side, depth int) SearchResult {
	mustBeSearchable(board, side, depth)

	c := s.newCollector()
	c.Start(depth, s.pruning)
	c.AddNode()

	result := SearchResult{}
	moves := game.GenerateMoves(board, side)
	if depth == 0 || len(moves) == 0 {
		c.AddLeaf()
		result.Score = s.leaf(board, 0)
	} else {
		alpha, beta := -Infinity, Infinity
		best := -Infinity
		for _, move := range moves {
			score := -s.negamax(board.Play(move), depth-1, 1, -beta, -alpha, c)
			if score > best {
				best = score
				result.Move = move
			}
			if best > alpha {
				alpha = best
			}
		}
		result.Score = best
	}
	result.Metric = c.Complete()

	log.Debug().Msgf("Searched %s to depth %d: move %v, score %d", side, depth, result.Move, result.Score)
	return result
}

// ScoreMoves returns the exact score of every root move, each searched with a
// full window to depth-1 further plies (at least one leaf evaluation), and the
// metrics of the whole search.
func (s *AlphaBeta) ScoreMoves(board game.Board, side game.Side, depth int) ([]ScoredMove, metrics.SearchMetric) {
	mustBeSearchable(board, side, depth)

	c := s.newCollector()
	c.Start(depth, s.pruning)
	c.AddNode()
	childDepth := max(depth-1, 0)

	moves := game.GenerateMoves(board, side)
	scored := make([]ScoredMove, 0, len(moves))
	for _, move := range moves {
		score := -s.negamax(board.Play(move), childDepth, 1, -Infinity, Infinity, c)
		scored = append(scored, ScoredMove{Move: move, Score: score})
	}
	if len(moves) == 0 {
		c.AddLeaf()
	}
	return scored, c.Complete()
}

// negamax scores board for its side to move. Fail-soft: a result at or below
// alpha is an upper bound, at or above beta a lower bound.
func (s *AlphaBeta) negamax(board game.Board, depth, ply, alpha, beta int, c metrics.Collector) int {
	c.AddNode()
	if depth == 0 {
		c.AddLeaf()
		return s.leaf(board, ply)
	}

	moves := game.GenerateMoves(board, board.Turn())
	if len(moves) == 0 {
		c.AddLeaf()
		return game.LossScore + ply
	}

	best := -Infinity
	for _, move := range moves {
		score := -s.negamax(board.Play(move), depth-1, ply+1, -beta, -alpha, c)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if s.pruning && alpha >= beta {
			c.AddCutoff()
			break
		}
	}
	return best
}

// leaf scores a node that is not expanded. Lost positions score LossScore
// plus the distance from the root so that nearer wins are preferred.
func (s *AlphaBeta) leaf(board game.Board, ply int) int {
	if !game.HasMoves(board, board.Turn()) {
		return game.LossScore + ply
	}
	return s.evaluate(board, board.Turn())
}

func mustBeSearchable(board game.Board, side game.Side, depth int) {
	if depth < 0 {
		panic(fmt.Errorf("search depth %d: %w", depth, game.ErrInvariantViolation))
	}
	if side != board.Turn() {
		panic(fmt.Errorf("search for %s with %s to move: %w", side, board.Turn(), game.ErrInvariantViolation))
	}
	if err := board.Validate(); err != nil {
		panic(fmt.Errorf("search: %w", err))
	}
}

// FindBestMove searches with the default evaluator and pruning.
func FindBestMove(board game.Board, side game.Side, depth int) SearchResult {
	return NewAlphaBeta().FindBestMove(board, side, depth)
}

// Minimax searches without pruning. It returns the same move and score as
// FindBestMove and exists as a reference.
func Minimax(board game.Board, side game.Side, depth int) SearchResult {
	return NewAlphaBeta(WithoutPruning()).FindBestMove(board, side, depth)
}
