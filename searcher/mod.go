package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

// Infinity bounds the search window. It lies outside every score the
// evaluator or the terminal sentinels can produce.
const Infinity = 1 << 30

type Searcher interface {
	FindBestMove(board game.Board, side game.Side, depth int) SearchResult
}

type SearchResult struct {
	Move   game.Move // nil when the search depth is 0 or side has no legal move
	Score  int       // from the point of view of the side that searched
	Metric metrics.SearchMetric
}

func (r SearchResult) HasMove() bool {
	return len(r.Move) > 0
}

type ScoredMove struct {
	Move  game.Move
	Score int
}
