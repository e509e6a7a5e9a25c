package agent

import (
	"checkers/game"
	"checkers/searcher"
)

type evaluationAgent struct {
	searcher searcher.Searcher
	depth    int
}

// NewEvaluationAgent returns an agent that always plays the searcher's best
// move. Depths below 1 are raised to 1 so that a move is always returned.
func NewEvaluationAgent(s searcher.Searcher, depth int) Agent {
	return evaluationAgent{searcher: s, depth: max(depth, 1)}
}

func (a evaluationAgent) FindMove(board game.Board) searcher.SearchResult {
	return a.searcher.FindBestMove(board, board.Turn(), a.depth)
}
