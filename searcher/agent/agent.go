package agent

import (
	"checkers/game"
	"checkers/searcher"
)

type Agent interface {
	// FindMove returns the move to play on board for its side to move, with the score and search metrics (if collected)
	FindMove(board game.Board) searcher.SearchResult
}
