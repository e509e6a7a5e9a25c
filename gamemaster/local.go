package gamemaster

import (
	"errors"
	"fmt"

	"checkers/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrGameOver = errors.New("game is over")

// UpdateGetter returns the latest played move and the board it produced.
// ok is false when no update is pending.
type UpdateGetter func() (move game.Move, board game.Board, ok bool)

// Engine keeps the state of one game and resolves the moves played in it.
type Engine interface {
	Init() (game.Board, UpdateGetter)
	Play(game.Move) error
	ID() string
}

type update struct {
	move  game.Move
	board game.Board
}

type localEngine struct {
	id       string
	start    game.Board
	board    game.Board
	updateCh chan update
	gameOver bool
}

// NewLocalEngine returns an engine that starts games from the standard
// opening position.
func NewLocalEngine() *localEngine {
	return NewLocalEngineFrom(game.NewBoard())
}

// NewLocalEngineFrom returns an engine that starts games from board.
func NewLocalEngineFrom(board game.Board) *localEngine {
	return &localEngine{start: board}
}

// Init starts a new game with a fresh id and discards any previous one.
func (e *localEngine) Init() (game.Board, UpdateGetter) {
	e.id = uuid.NewString()
	e.board = e.start
	e.updateCh = make(chan update, 1)
	e.gameOver = false
	if _, over := e.board.Winner(); over {
		e.finish()
	}

	log.Debug().Msgf("Game %s initialized with %s to move", e.id, e.board.Turn())

	updateCh := e.updateCh
	return e.board, func() (game.Move, game.Board, bool) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return nil, game.Board{}, false
			}
			return u.move, u.board, true
		default:
			return nil, game.Board{}, false
		}
	}
}

func (e *localEngine) ID() string {
	return e.id
}

// Board returns the current position.
func (e *localEngine) Board() game.Board {
	return e.board
}

// Winner reports the winner once the game is over.
func (e *localEngine) Winner() (game.Side, bool) {
	return e.board.Winner()
}

// Play applies move for the side to move. The board is left untouched when
// the move is rejected. An update that was never read is replaced by the
// newest one.
func (e *localEngine) Play(move game.Move) error {
	if e.updateCh == nil {
		return fmt.Errorf("play %v: game not initialized", move)
	}
	if e.gameOver {
		return fmt.Errorf("play %v: %w", move, ErrGameOver)
	}

	next, err := e.board.Apply(move)
	if err != nil {
		return fmt.Errorf("game %s: %w", e.id, err)
	}
	e.board = next

	select {
	case <-e.updateCh:
	default:
	}
	e.updateCh <- update{move: move, board: next}

	if winner, over := next.Winner(); over {
		log.Debug().Msgf("Game %s won by %s", e.id, winner)
		e.finish()
	}
	return nil
}

func (e *localEngine) finish() {
	e.gameOver = true
	close(e.updateCh)
}
