package engine

import (
	"fmt"
	"time"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/meta"
	"checkers/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

func WithMaxTurns(turns int) Option {
	return func(e *localEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

type localEngine struct {
	agents   [2]agent.Agent // indexed by game.Side
	gm       gamemaster.Engine
	maxTurns int
}

// LocalEngine runs agents[0] as Red and agents[1] as Black against gm.
func LocalEngine(agents []agent.Agent, gm gamemaster.Engine, options ...Option) Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	e := &localEngine{
		agents:   [2]agent.Agent{agents[game.Red], agents[game.Black]},
		gm:       gm,
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found.
func (e *localEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	board, getUpdate := e.gm.Init()
	gameMetric := metrics.GameMetric{
		ID:             e.gm.ID(),
		StartingPlayer: board.Turn(),
		StartTime:      time.Now(),
	}

	log.Info().Msgf("Game %s: %s is starting", gameMetric.ID, board.Turn())

	var moveMetrics []metrics.MoveMetric
	for turn := 1; turn <= e.maxTurns; turn++ {
		if _, over := board.Winner(); over {
			break
		}
		side := board.Turn()

		result := e.agents[side].FindMove(board)
		if err := e.gm.Play(result.Move); err != nil {
			panic(fmt.Errorf("%s agent chose %v: %w", side, result.Move, err))
		}
		_, next, ok := getUpdate()
		if !ok {
			panic("no update after a legal move")
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       side,
			Move:         result.Move.String(),
			Score:        result.Score,
			SearchMetric: result.Metric,
		})
		log.Debug().Msgf("Turn %d: %s played %v (score %d)", turn, side, result.Move, result.Score)

		board = next
	}

	if winner, over := board.Winner(); over {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("Game %s ended with winner %s after %d moves", gameMetric.ID, winner, len(moveMetrics))
	} else {
		log.Info().Msgf("Game %s stopped after %d turns without a winner", gameMetric.ID, e.maxTurns)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return gameMetric, moveMetrics
}
