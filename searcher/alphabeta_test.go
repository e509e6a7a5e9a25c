package searcher

import (
	"testing"

	"checkers/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustFEN(t *testing.T, fen string) game.Board {
	t.Helper()
	board, err := game.ParseFEN(fen)
	require.NoError(t, err)
	return board
}

func requireViolation(t *testing.T, search func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "Expected a panic")
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, game.ErrInvariantViolation)
	}()
	search()
}

func TestFindBestMove(t *testing.T) {
	t.Run("opening at depth 1 keeps the first of equal moves", func(t *testing.T) {
		result := FindBestMove(game.NewBoard(), game.Red, 1)

		require.True(t, result.HasMove())
		require.Equal(t, "9-13", result.Move.String())
		require.Equal(t, 0, result.Score)
	})

	t.Run("winning capture", func(t *testing.T) {
		board := mustFEN(t, "R:R9:B14")

		result := FindBestMove(board, game.Red, 2)

		require.Equal(t, "9x18", result.Move.String())
		require.Equal(t, game.WinScore-1, result.Score, "Black is left without pieces one ply after the root")
	})

	t.Run("no pieces", func(t *testing.T) {
		result := FindBestMove(game.EmptyBoard(game.Red), game.Red, 3)

		require.False(t, result.HasMove())
		require.Nil(t, result.Move)
		require.Equal(t, game.LossScore, result.Score)
	})

	t.Run("depth 0 evaluates the root", func(t *testing.T) {
		board := mustFEN(t, "B:R9,10:B21")

		result := FindBestMove(board, game.Black, 0)

		require.Nil(t, result.Move)
		require.Equal(t, -1, result.Score)
	})

	t.Run("blocked side to move loses", func(t *testing.T) {
		board := mustFEN(t, "B:R25,K22:B29")

		result := FindBestMove(board, game.Black, 4)

		require.Nil(t, result.Move)
		require.Equal(t, game.LossScore, result.Score)
	})

	t.Run("nearer win is preferred", func(t *testing.T) {
		board := mustFEN(t, "R:R9:B14")

		shallow := FindBestMove(board, game.Red, 1)
		deep := FindBestMove(board, game.Red, 5)

		require.Equal(t, shallow.Score, deep.Score, "A win found at ply 1 must not be diluted by deeper search")
	})

	t.Run("search does not change the board", func(t *testing.T) {
		board := game.NewBoard()
		before := board.Hash()

		FindBestMove(board, game.Red, 4)

		require.Equal(t, before, board.Hash())
	})
}

func TestFindBestMoveIsLegal(t *testing.T) {
	board := mustFEN(t, "R:R9,11:B14")

	result := FindBestMove(board, game.Red, 3)

	_, err := board.Apply(result.Move)
	require.NoError(t, err, "The chosen move must be legal for the side to move")
	require.True(t, result.Move.IsCapture(), "Captures are forced")
}

// randomPositions plays random legal moves from the start to collect varied
// positions for comparing the searches.
func randomPositions(seed uint64, count, plies int) []game.Board {
	rng := rand.New(rand.NewSource(seed))
	var boards []game.Board
	for len(boards) < count {
		board := game.NewBoard()
		for ply := 0; ply < plies; ply++ {
			moves := game.GenerateMoves(board, board.Turn())
			if len(moves) == 0 {
				break
			}
			board = board.Play(moves[rng.Intn(len(moves))])
		}
		boards = append(boards, board)
	}
	return boards
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	boards := append([]game.Board{game.NewBoard()}, randomPositions(7, 12, 30)...)
	boards = append(boards, mustFEN(t, "R:RK14:B10,11,18,19"), mustFEN(t, "B:R5,6,K20:B13,K27"))

	for i, board := range boards {
		for depth := 0; depth <= 4; depth++ {
			pruned := FindBestMove(board, board.Turn(), depth)
			reference := Minimax(board, board.Turn(), depth)

			require.Equal(t, reference.Score, pruned.Score, "Position %d at depth %d: %s", i, depth, board.FEN())
			require.True(t, reference.Move.Equal(pruned.Move), "Position %d at depth %d: expected %v, got %v", i, depth, reference.Move, pruned.Move)
		}
	}
}

func TestSearchMetrics(t *testing.T) {
	board := game.NewBoard()

	pruned := NewAlphaBeta(WithMetrics()).FindBestMove(board, game.Red, 5)
	full := NewAlphaBeta(WithMetrics(), WithoutPruning()).FindBestMove(board, game.Red, 5)

	require.Equal(t, 5, pruned.Metric.Depth)
	require.True(t, pruned.Metric.Pruning)
	require.False(t, full.Metric.Pruning)
	require.Positive(t, pruned.Metric.Cutoffs)
	require.Zero(t, full.Metric.Cutoffs)
	require.Less(t, pruned.Metric.Nodes, full.Metric.Nodes, "Pruning should visit fewer nodes")
	require.LessOrEqual(t, pruned.Metric.Leaves, pruned.Metric.Nodes)

	silent := NewAlphaBeta().FindBestMove(board, game.Red, 2)
	require.Zero(t, silent.Metric.Nodes, "Metrics are only collected on request")
}

func TestOptions(t *testing.T) {
	t.Run("custom evaluator", func(t *testing.T) {
		calls := 0
		constant := func(board game.Board, perspective game.Side) int {
			calls++
			return 7
		}
		result := NewAlphaBeta(WithEvaluator(constant)).FindBestMove(game.NewBoard(), game.Red, 1)

		require.Equal(t, -7, result.Score, "Leaf scores are taken from the opponent's point of view and negated")
		require.Equal(t, 7, calls, "One leaf per opening move")
	})

	t.Run("nil evaluator is ignored", func(t *testing.T) {
		result := NewAlphaBeta(WithEvaluator(nil)).FindBestMove(game.NewBoard(), game.Red, 1)
		require.Equal(t, 0, result.Score)
	})

	t.Run("weights", func(t *testing.T) {
		board := mustFEN(t, "R:RK1,5:B32")

		heavy := NewAlphaBeta(WithWeights(game.Weights{Man: 1, King: 5})).FindBestMove(board, game.Red, 0)

		require.Equal(t, 5, heavy.Score)
	})

	t.Run("invalid weights", func(t *testing.T) {
		requireViolation(t, func() { WithWeights(game.Weights{Man: 3, King: 1}) })
		requireViolation(t, func() { NewAlphaBeta(WithWeights(game.Weights{})) })
	})

	t.Run("evaluator never sees a lost position", func(t *testing.T) {
		// Red's only move captures Black's last piece
		board := mustFEN(t, "R:R9:B14")
		calls := 0
		counting := func(board game.Board, perspective game.Side) int {
			calls++
			return 0
		}

		result := NewAlphaBeta(WithEvaluator(counting)).FindBestMove(board, game.Red, 1)

		require.Equal(t, game.WinScore-1, result.Score)
		require.Zero(t, calls)
	})
}

func TestScoreMoves(t *testing.T) {
	board := game.NewBoard()

	scored, metric := NewAlphaBeta(WithMetrics()).ScoreMoves(board, game.Red, 3)
	best := FindBestMove(board, game.Red, 3)

	require.Equal(t, 3, metric.Depth)
	require.True(t, metric.Pruning)
	require.Positive(t, metric.Nodes)
	require.Positive(t, metric.Leaves)
	require.LessOrEqual(t, metric.Leaves, metric.Nodes)

	moves := game.GenerateMoves(board, game.Red)
	require.Len(t, scored, len(moves))
	top := -Infinity
	for i, s := range scored {
		require.True(t, moves[i].Equal(s.Move), "Scores follow generation order")
		top = max(top, s.Score)
	}
	require.Equal(t, best.Score, top)

	none, metric := NewAlphaBeta(WithMetrics(), WithoutPruning()).ScoreMoves(game.EmptyBoard(game.Black), game.Black, 2)
	require.Empty(t, none)
	require.False(t, metric.Pruning)
	require.Equal(t, 1, metric.Nodes)
	require.Equal(t, 1, metric.Leaves)
}

func TestSearchInvariants(t *testing.T) {
	t.Run("wrong side", func(t *testing.T) {
		requireViolation(t, func() { FindBestMove(game.NewBoard(), game.Black, 2) })
	})

	t.Run("negative depth", func(t *testing.T) {
		requireViolation(t, func() { FindBestMove(game.NewBoard(), game.Red, -1) })
	})

	t.Run("invalid board", func(t *testing.T) {
		board, err := game.EmptyBoard(game.Red).With(game.Position{Row: 7, Col: 0}, game.RedMan)
		require.NoError(t, err)
		requireViolation(t, func() { FindBestMove(board, game.Red, 2) })
	})

	t.Run("score moves checks too", func(t *testing.T) {
		requireViolation(t, func() { _, _ = NewAlphaBeta().ScoreMoves(game.NewBoard(), game.Black, 1) })
	})
}
