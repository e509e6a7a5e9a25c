package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFEN(t *testing.T) {
	t.Run("round trips the starting position", func(t *testing.T) {
		fen := NewBoard().FEN()
		require.Equal(t, "R:R1,2,3,4,5,6,7,8,9,10,11,12:B21,22,23,24,25,26,27,28,29,30,31,32", fen)

		board, err := ParseFEN(fen)
		require.NoError(t, err)
		require.Equal(t, NewBoard(), board)
	})

	t.Run("reads kings, turn and field order", func(t *testing.T) {
		board, err := ParseFEN("B:BK18,29:RK1")
		require.NoError(t, err)

		require.Equal(t, Black, board.Turn())
		require.Equal(t, BlackKing, at(t, board, 4, 3))
		require.Equal(t, BlackMan, at(t, board, 7, 0))
		require.Equal(t, RedKing, at(t, board, 0, 1))
		require.Equal(t, "B:RK1:BK18,29", board.FEN())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		bad := []string{
			"",
			"R:R1",
			"X:R1:B2",
			"RB:R1:B2",
			"R:R1:R2",
			"R:R1::",
			"R:R0:B2",
			"R:R33:B2",
			"R:Ra:B2",
			"R:R1,1:B2",
			"R:R29:B2", // uncrowned man on its promotion row
		}
		for _, fen := range bad {
			_, err := ParseFEN(fen)
			require.ErrorIs(t, err, ErrInvalidFEN, "%q should be rejected", fen)
		}
	})
}

func TestParseMove(t *testing.T) {
	t.Run("round trips notation", func(t *testing.T) {
		for _, s := range []string{"9-13", "9x18", "1x10x19", "14x7x16x23"} {
			move, err := ParseMove(s)
			require.NoError(t, err)
			require.Equal(t, s, move.String())
		}
	})

	t.Run("maps square numbers to positions", func(t *testing.T) {
		move, err := ParseMove("9x18")
		require.NoError(t, err)
		require.Equal(t, Move{{2, 1}, {4, 3}}, move)
		require.Equal(t, []Position{{3, 2}}, move.Captured())
	})

	t.Run("rejects malformed notation", func(t *testing.T) {
		for _, s := range []string{"", "9", "9-", "a-b", "0-4", "9-33"} {
			_, err := ParseMove(s)
			require.Error(t, err, "%q should be rejected", s)
		}
		_, err := ParseMove("9-a")
		require.ErrorIs(t, err, ErrInvalidMove)
		_, err = ParseMove("9-40")
		require.ErrorIs(t, err, ErrOutOfBounds)
	})
}
