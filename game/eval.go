package game

import "fmt"

const (
	// WinScore is reported for a position whose side to move is the
	// perspective's opponent and has no legal move. It is larger than any
	// material balance.
	WinScore = 1_000_000
	// LossScore is reported when the perspective side is to move and has no
	// legal move.
	LossScore = -WinScore
)

// Weights are the material values used by the evaluator.
type Weights struct {
	Man  int
	King int
}

var DefaultWeights = Weights{Man: 1, King: 2}

// Validate requires positive weights with kings worth strictly more than men,
// and totals that stay below the terminal sentinels.
func (w Weights) Validate() error {
	if w.Man <= 0 || w.King <= w.Man {
		return fmt.Errorf("weights %+v: man must be positive and king worth more: %w", w, ErrInvariantViolation)
	}
	if MaxPieces*w.King >= WinScore/2 {
		return fmt.Errorf("weights %+v: king weight too large: %w", w, ErrInvariantViolation)
	}
	return nil
}

// Material returns the material balance for perspective, ignoring whether
// the position is terminal.
func (w Weights) Material(board Board, perspective Side) int {
	score := 0
	for _, sq := range board.cells {
		if sq == Empty {
			continue
		}
		value := w.Man
		if sq.IsKing() {
			value = w.King
		}
		if sq.Belongs(perspective) {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

// Evaluate scores board for perspective: the terminal sentinels when the side
// to move cannot move, the material balance otherwise.
func (w Weights) Evaluate(board Board, perspective Side) int {
	if !HasMoves(board, board.turn) {
		if board.turn == perspective {
			return LossScore
		}
		return WinScore
	}
	return w.Material(board, perspective)
}

// Evaluate scores board with DefaultWeights.
func Evaluate(board Board, perspective Side) int {
	return DefaultWeights.Evaluate(board, perspective)
}
