package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// MaxPieces is the number of pieces each side starts with.
const MaxPieces = 12

// Board is the full game state: the 32 playable cells and the side to move.
// It is a small value type, so every transformation returns a copy and the
// receiver is never changed.
type Board struct {
	cells [Cells]Square
	turn  Side
}

// NewBoard returns the standard starting position with Red to move.
func NewBoard() Board {
	b := Board{turn: Red}
	for i := range b.cells {
		switch row := positionOf(i).Row; {
		case row < 3:
			b.cells[i] = RedMan
		case row >= Size-3:
			b.cells[i] = BlackMan
		}
	}
	return b
}

// EmptyBoard returns a board with no pieces and turn to move.
func EmptyBoard(turn Side) Board {
	return Board{turn: turn}
}

func (b Board) Turn() Side {
	return b.turn
}

// WithTurn returns a copy of the board with a different side to move.
func (b Board) WithTurn(turn Side) Board {
	b.turn = turn
	return b
}

// At returns the content of pos. Light cells are always Empty.
func (b Board) At(pos Position) (Square, error) {
	if !pos.InBounds() {
		return Empty, fmt.Errorf("at %v: %w", pos, ErrOutOfBounds)
	}
	i := pos.index()
	if i < 0 {
		return Empty, nil
	}
	return b.cells[i], nil
}

// With returns a copy of the board with pos set to sq. Pieces may only be
// placed on dark cells.
func (b Board) With(pos Position, sq Square) (Board, error) {
	if !pos.InBounds() {
		return b, fmt.Errorf("place at %v: %w", pos, ErrOutOfBounds)
	}
	i := pos.index()
	if i < 0 {
		if sq == Empty {
			return b, nil
		}
		return b, fmt.Errorf("place at light cell %v: %w", pos, ErrInvariantViolation)
	}
	b.cells[i] = sq
	return b, nil
}

func (b Board) SideHasPieces(side Side) bool {
	for _, sq := range b.cells {
		if sq.Belongs(side) {
			return true
		}
	}
	return false
}

// Count returns the number of men and kings side has on the board.
func (b Board) Count(side Side) (men, kings int) {
	for _, sq := range b.cells {
		if !sq.Belongs(side) {
			continue
		}
		if sq.IsKing() {
			kings++
		} else {
			men++
		}
	}
	return men, kings
}

// Validate checks the structural invariants of the board.
func (b Board) Validate() error {
	if b.turn != Red && b.turn != Black {
		return fmt.Errorf("side to move %d: %w", b.turn, ErrInvariantViolation)
	}
	for i, sq := range b.cells {
		if sq > BlackKing {
			return fmt.Errorf("square %d holds unknown content %d: %w", i+1, sq, ErrInvariantViolation)
		}
		if sq.IsMan() && positionOf(i).Row == sq.Side().promotionRow() {
			return fmt.Errorf("uncrowned %s man on square %d: %w", sq.Side(), i+1, ErrInvariantViolation)
		}
	}
	for _, side := range []Side{Red, Black} {
		men, kings := b.Count(side)
		if men+kings > MaxPieces {
			return fmt.Errorf("%s has %d pieces: %w", side, men+kings, ErrInvariantViolation)
		}
	}
	return nil
}

// Apply plays move for the side to move and returns the resulting board.
// The move must be one of GenerateMoves(b, b.Turn()); otherwise the error
// wraps ErrIllegalMove (or ErrOutOfBounds) and b is returned unchanged.
func (b Board) Apply(move Move) (Board, error) {
	for _, pos := range move {
		if !pos.InBounds() {
			return b, fmt.Errorf("apply %v: %w", move, ErrOutOfBounds)
		}
	}
	for _, legal := range GenerateMoves(b, b.turn) {
		if legal.Equal(move) {
			return b.Play(move), nil
		}
	}
	return b, fmt.Errorf("apply %v for %s: %w", move, b.turn, ErrIllegalMove)
}

// Play resolves a move taken from GenerateMoves(b, b.Turn()) without
// checking it again. Use Apply for moves from outside the generator.
func (b Board) Play(move Move) Board {
	from := move[0].index()
	piece := b.cells[from]
	b.cells[from] = Empty
	side := piece.Side()
	for i := 1; i < len(move); i++ {
		prev, next := move[i-1], move[i]
		if abs(next.Row-prev.Row) == 2 {
			b.cells[prev.add((next.Row-prev.Row)/2, (next.Col-prev.Col)/2).index()] = Empty
		}
		if next.Row == side.promotionRow() {
			piece = piece.crowned()
		}
	}
	b.cells[move[len(move)-1].index()] = piece
	b.turn = b.turn.Opponent()
	return b
}

// Winner reports the winning side once the side to move has no legal move.
func (b Board) Winner() (Side, bool) {
	if HasMoves(b, b.turn) {
		return 0, false
	}
	return b.turn.Opponent(), true
}

func (b Board) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(b.turn))
	binary.Write(hasher, binary.LittleEndian, b.cells)
	return StateHash(hasher.Sum64())
}

// String renders the board as eight rows, row 0 first, followed by the side
// to move. Light cells print as a space.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos := Position{Row: row, Col: col}
			if i := pos.index(); i >= 0 {
				sb.WriteRune(b.cells[i].symbol())
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(b.turn.String())
	sb.WriteString(" to move")
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
