package game

import "strings"

// Side is one of the two players.
type Side int

const (
	Red Side = iota
	Black
)

func (s Side) Opponent() Side {
	if s == Red {
		return Black
	}
	return Red
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// ParseSide accepts "red"/"r" and "black"/"b" in any case.
func ParseSide(s string) (Side, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return Red, true
	case "black", "b":
		return Black, true
	}
	return 0, false
}

// forward is the row delta of a man's advance.
func (s Side) forward() int {
	if s == Red {
		return 1
	}
	return -1
}

// promotionRow is the row on which a man of this side is crowned.
func (s Side) promotionRow() int {
	if s == Red {
		return Size - 1
	}
	return 0
}

// Square is the content of a single cell.
type Square uint8

const (
	Empty Square = iota
	RedMan
	BlackMan
	RedKing
	BlackKing
)

func (sq Square) IsEmpty() bool {
	return sq == Empty
}

func (sq Square) IsKing() bool {
	return sq == RedKing || sq == BlackKing
}

func (sq Square) IsMan() bool {
	return sq == RedMan || sq == BlackMan
}

// Belongs reports whether the square holds a piece of side.
func (sq Square) Belongs(side Side) bool {
	switch sq {
	case RedMan, RedKing:
		return side == Red
	case BlackMan, BlackKing:
		return side == Black
	}
	return false
}

// Side returns the owner of the piece. Only valid for non-empty squares.
func (sq Square) Side() Side {
	if sq == BlackMan || sq == BlackKing {
		return Black
	}
	return Red
}

func (sq Square) crowned() Square {
	switch sq {
	case RedMan:
		return RedKing
	case BlackMan:
		return BlackKing
	}
	return sq
}

func (sq Square) symbol() rune {
	switch sq {
	case RedMan:
		return 'r'
	case BlackMan:
		return 'b'
	case RedKing:
		return 'R'
	case BlackKing:
		return 'B'
	}
	return '.'
}

func manOf(side Side) Square {
	if side == Red {
		return RedMan
	}
	return BlackMan
}

func kingOf(side Side) Square {
	if side == Red {
		return RedKing
	}
	return BlackKing
}

type StateHash uint64

// Evaluator scores a board from perspective's point of view. Positive values
// favour perspective.
type Evaluator func(board Board, perspective Side) int
