package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is the path of a single piece: its origin followed by every landing
// cell. A capture visits one landing cell per jumped piece.
type Move []Position

// IsCapture reports whether the move jumps at least one piece.
func (m Move) IsCapture() bool {
	return len(m) >= 2 && abs(m[1].Row-m[0].Row) == 2
}

func (m Move) From() Position {
	return m[0]
}

func (m Move) To() Position {
	return m[len(m)-1]
}

// Captured lists the cells of the jumped pieces in jump order.
func (m Move) Captured() []Position {
	if !m.IsCapture() {
		return nil
	}
	captured := make([]Position, 0, len(m)-1)
	for i := 1; i < len(m); i++ {
		prev, next := m[i-1], m[i]
		captured = append(captured, prev.add((next.Row-prev.Row)/2, (next.Col-prev.Col)/2))
	}
	return captured
}

func (m Move) Equal(other Move) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}

// String prints the move in square-number notation, e.g. "9-13" or "9x18x27".
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	parts := make([]string, len(m))
	for i, pos := range m {
		if n := pos.SquareNumber(); n > 0 {
			parts[i] = strconv.Itoa(n)
		} else {
			parts[i] = pos.String()
		}
	}
	return strings.Join(parts, sep)
}

// ParseMove reads square-number notation as produced by Move.String. Both
// "-" and "x" are accepted as separators.
func ParseMove(s string) (Move, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '-' || r == 'x' || r == 'X'
	})
	if len(fields) < 2 {
		return nil, fmt.Errorf("%q: need at least two squares: %w", s, ErrInvalidMove)
	}
	move := make(Move, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, ErrInvalidMove)
		}
		pos, err := FromSquareNumber(n)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		move = append(move, pos)
	}
	return move, nil
}
