package game

import "fmt"

const (
	// Size is the side length of the board.
	Size = 8
	// Cells is the number of playable (dark) cells.
	Cells = Size * Size / 2
)

// Position addresses a cell by row and column, both in [0,7].
type Position struct {
	Row int
	Col int
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// IsDark reports whether p is a playable cell.
func (p Position) IsDark() bool {
	return (p.Row+p.Col)%2 == 1
}

// index maps a dark in-bounds cell to 0..31, or -1 otherwise.
func (p Position) index() int {
	if !p.InBounds() || !p.IsDark() {
		return -1
	}
	return p.Row*(Size/2) + p.Col/2
}

// SquareNumber is the standard 1..32 draughts numbering, 0 for light or
// out of range cells.
func (p Position) SquareNumber() int {
	return p.index() + 1
}

func (p Position) add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// positionOf is the inverse of index.
func positionOf(i int) Position {
	row := i / (Size / 2)
	col := 2 * (i % (Size / 2))
	if row%2 == 0 {
		col++
	}
	return Position{Row: row, Col: col}
}

// FromSquareNumber converts a 1..32 square number to a position.
func FromSquareNumber(n int) (Position, error) {
	if n < 1 || n > Cells {
		return Position{}, fmt.Errorf("square %d: %w", n, ErrOutOfBounds)
	}
	return positionOf(n - 1), nil
}
