package game

import "golang.org/x/exp/slices"

// diagonals in generation order: NW, NE, SW, SE. Red men use the last two,
// Black men the first two.
var diagonals = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

func directions(piece Square) [][2]int {
	switch {
	case piece.IsKing():
		return diagonals[:]
	case piece.Side() == Red:
		return diagonals[2:]
	default:
		return diagonals[:2]
	}
}

// GenerateMoves returns every legal move of side, in a stable order: pieces
// by ascending square number, then directions NW, NE, SW, SE. When any
// capture exists only captures are returned. An empty result means side has
// lost.
func GenerateMoves(board Board, side Side) []Move {
	if captures := generateCaptures(board, side); len(captures) > 0 {
		return captures
	}
	return generateSteps(board, side)
}

// HasMoves reports whether side has at least one legal move without
// building the move list.
func HasMoves(board Board, side Side) bool {
	for i, piece := range board.cells {
		if !piece.Belongs(side) {
			continue
		}
		from := positionOf(i)
		for _, d := range directions(piece) {
			to := from.add(d[0], d[1])
			ti := to.index()
			if ti < 0 {
				continue
			}
			if board.cells[ti] == Empty {
				return true
			}
			if !board.cells[ti].Belongs(side.Opponent()) {
				continue
			}
			if li := from.add(2*d[0], 2*d[1]).index(); li >= 0 && board.cells[li] == Empty {
				return true
			}
		}
	}
	return false
}

func generateSteps(board Board, side Side) []Move {
	var moves []Move
	for i, piece := range board.cells {
		if !piece.Belongs(side) {
			continue
		}
		from := positionOf(i)
		for _, d := range directions(piece) {
			to := from.add(d[0], d[1])
			if ti := to.index(); ti >= 0 && board.cells[ti] == Empty {
				moves = append(moves, Move{from, to})
			}
		}
	}
	return moves
}

func generateCaptures(board Board, side Side) []Move {
	var moves []Move
	for i, piece := range board.cells {
		if !piece.Belongs(side) {
			continue
		}
		from := positionOf(i)
		chain := chainSearch{side: side, cells: board.cells, path: Move{from}}
		// The moving piece is lifted for the whole chain.
		chain.cells[i] = Empty
		chain.extend(from, piece)
		moves = append(moves, chain.moves...)
	}
	return moves
}

// chainSearch enumerates the maximal capture chains of one piece by depth
// first search. Jumped pieces are removed from cells while the chain that
// jumped them is being explored.
type chainSearch struct {
	side  Side
	cells [Cells]Square
	path  Move
	moves []Move
}

func (c *chainSearch) extend(pos Position, piece Square) {
	extended := false
	for _, d := range directions(piece) {
		land := pos.add(2*d[0], 2*d[1])
		li := land.index()
		if li < 0 || c.cells[li] != Empty || c.visited(land) {
			continue
		}
		oi := pos.add(d[0], d[1]).index()
		jumped := c.cells[oi]
		if !jumped.Belongs(c.side.Opponent()) {
			continue
		}

		next := piece
		if land.Row == c.side.promotionRow() {
			next = piece.crowned()
		}
		c.cells[oi] = Empty
		c.path = append(c.path, land)
		c.extend(land, next)
		c.path = c.path[:len(c.path)-1]
		c.cells[oi] = jumped
		extended = true
	}
	if !extended && len(c.path) > 1 {
		c.moves = append(c.moves, slices.Clone(c.path))
	}
}

func (c *chainSearch) visited(pos Position) bool {
	return slices.Contains(c.path, pos)
}
