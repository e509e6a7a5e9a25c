package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFEN reads a position in PDN style, e.g. "R:R1,2,K3:B21,22": the side to
// move, then the squares of each side with K marking kings. Either side's list
// may be empty.
func ParseFEN(fen string) (Board, error) {
	parts := strings.Split(strings.TrimSpace(fen), ":")
	if len(parts) != 3 {
		return Board{}, fmt.Errorf("%q: expected 3 fields: %w", fen, ErrInvalidFEN)
	}

	turn, ok := colorOf(parts[0])
	if !ok || len(parts[0]) != 1 {
		return Board{}, fmt.Errorf("%q: bad side to move %q: %w", fen, parts[0], ErrInvalidFEN)
	}
	board := EmptyBoard(turn)

	seen := map[Side]bool{}
	for _, field := range parts[1:] {
		if field == "" {
			return Board{}, fmt.Errorf("%q: empty piece field: %w", fen, ErrInvalidFEN)
		}
		side, ok := colorOf(field[:1])
		if !ok || seen[side] {
			return Board{}, fmt.Errorf("%q: bad piece field %q: %w", fen, field, ErrInvalidFEN)
		}
		seen[side] = true

		if len(field) == 1 {
			continue
		}
		for _, token := range strings.Split(field[1:], ",") {
			piece := manOf(side)
			if strings.HasPrefix(token, "K") {
				piece = kingOf(side)
				token = token[1:]
			}
			n, err := strconv.Atoi(token)
			if err != nil {
				return Board{}, fmt.Errorf("%q: bad square %q: %w", fen, token, ErrInvalidFEN)
			}
			pos, err := FromSquareNumber(n)
			if err != nil {
				return Board{}, fmt.Errorf("%q: %w: %w", fen, ErrInvalidFEN, err)
			}
			if board.cells[pos.index()] != Empty {
				return Board{}, fmt.Errorf("%q: square %d listed twice: %w", fen, n, ErrInvalidFEN)
			}
			board.cells[pos.index()] = piece
		}
	}

	if err := board.Validate(); err != nil {
		return Board{}, fmt.Errorf("%q: %w: %w", fen, ErrInvalidFEN, err)
	}
	return board, nil
}

// FEN renders the board in the format read by ParseFEN.
func (b Board) FEN() string {
	var sb strings.Builder
	sb.WriteString(colorLetter(b.turn))
	for _, side := range []Side{Red, Black} {
		sb.WriteByte(':')
		sb.WriteString(colorLetter(side))
		first := true
		for i, sq := range b.cells {
			if !sq.Belongs(side) {
				continue
			}
			if !first {
				sb.WriteByte(',')
			}
			first = false
			if sq.IsKing() {
				sb.WriteByte('K')
			}
			sb.WriteString(strconv.Itoa(i + 1))
		}
	}
	return sb.String()
}

func colorOf(s string) (Side, bool) {
	switch s {
	case "R":
		return Red, true
	case "B":
		return Black, true
	}
	return 0, false
}

func colorLetter(side Side) string {
	if side == Red {
		return "R"
	}
	return "B"
}
