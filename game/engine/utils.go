package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// SquareName converts an index to file/rank notation, e.g. 0 -> "A1", 63 -> "H8".
func SquareName(index int) string {
	if !InBounds(index) {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'A'+index%BoardSide, index/BoardSide+1)
}

// ParseSquare accepts "c3"/"C3" notation or a plain index ("18").
func ParseSquare(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1, ErrInvalidSquare
	}
	if n, err := strconv.Atoi(s); err == nil {
		if !InBounds(n) {
			return -1, fmt.Errorf("%w: %d", ErrSquareOutOfRange, n)
		}
		return n, nil
	}
	if len(s) != 2 {
		return -1, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	file := strings.ToUpper(s[:1])[0]
	rank := s[1]
	if file < 'A' || file > 'H' || rank < '1' || rank > '8' {
		return -1, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return int(rank-'1')*BoardSide + int(file-'A'), nil
}

// SquareChar is the layout/ASCII character for a square.
func SquareChar(sq Square) byte {
	switch sq {
	case LightPiece:
		return 'L'
	case DarkPiece:
		return 'D'
	default:
		return '.'
	}
}

// ASCII renders the board with rank 8 on top and file/rank labels.
func (b *Board) ASCII() string {
	var sb strings.Builder
	sb.WriteString("  A B C D E F G H\n")
	for row := BoardSide - 1; row >= 0; row-- {
		sb.WriteString(fmt.Sprintf("%d ", row+1))
		for col := 0; col < BoardSide; col++ {
			sb.WriteByte(SquareChar(b[row*BoardSide+col]))
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%d\n", row+1))
	}
	sb.WriteString("  A B C D E F G H")
	return sb.String()
}

// CountPieces returns per-player piece counts.
func CountPieces(b *Board) PlayerCounts {
	return PlayerCounts{
		Light: b.Count(LightPiece),
		Dark:  b.Count(DarkPiece),
	}
}
