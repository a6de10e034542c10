package engine

import "fmt"

// Direction is an orthogonal step on the board.
type Direction struct {
	DRow, DCol int
}

// Orthogonals lists the four directions pieces move and capture along.
var Orthogonals = [4]Direction{
	{DRow: 1, DCol: 0},  // up (towards rank 8)
	{DRow: -1, DCol: 0}, // down
	{DRow: 0, DCol: -1}, // left (towards file A)
	{DRow: 0, DCol: 1},  // right
}

// Board is the 64-square grid in row-major order, row 0 at the bottom.
type Board [SquareCount]Square

// InBounds reports whether index names a square.
func InBounds(index int) bool {
	return index >= 0 && index < SquareCount
}

// Read returns the square at index.
func (b *Board) Read(index int) (Square, error) {
	if !InBounds(index) {
		return Empty, ErrSquareOutOfRange
	}
	return b[index], nil
}

// Write stores sq at index. Legality is the caller's concern.
func (b *Board) Write(index int, sq Square) error {
	if !InBounds(index) {
		return ErrSquareOutOfRange
	}
	b[index] = sq
	return nil
}

// Count returns how many squares hold sq.
func (b *Board) Count(sq Square) int {
	n := 0
	for _, s := range b {
		if s == sq {
			n++
		}
	}
	return n
}

// Clear empties every square.
func (b *Board) Clear() {
	*b = Board{}
}

// Neighbor steps once from index in dir. It returns false at the board edge.
func Neighbor(index int, dir Direction) (int, bool) {
	row := index/BoardSide + dir.DRow
	col := index%BoardSide + dir.DCol
	if row < 0 || row >= BoardSide || col < 0 || col >= BoardSide {
		return -1, false
	}
	return row*BoardSide + col, true
}

// Ints converts the board to the 0/1/2 encoding used by the UI.
func (b *Board) Ints() []int {
	out := make([]int, SquareCount)
	for i, s := range b {
		out[i] = int(s)
	}
	return out
}

// BoardFromInts is the inverse of Ints. It rejects boards of the wrong size
// and values other than 0, 1 and 2.
func BoardFromInts(values []int) (*Board, error) {
	if len(values) != SquareCount {
		return nil, fmt.Errorf("board must have %d squares, got %d", SquareCount, len(values))
	}
	var b Board
	for i, v := range values {
		if v < int(Empty) || v > int(DarkPiece) {
			return nil, fmt.Errorf("invalid square value %d at %s", v, SquareName(i))
		}
		b[i] = Square(v)
	}
	return &b, nil
}
