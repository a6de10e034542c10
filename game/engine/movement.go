package engine

// Destinations returns the squares the piece on from can slide to: along each
// orthogonal, every consecutive empty square up to the first obstruction or edge.
// An empty or out-of-range origin has no destinations.
func (b *Board) Destinations(from int) []int {
	dests := []int{}
	if !InBounds(from) || b[from] == Empty {
		return dests
	}

	for _, dir := range Orthogonals {
		for sq, ok := Neighbor(from, dir); ok && b[sq] == Empty; sq, ok = Neighbor(sq, dir) {
			dests = append(dests, sq)
		}
	}
	return dests
}

// CanMove reports whether the piece on from has at least one destination.
// Sliding stops at the first obstruction, so only adjacent squares matter.
func (b *Board) CanMove(from int) bool {
	if !InBounds(from) || b[from] == Empty {
		return false
	}
	for _, dir := range Orthogonals {
		if sq, ok := Neighbor(from, dir); ok && b[sq] == Empty {
			return true
		}
	}
	return false
}

// IsDestination reports whether the piece on from can slide to to.
func (b *Board) IsDestination(from, to int) bool {
	for _, d := range b.Destinations(from) {
		if d == to {
			return true
		}
	}
	return false
}

// MovablePieces returns p's squares that have at least one destination, ascending.
func (b *Board) MovablePieces(p Player) []int {
	piece := p.Piece()
	squares := []int{}
	for i, sq := range b {
		if sq == piece && b.CanMove(i) {
			squares = append(squares, i)
		}
	}
	return squares
}

// HasMovablePiece reports whether p can make any move.
func (b *Board) HasMovablePiece(p Player) bool {
	piece := p.Piece()
	for i, sq := range b {
		if sq == piece && b.CanMove(i) {
			return true
		}
	}
	return false
}

// EmptySquares returns every empty square, ascending. These are the placement targets.
func (b *Board) EmptySquares() []int {
	squares := []int{}
	for i, sq := range b {
		if sq == Empty {
			squares = append(squares, i)
		}
	}
	return squares
}

// ownsMovable reports whether index holds one of the current player's pieces
// with at least one destination.
func (e *GameEngine) ownsMovable(index int) bool {
	return e.board[index] == e.current.Piece() && e.board.CanMove(index)
}

// ValidMoves is the context-dependent query used by the UI:
//   - Placement: every empty square
//   - Movement with nothing selected: the current player's movable pieces
//   - Movement with a piece selected: that piece's destinations
//
// A finished game has no valid moves.
func (e *GameEngine) ValidMoves() []int {
	if e.gameOver {
		return []int{}
	}
	if e.phase == Placement {
		return e.board.EmptySquares()
	}
	if sel, ok := e.selection.Square(); ok {
		return e.board.Destinations(sel)
	}
	return e.board.MovablePieces(e.current)
}
