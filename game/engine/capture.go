package engine

// ResolveCaptures applies custodian captures around the piece mover just put on at.
//
// In each orthogonal direction independently, an opposing piece directly adjacent
// to at is removed when the square beyond it holds one of mover's pieces. With
// edgeWall set, the board edge beyond the opposing piece also counts as the far
// flank. Only pieces flanked by at are examined, so the mover never captures
// itself. The captured squares are returned in direction order.
func (b *Board) ResolveCaptures(at int, mover Player, edgeWall bool) []int {
	var captured []int
	if !InBounds(at) || b[at] != mover.Piece() {
		return captured
	}

	enemy := mover.Opponent().Piece()
	for _, dir := range Orthogonals {
		adj, ok := Neighbor(at, dir)
		if !ok || b[adj] != enemy {
			continue
		}

		beyond, ok := Neighbor(adj, dir)
		switch {
		case ok && b[beyond] == mover.Piece():
		case !ok && edgeWall:
		default:
			continue
		}
		captured = append(captured, adj)
	}

	for _, sq := range captured {
		b[sq] = Empty
	}
	return captured
}
