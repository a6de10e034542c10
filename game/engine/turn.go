package engine

// finishTurn runs after mover's placement or move (and its captures) is applied.
// The mover wins when the opponent is out of pieces or has no legal action;
// otherwise the turn passes. It reports whether the game ended.
func (e *GameEngine) finishTurn(mover Player) bool {
	opponent := mover.Opponent()

	if e.eliminated(opponent) || !e.hasAction(opponent) {
		e.gameOver = true
		e.winner = mover
		e.hasWinner = true
		e.selection = NoSelection()
		return true
	}

	e.current = opponent
	return false
}

// eliminated reports whether p has no pieces and cannot get any back.
// A player with placements still owed is not out of the game.
func (e *GameEngine) eliminated(p Player) bool {
	if e.board.Count(p.Piece()) > 0 {
		return false
	}
	return e.phase == Movement || e.quota[p] == 0
}

// hasAction reports whether p could act if it were p's turn.
func (e *GameEngine) hasAction(p Player) bool {
	if e.phase == Placement {
		return e.board.Count(Empty) > 0
	}
	return e.board.HasMovablePiece(p)
}

// CurrentPlayer returns the player to act.
func (e *GameEngine) CurrentPlayer() Player {
	return e.current
}

// IsGameOver returns whether the game has ended
func (e *GameEngine) IsGameOver() bool {
	return e.gameOver
}

// Winner returns the winning player once the game is over.
func (e *GameEngine) Winner() (Player, bool) {
	return e.winner, e.hasWinner
}
