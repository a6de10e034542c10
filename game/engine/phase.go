package engine

// advancePhase moves from Placement to Movement once both quotas are spent.
// It reports whether the transition happened on this call.
func (e *GameEngine) advancePhase() bool {
	if e.phase != Placement {
		return false
	}
	if e.quota[Light] > 0 || e.quota[Dark] > 0 {
		return false
	}
	e.phase = Movement
	return true
}

// RemainingPlacements returns how many pieces p still has to place.
func (e *GameEngine) RemainingPlacements(p Player) int {
	return e.quota[p]
}

// Phase returns the current phase.
func (e *GameEngine) Phase() Phase {
	return e.phase
}
