// Package engine provides the core game logic for Latrones (Ludus Latrunculorum).
//
// The engine package implements the game mechanics including:
//   - The 64-square board and its occupancy invariants
//   - The one-way Placement → Movement phase transition
//   - Orthogonal sliding move generation
//   - Custodian capture resolution
//   - Turn alternation and win detection
//   - The click-driven select-then-act protocol
//
// Core Types:
//
// The Engine interface defines the contract consumed by the user interface,
// implemented by GameEngine. A GameEngine owns exactly one game: create it with
// NewEngine, drive it with SelectSquare, SetStartingPieces and Reset, and read it
// through the accessors or a GameState snapshot. Rules carries the configurable
// parts of the game (placement quota, capture options, starting layout).
//
// Usage:
//
//	eng := engine.NewEngineWithDefaults()
//
//	// Placement: Light then Dark drop pieces on empty squares
//	eng.SelectSquare(0)
//	eng.SelectSquare(63)
//
//	// Or skip placement entirely
//	eng.SetStartingPieces()
//	eng.SelectSquare(7)  // select Light piece on H1
//	eng.SelectSquare(3)  // slide it to D1
//
// Squares are addressed by row-major index 0-63, row 0 being rank 1 and
// column 0 file A. Mutating calls never return errors: a rejected click returns
// false and leaves the game untouched.
package engine
