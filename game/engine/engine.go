package engine

import "fmt"

// Engine provides the main interface for game operations
type Engine interface {
	// Mutations
	SelectSquare(index int) bool
	SetStartingPieces()
	Reset()

	// Read accessors
	Board() []int
	SquareAt(index int) (Square, error)
	ValidMoves() []int
	Phase() Phase
	CurrentPlayer() Player
	Selected() Selection
	IsGameOver() bool
	Winner() (Player, bool)
	RemainingPlacements(p Player) int
	LastAction() ActionRecord
	State() *GameState

	// Configuration
	Rules() *Rules
}

// GameEngine implements the Engine interface. It owns one game and is not
// safe for concurrent use; callers serialise access.
type GameEngine struct {
	rules  *Rules
	layout Board

	board     Board
	current   Player
	phase     Phase
	selection Selection
	quota     [2]int
	gameOver  bool
	winner    Player
	hasWinner bool
	last      ActionRecord
}

var _ Engine = (*GameEngine)(nil)

// NewEngine creates a new game engine with the provided rules
func NewEngine(rules *Rules) (*GameEngine, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}

	layout, err := ParseLayout(rules.StartingLayout)
	if err != nil {
		return nil, err
	}

	e := &GameEngine{
		rules:  rules,
		layout: *layout,
	}
	e.Reset()
	e.last = ActionRecord{Kind: ActionNone, From: -1, To: -1}
	return e, nil
}

// NewEngineWithDefaults creates a new game engine with the classic rules
func NewEngineWithDefaults() *GameEngine {
	e, err := NewEngine(DefaultRules())
	if err != nil {
		panic(fmt.Sprintf("engine: default rules invalid: %v", err))
	}
	return e
}

// SelectSquare is the single click entry point. It places a piece, selects,
// deselects, reselects or moves depending on phase and selection, and reports
// whether the click was accepted. A rejected click changes nothing.
func (e *GameEngine) SelectSquare(index int) bool {
	if e.gameOver || !InBounds(index) {
		return false
	}

	if e.phase == Placement {
		return e.place(index)
	}

	sel, selected := e.selection.Square()
	switch {
	case !selected:
		if !e.ownsMovable(index) {
			return false
		}
		e.selection = SelectedAt(index)
		e.record(ActionSelect, -1, index)
		return true

	case index == sel:
		e.selection = NoSelection()
		e.record(ActionDeselect, sel, -1)
		return true

	case e.board.IsDestination(sel, index):
		e.move(sel, index)
		return true

	case e.ownsMovable(index):
		e.selection = SelectedAt(index)
		e.record(ActionReselect, sel, index)
		return true
	}

	return false
}

// place drops the current player's piece on an empty square.
func (e *GameEngine) place(index int) bool {
	mover := e.current
	if e.board[index] != Empty || e.quota[mover] <= 0 {
		return false
	}

	e.board[index] = mover.Piece()
	e.quota[mover]--

	rec := ActionRecord{Kind: ActionPlace, Player: mover, From: -1, To: index}
	if e.rules.PlacementCaptures {
		rec.Captured = e.board.ResolveCaptures(index, mover, e.rules.EdgeCaptures)
	}
	rec.PhaseChanged = e.advancePhase()
	rec.GameEnded = e.finishTurn(mover)
	e.last = rec
	return true
}

// move slides the selected piece and resolves captures around its destination.
func (e *GameEngine) move(from, to int) {
	mover := e.current

	e.board[to] = e.board[from]
	e.board[from] = Empty
	e.selection = NoSelection()

	rec := ActionRecord{Kind: ActionMove, Player: mover, From: from, To: to}
	rec.Captured = e.board.ResolveCaptures(to, mover, e.rules.EdgeCaptures)
	rec.GameEnded = e.finishTurn(mover)
	e.last = rec
}

func (e *GameEngine) record(kind ActionKind, from, to int) {
	e.last = ActionRecord{Kind: kind, Player: e.current, From: from, To: to}
}

// SetStartingPieces installs the configured starting layout and goes straight
// to the Movement phase with Light to move.
func (e *GameEngine) SetStartingPieces() {
	e.board = e.layout
	e.phase = Movement
	e.quota = [2]int{}
	e.current = Light
	e.selection = NoSelection()
	e.gameOver = false
	e.winner = Light
	e.hasWinner = false
	e.last = ActionRecord{Kind: ActionSetup, Player: Light, From: -1, To: -1}
}

// Reset empties the board and returns to the Placement phase.
func (e *GameEngine) Reset() {
	e.board.Clear()
	e.phase = Placement
	e.quota = [2]int{e.rules.PiecesPerPlayer, e.rules.PiecesPerPlayer}
	e.current = Light
	e.selection = NoSelection()
	e.gameOver = false
	e.winner = Light
	e.hasWinner = false
	e.last = ActionRecord{Kind: ActionReset, Player: Light, From: -1, To: -1}
}

// Board returns the squares encoded as 0=empty, 1=light, 2=dark.
func (e *GameEngine) Board() []int {
	return e.board.Ints()
}

// SquareAt returns the content of one square.
func (e *GameEngine) SquareAt(index int) (Square, error) {
	return e.board.Read(index)
}

// Selected returns the current selection.
func (e *GameEngine) Selected() Selection {
	return e.selection
}

// LastAction describes the most recent accepted mutating call.
func (e *GameEngine) LastAction() ActionRecord {
	rec := e.last
	if rec.Captured != nil {
		rec.Captured = append([]int(nil), rec.Captured...)
	}
	return rec
}

// Rules returns the rules this engine was built with.
func (e *GameEngine) Rules() *Rules {
	return e.rules
}

// State returns a snapshot of the game for the UI.
func (e *GameEngine) State() *GameState {
	state := &GameState{
		Board:         e.Board(),
		CurrentPlayer: e.current,
		Phase:         e.phase,
		ValidMoves:    e.ValidMoves(),
		RemainingPlacements: PlayerCounts{
			Light: e.quota[Light],
			Dark:  e.quota[Dark],
		},
		Pieces:     CountPieces(&e.board),
		GameOver:   e.gameOver,
		RulesName:  e.rules.Name,
		Message:    e.describe(),
		LastAction: e.LastAction(),
	}

	if sel, ok := e.selection.Square(); ok {
		state.SelectedSquare = &sel
	}
	if w, ok := e.Winner(); ok {
		state.Winner = &w
	}
	return state
}

// describe produces the status line shown under the board.
func (e *GameEngine) describe() string {
	name := displayName(e.current)
	switch {
	case e.gameOver:
		return fmt.Sprintf("%s wins!", displayName(e.winner))
	case e.phase == Placement:
		return fmt.Sprintf("%s to place (%d remaining)", name, e.quota[e.current])
	case e.selection.IsSet():
		sel, _ := e.selection.Square()
		return fmt.Sprintf("%s: choose a destination for %s", name, SquareName(sel))
	default:
		return fmt.Sprintf("%s to move", name)
	}
}

func displayName(p Player) string {
	if p == Dark {
		return "Dark"
	}
	return "Light"
}
