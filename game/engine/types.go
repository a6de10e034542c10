package engine

import (
	"errors"
	"fmt"
)

const (
	// Board geometry
	BoardSide   = 8
	SquareCount = BoardSide * BoardSide

	// Validation constants
	MinPiecesPerPlayer     = 1
	MaxPiecesPerPlayer     = SquareCount / 2
	DefaultPiecesPerPlayer = 8
)

var (
	ErrSquareOutOfRange = errors.New("square index out of range")
	ErrInvalidSquare    = errors.New("invalid square name")
)

// Square is the content of one board position.
type Square uint8

const (
	Empty Square = iota
	LightPiece
	DarkPiece
)

func (s Square) String() string {
	switch s {
	case LightPiece:
		return "light"
	case DarkPiece:
		return "dark"
	default:
		return "empty"
	}
}

// Player is one side of the game.
type Player uint8

const (
	Light Player = iota
	Dark
)

func (p Player) String() string {
	if p == Dark {
		return "dark"
	}
	return "light"
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == Light {
		return Dark
	}
	return Light
}

// Piece returns the square value holding one of p's pieces.
func (p Player) Piece() Square {
	if p == Dark {
		return DarkPiece
	}
	return LightPiece
}

func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "light":
		*p = Light
	case "dark":
		*p = Dark
	default:
		return fmt.Errorf("unknown player %q", text)
	}
	return nil
}

// Owner reports which player a square belongs to.
func (s Square) Owner() (Player, bool) {
	switch s {
	case LightPiece:
		return Light, true
	case DarkPiece:
		return Dark, true
	}
	return Light, false
}

// Phase is the game phase. It only ever moves from Placement to Movement.
type Phase uint8

const (
	Placement Phase = iota
	Movement
)

func (ph Phase) String() string {
	if ph == Movement {
		return "movement"
	}
	return "placement"
}

func (ph Phase) MarshalText() ([]byte, error) {
	return []byte(ph.String()), nil
}

func (ph *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "placement":
		*ph = Placement
	case "movement":
		*ph = Movement
	default:
		return fmt.Errorf("unknown phase %q", text)
	}
	return nil
}

// Selection is either NoSelection or SelectedAt(index).
// The zero value is NoSelection, so square 0 is never ambiguous.
type Selection struct {
	index int
	set   bool
}

// NoSelection returns the empty selection.
func NoSelection() Selection {
	return Selection{}
}

// SelectedAt returns a selection of the given square.
func SelectedAt(index int) Selection {
	return Selection{index: index, set: true}
}

// Square returns the selected index and whether anything is selected.
func (s Selection) Square() (int, bool) {
	return s.index, s.set
}

// IsSet reports whether a square is selected.
func (s Selection) IsSet() bool {
	return s.set
}

// ActionKind identifies what the most recent mutating call did.
type ActionKind string

const (
	ActionNone     ActionKind = "none"
	ActionPlace    ActionKind = "place"
	ActionSelect   ActionKind = "select"
	ActionDeselect ActionKind = "deselect"
	ActionReselect ActionKind = "reselect"
	ActionMove     ActionKind = "move"
	ActionSetup    ActionKind = "setup"
	ActionReset    ActionKind = "reset"
)

// ActionRecord describes the outcome of the latest accepted mutating call.
// It is overwritten by every accepted call and is not a history.
type ActionRecord struct {
	Kind         ActionKind `json:"kind"`
	Player       Player     `json:"player"`
	From         int        `json:"from"` // -1 when not applicable
	To           int        `json:"to"`   // -1 when not applicable
	Captured     []int      `json:"captured,omitempty"`
	PhaseChanged bool       `json:"phase_changed,omitempty"`
	GameEnded    bool       `json:"game_ended,omitempty"`
}

// PlayerCounts holds one number per player.
type PlayerCounts struct {
	Light int `json:"light"`
	Dark  int `json:"dark"`
}

// GameState is a read-only snapshot of a game, shaped for the UI.
type GameState struct {
	Board               []int        `json:"board"` // 0=empty, 1=light, 2=dark
	CurrentPlayer       Player       `json:"current_player"`
	Phase               Phase        `json:"phase"`
	SelectedSquare      *int         `json:"selected_square"`
	ValidMoves          []int        `json:"valid_moves"`
	RemainingPlacements PlayerCounts `json:"remaining_placements"`
	Pieces              PlayerCounts `json:"pieces"`
	GameOver            bool         `json:"game_over"`
	Winner              *Player      `json:"winner"`
	RulesName           string       `json:"rules_name"`
	Message             string       `json:"message"`
	LastAction          ActionRecord `json:"last_action"`
}
