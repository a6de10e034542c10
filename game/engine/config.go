package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rules holds the configurable parts of a game, loaded from JSON.
type Rules struct {
	Name              string   `json:"name" validate:"required,max=64"`
	Description       string   `json:"description" validate:"required"`
	PiecesPerPlayer   int      `json:"pieces_per_player" validate:"min=1,max=32"`
	EdgeCaptures      bool     `json:"edge_captures"`
	PlacementCaptures bool     `json:"placement_captures"`
	StartingLayout    []string `json:"starting_layout" validate:"len=8,dive,len=8"`
}

var validate = validator.New()

// DefaultLayout is the canonical arrangement: Dark on file A, Light on file H.
var DefaultLayout = []string{
	"D......L",
	"D......L",
	"D......L",
	"D......L",
	"D......L",
	"D......L",
	"D......L",
	"D......L",
}

// DefaultRules returns the classical reconstruction: 8 pieces a side, no edge captures.
func DefaultRules() *Rules {
	layout := make([]string, len(DefaultLayout))
	copy(layout, DefaultLayout)
	return &Rules{
		Name:            "classic",
		Description:     "Eight pieces a side, custodian capture between two pieces only",
		PiecesPerPlayer: DefaultPiecesPerPlayer,
		StartingLayout:  layout,
	}
}

// ValidateRules validates rules for correctness and playability: both sides
// need pieces in the starting layout and Light needs a legal first move.
func ValidateRules(rules *Rules) error {
	if rules == nil {
		return fmt.Errorf("rules validation: rules are required")
	}

	if err := validate.Struct(rules); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("rules validation: %w", err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, describeFieldError(fe))
		}
		return fmt.Errorf("rules validation: %s", strings.Join(msgs, "; "))
	}

	board, err := ParseLayout(rules.StartingLayout)
	if err != nil {
		return fmt.Errorf("rules validation: %w", err)
	}

	counts := CountPieces(board)
	if counts.Light == 0 || counts.Dark == 0 {
		return fmt.Errorf("rules validation: starting_layout must contain pieces for both players, got light=%d dark=%d",
			counts.Light, counts.Dark)
	}

	// Light moves first after SetStartingPieces and has no way to pass
	if !board.HasMovablePiece(Light) {
		return fmt.Errorf("rules validation: starting_layout gives Light no legal move")
	}

	return nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must have length %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// ParseLayout converts 8 rows (rank 8 first) of '.', 'L', 'D' into a board.
func ParseLayout(layout []string) (*Board, error) {
	if len(layout) != BoardSide {
		return nil, fmt.Errorf("starting_layout must have %d rows, got %d", BoardSide, len(layout))
	}

	var b Board
	for i, line := range layout {
		if len(line) != BoardSide {
			return nil, fmt.Errorf("starting_layout row %d must have %d characters, got %d", i+1, BoardSide, len(line))
		}
		row := BoardSide - 1 - i
		for col := 0; col < BoardSide; col++ {
			var sq Square
			switch line[col] {
			case '.':
				sq = Empty
			case 'L':
				sq = LightPiece
			case 'D':
				sq = DarkPiece
			default:
				return nil, fmt.Errorf("invalid character '%c' at row %d, col %d", line[col], i+1, col+1)
			}
			b[row*BoardSide+col] = sq
		}
	}
	return &b, nil
}

// LoadRules loads rules from a JSON file
func LoadRules(filename string) (*Rules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var rules Rules
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file '%s': %w", filepath.Base(filename), err)
	}

	if err := ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("invalid rules '%s': %w", filepath.Base(filename), err)
	}

	return &rules, nil
}
