package service

import (
	"time"

	"github.com/wricardo/latrones/game/engine"
)

// Event types reported in ActionResult.Events and pushed to websocket clients.
const (
	EventPlace       = "place"
	EventSelect      = "select"
	EventDeselect    = "deselect"
	EventMove        = "move"
	EventCapture     = "capture"
	EventPhaseChange = "phase_change"
	EventGameOver    = "game_over"
	EventSetup       = "setup"
	EventReset       = "reset"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string            `json:"id"`
	ConfigID       string            `json:"config_id"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
	Rules          *engine.Rules     `json:"rules"`
}

// ActionResult is returned by every click-style operation. A rejected click
// is not an error: Success is false and Message explains why.
type ActionResult struct {
	Success   bool              `json:"success"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events"`
}

// GameEvent represents something that happened during one action
type GameEvent struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Player    string    `json:"player,omitempty"`
	Squares   []int     `json:"squares,omitempty"`
}

// ConfigInfo provides information about a rules preset
type ConfigInfo struct {
	Filename          string `json:"filename"`
	ConfigID          string `json:"config_id"` // The identifier to use for session creation
	Name              string `json:"name"`
	Description       string `json:"description"`
	PiecesPerPlayer   int    `json:"pieces_per_player"`
	EdgeCaptures      bool   `json:"edge_captures"`
	PlacementCaptures bool   `json:"placement_captures"`
}
