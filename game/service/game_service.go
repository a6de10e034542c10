package service

import (
	"context"
	"errors"
	"time"

	"github.com/wricardo/latrones/game/engine"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrConfigNotFound  = errors.New("configuration not found")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	SelectSquare(ctx context.Context, sessionID string, index int) (*ActionResult, error)
	SetStartingPieces(ctx context.Context, sessionID string) (*ActionResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.Rules, error)
	SaveConfig(ctx context.Context, configName string, rules *engine.Rules) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id, configID string, rules *engine.Rules) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles rules preset loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.Rules, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.Rules
	SaveConfig(name string, rules *engine.Rules) error
}

// Session represents an active game session
type Session struct {
	ID             string
	ConfigID       string
	Engine         *engine.GameEngine
	Rules          *engine.Rules
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
