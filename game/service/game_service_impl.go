package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/latrones/game/engine"
)

// gameServiceImpl implements the GameService interface. Engines are not safe
// for concurrent use, and lookups touch Session.LastAccessedAt, so every call
// that reaches a session happens under mu.
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.Mutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// CreateSession creates a new game session from a rules preset. An empty
// configName uses the default preset.
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rules *engine.Rules
	configID := strings.TrimSuffix(configName, ".json")
	if configID != "" {
		var err error
		rules, err = s.configs.LoadConfig(configID)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				return nil, s.configNotFound(configID)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configID, err)
		}
	} else {
		rules = s.configs.GetDefault()
		configID = rules.Name
	}

	session, err := s.sessions.Create("", configID, rules)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sessionInfo(session), nil
}

// configNotFound lists the available presets so callers can correct themselves.
func (s *gameServiceImpl) configNotFound(configID string) error {
	available, err := s.configs.ListConfigs()
	if err != nil || len(available) == 0 {
		return fmt.Errorf("%w: '%s'. Use /api/configs to list available configurations", ErrConfigNotFound, configID)
	}

	ids := make([]string, 0, len(available))
	for _, cfg := range available {
		ids = append(ids, cfg.ConfigID)
	}
	return fmt.Errorf("%w: '%s'. Available configs: %v", ErrConfigNotFound, configID, ids)
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	return sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return nil
}

// SelectSquare forwards a click to the session's engine
func (s *gameServiceImpl) SelectSquare(ctx context.Context, sessionID string, index int) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.Engine.SelectSquare(index) {
		state := sess.Engine.State()
		return &ActionResult{
			Success:   false,
			GameState: state,
			Message:   rejectionReason(sess.Engine, index),
			Events:    []GameEvent{},
		}, nil
	}

	state := sess.Engine.State()
	return &ActionResult{
		Success:   true,
		GameState: state,
		Message:   state.Message,
		Events:    eventsFor(state.LastAction, state, time.Now()),
	}, nil
}

// SetStartingPieces installs the preset's starting layout and starts the Movement phase
func (s *gameServiceImpl) SetStartingPieces(ctx context.Context, sessionID string) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Engine.SetStartingPieces()
	state := sess.Engine.State()

	return &ActionResult{
		Success:   true,
		GameState: state,
		Message:   state.Message,
		Events:    eventsFor(state.LastAction, state, time.Now()),
	}, nil
}

// Reset resets a game session to an empty board in the Placement phase
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Engine.Reset()
	return sess.Engine.State(), nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	return sess.Engine.State(), nil
}

// ListConfigs returns available rules presets
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific rules preset
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.Rules, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a rules preset to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, rules *engine.Rules) error {
	return s.configs.SaveConfig(configName, rules)
}

// getSession looks up a session and marks it as used. Callers hold mu.
func (s *gameServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess, nil
}

func sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigID:       sess.ConfigID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.State(),
		Rules:          sess.Rules,
	}
}

// eventsFor expands the engine's last action into the events shown to clients.
func eventsFor(rec engine.ActionRecord, state *engine.GameState, now time.Time) []GameEvent {
	player := rec.Player.String()
	event := func(kind, msg string, squares ...int) GameEvent {
		return GameEvent{Type: kind, Message: msg, Timestamp: now, Player: player, Squares: squares}
	}

	events := []GameEvent{}
	switch rec.Kind {
	case engine.ActionPlace:
		events = append(events, event(EventPlace,
			fmt.Sprintf("%s placed a piece on %s", player, engine.SquareName(rec.To)), rec.To))
	case engine.ActionSelect, engine.ActionReselect:
		events = append(events, event(EventSelect,
			fmt.Sprintf("%s selected %s", player, engine.SquareName(rec.To)), rec.To))
	case engine.ActionDeselect:
		events = append(events, event(EventDeselect,
			fmt.Sprintf("%s deselected %s", player, engine.SquareName(rec.From)), rec.From))
	case engine.ActionMove:
		events = append(events, event(EventMove,
			fmt.Sprintf("%s moved %s to %s", player, engine.SquareName(rec.From), engine.SquareName(rec.To)),
			rec.From, rec.To))
	case engine.ActionSetup:
		events = append(events, event(EventSetup, "Starting pieces set; movement begins"))
	case engine.ActionReset:
		events = append(events, event(EventReset, "Game reset to an empty board"))
	}

	if len(rec.Captured) > 0 {
		names := make([]string, len(rec.Captured))
		for i, sq := range rec.Captured {
			names[i] = engine.SquareName(sq)
		}
		events = append(events, event(EventCapture,
			fmt.Sprintf("%s captured %s", player, strings.Join(names, ", ")), rec.Captured...))
	}

	if rec.PhaseChanged {
		events = append(events, event(EventPhaseChange, "All pieces placed; movement phase begins"))
	}

	if rec.GameEnded && state.Winner != nil {
		events = append(events, event(EventGameOver, state.Message))
	}

	return events
}

// rejectionReason explains why a click was refused. The engine state is
// unchanged by a refused click, so it can be inspected afterwards.
func rejectionReason(e *engine.GameEngine, index int) string {
	if !engine.InBounds(index) {
		return fmt.Sprintf("Square %d is out of range (0-%d)", index, engine.SquareCount-1)
	}
	if e.IsGameOver() {
		return "The game is over; reset or set starting pieces to play again"
	}

	name := engine.SquareName(index)
	player := e.CurrentPlayer()

	if e.Phase() == engine.Placement {
		return fmt.Sprintf("%s is occupied; %s must place on an empty square", name, player)
	}

	sq, _ := e.SquareAt(index)
	if sel, ok := e.Selected().Square(); ok {
		return fmt.Sprintf("%s is not a legal destination for %s", name, engine.SquareName(sel))
	}
	if owner, ok := sq.Owner(); !ok || owner != player {
		return fmt.Sprintf("%s does not hold a %s piece", name, player)
	}
	return fmt.Sprintf("The piece on %s has no legal moves", name)
}
