package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/wricardo/latrones/game/engine"
	"github.com/wricardo/latrones/game/service"
	"github.com/wricardo/latrones/game/session"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id, configID string, rules *engine.Rules) (*service.Session, error) {
	// Generate ID if empty (mimics real session manager behavior)
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}

	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	eng, err := engine.NewEngine(rules)
	if err != nil {
		return nil, err
	}

	session := &service.Session{
		ID:             id,
		ConfigID:       configID,
		Engine:         eng,
		Rules:          rules,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if session, exists := m.sessions[id]; exists {
		session.LastAccessedAt = time.Now()
		return nil
	}
	return errors.New("session not found")
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.Rules
	saved   map[string]*engine.Rules
}

func NewMockConfigManager() *MockConfigManager {
	classic := engine.DefaultRules()

	edge := engine.DefaultRules()
	edge.Name = "edge_wall"
	edge.EdgeCaptures = true

	return &MockConfigManager{
		configs: map[string]*engine.Rules{
			"classic":   classic,
			"edge_wall": edge,
		},
		saved: make(map[string]*engine.Rules),
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.Rules, error) {
	if rules, ok := m.configs[name]; ok {
		return rules, nil
	}
	return nil, service.ErrConfigNotFound
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	return []*service.ConfigInfo{
		{ConfigID: "classic", Name: "classic", Filename: "classic.json"},
		{ConfigID: "edge_wall", Name: "edge_wall", Filename: "edge_wall.json"},
	}, nil
}

func (m *MockConfigManager) GetDefault() *engine.Rules {
	return m.configs["classic"]
}

func (m *MockConfigManager) SaveConfig(name string, rules *engine.Rules) error {
	if err := engine.ValidateRules(rules); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidConfig, err)
	}
	m.saved[name] = rules
	m.configs[name] = rules
	return nil
}

func newTestService() (service.GameService, *MockSessionManager) {
	sessions := NewMockSessionManager()
	return service.NewGameService(sessions, NewMockConfigManager()), sessions
}

func eventTypes(events []service.GameEvent) []string {
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

func TestGameService_CreateSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("default config", func(t *testing.T) {
		info, err := svc.CreateSession(ctx, "")
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if info.ID == "" {
			t.Error("Expected a session ID")
		}
		if info.ConfigID != "classic" {
			t.Errorf("Expected config_id 'classic', got '%s'", info.ConfigID)
		}
		if info.GameState == nil || info.GameState.Phase != engine.Placement {
			t.Error("Expected a fresh game in the placement phase")
		}
	})

	t.Run("named config with extension", func(t *testing.T) {
		info, err := svc.CreateSession(ctx, "edge_wall.json")
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if info.ConfigID != "edge_wall" || !info.Rules.EdgeCaptures {
			t.Errorf("Expected edge_wall rules, got %+v", info.Rules)
		}
	})

	t.Run("unknown config lists alternatives", func(t *testing.T) {
		_, err := svc.CreateSession(ctx, "missing")
		if !errors.Is(err, service.ErrConfigNotFound) {
			t.Fatalf("Expected ErrConfigNotFound, got %v", err)
		}
		if !strings.Contains(err.Error(), "edge_wall") {
			t.Errorf("Expected available configs in error, got %v", err)
		}
	})
}

func TestGameService_SelectSquare(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	info, _ := svc.CreateSession(ctx, "classic")

	t.Run("placement", func(t *testing.T) {
		result, err := svc.SelectSquare(ctx, info.ID, 0)
		if err != nil {
			t.Fatalf("SelectSquare failed: %v", err)
		}
		if !result.Success {
			t.Fatalf("Expected placement to succeed: %s", result.Message)
		}
		if result.GameState.Board[0] != 1 {
			t.Error("Expected Light piece on A1")
		}
		if got := eventTypes(result.Events); len(got) != 1 || got[0] != service.EventPlace {
			t.Errorf("Expected a single place event, got %v", got)
		}
		if result.Events[0].Player != "light" {
			t.Errorf("Expected event player 'light', got '%s'", result.Events[0].Player)
		}
	})

	t.Run("rejected click is not an error", func(t *testing.T) {
		result, err := svc.SelectSquare(ctx, info.ID, 0)
		if err != nil {
			t.Fatalf("Expected no error for a rejected click, got %v", err)
		}
		if result.Success {
			t.Error("Expected placement on an occupied square to fail")
		}
		if !strings.Contains(result.Message, "occupied") {
			t.Errorf("Expected explanation, got %q", result.Message)
		}
		if len(result.Events) != 0 {
			t.Errorf("Expected no events, got %v", eventTypes(result.Events))
		}
	})

	t.Run("out of range", func(t *testing.T) {
		result, err := svc.SelectSquare(ctx, info.ID, 64)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if result.Success || !strings.Contains(result.Message, "out of range") {
			t.Errorf("Expected out of range rejection, got %+v", result)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.SelectSquare(ctx, "nope", 0)
		if !errors.Is(err, service.ErrSessionNotFound) {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestGameService_MoveAndCapture(t *testing.T) {
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()

	rules := engine.DefaultRules()
	rules.Name = "capture"
	rules.StartingLayout = []string{
		"D.......",
		"........",
		"........",
		"........",
		"........",
		".......L",
		".D......",
		".L......",
	}
	configs.configs["capture"] = rules

	svc := service.NewGameService(sessions, configs)
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "capture")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	setup, err := svc.SetStartingPieces(ctx, info.ID)
	if err != nil {
		t.Fatalf("SetStartingPieces failed: %v", err)
	}
	if got := eventTypes(setup.Events); len(got) != 1 || got[0] != service.EventSetup {
		t.Errorf("Expected setup event, got %v", got)
	}

	sel, _ := svc.SelectSquare(ctx, info.ID, 23)
	if got := eventTypes(sel.Events); len(got) != 1 || got[0] != service.EventSelect {
		t.Errorf("Expected select event, got %v", got)
	}

	wrong, _ := svc.SelectSquare(ctx, info.ID, 10)
	if wrong.Success || !strings.Contains(wrong.Message, "not a legal destination for H3") {
		t.Errorf("Expected destination rejection, got %+v", wrong.Message)
	}

	move, err := svc.SelectSquare(ctx, info.ID, 17)
	if err != nil || !move.Success {
		t.Fatalf("Expected move to succeed: %v %+v", err, move)
	}

	got := eventTypes(move.Events)
	want := []string{service.EventMove, service.EventCapture}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected events %v, got %v", want, got)
	}
	if capture := move.Events[1]; len(capture.Squares) != 1 || capture.Squares[0] != 9 {
		t.Errorf("Expected capture of square 9, got %v", capture.Squares)
	}
	if move.GameState.CurrentPlayer != engine.Dark {
		t.Errorf("Expected Dark to move, got %s", move.GameState.CurrentPlayer)
	}
}

func TestGameService_GameOverEvent(t *testing.T) {
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()

	rules := engine.DefaultRules()
	rules.Name = "endgame"
	rules.StartingLayout = []string{
		".L......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"L.......",
		"D.......",
	}
	configs.configs["endgame"] = rules
	svc := service.NewGameService(sessions, configs)
	ctx := context.Background()

	info, _ := svc.CreateSession(ctx, "endgame")
	svc.SetStartingPieces(ctx, info.ID)
	svc.SelectSquare(ctx, info.ID, 57)
	result, _ := svc.SelectSquare(ctx, info.ID, 1)

	got := eventTypes(result.Events)
	if len(got) != 2 || got[1] != service.EventGameOver {
		t.Fatalf("Expected move then game_over events, got %v", got)
	}
	if result.GameState.Winner == nil || *result.GameState.Winner != engine.Light {
		t.Error("Expected Light to win")
	}

	after, _ := svc.SelectSquare(ctx, info.ID, 2)
	if after.Success || !strings.Contains(after.Message, "game is over") {
		t.Errorf("Expected game over rejection, got %q", after.Message)
	}
}

func TestGameService_PhaseChangeEvent(t *testing.T) {
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()

	rules := engine.DefaultRules()
	rules.Name = "tiny"
	rules.PiecesPerPlayer = 1
	configs.configs["tiny"] = rules
	svc := service.NewGameService(sessions, configs)
	ctx := context.Background()

	info, _ := svc.CreateSession(ctx, "tiny")
	svc.SelectSquare(ctx, info.ID, 0)
	result, _ := svc.SelectSquare(ctx, info.ID, 63)

	got := eventTypes(result.Events)
	if len(got) != 2 || got[0] != service.EventPlace || got[1] != service.EventPhaseChange {
		t.Errorf("Expected place then phase_change, got %v", got)
	}
	if result.GameState.Phase != engine.Movement {
		t.Errorf("Expected movement phase, got %s", result.GameState.Phase)
	}
}

func TestGameService_ListSessions(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateSession(ctx, ""); err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
	}

	sessions, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("Failed to list sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Errorf("Expected 3 sessions, got %d", len(sessions))
	}
}

func TestGameService_DeleteSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	info, _ := svc.CreateSession(ctx, "")
	if err := svc.DeleteSession(ctx, info.ID); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}
	if _, err := svc.GetSession(ctx, info.ID); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := svc.DeleteSession(ctx, info.ID); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound on second delete, got %v", err)
	}
}

func TestGameService_Reset(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	info, _ := svc.CreateSession(ctx, "")
	svc.SetStartingPieces(ctx, info.ID)

	state, err := svc.Reset(ctx, info.ID)
	if err != nil {
		t.Fatalf("Failed to reset: %v", err)
	}
	if state.Phase != engine.Placement {
		t.Errorf("Expected placement phase after reset, got %s", state.Phase)
	}
	if state.Pieces.Light != 0 || state.Pieces.Dark != 0 {
		t.Error("Expected an empty board after reset")
	}
	if state.RemainingPlacements.Light != engine.DefaultPiecesPerPlayer {
		t.Errorf("Expected quotas restored, got %+v", state.RemainingPlacements)
	}

	if _, err := svc.Reset(ctx, "missing"); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestGameService_GetGameState(t *testing.T) {
	svc, sessions := newTestService()
	ctx := context.Background()

	info, _ := svc.CreateSession(ctx, "")
	before := sessions.sessions[info.ID].LastAccessedAt
	time.Sleep(5 * time.Millisecond)

	state, err := svc.GetGameState(ctx, info.ID)
	if err != nil {
		t.Fatalf("Failed to get state: %v", err)
	}
	if len(state.Board) != engine.SquareCount {
		t.Errorf("Expected %d squares, got %d", engine.SquareCount, len(state.Board))
	}
	if !sessions.sessions[info.ID].LastAccessedAt.After(before) {
		t.Error("Expected state reads to touch the session")
	}
}

func TestGameService_Configs(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	configs, err := svc.ListConfigs(ctx)
	if err != nil || len(configs) != 2 {
		t.Fatalf("Expected 2 configs, got %d (%v)", len(configs), err)
	}

	rules := engine.DefaultRules()
	rules.Name = "custom"
	if err := svc.SaveConfig(ctx, "custom", rules); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}
	loaded, err := svc.LoadConfig(ctx, "custom")
	if err != nil || loaded.Name != "custom" {
		t.Errorf("Expected saved config to load, got %v (%v)", loaded, err)
	}

	bad := engine.DefaultRules()
	bad.PiecesPerPlayer = 0
	if err := svc.SaveConfig(ctx, "bad", bad); !errors.Is(err, service.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

// Run with -race: lookups refresh LastAccessedAt while listings read it.
func TestGameService_ConcurrentReads(t *testing.T) {
	svc := service.NewGameService(session.NewManager(), NewMockConfigManager())
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 150)
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			if _, err := svc.GetSession(ctx, info.ID); err != nil {
				errs <- err
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := svc.ListSessions(ctx); err != nil {
				errs <- err
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := svc.GetGameState(ctx, info.ID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Unexpected error during concurrent reads: %v", err)
	}
}
