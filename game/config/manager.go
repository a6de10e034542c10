package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/latrones/game/engine"
	"github.com/wricardo/latrones/game/service"
)

// The service layer matches on these with errors.Is.
var (
	ErrConfigNotFound = service.ErrConfigNotFound
	ErrInvalidConfig  = service.ErrInvalidConfig
	ErrInvalidName    = errors.New("invalid configuration name")
)

// DefaultConfigName is the preset used when a session names none.
const DefaultConfigName = "classic"

// Manager handles rules preset loading and caching
type Manager struct {
	configDir     string
	defaultName   string
	defaultConfig *engine.Rules
	configs       map[string]*engine.Rules
	mu            sync.RWMutex
}

var _ service.ConfigManager = (*Manager)(nil)

// NewManager creates a new configuration manager
func NewManager(configDir string) (*Manager, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir:   configDir,
		defaultName: DefaultConfigName,
		configs:     make(map[string]*engine.Rules),
	}

	if err := m.loadDefaultConfig(); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	return m, nil
}

// LoadConfig loads a preset by name, with or without the .json extension
func (m *Manager) LoadConfig(name string) (*engine.Rules, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	if rules, exists := m.configs[name]; exists {
		m.mu.RUnlock()
		return rules, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if rules, exists := m.configs[name]; exists {
		return rules, nil
	}

	rules, err := m.readConfig(name)
	if err != nil {
		return nil, err
	}

	m.configs[name] = rules
	return rules, nil
}

func (m *Manager) readConfig(name string) (*engine.Rules, error) {
	data, err := os.ReadFile(filepath.Join(m.configDir, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rules engine.Rules
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := engine.ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &rules, nil
}

// ListConfigs returns information about all loadable presets, sorted by id
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	configs := []*service.ConfigInfo{}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".json")
		rules, err := m.LoadConfig(id)
		if err != nil {
			// Skip invalid presets
			continue
		}

		configs = append(configs, &service.ConfigInfo{
			Filename:          entry.Name(),
			ConfigID:          id,
			Name:              rules.Name,
			Description:       rules.Description,
			PiecesPerPlayer:   rules.PiecesPerPlayer,
			EdgeCaptures:      rules.EdgeCaptures,
			PlacementCaptures: rules.PlacementCaptures,
		})
	}

	sort.Slice(configs, func(i, j int) bool {
		return configs[i].ConfigID < configs[j].ConfigID
	})

	return configs, nil
}

// GetDefault returns the default preset
func (m *Manager) GetDefault() *engine.Rules {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default preset by name
func (m *Manager) SetDefault(name string) error {
	rules, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultName = strings.TrimSuffix(name, ".json")
	m.defaultConfig = rules
	return nil
}

// RefreshCache clears cached presets and reloads the default from disk, so
// edited preset files take effect for new sessions
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.configs = make(map[string]*engine.Rules)
	m.mu.Unlock()

	return m.loadDefaultConfig()
}

// ValidateConfig checks rules without saving them
func (m *Manager) ValidateConfig(rules *engine.Rules) error {
	if err := engine.ValidateRules(rules); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// loadDefaultConfig prefers the default preset (classic.json unless SetDefault
// chose another), then the first valid preset, then the built-in rules
func (m *Manager) loadDefaultConfig() error {
	m.mu.RLock()
	name := m.defaultName
	m.mu.RUnlock()

	rules, err := m.LoadConfig(name)
	if err != nil {
		configs, listErr := m.ListConfigs()
		if listErr != nil || len(configs) == 0 {
			m.setDefault(engine.DefaultRules())
			return nil
		}

		rules, err = m.LoadConfig(configs[0].ConfigID)
		if err != nil {
			m.setDefault(engine.DefaultRules())
			return nil
		}
	}

	m.setDefault(rules)
	return nil
}

func (m *Manager) setDefault(rules *engine.Rules) {
	m.mu.Lock()
	m.defaultConfig = rules
	m.mu.Unlock()
}

// SaveConfig validates rules and writes them to <dir>/<name>.json
func (m *Manager) SaveConfig(name string, rules *engine.Rules) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}

	if err := m.ValidateConfig(rules); err != nil {
		return err
	}

	data, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(m.configDir, name+".json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.mu.Lock()
	m.configs[name] = rules
	m.mu.Unlock()

	return nil
}

// normalizeName strips the .json extension and rejects names that would
// escape the config directory.
func normalizeName(name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".json")
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return name, nil
}

// Count returns how many presets are cached
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.configs)
}
