package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wricardo/bikedriving/game/engine"
	"github.com/wricardo/bikedriving/game/service"
)

var (
	ErrConfigNotFound = service.ErrConfigNotFound
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// DefaultConfigName is the profile preferred as default when present
const DefaultConfigName = "classic"

// Supported profile file extensions, in lookup order
var extensions = []string{".json", ".yaml", ".yml"}

// Manager handles board profile loading and caching
type Manager struct {
	configDir     string
	defaultConfig *engine.BoardConfig
	configs       map[string]*engine.BoardConfig
}

// NewManager creates a new configuration manager
func NewManager(configDir string) (*Manager, error) {
	// Ensure config directory exists
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		configs:   make(map[string]*engine.BoardConfig),
	}

	if err := m.loadDefaultConfig(); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	return m, nil
}

// LoadConfig loads a profile by name. The name may carry its extension;
// otherwise .json, .yaml and .yml are tried in that order.
func (m *Manager) LoadConfig(name string) (*engine.BoardConfig, error) {
	key := trimExtension(name)
	if config, exists := m.configs[key]; exists {
		return config, nil
	}

	configPath, err := m.resolve(name)
	if err != nil {
		return nil, err
	}

	config, err := LoadFile(configPath)
	if err != nil {
		return nil, err
	}

	m.configs[key] = config
	return config, nil
}

// LoadFile reads and validates a single profile file
func LoadFile(path string) (*engine.BoardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config engine.BoardConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := engine.ValidateBoardConfig(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// ListConfigs returns information about all valid profiles in the directory
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var configs []*service.ConfigInfo
	seen := make(map[string]bool)

	for _, entry := range entries {
		if entry.IsDir() || !IsConfigFile(entry.Name()) {
			continue
		}

		name := trimExtension(entry.Name())
		if seen[name] {
			continue
		}

		config, err := m.LoadConfig(entry.Name())
		if err != nil {
			// Skip invalid configs
			continue
		}
		seen[name] = true

		configs = append(configs, &service.ConfigInfo{
			Filename:    entry.Name(),
			ConfigID:    name,
			Name:        config.Name,
			Description: config.Description,
			Width:       config.Width,
			Height:      config.Height,
		})
	}

	sort.Slice(configs, func(i, j int) bool {
		return configs[i].ConfigID < configs[j].ConfigID
	})

	return configs, nil
}

// GetDefault returns the default configuration
func (m *Manager) GetDefault() *engine.BoardConfig {
	return m.defaultConfig
}

// IsConfigFile reports whether filename has a supported profile extension
func IsConfigFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, supported := range extensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// loadDefaultConfig prefers classic, then the first valid profile, then
// the built-in 7x7 board
func (m *Manager) loadDefaultConfig() error {
	config, err := m.LoadConfig(DefaultConfigName)
	if err != nil {
		configs, listErr := m.ListConfigs()
		if listErr != nil || len(configs) == 0 {
			m.defaultConfig = engine.DefaultBoardConfig()
			return nil
		}

		config, err = m.LoadConfig(configs[0].Filename)
		if err != nil {
			m.defaultConfig = engine.DefaultBoardConfig()
			return nil
		}
	}

	m.defaultConfig = config
	return nil
}

func (m *Manager) resolve(name string) (string, error) {
	if IsConfigFile(name) {
		return filepath.Join(m.configDir, name), nil
	}

	for _, ext := range extensions {
		candidate := filepath.Join(m.configDir, name+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrConfigNotFound
}

func trimExtension(name string) string {
	if IsConfigFile(name) {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}
