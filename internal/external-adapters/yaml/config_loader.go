package yaml

import (
	"fmt"
	"os"

	"github.com/ochairo/clangfetch/internal/domain/entities"
)

// ConfigEnvVar selects a configuration file when --config is not given
const ConfigEnvVar = "CLANGFETCH_CONFIG"

// ConfigLoader resolves and loads the configuration for a run
type ConfigLoader struct {
	parser *ConfigParser
	getenv func(string) string
}

// NewConfigLoader creates a loader that consults the process environment
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{
		parser: NewConfigParser(),
		getenv: os.Getenv,
	}
}

// Load reads the configuration at path. An empty path falls back to
// $CLANGFETCH_CONFIG, and then to the built-in defaults.
func (l *ConfigLoader) Load(path string) (*entities.Config, error) {
	if path == "" {
		path = l.getenv(ConfigEnvVar)
	}
	if path == "" {
		return entities.DefaultConfig(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg, err := l.parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}
