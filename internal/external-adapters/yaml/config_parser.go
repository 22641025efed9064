// Package yaml provides YAML-based configuration parsing and loading.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/clangfetch/internal/domain/entities"
	"github.com/ochairo/clangfetch/internal/domain/services"
	"gopkg.in/yaml.v3"
)

// yamlConfig represents the raw YAML structure
type yamlConfig struct {
	Source   yamlSource   `yaml:"source"`
	Download yamlDownload `yaml:"download"`
	Log      yamlLog      `yaml:"log"`
}

type yamlSource struct {
	URLTemplate     string `yaml:"url_template"`
	DefaultRevision string `yaml:"default_revision"`
}

type yamlDownload struct {
	TimeoutMinutes int    `yaml:"timeout_minutes"`
	UserAgent      string `yaml:"user_agent"`
}

type yamlLog struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// maxTimeoutMinutes caps download.timeout_minutes at one day
const maxTimeoutMinutes = 24 * 60

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ConfigParser parses YAML configuration files
type ConfigParser struct{}

// NewConfigParser creates a new YAML parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses a YAML configuration file
func (p *ConfigParser) ParseFile(filePath string) (*entities.Config, error) {
	//nolint:gosec // G304: filePath is the user-selected configuration file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Config. Fields left out keep their
// defaults; unknown fields are rejected.
func (p *ConfigParser) Parse(data []byte) (*entities.Config, error) {
	var raw yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg := entities.DefaultConfig()
	applySource(&cfg.Source, raw.Source)
	applyDownload(&cfg.Download, raw.Download)
	applyLog(&cfg.Log, raw.Log)

	if err := validate(cfg, raw); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applySource(dst *entities.ScriptSource, ys yamlSource) {
	if ys.URLTemplate != "" {
		dst.URLTemplate = ys.URLTemplate
	}
	if ys.DefaultRevision != "" {
		dst.DefaultRevision = ys.DefaultRevision
	}
}

func applyDownload(dst *entities.DownloadSettings, yd yamlDownload) {
	if yd.TimeoutMinutes > 0 {
		dst.TimeoutMinutes = yd.TimeoutMinutes
	}
	if yd.UserAgent != "" {
		dst.UserAgent = yd.UserAgent
	}
}

func applyLog(dst *entities.LogSettings, yl yamlLog) {
	if yl.Level != "" {
		dst.Level = yl.Level
	}
	if yl.Format != "" {
		dst.Format = yl.Format
	}
}

func validate(cfg *entities.Config, raw yamlConfig) error {
	if err := services.ValidateScriptSource(cfg.Source); err != nil {
		return fmt.Errorf("invalid source: %w", err)
	}

	if raw.Download.TimeoutMinutes < 0 {
		return fmt.Errorf("download.timeout_minutes must not be negative, got %d", raw.Download.TimeoutMinutes)
	}
	if raw.Download.TimeoutMinutes > maxTimeoutMinutes {
		return fmt.Errorf("download.timeout_minutes must be at most %d, got %d", maxTimeoutMinutes, raw.Download.TimeoutMinutes)
	}

	if !validLogLevels[cfg.Log.Level] {
		return fmt.Errorf("unknown log level %q (want debug, info, warn or error)", cfg.Log.Level)
	}

	if cfg.Log.Format != entities.LogFormatConsole && cfg.Log.Format != entities.LogFormatJSON {
		return fmt.Errorf("unknown log format %q (want console or json)", cfg.Log.Format)
	}

	return nil
}
