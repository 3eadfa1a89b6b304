package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the ua-text settings. Values come from an optional YAML file
// and are overridden by command-line flags.
type Config struct {
	// Output is the result format: text, json, yaml or cbor.
	Output string `yaml:"output"`

	// LogLevel is the slog level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the slog handler: text or json.
	LogFormat string `yaml:"log_format"`

	// TraceLog is a .ulog file that receives trace events (empty disables).
	TraceLog string `yaml:"trace_log"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Output:    FormatText,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, cfg.Validate()
}

// applyDefaults fills fields left empty by the config file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.Output {
	case FormatText, FormatJSON, FormatYAML, FormatCBOR:
	default:
		return fmt.Errorf("unknown output format: %s (use: text, json, yaml, cbor)", c.Output)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s (use: text, json)", c.LogFormat)
	}
	return nil
}

// ParseLogLevel converts a level name to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s (use: debug, info, warn, error)", s)
	}
}
