// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for quill.
//
// Supports both TOML and JSON configuration formats, with sensible
// defaults, environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.quill/config.toml
//   - ~/.quill/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete quill configuration.
type Config struct {
	Provider ProviderConfig `toml:"provider" json:"provider"`
	UI       UIConfig       `toml:"ui" json:"ui"`
	Export   ExportConfig   `toml:"export" json:"export"`
}

// ProviderConfig configures the text-generation provider. The credential
// lives here, passed explicitly into the client constructor — it is never
// a package-level variable.
type ProviderConfig struct {
	// APIKey authenticates against the provider. Usually supplied via
	// the QUILL_API_KEY or OPENAI_API_KEY environment variable rather
	// than written to disk.
	APIKey string `toml:"api_key" json:"api_key"`
	// Model is the chat model used for both generation stages.
	Model string `toml:"model" json:"model"`
	// BaseURL overrides the provider endpoint for OpenAI-compatible
	// gateways. Empty means the official endpoint.
	BaseURL string `toml:"base_url" json:"base_url"`
	// Temperature controls output creativity (0 < t <= 2).
	Temperature float64 `toml:"temperature" json:"temperature"`
	// MaxTokens caps each completion.
	MaxTokens int `toml:"max_tokens" json:"max_tokens"`
	// TimeoutSecs is the per-request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// TypeIntervalMs is the typewriter tick interval in milliseconds.
	TypeIntervalMs int `toml:"type_interval_ms" json:"type_interval_ms"`
	// ShowStats displays elapsed time and character counts after
	// generation.
	ShowStats bool `toml:"show_stats" json:"show_stats"`
}

// ExportConfig contains article export configuration.
type ExportConfig struct {
	// OutputDir is where exported articles land. Default: current
	// working directory.
	OutputDir string `toml:"output_dir" json:"output_dir"`
	// Theme for HTML export ("light" or "dark").
	Theme string `toml:"theme" json:"theme"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Provider: ProviderConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0.7,
			MaxTokens:   1200,
			TimeoutSecs: 60,
		},
		UI: UIConfig{
			Theme:          "dark",
			TypeIntervalMs: 30,
			ShowStats:      true,
		},
		Export: ExportConfig{
			OutputDir: ".",
			Theme:     "dark",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// Dir returns the quill configuration directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".quill"), nil
}

// PathTOML returns the path to the TOML config file.
func PathTOML() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// PathJSON returns the path to the JSON config file.
func PathJSON() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureDir ensures the config directory exists.
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ensureSecurePermissions tightens config files to 0600; they may hold an
// API key.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0077 != 0 {
		return os.Chmod(path, 0600)
	}
	return nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config from the default locations, applying environment
// overrides and validation. Missing files are not an error: defaults are
// returned.
func Load() (*Config, error) {
	cfg := Default()

	if path, err := PathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := loadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finish(cfg)
		}
	}

	if path, err := PathJSON(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := loadJSON(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finish(cfg)
		}
	}

	return finish(cfg)
}

// LoadFromPath loads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if strings.HasSuffix(path, ".json") {
		if err := loadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := loadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}
	return finish(cfg)
}

// finish applies env overrides, fills defaults, and validates.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

func loadJSON(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the config to the default TOML location with 0600
// permissions.
func Save(cfg *Config) error {
	if err := EnsureDir(); err != nil {
		return err
	}
	path, err := PathTOML()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// ENV OVERRIDES, DEFAULTS, VALIDATION
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
// QUILL_API_KEY wins over OPENAI_API_KEY when both are set.
func (c *Config) ApplyEnvOverrides() {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.Provider.APIKey = key
	}
	if key := os.Getenv("QUILL_API_KEY"); key != "" {
		c.Provider.APIKey = key
	}
	if model := os.Getenv("QUILL_MODEL"); model != "" {
		c.Provider.Model = model
	}
	if url := os.Getenv("QUILL_BASE_URL"); url != "" {
		c.Provider.BaseURL = url
	}
	if ms := os.Getenv("QUILL_TYPE_INTERVAL_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 {
			c.UI.TypeIntervalMs = v
		}
	}
	if theme := os.Getenv("QUILL_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// SetDefaults fills any zero values with defaults. Useful after decoding
// a partial config file.
func (c *Config) SetDefaults() {
	def := Default()
	if c.Provider.Model == "" {
		c.Provider.Model = def.Provider.Model
	}
	if c.Provider.Temperature == 0 {
		c.Provider.Temperature = def.Provider.Temperature
	}
	if c.Provider.MaxTokens == 0 {
		c.Provider.MaxTokens = def.Provider.MaxTokens
	}
	if c.Provider.TimeoutSecs == 0 {
		c.Provider.TimeoutSecs = def.Provider.TimeoutSecs
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
	if c.UI.TypeIntervalMs == 0 {
		c.UI.TypeIntervalMs = def.UI.TypeIntervalMs
	}
	if c.Export.OutputDir == "" {
		c.Export.OutputDir = def.Export.OutputDir
	}
	if c.Export.Theme == "" {
		c.Export.Theme = def.Export.Theme
	}
}

// ValidationError describes a single invalid config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the config for invalid values. The API key is not
// required here — one-shot usage fails later with a proper auth error,
// and the TUI shows a setup hint instead of refusing to start.
func (c *Config) Validate() error {
	if c.Provider.Temperature < 0 || c.Provider.Temperature > 2 {
		return ValidationError{Field: "provider.temperature", Message: "must be between 0 and 2"}
	}
	if c.Provider.MaxTokens < 0 {
		return ValidationError{Field: "provider.max_tokens", Message: "must be positive"}
	}
	if c.Provider.TimeoutSecs < 0 {
		return ValidationError{Field: "provider.timeout_secs", Message: "must be positive"}
	}
	if c.UI.TypeIntervalMs < 0 {
		return ValidationError{Field: "ui.type_interval_ms", Message: "must be positive"}
	}
	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return ValidationError{Field: "ui.theme", Message: "must be dark, light, or auto"}
	}
	return nil
}

// TypeInterval returns the typewriter tick interval as a duration.
func (c *Config) TypeInterval() time.Duration {
	return time.Duration(c.UI.TypeIntervalMs) * time.Millisecond
}

// Timeout returns the provider request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Provider.TimeoutSecs) * time.Second
}
