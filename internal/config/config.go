package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings DrawingBoard reads at startup.
type Config struct {
	DocumentSize int    `validate:"gt=0"`
	HistoryLimit int    `validate:"gte=0"`
	LogLevel     string `validate:"oneof=debug info warn error"`
	Development  bool
	ExportDir    string `validate:"required"`
}

const (
	defaultConfigPath   = "~/.config/drawingboard/config.toml"
	defaultExportDir    = "~/.local/share/drawingboard/exports"
	defaultDocumentSize = 1024
	defaultLogLevel     = "info"
)

var validate = validator.New()

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DocumentSize: defaultDocumentSize,
		LogLevel:     defaultLogLevel,
		ExportDir:    mustExpand(defaultExportDir),
	}
}

// Load reads the TOML file at path, or the default location when path is
// empty. A missing file yields Default().
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DocumentSize *int   `toml:"document_size"`
		HistoryLimit *int   `toml:"history_limit"`
		LogLevel     string `toml:"log_level"`
		Development  bool   `toml:"development"`
		ExportDir    string `toml:"export_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.DocumentSize != nil {
		cfg.DocumentSize = *raw.DocumentSize
	}
	if raw.HistoryLimit != nil {
		cfg.HistoryLimit = *raw.HistoryLimit
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		cfg.LogLevel = level
	}
	cfg.Development = raw.Development
	if dir := strings.TrimSpace(raw.ExportDir); dir != "" {
		cfg.ExportDir = mustExpand(dir)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ExportPath returns where an export called name is written.
func (c Config) ExportPath(name string) string {
	return filepath.Join(c.ExportDir, name)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
