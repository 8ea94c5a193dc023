package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/elpinal/rainy/internal/logger"
)

// Config holds optional user settings for rainy.
// Environment overrides are not stored here; they are read where they apply.
type Config struct {
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// Repositories holds the default source URIs of the companion repositories.
	Repositories Repositories `yaml:"repositories"`
	// Tools holds the executables spawned for each external tool.
	Tools Tools `yaml:"tools"`
}

// Repositories holds default source URIs.
type Repositories struct {
	// RainML is the default source of rain-ml.
	RainML string `yaml:"rain_ml"`
	// RainVM is the default source of rain-vm.
	RainVM string `yaml:"rain_vm"`
}

// Tools holds executable names or paths.
type Tools struct {
	Git   string `yaml:"git"`
	Stack string `yaml:"stack"`
	Cargo string `yaml:"cargo"`
}

const (
	// DefaultRainMLURI is the built-in source of rain-ml.
	DefaultRainMLURI = "https://github.com/elpinal/rain-ml"
	// DefaultRainVMURI is the built-in source of rain-vm.
	DefaultRainVMURI = "https://github.com/elpinal/rain-vm"

	// DefaultLogLevel is used when log_level is empty.
	DefaultLogLevel = "info"

	// ToolGit is the version-control client.
	ToolGit = "git"
	// ToolStack builds rain-ml.
	ToolStack = "stack"
	// ToolCargo builds rain-vm.
	ToolCargo = "cargo"
)

var errUnknownLogLevel = errors.New("unknown log level")

// Default returns the built-in settings.
func Default() *Config {
	cfg := new(Config)
	_ = Validate(cfg)

	return cfg
}

// Load reads settings from path. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err = yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate fills defaults and rejects malformed values.
func Validate(cfg *Config) error {
	cfg.LogLevel = strings.TrimSpace(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	setDefault(&cfg.Repositories.RainML, DefaultRainMLURI)
	setDefault(&cfg.Repositories.RainVM, DefaultRainVMURI)
	setDefault(&cfg.Tools.Git, ToolGit)
	setDefault(&cfg.Tools.Stack, ToolStack)
	setDefault(&cfg.Tools.Cargo, ToolCargo)

	return nil
}

func setDefault(field *string, value string) {
	*field = strings.TrimSpace(*field)
	if *field == "" {
		*field = value
	}
}
