package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"release-gantt/internal/models"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "release-gantt.yaml"

	RendererGUI      = "gui"
	RendererTerminal = "terminal"
)

type Window struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type Config struct {
	SortMode    string  `yaml:"sort_mode"`
	Renderer    string  `yaml:"renderer"`
	Input       string  `yaml:"input"`
	LogLevel    string  `yaml:"log_level"`
	JSONLogs    bool    `yaml:"json_logs"`
	Window      Window  `yaml:"window"`
	CellWidth   float32 `yaml:"cell_width"`
	DaysPerCell int     `yaml:"days_per_cell"`
}

// Default mirrors the tool's historical behavior: open date ordering in a
// desktop window.
func Default() Config {
	return Config{
		SortMode:    models.SortByOpenDate.String(),
		Renderer:    RendererGUI,
		LogLevel:    "warn",
		Window:      Window{Width: 1200, Height: 800},
		CellWidth:   4,
		DaysPerCell: 7,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnvironment loads the config file named by GANTT_CONFIG (or the
// default path) and applies environment overrides.
func FromEnvironment() (Config, error) {
	path := os.Getenv("GANTT_CONFIG")
	if path == "" {
		path = DefaultPath
	}

	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("GANTT_SORT_MODE"); v != "" {
		c.SortMode = v
	}
	if v := getenv("GANTT_RENDERER"); v != "" {
		c.Renderer = v
	}
	if v := getenv("GANTT_INPUT"); v != "" {
		c.Input = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	} else if getenv("DEBUG") == "1" {
		c.LogLevel = "debug"
	}
	if getenv("GANTT_JSON_LOGS") == "true" {
		c.JSONLogs = true
	}
}

func (c Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return err
	}

	switch strings.ToLower(c.Renderer) {
	case RendererGUI, RendererTerminal:
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	if c.CellWidth <= 0 {
		return fmt.Errorf("cell_width must be positive, got %v", c.CellWidth)
	}
	if c.DaysPerCell <= 0 {
		return fmt.Errorf("days_per_cell must be positive, got %d", c.DaysPerCell)
	}
	return nil
}

func (c Config) Mode() (models.SortMode, error) {
	return models.ParseSortMode(c.SortMode)
}

func (c Config) Headless() bool {
	return strings.ToLower(c.Renderer) == RendererTerminal
}

// InputPath is the file the terminal renderer reads.
func (c Config) InputPath() string {
	if c.Input == "" {
		return "releases.csv"
	}
	return c.Input
}
