package sdlbridge

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls window defaults and the runner's behavior.
type Config struct {
	// DefaultTitle and the default size apply to window declarations that
	// leave them empty.
	DefaultTitle  string `yaml:"default_title"`
	DefaultWidth  uint32 `yaml:"default_width"`
	DefaultHeight uint32 `yaml:"default_height"`

	Resizable bool `yaml:"resizable"`
	HighDPI   bool `yaml:"high_dpi"`

	// CloseWhenRequested despawns a window's entity when the user asks to
	// close it.
	CloseWhenRequested bool `yaml:"close_when_requested"`
	// ExitOnAllClosed stops the app once the last window is closed.
	ExitOnAllClosed bool `yaml:"exit_on_all_closed"`

	// Debug logs events that have no translation.
	Debug    bool   `yaml:"debug"`
	LogLevel string `yaml:"log_level"`

	// Windows are spawned as declarations when the plugin is built.
	Windows []WindowConfig `yaml:"windows"`
}

// WindowConfig declares a window to open at startup.
type WindowConfig struct {
	Title     string  `yaml:"title"`
	Width     float32 `yaml:"width"`
	Height    float32 `yaml:"height"`
	Resizable *bool   `yaml:"resizable"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		DefaultTitle:       "App",
		DefaultWidth:       1280,
		DefaultHeight:      720,
		Resizable:          true,
		HighDPI:            true,
		CloseWhenRequested: true,
		ExitOnAllClosed:    true,
		LogLevel:           "info",
	}
}

// LoadConfig parses YAML on top of DefaultConfig and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("sdlbridge: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("sdlbridge: read config: %w", err)
	}
	return LoadConfig(data)
}

// Validate reports every problem with c.
func (c Config) Validate() error {
	var errs []error
	if c.DefaultWidth == 0 || c.DefaultHeight == 0 {
		errs = append(errs, fmt.Errorf("default size %dx%d must be positive", c.DefaultWidth, c.DefaultHeight))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	for i, w := range c.Windows {
		if w.Width < 0 || w.Height < 0 {
			errs = append(errs, fmt.Errorf("windows[%d]: negative size %vx%v", i, w.Width, w.Height))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("sdlbridge: invalid config: %w", err)
	}
	return nil
}

// Level parses LogLevel. An empty level is Info.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
