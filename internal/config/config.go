package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"imgswipe/internal/eventbus"
)

// ErrNotFound is returned by LoadFromPath when the file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version    int         `toml:"version"`
	LibraryDir string      `toml:"library_dir"`
	Extensions []string    `toml:"extensions"`
	MaxDepth   int         `toml:"max_depth"`
	Watch      bool        `toml:"watch"`
	UISettings UISettings  `toml:"ui"`
	Log        LogSettings `toml:"log"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ToastDuration Duration `toml:"toast_duration"`
	// CellAspect is the height/width ratio of a terminal cell. Vertical drag
	// deltas are scaled by it before a swipe is classified.
	CellAspect  float64 `toml:"cell_aspect"`
	ShowHelpBar bool    `toml:"show_help_bar"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Duration is a time.Duration that reads and writes as "1.5s" in TOML
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/imgswipe/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "imgswipe", "config.toml")
}

// NewConfigService creates a config service reading path. An empty path means DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: ExpandPath(path)}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the service's file. A missing file yields the defaults, which are written back.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
		if err := cs.SaveToPath(cfg, cs.filePath); err != nil {
			return cfg, err
		}
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:       cs.filePath,
			LibraryDir: cfg.LibraryDir,
		})
	}

	return cfg, nil
}

// Save writes the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Unset keys keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	libraryDir := "~/Pictures"
	if home, err := os.UserHomeDir(); err == nil {
		if _, err := os.Stat(filepath.Join(home, "Pictures")); err != nil {
			libraryDir = "~"
		}
	}

	return &Config{
		Version:    1,
		LibraryDir: libraryDir,
		Extensions: DefaultExtensions(),
		MaxDepth:   6,
		Watch:      true,
		UISettings: UISettings{
			ToastDuration: Duration{1500 * time.Millisecond},
			CellAspect:    2.0,
			ShowHelpBar:   true,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// DefaultExtensions lists the file extensions treated as images
func DefaultExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}
}

// normalize fixes values a hand-edited file may get wrong
func (c *Config) normalize() {
	exts := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		exts = DefaultExtensions()
	}
	c.Extensions = exts

	if c.MaxDepth <= 0 {
		c.MaxDepth = 6
	}
	if c.UISettings.CellAspect <= 0 {
		c.UISettings.CellAspect = 2.0
	}
	if c.UISettings.ToastDuration.Duration <= 0 {
		c.UISettings.ToastDuration = Duration{1500 * time.Millisecond}
	}
}

// LibraryRoot returns the library directory with ~ expanded
func (c *Config) LibraryRoot() string {
	return ExpandPath(c.LibraryDir)
}

// ExpandPath expands a leading ~ in file paths
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
