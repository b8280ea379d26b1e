package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/scrubber/internal/scrub"
	"github.com/llehouerou/scrubber/internal/ui/playerbar"
	"github.com/llehouerou/scrubber/internal/ui/styles"
)

// Defaults for unset values.
const (
	DefaultSeekStep    = 5 * time.Second
	DefaultScrubSettle = 350 * time.Millisecond
	DefaultVolume      = 1.0
	DefaultLogLevel    = "info"

	DefaultSliderColor = "#ff0000"
	DefaultTrackColor  = "#ffffff"
	DefaultThumbColor  = "#ff0000"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Playback      PlaybackConfig `koanf:"playback"`
	UI            UIConfig       `koanf:"ui"`
	Notifications ToggleConfig   `koanf:"notifications"`
	History       HistoryConfig  `koanf:"history"`
	MPRIS         ToggleConfig   `koanf:"mpris"`
	Log           LogConfig      `koanf:"log"`
}

// PlaybackConfig holds controller and player settings.
type PlaybackConfig struct {
	TickInterval time.Duration `koanf:"tick_interval"` // periodic time observer (default: 500ms)
	Autoplay     *bool         `koanf:"autoplay"`      // start once ready (default: true)
	SeekStep     time.Duration `koanf:"seek_step"`     // keyboard scrub step (default: 5s)
	ScrubSettle  time.Duration `koanf:"scrub_settle"`  // idle time closing a keyboard scrub (default: 350ms)
	Volume       *float64      `koanf:"volume"`        // 0.0-1.0 (default: 1.0)
}

// UIConfig holds the slider colours as "#rrggbb".
type UIConfig struct {
	SliderColor string `koanf:"slider_color"`
	TrackColor  string `koanf:"track_color"`
	ThumbColor  string `koanf:"thumb_color"`
	NoColor     bool   `koanf:"no_color"` // render without colours
}

// ToggleConfig is an optional integration that is on unless disabled.
type ToggleConfig struct {
	Enabled *bool `koanf:"enabled"`
}

// HistoryConfig holds play-history settings.
type HistoryConfig struct {
	Enabled *bool  `koanf:"enabled"`
	Path    string `koanf:"path"` // database file (default: XDG data dir)
}

// LogConfig holds logging settings. Logging is off unless enabled.
type LogConfig struct {
	Enabled bool   `koanf:"enabled"`
	Level   string `koanf:"level"` // logrus level name (default: info)
	JSON    bool   `koanf:"json"`
	Path    string `koanf:"path"` // log file (default: XDG state dir)
}

// Load reads the default config files, then extra when set.
// A missing default file is skipped; a missing extra file is an error.
func Load(extra string) (*Config, error) {
	paths := getConfigPaths()
	if extra != "" {
		if _, err := os.Stat(extra); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		paths = append(paths, extra)
	}
	return LoadFiles(paths...)
}

// LoadFiles reads the given TOML files in order (last wins), skipping
// those that do not exist, then applies defaults and validates.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Playback.TickInterval == 0 {
		c.Playback.TickInterval = scrub.DefaultTickInterval
	}
	if c.Playback.SeekStep == 0 {
		c.Playback.SeekStep = DefaultSeekStep
	}
	if c.Playback.ScrubSettle == 0 {
		c.Playback.ScrubSettle = DefaultScrubSettle
	}
	if c.UI.SliderColor == "" {
		c.UI.SliderColor = DefaultSliderColor
	}
	if c.UI.TrackColor == "" {
		c.UI.TrackColor = DefaultTrackColor
	}
	if c.UI.ThumbColor == "" {
		c.UI.ThumbColor = DefaultThumbColor
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	c.History.Path = expandPath(c.History.Path)
	c.Log.Path = expandPath(c.Log.Path)
}

// Validate rejects non-positive durations, out-of-range volume and bad colours.
func (c *Config) Validate() error {
	durations := []struct {
		key string
		val time.Duration
	}{
		{"playback.tick_interval", c.Playback.TickInterval},
		{"playback.seek_step", c.Playback.SeekStep},
		{"playback.scrub_settle", c.Playback.ScrubSettle},
	}
	for _, d := range durations {
		if d.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalid, d.key, d.val)
		}
	}
	if v := c.Playback.Volume; v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("%w: playback.volume must be within [0,1], got %v", ErrInvalid, *v)
	}
	colors := []struct {
		key string
		val string
	}{
		{"ui.slider_color", c.UI.SliderColor},
		{"ui.track_color", c.UI.TrackColor},
		{"ui.thumb_color", c.UI.ThumbColor},
	}
	for _, col := range colors {
		if _, err := styles.ParseColor(col.val); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, col.key, err)
		}
	}
	return nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/scrubber/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "scrubber", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func enabled(b *bool) bool {
	return b == nil || *b
}

// AutoplayEnabled reports whether playback starts once ready.
func (c *Config) AutoplayEnabled() bool { return enabled(c.Playback.Autoplay) }

// NotificationsEnabled reports whether desktop notifications are sent.
func (c *Config) NotificationsEnabled() bool { return enabled(c.Notifications.Enabled) }

// HistoryEnabled reports whether plays are recorded.
func (c *Config) HistoryEnabled() bool { return enabled(c.History.Enabled) }

// MPRISEnabled reports whether the MPRIS endpoint is exported.
func (c *Config) MPRISEnabled() bool { return enabled(c.MPRIS.Enabled) }

// VolumeLevel returns the configured volume with the default applied.
func (c *Config) VolumeLevel() float64 {
	if c.Playback.Volume == nil {
		return DefaultVolume
	}
	return *c.Playback.Volume
}

// Colors returns the slider colours, blank when colour is disabled.
func (c *Config) Colors() playerbar.Colors {
	if c.UI.NoColor {
		return playerbar.Colors{}
	}
	return playerbar.Colors{
		Slider: c.UI.SliderColor,
		Track:  c.UI.TrackColor,
		Thumb:  c.UI.ThumbColor,
	}
}
