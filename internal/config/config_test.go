//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/llehouerou/scrubber/internal/scrub"
	"github.com/llehouerou/scrubber/internal/ui/playerbar"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/music", filepath.Join(home, "music")},
		{"absolute path unchanged", "/var/lib/scrubber.db", "/var/lib/scrubber.db"},
		{"relative path unchanged", "data/history.db", "data/history.db"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if len(paths) > 1 {
		first := paths[0]
		if filepath.Base(filepath.Dir(first)) != "scrubber" {
			t.Errorf("user config path = %q, want it under a scrubber dir", first)
		}
	}
}

func TestLoadFiles_Defaults(t *testing.T) {
	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFiles() error = %v", err)
	}

	if cfg.Playback.TickInterval != scrub.DefaultTickInterval {
		t.Errorf("TickInterval = %v, want %v", cfg.Playback.TickInterval, scrub.DefaultTickInterval)
	}
	if cfg.Playback.SeekStep != DefaultSeekStep {
		t.Errorf("SeekStep = %v, want %v", cfg.Playback.SeekStep, DefaultSeekStep)
	}
	if cfg.Playback.ScrubSettle != DefaultScrubSettle {
		t.Errorf("ScrubSettle = %v, want %v", cfg.Playback.ScrubSettle, DefaultScrubSettle)
	}
	if !cfg.AutoplayEnabled() || !cfg.NotificationsEnabled() || !cfg.HistoryEnabled() || !cfg.MPRISEnabled() {
		t.Error("optional features should default to enabled")
	}
	if cfg.Log.Enabled {
		t.Error("logging should default to disabled")
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.VolumeLevel() != DefaultVolume {
		t.Errorf("VolumeLevel() = %v, want %v", cfg.VolumeLevel(), DefaultVolume)
	}
	want := playerbar.Colors{Slider: DefaultSliderColor, Track: DefaultTrackColor, Thumb: DefaultThumbColor}
	if cfg.Colors() != want {
		t.Errorf("Colors() = %+v, want %+v", cfg.Colors(), want)
	}
}

func TestLoadFiles_Values(t *testing.T) {
	path := writeConfig(t, `
[playback]
tick_interval = "250ms"
autoplay = false
seek_step = "10s"
scrub_settle = "1s"
volume = 0.5

[ui]
slider_color = "#00ff00"
track_color = "#333333"
thumb_color = "#0000ff"

[notifications]
enabled = false

[history]
enabled = false
path = "/tmp/h.db"

[mpris]
enabled = false

[log]
enabled = true
level = " DEBUG "
json = true
`)

	cfg, err := LoadFiles(path)
	if err != nil {
		t.Fatalf("LoadFiles() error = %v", err)
	}

	if cfg.Playback.TickInterval != 250*time.Millisecond {
		t.Errorf("TickInterval = %v, want 250ms", cfg.Playback.TickInterval)
	}
	if cfg.Playback.SeekStep != 10*time.Second {
		t.Errorf("SeekStep = %v, want 10s", cfg.Playback.SeekStep)
	}
	if cfg.Playback.ScrubSettle != time.Second {
		t.Errorf("ScrubSettle = %v, want 1s", cfg.Playback.ScrubSettle)
	}
	if cfg.AutoplayEnabled() || cfg.NotificationsEnabled() || cfg.HistoryEnabled() || cfg.MPRISEnabled() {
		t.Error("explicit false should disable optional features")
	}
	if cfg.VolumeLevel() != 0.5 {
		t.Errorf("VolumeLevel() = %v, want 0.5", cfg.VolumeLevel())
	}
	if cfg.History.Path != "/tmp/h.db" {
		t.Errorf("History.Path = %q", cfg.History.Path)
	}
	if !cfg.Log.Enabled || !cfg.Log.JSON || cfg.Log.Level != "debug" {
		t.Errorf("Log = %+v, want enabled json debug", cfg.Log)
	}
	if cfg.Colors().Thumb != "#0000ff" {
		t.Errorf("Colors().Thumb = %q, want #0000ff", cfg.Colors().Thumb)
	}
}

func TestLoadFiles_LastWins(t *testing.T) {
	first := writeConfig(t, "[playback]\nseek_step = \"2s\"\nscrub_settle = \"2s\"\n")
	second := writeConfig(t, "[playback]\nseek_step = \"3s\"\n")

	cfg, err := LoadFiles(first, second)
	if err != nil {
		t.Fatalf("LoadFiles() error = %v", err)
	}
	if cfg.Playback.SeekStep != 3*time.Second {
		t.Errorf("SeekStep = %v, want 3s", cfg.Playback.SeekStep)
	}
	if cfg.Playback.ScrubSettle != 2*time.Second {
		t.Errorf("ScrubSettle = %v, want 2s from the first file", cfg.Playback.ScrubSettle)
	}
}

func TestLoadFiles_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative tick", "[playback]\ntick_interval = \"-1s\"\n"},
		{"negative step", "[playback]\nseek_step = \"-5s\"\n"},
		{"volume too high", "[playback]\nvolume = 1.5\n"},
		{"bad colour", "[ui]\nthumb_color = \"blue\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFiles(writeConfig(t, tt.content))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("LoadFiles() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadFiles_MalformedTOML(t *testing.T) {
	_, err := LoadFiles(writeConfig(t, "[playback\nseek_step = "))
	if err == nil {
		t.Fatal("LoadFiles() error = nil, want parse error")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("parse errors should not be reported as validation errors")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want not-exist", err)
	}
}

func TestColors_NoColor(t *testing.T) {
	cfg := Default()
	cfg.UI.NoColor = true
	if cfg.Colors() != (playerbar.Colors{}) {
		t.Errorf("Colors() = %+v, want empty", cfg.Colors())
	}
}
