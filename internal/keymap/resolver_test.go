//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewResolver(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionSeekBack, []string{"h", "left"}, "Scrub back", "playback"},
	}

	r := NewResolver(bindings)

	if r == nil {
		t.Fatal("NewResolver returned nil")
	}

	if got := r.KeysFor(ActionSeekBack); !slices.Equal(got, []string{"h", "left"}) {
		t.Errorf("KeysFor(ActionSeekBack) = %v, want binding order", got)
	}
}

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionSeekBack, []string{"h", "left"}, "Scrub back", "playback"},
		{ActionSeekForward, []string{"l", "right"}, "Scrub forward", "playback"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"h", ActionSeekBack},
		{"left", ActionSeekBack},
		{"l", ActionSeekForward},
		{"right", ActionSeekForward},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionSeekBack, []string{"h", "left"}, "Scrub back", "playback"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		action   Action
		expected []string
	}{
		{ActionQuit, []string{"q", "ctrl+c"}},
		{ActionPlayPause, []string{" "}},
		{ActionSeekBack, []string{"h", "left"}},
		{Action("unknown"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			result := r.KeysFor(tt.action)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("KeysFor(%q) = %v, want nil", tt.action, result)
				}
				return
			}

			if len(result) != len(tt.expected) {
				t.Errorf("KeysFor(%q) = %v, want %v", tt.action, result, tt.expected)
				return
			}

			for _, key := range tt.expected {
				if !slices.Contains(result, key) {
					t.Errorf("KeysFor(%q) missing key %q, got %v", tt.action, key, result)
				}
			}
		})
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	// Same action defined in multiple contexts with overlapping keys
	bindings := []Binding{
		{ActionRewind, []string{"home", "0"}, "Back to start", "playback"},
		{ActionRewind, []string{"home"}, "Back to start", "global"},
		{ActionRewind, []string{"home"}, "Back to start", "mouse"},
	}

	r := NewResolver(bindings)

	keys := r.KeysFor(ActionRewind)

	count := 0
	for _, k := range keys {
		if k == "home" {
			count++
		}
	}

	if count != 1 {
		t.Errorf("expected 'home' to appear once after deduplication, got %d times in %v", count, keys)
	}
}

func TestResolver_WithGlobalBindings(t *testing.T) {
	r := NewResolver(All)

	// Verify some known bindings work
	if action := r.Resolve("q"); action != ActionQuit {
		t.Errorf("Resolve('q') = %q, want %q", action, ActionQuit)
	}

	if action := r.Resolve("home"); action != ActionRewind {
		t.Errorf("Resolve('home') = %q, want %q", action, ActionRewind)
	}

	if action := r.Resolve(" "); action != ActionPlayPause {
		t.Errorf("Resolve(' ') = %q, want %q", action, ActionPlayPause)
	}

	// Verify KeysFor returns expected keys
	quitKeys := r.KeysFor(ActionQuit)
	if !slices.Contains(quitKeys, "q") || !slices.Contains(quitKeys, "ctrl+c") {
		t.Errorf("KeysFor(ActionQuit) = %v, expected to contain 'q' and 'ctrl+c'", quitKeys)
	}
}

func TestResolver_Hint(t *testing.T) {
	r := NewResolver(All)

	got := r.Hint(
		HintItem{ActionPlayPause, "play"},
		HintItem{ActionSeekBack, "back"},
		HintItem{Action("missing"), "nothing"},
		HintItem{ActionQuit, "quit"},
	)

	want := "space play  left back  q quit"
	if got != want {
		t.Errorf("Hint() = %q, want %q", got, want)
	}
}

func TestResolver_HintEmpty(t *testing.T) {
	r := NewResolver(nil)
	if got := r.Hint(HintItem{ActionQuit, "quit"}); got != "" {
		t.Errorf("Hint() = %q, want empty", got)
	}
}
