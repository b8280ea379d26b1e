package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name    string
		context string
		want    int
	}{
		{"global context", "global", 2},
		{"playback context", "playback", 6},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)
			if len(result) != tt.want {
				t.Errorf("ByContext(%q) returned %d items, want %d", tt.context, len(result), tt.want)
			}
			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestAll_NoKeyBoundTwice(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestAll_EveryBindingDescribed(t *testing.T) {
	for _, b := range All {
		if b.Description == "" || b.Action == "" || len(b.Keys) == 0 {
			t.Errorf("incomplete binding %+v", b)
		}
	}
}

func TestDisplayKey(t *testing.T) {
	tests := []struct {
		key, want string
	}{
		{" ", "space"},
		{"left", "left"},
		{"?", "?"},
	}
	for _, tt := range tests {
		if got := DisplayKey(tt.key); got != tt.want {
			t.Errorf("DisplayKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
