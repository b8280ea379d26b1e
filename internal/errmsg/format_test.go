//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty",
			op:       OpMediaLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "media load",
			op:       OpMediaLoad,
			err:      errors.New("decode clip.mp3: bad frame"),
			expected: "Failed to load media: decode clip.mp3: bad frame",
		},
		{
			name:     "history open",
			op:       OpHistoryOpen,
			err:      errors.New("database is locked"),
			expected: "Failed to open play history: database is locked",
		},
		{
			name:     "playback start",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty",
			op:       OpMediaResolve,
			context:  "clip.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpMediaResolve,
			context:  "",
			err:      errors.New("no such file"),
			expected: "Failed to open media: no such file",
		},
		{
			name:     "with context",
			op:       OpMediaResolve,
			context:  "clip.mp3",
			err:      errors.New("no such file"),
			expected: "Failed to open media 'clip.mp3': no such file",
		},
		{
			name:     "config path",
			op:       OpConfigLoad,
			context:  "/tmp/config.toml",
			err:      errors.New("expected '='"),
			expected: "Failed to load config '/tmp/config.toml': expected '='",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpConfigLoad, OpLogSetup, OpInitialize, OpSurfaceInit,
		OpMediaResolve, OpMediaLoad, OpCoverArt,
		OpPlaybackStart, OpPlaybackSeek,
		OpHistoryOpen, OpHistoryRecord, OpHistoryQuery,
		OpNotify, OpMPRIS,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}
			result := Format(op, testErr)
			if !strings.Contains(result, string(op)) {
				t.Errorf("Format result %q should contain op %q", result, op)
			}
		})
	}
}
