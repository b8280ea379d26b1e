package testutil

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "01:05", "01:05"},
		{"colored thumb", "\x1b[31m●\x1b[0m", "●"},
		{"bold label", "\x1b[1;32m02:05\x1b[0m rest", "02:05 rest"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"[>] 00:00", 9},
		{"\x1b[31m---\x1b[0m", 3},
		{"日本", 4},
		{"", 0},
	}
	for _, tt := range tests {
		if got := MeasureWidth(tt.input); got != tt.want {
			t.Errorf("MeasureWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFindLine(t *testing.T) {
	out := "loading\n[▶] 00:05 ━━●── 00:10\nhelp"

	if got := FindLine(out, "00:05"); got != "[▶] 00:05 ━━●── 00:10" {
		t.Errorf("FindLine = %q", got)
	}
	if got := FindLine(out, "missing"); got != "" {
		t.Errorf("FindLine(missing) = %q, want empty", got)
	}
}

func TestContainsLine(t *testing.T) {
	out := "first\nsecond"
	tests := []struct {
		substr string
		want   bool
	}{
		{"sec", true},
		{"first\nsecond", false},
		{"", true},
		{"third", false},
	}
	for _, tt := range tests {
		if got := ContainsLine(out, tt.substr); got != tt.want {
			t.Errorf("ContainsLine(%q) = %v, want %v", tt.substr, got, tt.want)
		}
	}
}
