package playerbar

import "testing"

func TestGestureKind_String(t *testing.T) {
	tests := []struct {
		kind GestureKind
		want string
	}{
		{GestureNone, "None"},
		{GestureTap, "Tap"},
		{GestureDragStart, "DragStart"},
		{GestureDragChanged, "DragChanged"},
		{GestureDragEnd, "DragEnd"},
		{GestureKind(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("GestureKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
