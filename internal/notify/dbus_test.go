//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionNotifier(t *testing.T) Notifier {
	t.Helper()
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}
	n, err := New()
	require.NoError(t, err)
	if _, ok := n.(*dbusNotifier); !ok {
		t.Skip("session bus unreachable")
	}
	return n
}

func TestDBusNotifier_ReplaceAndClose(t *testing.T) {
	n := sessionNotifier(t)

	first, err := n.Notify(Notification{Title: "Now playing", Body: "one", Timeout: 1000, Urgency: UrgencyLow})
	if err != nil {
		t.Skipf("no notification server: %v", err)
	}
	require.NotZero(t, first)

	second, err := n.Notify(Notification{Title: "Now playing", Body: "two", Timeout: 1000, ReplacesID: first})
	require.NoError(t, err)
	assert.Equal(t, first, second, "replacement keeps the id")

	assert.NoError(t, n.Close(second))
}
