// Package notify sends freedesktop desktop notifications.
package notify

import "github.com/godbus/dbus/v5"

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

const (
	appName      = "Scrubber"
	desktopEntry = "scrubber"
)

// Notification is one desktop popup. Timeout is in milliseconds; -1 leaves
// it to the server. A non-zero ReplacesID updates that popup in place.
type Notification struct {
	Title      string
	Body       string
	Icon       string
	Timeout    int32
	ReplacesID uint32
	Urgency    Urgency
}

// hints builds the D-Bus hints dictionary. A local image path is also
// passed as image-path so servers that ignore app_icon still show it.
func (n Notification) hints() map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
	}
	if len(n.Icon) > 0 && n.Icon[0] == '/' {
		h["image-path"] = dbus.MakeVariant(n.Icon)
	}
	return h
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns its server id, or 0 when nothing was shown.
	Notify(n Notification) (uint32, error)
	// Close withdraws a notification.
	Close(id uint32) error
}

// Disabled returns a notifier that drops everything.
func Disabled() Notifier { return discard{} }

type discard struct{}

func (discard) Notify(Notification) (uint32, error) { return 0, nil }
func (discard) Close(uint32) error                  { return nil }
