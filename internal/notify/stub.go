//go:build !linux

package notify

// New returns Disabled: desktop notifications are D-Bus only.
func New() (Notifier, error) {
	return Disabled(), nil
}
