// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup
	OpConfigLoad  Op = "load config"
	OpLogSetup    Op = "set up logging"
	OpInitialize  Op = "initialize application"
	OpSurfaceInit Op = "build player bar"

	// Media
	OpMediaResolve Op = "open media"
	OpMediaLoad    Op = "load media"
	OpCoverArt     Op = "read cover art"

	// Playback
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"

	// History
	OpHistoryOpen   Op = "open play history"
	OpHistoryRecord Op = "record play history"
	OpHistoryQuery  Op = "read play history"

	// Desktop integration
	OpNotify Op = "send notification"
	OpMPRIS  Op = "register media controls"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
