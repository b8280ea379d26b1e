// internal/player/interface.go
package player

import "github.com/llehouerou/scrubber/internal/scrub"

// Interface is the loader-facing player contract used by the app.
type Interface interface {
	scrub.MediaPlayer
	Load(path string)
	State() State
	Close() error
}

// Verify Player and Mock implement Interface at compile time.
var (
	_ Interface = (*Player)(nil)
	_ Interface = (*Mock)(nil)
)
