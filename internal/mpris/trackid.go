package mpris

import (
	"fmt"
	"hash/fnv"
)

// formatTrackID maps a media ID onto a D-Bus object path.
func formatTrackID(mediaID string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(mediaID))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
