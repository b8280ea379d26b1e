package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback"
}

// LongSeekFactor scales the seek step for the shifted seek keys.
const LongSeekFactor = 6

// All contains every key binding, in help order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionSeekBack, []string{"left", "h"}, "Scrub back", "playback"},
	{ActionSeekForward, []string{"right", "l"}, "Scrub forward", "playback"},
	{ActionSeekBackLong, []string{"shift+left", "H"}, "Scrub back (long)", "playback"},
	{ActionSeekForwardLong, []string{"shift+right", "L"}, "Scrub forward (long)", "playback"},
	{ActionRewind, []string{"home", "0"}, "Back to start", "playback"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// DisplayKey returns the help label for a key string.
func DisplayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
