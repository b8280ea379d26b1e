package media

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/dhowden/tag"
)

// coverNames lists common sidecar art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// CoverArt returns a path to artwork for the media file: a sidecar image
// in the same directory, or the embedded picture extracted to the cache.
// Returns empty string if there is none.
func CoverArt(mediaPath string) string {
	if p := findSidecar(mediaPath); p != "" {
		return p
	}
	p, err := extractEmbedded(mediaPath, func(name string) (string, error) {
		return xdg.CacheFile(filepath.Join("scrubber", "art", name))
	})
	if err != nil {
		return ""
	}
	return p
}

func findSidecar(mediaPath string) string {
	dir := filepath.Dir(mediaPath)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// extractEmbedded writes the embedded picture to the path cachePath picks
// for it, reusing an earlier extraction when present.
func extractEmbedded(mediaPath string, cachePath func(name string) (string, error)) (string, error) {
	f, err := os.Open(mediaPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return "", err
	}
	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return "", nil
	}

	ext := strings.ToLower(pic.Ext)
	if ext == "" {
		ext = "jpg"
	}
	h := fnv.New64a()
	_, _ = h.Write(pic.Data)
	out, err := cachePath(fmt.Sprintf("%016x.%s", h.Sum64(), ext))
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(out); err == nil {
		return out, nil
	}
	if err := os.WriteFile(out, pic.Data, 0o644); err != nil {
		return "", fmt.Errorf("write cover: %w", err)
	}
	return out, nil
}
