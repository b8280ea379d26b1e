// Package media turns a command-line argument into a playable source.
package media

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"github.com/llehouerou/scrubber/internal/player"
	"github.com/llehouerou/scrubber/internal/scrub"
	"github.com/llehouerou/scrubber/internal/ui/render"
)

// ErrUnsupported is returned for files the player cannot decode.
var ErrUnsupported = errors.New("unsupported media")

// Info describes a resolved local media file.
type Info struct {
	Source scrub.Source
	Path   string
	Title  string
	Artist string
	Album  string
}

// DisplayTitle returns "Artist - Title" when the artist is known.
func (i Info) DisplayTitle() string {
	if i.Artist == "" {
		return i.Title
	}
	return i.Artist + " - " + i.Title
}

// Resolve accepts a filesystem path or a file:// URL.
func Resolve(arg string) (Info, error) {
	path, err := localPath(arg)
	if err != nil {
		return Info{}, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Info{}, fmt.Errorf("resolve %s: %w", arg, err)
	}
	if !player.IsSupported(abs) {
		return Info{}, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(abs))
	}
	st, err := os.Stat(abs)
	if err != nil {
		return Info{}, fmt.Errorf("resolve %s: %w", arg, err)
	}
	if st.IsDir() {
		return Info{}, fmt.Errorf("%w: %s is a directory", ErrUnsupported, abs)
	}

	info := Info{
		Source: scrub.Source{ID: ID(abs), URL: FileURL(abs)},
		Path:   abs,
	}
	readTags(&info)
	if info.Title == "" {
		info.Title = strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	}
	return info, nil
}

// ID derives a stable media identifier from an absolute path.
func ID(abs string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(abs))
	return fmt.Sprintf("media:%016x", h.Sum64())
}

// FileURL renders abs as a file:// URL.
func FileURL(abs string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

func localPath(arg string) (string, error) {
	if arg == "" {
		return "", errors.New("no media given")
	}
	if !strings.Contains(arg, "://") {
		return arg, nil
	}
	u, err := url.Parse(arg)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", arg, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("%w: scheme %q", ErrUnsupported, u.Scheme)
	}
	return filepath.FromSlash(u.Path), nil
}

// readTags fills title, artist and album. Files without tags are fine.
func readTags(info *Info) {
	f, err := os.Open(info.Path)
	if err != nil {
		return
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return
	}
	info.Title = render.Sanitize(strings.TrimSpace(m.Title()))
	info.Artist = render.Sanitize(strings.TrimSpace(m.Artist()))
	info.Album = render.Sanitize(strings.TrimSpace(m.Album()))
}
