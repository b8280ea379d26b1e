// Package history records plays and taps in a local sqlite database.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/scrubber/internal/db"
)

const (
	appName    = "scrubber"
	dbFileName = "history.db"
)

// Play is one recorded playback start.
type Play struct {
	ID        int64
	MediaID   string
	SourceURL string
	StartedAt time.Time
}

// MediaStats aggregates plays and taps for one media item.
type MediaStats struct {
	MediaID      string
	SourceURL    string
	Plays        int
	Taps         int
	LastPlayedAt time.Time // zero if never played
}

// Store is the play-history database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the database path under the XDG data dir.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &Store{db: conn}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordStart inserts a play and bumps the media's aggregate in one transaction.
func (s *Store) RecordStart(ctx context.Context, mediaID, sourceURL string, at time.Time) error {
	return db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO plays (media_id, source_url, started_at) VALUES (?, ?, ?)`,
			mediaID, sourceURL, at.UnixMilli(),
		); err != nil {
			return fmt.Errorf("insert play: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO media_stats (media_id, source_url, plays, last_played_at)
			VALUES (?, ?, 1, ?)
			ON CONFLICT(media_id) DO UPDATE SET
				source_url = excluded.source_url,
				plays = plays + 1,
				last_played_at = excluded.last_played_at`,
			mediaID, sourceURL, at.UnixMilli(),
		); err != nil {
			return fmt.Errorf("update stats: %w", err)
		}
		return nil
	})
}

// RecordTaps adds n taps to the media's aggregate.
func (s *Store) RecordTaps(ctx context.Context, mediaID, sourceURL string, n int) error {
	if n <= 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO media_stats (media_id, source_url, taps)
		VALUES (?, ?, ?)
		ON CONFLICT(media_id) DO UPDATE SET
			taps = taps + excluded.taps`,
		mediaID, sourceURL, n,
	)
	if err != nil {
		return fmt.Errorf("record taps: %w", err)
	}
	return nil
}

// RecordTap adds a single tap.
func (s *Store) RecordTap(ctx context.Context, mediaID, sourceURL string) error {
	return s.RecordTaps(ctx, mediaID, sourceURL, 1)
}

// Recent returns up to limit plays, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Play, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, media_id, source_url, started_at
		FROM plays
		ORDER BY started_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query plays: %w", err)
	}
	defer rows.Close()

	var plays []Play
	for rows.Next() {
		var p Play
		var started int64
		if err := rows.Scan(&p.ID, &p.MediaID, &p.SourceURL, &started); err != nil {
			return nil, fmt.Errorf("scan play: %w", err)
		}
		p.StartedAt = time.UnixMilli(started)
		plays = append(plays, p)
	}
	return plays, rows.Err()
}

// Stats returns the aggregate for mediaID, or nil if it was never seen.
func (s *Store) Stats(ctx context.Context, mediaID string) (*MediaStats, error) {
	var st MediaStats
	var url sql.NullString
	var last sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
		SELECT media_id, source_url, plays, taps, last_played_at
		FROM media_stats WHERE media_id = ?`, mediaID,
	).Scan(&st.MediaID, &url, &st.Plays, &st.Taps, &last)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // nil means no history yet
	}
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	st.SourceURL = db.NullStringValue(url)
	st.LastPlayedAt = db.NullUnixMilli(last)
	return &st, nil
}
