package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/history"
	"github.com/llehouerou/scrubber/internal/ui/render"
)

const defaultHistoryLimit = 20

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent plays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			store, err := openHistory(cfg)
			if err != nil {
				return failure(errmsg.OpHistoryOpen, cfg.History.Path, err)
			}
			defer store.Close()

			if err := printHistory(cmd.Context(), cmd.OutOrStdout(), store, limit, time.Now()); err != nil {
				return failure(errmsg.OpHistoryQuery, "", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Number of plays to show")
	return cmd
}

// printHistory writes one line per play, newest first, with times
// relative to now.
func printHistory(ctx context.Context, w io.Writer, store *history.Store, limit int, now time.Time) error {
	plays, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(plays) == 0 {
		_, err := fmt.Fprintln(w, "No plays recorded yet.")
		return err
	}

	stats := make(map[string]*history.MediaStats)
	for _, p := range plays {
		st, ok := stats[p.MediaID]
		if !ok {
			if st, err = store.Stats(ctx, p.MediaID); err != nil {
				return err
			}
			stats[p.MediaID] = st
		}

		when := humanize.RelTime(p.StartedAt, now, "ago", "from now")
		line := render.Pad(when, 16) + "  " + displaySource(p.SourceURL)
		if st != nil {
			line += fmt.Sprintf("  (%s plays, %s taps)", humanize.Comma(int64(st.Plays)), humanize.Comma(int64(st.Taps)))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// displaySource shows file URLs as plain paths.
func displaySource(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "file" {
		return raw
	}
	return u.Path
}
