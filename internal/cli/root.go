// Package cli implements the scrubber command line.
package cli

import (
	"fmt"
	"os"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"

	"github.com/llehouerou/scrubber/internal/config"
	"github.com/llehouerou/scrubber/internal/errmsg"
)

type rootOptions struct {
	configPath string
	noAutoplay bool
	debug      bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "scrubber [flags] <file>",
		Short:         "Play a media file with a scrubbable progress bar",
		Long:          "Play a local audio file in the terminal. Drag the slider or use the arrow keys to scrub.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayer(cmd.Context(), opts, args[0])
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Read an extra config file (applied last)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write debug logs to the log file")
	cmd.Flags().BoolVar(&opts.noAutoplay, "no-autoplay", false, "Stay paused once the media is ready")

	cmd.AddCommand(newHistoryCmd(opts))
	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if os.Getenv("NO_COLOR") == "" {
		cc.Init(&cc.Config{
			RootCmd:       root,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// loadConfig reads the config files and applies flag overrides.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, failure(errmsg.OpConfigLoad, opts.configPath, err)
	}
	opts.apply(cfg)
	return cfg, nil
}

func (o *rootOptions) apply(cfg *config.Config) {
	if o.noAutoplay {
		off := false
		cfg.Playback.Autoplay = &off
	}
	if o.debug {
		cfg.Log.Enabled = true
		cfg.Log.Level = "debug"
	}
}

// userError carries a failed operation to the terminal in errmsg form.
type userError struct {
	op      errmsg.Op
	context string
	err     error
}

func failure(op errmsg.Op, context string, err error) error {
	return &userError{op: op, context: context, err: err}
}

func (e *userError) Error() string {
	return errmsg.FormatWith(e.op, e.context, e.err)
}

func (e *userError) Unwrap() error {
	return e.err
}
