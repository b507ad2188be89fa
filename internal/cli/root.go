package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lucrnz/timespan"
	"github.com/lucrnz/timespan/internal/logging"
	"github.com/lucrnz/timespan/internal/version"
)

type options struct {
	duration  timespan.Duration
	seconds   uint64
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "timespan",
		Short: "Break a human-readable duration into whole unit counts",
		Long: `timespan

Parses a duration string such as "10s", "8h5m10s" or "120m" and reports the
full day, hour, minute and second counts it represents.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
		Version: version.Print(),
	}

	cmd.Flags().VarP(&opts.duration, "duration", "d", `Duration string to parse (e.g. "8h5m10s")`)
	cmd.Flags().Uint64VarP(&opts.seconds, "seconds", "s", 0, "Literal seconds count to report on instead of parsing a string")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text or json)")

	cmd.MarkFlagsMutuallyExclusive("duration", "seconds")
	cmd.MarkFlagsOneRequired("duration", "seconds")

	// Silence usage output for runtime errors, but show it for flag errors
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return err
	})

	return cmd
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func run(cmd *cobra.Command, opts *options) error {
	logger, err := logging.New(opts.logLevel, opts.logFormat)
	if err != nil {
		return err
	}

	// MarkFlagsOneRequired guarantees one of the two was set. A malformed
	// --duration never reaches this point; it fails in the flag binding.
	span := timespan.FromSeconds(opts.seconds)
	if cmd.Flags().Changed("duration") {
		span = opts.duration
	}

	logger.Debug("duration_resolved",
		"canonical", span.String(),
		"seconds", span.Seconds(),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Full days: %s\n", humanize.Comma(int64(span.Days())))
	fmt.Fprintf(out, "Full hours: %s\n", humanize.Comma(int64(span.Hours())))
	fmt.Fprintf(out, "Full minutes: %s\n", humanize.Comma(int64(span.Minutes())))
	fmt.Fprintf(out, "Full seconds: %s\n", humanize.Comma(int64(span.Seconds())))

	return nil
}
