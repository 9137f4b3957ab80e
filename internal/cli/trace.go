package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"hand-showreel/internal/handtrack"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Output string
	Rate   float64
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Write a synthetic hand trace",
		Long: `Generate a demo hand trace (hand enters, pinches open and closed while
sweeping across the frame, then leaves) and write it as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "trace.yaml", "output file path")
	cmd.Flags().Float64Var(&opts.Rate, "rate", 30, "tracker sample rate in Hz")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	if opts.Rate <= 0 {
		return fmt.Errorf("invalid rate %v: must be positive", opts.Rate)
	}
	tr := handtrack.Synthesize(opts.Config.Duration, opts.Rate)
	if err := tr.Save(opts.Output); err != nil {
		return err
	}
	slog.Info("trace written", "path", opts.Output, "samples", len(tr.Samples), "duration", tr.Duration())
	return nil
}
