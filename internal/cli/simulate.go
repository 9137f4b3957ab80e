package cli

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hand-showreel/internal/gesture"
	"hand-showreel/internal/handtrack"
	"hand-showreel/internal/reel"
)

// SimulateOptions holds flags for the simulate command.
type SimulateOptions struct {
	*RootOptions
	Live bool
}

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SimulateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the camera controller over a hand trace",
		Long: `Step the gesture controller once per frame against a hand trace and
print every frame's sample and camera transform as JSON lines.

With --live the trace is replayed on its own clock into a latest-sample
mailbox while a wall-clock frame loop reads it, as a camera tracker would.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Live, "live", false, "replay the trace in real time")

	return cmd
}

func runSimulate(opts *SimulateOptions, cmd *cobra.Command) error {
	cfg := opts.Config
	tr, err := loadTrace(cfg)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	ctrl := gesture.NewController()

	if !opts.Live {
		for _, f := range reel.Simulate(tr, ctrl, cfg.FPS, cfg.Duration) {
			if err := enc.Encode(f); err != nil {
				return err
			}
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var latest handtrack.Latest
	go func() {
		if err := handtrack.Replay(ctx, tr, &latest, 1); err != nil && !errors.Is(err, context.Canceled) {
			slog.Debug("replay stopped", "error", err)
		}
	}()

	var encErr error
	err = reel.Play(ctx, ctrl, &latest, cfg.FPS, reel.FrameCount(cfg.FPS, cfg.Duration), func(f reel.Frame) {
		if encErr == nil {
			encErr = enc.Encode(f)
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return encErr
}
