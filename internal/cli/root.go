package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"hand-showreel/internal/config"
	"hand-showreel/internal/reel"
)

// RootOptions holds global flags and the resolved configuration shared by
// every subcommand.
type RootOptions struct {
	ConfigPath string
	Flags      config.Flags
	Config     config.Config
}

// NewRootCommand creates the root command for the showreel CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "showreel",
		Short: "Hand-controlled image sphere showreel",
		Long: `Lay out a gallery of images on a sphere and drive its camera from
hand-tracking samples: pinch to zoom, move to rotate, idle spin when no
hand is in view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.resolve(); err != nil {
				return err
			}
			setupLogger(cmd, opts.Config.LogLevel)
			return nil
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "path to JSON config file")
	pf.BoolVarP(&opts.Flags.Verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&opts.Flags.Catalog, "catalog", "", "YAML/JSON item catalog")
	pf.StringVar(&opts.Flags.ImageDir, "images", "", "directory of images to upload as the gallery")
	pf.StringVar(&opts.Flags.Trace, "trace", "", "hand trace file (default: synthesized demo)")
	pf.Float64Var(&opts.Flags.FPS, "fps", 0, "frames per second (default 60)")
	pf.Float64Var(&opts.Flags.Duration, "duration", 0, "seconds to run (default 5)")

	// Add subcommands
	cmd.AddCommand(NewItemsCommand(opts))
	cmd.AddCommand(NewLayoutCommand(opts))
	cmd.AddCommand(NewSimulateCommand(opts))
	cmd.AddCommand(NewTraceCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))

	return cmd
}

// resolve merges config file, environment and flags, in that order.
func (o *RootOptions) resolve() error {
	var cfg config.Config
	if o.ConfigPath != "" {
		var err error
		cfg, err = config.Load(o.ConfigPath)
		if err != nil {
			return err
		}
	}
	if err := config.ParseEnv(&cfg); err != nil {
		return err
	}
	cfg.Resolve(o.Flags)
	if err := reel.CheckFPS(cfg.FPS); err != nil {
		return err
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}
	o.Config = cfg
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", s)
}

// setupLogger routes slog to stderr so JSON output on stdout stays clean.
func setupLogger(cmd *cobra.Command, level string) {
	lvl, _ := parseLevel(level)
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}
