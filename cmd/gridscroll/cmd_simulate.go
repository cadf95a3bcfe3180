package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-theft-auto/gridscroll/internal/sim"
)

func (a *app) simulateCmd() *cobra.Command {
	var (
		watch    bool
		limit    int
		debounce = sim.DefaultDebounce
	)

	cmd := &cobra.Command{
		Use:   "simulate SCRIPT...",
		Short: "Replay event scripts and print the resulting frames as YAML",
		Long: `Runs each script against its own strategy and prints one YAML report
per script, separated by "---". Scripts without a layout use the config
layout with responsive columns applied.

With --watch, a single script is rerun every time the file changes.`,
		Example: `  gridscroll simulate testdata/tail-shrink.yaml
  gridscroll simulate --limit 4 scripts/*.yaml
  gridscroll simulate --watch scratch.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			r := &sim.Runner{
				Logger: a.logger.Named("sim"),
				Layout: a.cfg.ResponsiveLayout(),
				Limit:  limit,
			}
			out := cmd.OutOrStdout()

			if watch {
				if len(args) != 1 {
					return errors.New("--watch takes exactly one script")
				}
				return r.Watch(ctx, args[0], debounce, func(rep *sim.Report, err error) {
					if err != nil {
						a.logger.Warn("Simulation failed", zap.String("script", args[0]), zap.Error(err))
						return
					}
					if err := writeReports(out, []*sim.Report{rep}); err != nil {
						a.logger.Warn("Failed to write report", zap.Error(err))
					}
				})
			}

			return runScripts(ctx, r, args, out)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Rerun the script whenever it changes")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum scripts run concurrently (0 = no limit)")
	cmd.Flags().DurationVar(&debounce, "debounce", sim.DefaultDebounce, "Quiet period before a watched script is rerun")
	return cmd
}

func runScripts(ctx context.Context, r *sim.Runner, paths []string, out io.Writer) error {
	scripts := make([]*sim.Script, 0, len(paths))
	for _, p := range paths {
		s, err := sim.LoadScript(p)
		if err != nil {
			return err
		}
		scripts = append(scripts, s)
	}

	reports, err := r.RunAll(ctx, scripts)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	return writeReports(out, reports)
}

func writeReports(w io.Writer, reports []*sim.Report) error {
	for i, rep := range reports {
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if err := rep.WriteYAML(w); err != nil {
			return fmt.Errorf("failed to write report %s: %w", rep.Script, err)
		}
	}
	return nil
}
