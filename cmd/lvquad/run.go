package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvquad/converge"
	"github.com/katalvlaran/lvquad/report"
)

// Plot file names written under --plot-dir.
const (
	convergencePlot = "convergence.png"
	errorPlot       = "error.png"
)

func (a *app) newRunCommand() *cobra.Command {
	var (
		flags      runConfig
		lo, hi     float64
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Integrate a catalog problem until the error is below --tol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultRunConfig()
			if configPath != "" {
				var err error
				if cfg, err = loadRunConfig(configPath, cfg); err != nil {
					return err
				}
			}
			overrideFromFlags(cmd.Flags(), &cfg, flags, lo, hi)

			return a.run(cmd.Context(), cfg)
		},
	}
	bindFlags(cmd.Flags(), &flags, &lo, &hi, &configPath)

	return cmd
}

// run executes one driver run and writes every requested report.
func (a *app) run(ctx context.Context, cfg runConfig) error {
	p, iv, err := cfg.problem()
	if err != nil {
		return err
	}
	opts, err := cfg.driverOptions()
	if err != nil {
		return err
	}
	opts.Logger = a.log

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	reference := p.ReferenceOn(iv)
	a.log.Info("run", slog.String("problem", p.Name), slog.String("interval", iv.String()),
		slog.String("method", opts.Solver.Method.String()), slog.Float64("tol", opts.Tolerance))

	res, err := converge.Run(ctx, p.F, iv, reference, converge.WithOptions(opts))
	if err != nil {
		return err
	}

	if res.Trace.Len() == 0 {
		fmt.Fprintf(a.stdout, "status:    %s\n", res.Status)
		if res.Warning != nil {
			fmt.Fprintf(a.stdout, "warning:   %v\n", res.Warning)
		}
	} else {
		if err = report.Table(a.stdout, res.Trace); err != nil {
			return err
		}
		fmt.Fprintln(a.stdout)
		if err = report.Summary(a.stdout, res); err != nil {
			return err
		}
		if err = a.export(cfg, res); err != nil {
			return err
		}
	}

	if !res.Converged() {
		return fmt.Errorf("%s: %w", res.Status, errNotConverged)
	}

	return nil
}

// export writes the CSV and plot files requested by cfg.
func (a *app) export(cfg runConfig, res converge.Result) error {
	if cfg.CSV != "" {
		f, err := os.Create(cfg.CSV)
		if err != nil {
			return fmt.Errorf("csv: %w", err)
		}
		if err = report.WriteCSV(f, res.Trace); err != nil {
			_ = f.Close()

			return err
		}
		if err = f.Close(); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
		a.log.Info("wrote trace", slog.String("path", cfg.CSV))
	}

	if cfg.PlotDir != "" {
		if err := os.MkdirAll(cfg.PlotDir, 0o755); err != nil {
			return fmt.Errorf("plot dir: %w", err)
		}
		conv := filepath.Join(cfg.PlotDir, convergencePlot)
		if err := report.PlotConvergence(res.Trace, res.Reference, conv); err != nil {
			return err
		}
		errp := filepath.Join(cfg.PlotDir, errorPlot)
		if err := report.PlotError(res.Trace, errp); err != nil {
			return err
		}
		a.log.Info("wrote plots", slog.String("convergence", conv), slog.String("error", errp))
	}

	return nil
}
