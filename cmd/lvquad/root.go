package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	exitOK           = 0
	exitError        = 1
	exitNotConverged = 2
)

// errNotConverged marks a run that finished without meeting its tolerance.
var errNotConverged = errors.New("tolerance not reached")

// app carries state shared by the subcommands of one invocation.
type app struct {
	stdout, stderr io.Writer

	logLevel string
	noColor  bool
	log      *slog.Logger
}

// execute runs the CLI with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errNotConverged):
		return exitNotConverged
	default:
		fmt.Fprintf(stderr, "lvquad: %v\n", err)

		return exitError
	}
}

func (a *app) newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lvquad",
		Short:         "Adaptive Gauss–Legendre quadrature",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogging()
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable coloured log output")

	cmd.AddCommand(
		a.newRunCommand(),
		a.newNodesCommand(),
		a.newProblemsCommand(),
	)

	return cmd
}

// setupLogging installs a tint handler on stderr at the requested level.
func (a *app) setupLogging() error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level %q: %w", a.logLevel, err)
	}
	a.log = slog.New(tint.NewHandler(a.stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
		NoColor:    a.noColor,
	}))

	return nil
}
