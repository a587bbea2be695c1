// Package app wires the command line to the report pipeline: it resolves
// the configuration, builds the report, persists and prints it, and maps
// failures to exit codes.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/inferbench/inference-report/internal/cli"
	"github.com/inferbench/inference-report/internal/config"
	apperrors "github.com/inferbench/inference-report/internal/errors"
	"github.com/inferbench/inference-report/internal/logging"
	"github.com/inferbench/inference-report/internal/orchestration"
	"github.com/inferbench/inference-report/internal/report"
	"github.com/inferbench/inference-report/internal/tui"
)

// Application is one configured run of the report tool.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	Gatherer  orchestration.Gatherer
	Presenter orchestration.ReportPresenter

	newSpinner func(w io.Writer) cli.Spinner
	browse     func(ctx context.Context, rep *report.Report, includeComparison bool) error
	isTerminal func(w any) bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithGatherer replaces the filesystem collector.
func WithGatherer(g orchestration.Gatherer) AppOption {
	return func(a *Application) { a.Gatherer = g }
}

// WithPresenter replaces the console table presenter.
func WithPresenter(p orchestration.ReportPresenter) AppOption {
	return func(a *Application) { a.Presenter = p }
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithSpinner replaces the spinner factory.
func WithSpinner(f func(w io.Writer) cli.Spinner) AppOption {
	return func(a *Application) { a.newSpinner = f }
}

// WithBrowser replaces the interactive browser.
func WithBrowser(f func(ctx context.Context, rep *report.Report, includeComparison bool) error) AppOption {
	return func(a *Application) { a.browse = f }
}

// WithTerminalCheck replaces terminal detection.
func WithTerminalCheck(f func(w any) bool) AppOption {
	return func(a *Application) { a.isTerminal = f }
}

// NewApplication creates an Application for an already resolved configuration.
func NewApplication(cfg config.AppConfig, errWriter io.Writer, opts ...AppOption) *Application {
	a := &Application{
		Config:     cfg,
		ErrWriter:  errWriter,
		Presenter:  cli.ReportPresenter{},
		newSpinner: cli.NewSpinner,
		isTerminal: isTerminal,
		browse: func(ctx context.Context, rep *report.Report, includeComparison bool) error {
			return tui.Run(ctx, rep, includeComparison, Version)
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		a.Logger = newLogger(cfg, errWriter)
	}
	return a
}

// NewCommand returns the root command. Flags are bound to a fresh
// configuration; the command runs the report pipeline with out as stdout.
func NewCommand(out, errOut io.Writer, opts ...AppOption) *cobra.Command {
	var cfg config.AppConfig
	cmd := &cobra.Command{
		Use:   "inference-report",
		Short: "Aggregate inference benchmark runs into a single report",
		Long: `inference-report walks an experiments folder for runs (a directory holding
inference_results.csv and hydra_config.yaml), joins each run's results with
its flattened configuration, and writes inference_report.csv next to the runs.
With --baseline-folder every run is compared with the single baseline run.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return apperrors.NewConfigError("unexpected arguments: %v", args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Resolve(cmd.Flags(), &cfg); err != nil {
				return err
			}
			if cfg.Completion != "" {
				return cli.GenerateCompletion(cmd, out, cfg.Completion)
			}
			return NewApplication(cfg, errOut, opts...).Run(cmd.Context(), out)
		},
	}
	config.BindFlags(cmd.Flags(), &cfg)
	// Every completed flag is declared by BindFlags, so this cannot fail.
	_ = cli.RegisterFlagCompletions(cmd)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.NewConfigError("%v", err)
	})
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd
}

// Execute runs the command line and returns the process exit code. The
// diagnostic of a failed run is written to errOut.
func Execute(ctx context.Context, args []string, out, errOut io.Writer, opts ...AppOption) int {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := NewCommand(out, errOut, opts...)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return apperrors.ExitSuccess
	}
	if IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	fmt.Fprintf(errOut, "Error: %v\n", err)
	return apperrors.ExitCodeFor(err)
}

// IsHelpError reports whether err comes from an explicit help request.
func IsHelpError(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}

func newLogger(cfg config.AppConfig, w io.Writer) logging.Logger {
	level, err := cfg.Level()
	if err != nil {
		level = zerolog.InfoLevel
	}
	var l *logging.ZerologAdapter
	if cfg.LogFormat == config.LogFormatJSON {
		l = logging.NewLogger(w, "inference-report")
	} else {
		l = logging.NewConsoleLogger(w, "inference-report")
	}
	return l.WithLevel(level)
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
