package app

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/inferbench/inference-report/internal/cli"
	"github.com/inferbench/inference-report/internal/collector"
	apperrors "github.com/inferbench/inference-report/internal/errors"
	"github.com/inferbench/inference-report/internal/format"
	"github.com/inferbench/inference-report/internal/logging"
	"github.com/inferbench/inference-report/internal/metrics"
	"github.com/inferbench/inference-report/internal/orchestration"
	"github.com/inferbench/inference-report/internal/report"
	"github.com/inferbench/inference-report/internal/ui"
)

var tracer = otel.Tracer("inference-report/app")

// CollectMessage is shown next to the spinner while runs are collected.
const CollectMessage = "Collecting benchmark results..."

// Run builds the report, saves it as CSV in the experiments folder, prints
// the console table to out, and then writes metrics and opens the browser
// when configured. Nothing is written unless the whole report was built.
func (a *Application) Run(ctx context.Context, out io.Writer) error {
	ctx, span := tracer.Start(ctx, "app.Run",
		trace.WithAttributes(
			attribute.String("report.experiments_folder", a.Config.ExperimentsFolder),
			attribute.String("report.baseline_folder", a.Config.BaselineFolder),
		),
	)
	defer span.End()

	if err := a.run(ctx, out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "run failed")
		a.Logger.Debug("run failed", logging.Err(err))
		return err
	}
	return nil
}

func (a *Application) run(ctx context.Context, out io.Writer) error {
	ui.InitTheme(a.Config.NoColor)
	start := time.Now()

	var recorder *metrics.Recorder
	if a.Config.MetricsFile != "" {
		recorder = metrics.NewRecorder()
	}
	gatherer := a.Gatherer
	if gatherer == nil {
		gatherer = collector.New(
			collector.WithLogger(a.Logger),
			collector.WithRecorder(recorder),
			collector.WithWorkers(a.Config.Workers),
		)
	}

	var sp cli.Spinner = cli.NopSpinner{}
	if a.isTerminal(a.ErrWriter) {
		sp = a.newSpinner(a.ErrWriter)
	}

	var (
		rep          *report.Report
		withBaseline bool
	)
	err := cli.RunWithSpinner(sp, CollectMessage, func() error {
		var err error
		rep, withBaseline, err = orchestration.BuildReport(ctx, gatherer,
			a.Config.ExperimentsFolder, a.Config.BaselineFolder, a.Logger)
		return err
	})
	if err != nil {
		return err
	}
	a.Logger.Debug("report built",
		logging.Int("rows", rep.Len()),
		logging.String("elapsed", format.FormatExecutionDuration(time.Since(start))))

	path := filepath.Join(a.Config.ExperimentsFolder, cli.ReportFileName)
	if err := a.persist(ctx, path, rep); err != nil {
		return err
	}
	a.Logger.Info("report saved", logging.String("path", path))

	if err := a.Presenter.RenderReport(out, rep, withBaseline); err != nil {
		return apperrors.WrapError(err, "render report")
	}

	if recorder != nil {
		recorder.ObserveReport(rep)
		if err := recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
			return apperrors.WrapError(err, "write metrics %s", a.Config.MetricsFile)
		}
		a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
	}

	if a.Config.Interactive {
		if !a.isTerminal(out) {
			a.Logger.Info("interactive mode needs a terminal on stdout; skipping the browser")
			return nil
		}
		return a.browse(ctx, rep, withBaseline)
	}
	return nil
}

func (a *Application) persist(ctx context.Context, path string, rep *report.Report) error {
	_, span := tracer.Start(ctx, "app.persist", trace.WithAttributes(attribute.String("report.path", path)))
	defer span.End()
	if err := cli.WriteReportToFile(path, rep); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
