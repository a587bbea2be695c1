package orchestration

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/inferbench/inference-report/internal/errors"
	"github.com/inferbench/inference-report/internal/logging"
	"github.com/inferbench/inference-report/internal/report"
)

var tracer = otel.Tracer("inference-report/orchestration")

// BuildReport gathers experimentsRoot and, when baselineRoot is not empty,
// compares every experiment with the single run found under baselineRoot.
//
// The returned flag is true when the report carries the baseline and
// speedup columns. The baseline row is appended after the experiment rows
// and keeps its own key.
func BuildReport(ctx context.Context, g Gatherer, experimentsRoot, baselineRoot string, logger logging.Logger) (*report.Report, bool, error) {
	ctx, span := tracer.Start(ctx, "orchestration.BuildReport",
		trace.WithAttributes(
			attribute.String("report.experiments_root", experimentsRoot),
			attribute.Bool("report.has_baseline", baselineRoot != ""),
		),
	)
	defer span.End()

	rep, withBaseline, err := buildReport(ctx, g, experimentsRoot, baselineRoot, logger)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build report failed")
		return nil, false, err
	}
	span.SetAttributes(attribute.Int("report.rows", rep.Len()))
	return rep, withBaseline, nil
}

func buildReport(ctx context.Context, g Gatherer, experimentsRoot, baselineRoot string, logger logging.Logger) (*report.Report, bool, error) {
	experiments, err := g.Gather(ctx, experimentsRoot)
	if err != nil {
		return nil, false, err
	}

	if baselineRoot == "" {
		logger.Info("No baseline provided")
		return experiments, false, nil
	}

	logger.Info("Using the provided baseline", logging.String("baseline", baselineRoot))
	baseline, err := g.Gather(ctx, baselineRoot)
	if err != nil {
		return nil, false, apperrors.WrapError(err, "baseline")
	}
	if baseline.Len() != 1 {
		return nil, false, apperrors.BaselineCardinalityError{Root: baselineRoot, Count: baseline.Len()}
	}

	base := baseline.Records()[0]
	rep, err := report.WithBaseline(experiments, base)
	if err != nil {
		return nil, false, err
	}
	throughput, _ := base.Value(report.ThroughputColumn).Float()
	logger.Debug("compared with baseline",
		logging.String("key", base.Key),
		logging.Float64("throughput", throughput),
		logging.Int("runs", experiments.Len()))
	return rep, true, nil
}
