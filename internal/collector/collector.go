package collector

import (
	"context"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/inferbench/inference-report/internal/errors"
	"github.com/inferbench/inference-report/internal/logging"
	"github.com/inferbench/inference-report/internal/metrics"
	"github.com/inferbench/inference-report/internal/report"
)

var tracer = otel.Tracer("inference-report/collector")

// Collector gathers benchmark runs into reports.
type Collector struct {
	logger   logging.Logger
	recorder *metrics.Recorder
	workers  int
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(c *Collector) { c.logger = l }
}

// WithRecorder sets the metrics recorder. The default records nothing.
func WithRecorder(r *metrics.Recorder) Option {
	return func(c *Collector) { c.recorder = r }
}

// WithWorkers bounds the number of runs loaded at once. Values below one
// are ignored.
func WithWorkers(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.workers = n
		}
	}
}

// New creates a Collector.
func New(opts ...Option) *Collector {
	c := &Collector{
		logger:  logging.NewNopLogger(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type loadedRun struct {
	rec        *report.Record
	overridden []string
}

// Gather discovers every run under root and returns them as one report,
// keyed by experiment_hash and sorted by descending throughput.
func (c *Collector) Gather(ctx context.Context, root string) (*report.Report, error) {
	ctx, span := tracer.Start(ctx, "collector.Gather",
		trace.WithAttributes(attribute.String("collector.root", root)),
	)
	defer span.End()
	start := time.Now()

	rep, err := c.gather(ctx, root, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "gather failed")
		return nil, err
	}

	c.recorder.ObserveGather(root, time.Since(start))
	c.recorder.RunsCollected(root, rep.Len())
	span.SetAttributes(attribute.Int("collector.runs", rep.Len()))
	c.logger.Debug("collected runs",
		logging.String("root", root),
		logging.Int("runs", rep.Len()),
		logging.Duration("elapsed", time.Since(start)))
	return rep, nil
}

func (c *Collector) gather(ctx context.Context, root string, span trace.Span) (*report.Report, error) {
	runs, err := Discover(ctx, root)
	if err != nil {
		return nil, err
	}
	c.recorder.FilesDiscovered(root, len(runs), len(runs))
	span.AddEvent("discovered", trace.WithAttributes(attribute.Int("collector.pairs", len(runs))))

	loaded := make([]loadedRun, len(runs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, run := range runs {
		i, run := i, run
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, overridden, err := LoadRun(run)
			if err != nil {
				return err
			}
			loaded[i] = loadedRun{rec: rec, overridden: overridden}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := report.New(report.IndexColumn)
	for i, run := range runs {
		lr := loaded[i]
		for _, col := range lr.overridden {
			c.logger.Debug("result column overrides config",
				logging.String("column", col), logging.String("run", run.Dir))
		}
		if _, ok := lr.rec.Get(report.ThroughputColumn); !ok {
			return nil, apperrors.MissingColumnError{Column: report.ThroughputColumn, Source: run.Results}
		}
		if err := rep.AddRun(lr.rec, run.Results); err != nil {
			return nil, err
		}
	}
	rep.SortDescending(report.ThroughputColumn)
	return rep, nil
}
