package orchestration

import (
	"context"
	"io"

	"github.com/inferbench/inference-report/internal/report"
)

// Gatherer collects every run under a directory tree into a report.
type Gatherer interface {
	Gather(ctx context.Context, root string) (*report.Report, error)
}

// GathererFunc is a function adapter that implements Gatherer.
type GathererFunc func(ctx context.Context, root string) (*report.Report, error)

// Gather calls the underlying function.
func (f GathererFunc) Gather(ctx context.Context, root string) (*report.Report, error) {
	return f(ctx, root)
}

// ReportPresenter renders a report for the user. includeComparison selects
// the baseline and speedup columns.
type ReportPresenter interface {
	RenderReport(out io.Writer, rep *report.Report, includeComparison bool) error
}
