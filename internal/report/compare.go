package report

import (
	apperrors "github.com/inferbench/inference-report/internal/errors"
)

// WithBaseline builds a comparison report: every experiment row gains
// baseline=false and speedup = throughput / baseline throughput, and the
// baseline run is appended last with baseline=true and speedup=1.0.
//
// The inputs are not modified. Experiment rows without a numeric
// throughput get a missing speedup.
func WithBaseline(experiments *Report, baseline *Record) (*Report, error) {
	baseThroughput, ok := numeric(baseline.Value(ThroughputColumn))
	if !ok {
		return nil, apperrors.MissingColumnError{Column: ThroughputColumn, Source: "baseline " + baseline.Key}
	}

	out := New(experiments.index)
	for _, rec := range experiments.records {
		row := rec.Clone()
		row.Set(BaselineColumn, Bool(false))
		if t, ok := numeric(row.Value(ThroughputColumn)); ok {
			row.Set(SpeedupColumn, Number(t/baseThroughput))
		} else {
			row.Set(SpeedupColumn, Missing())
		}
		if err := out.Append(row); err != nil {
			return nil, err
		}
	}

	base := baseline.Clone()
	base.Set(BaselineColumn, Bool(true))
	base.Set(SpeedupColumn, Number(1.0))
	if err := out.Append(base); err != nil {
		return nil, err
	}
	return out, nil
}
