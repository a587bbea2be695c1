package report

import (
	"math"
	"sort"

	apperrors "github.com/inferbench/inference-report/internal/errors"
)

// Well-known column names of the inference benchmark artifacts.
const (
	// IndexColumn uniquely identifies a run and keys every report.
	IndexColumn = "experiment_hash"
	// ThroughputColumn is the metric reports are sorted by.
	ThroughputColumn = "throughput(s^-1)"
	// LatencyColumn is the median end-to-end latency in seconds.
	LatencyColumn = "latency.median(s)"
	// MemoryColumn is the peak memory usage in megabytes.
	MemoryColumn = "memory.peak(MB)"
	// BaselineColumn flags the baseline row of a comparison report.
	BaselineColumn = "baseline"
	// SpeedupColumn holds throughput relative to the baseline.
	SpeedupColumn = "speedup"
)

// Report is an ordered table of runs keyed by an index column. Its column
// list is the union of the columns of all records, in first-seen order.
type Report struct {
	index   string
	columns []string
	seen    map[string]struct{}
	records []*Record
	keys    map[string]int
}

// New returns an empty report keyed by the index column.
func New(index string) *Report {
	return &Report{
		index: index,
		seen:  make(map[string]struct{}),
		keys:  make(map[string]int),
	}
}

// Index returns the name of the key column.
func (r *Report) Index() string { return r.index }

// Len returns the number of records.
func (r *Report) Len() int { return len(r.records) }

// Columns returns the column union, excluding the index column.
func (r *Report) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// HasColumn reports whether any record carries column.
func (r *Report) HasColumn(column string) bool {
	_, ok := r.seen[column]
	return ok
}

// Records returns the records in report order. The records are shared;
// callers must not modify them.
func (r *Report) Records() []*Record {
	out := make([]*Record, len(r.records))
	copy(out, r.records)
	return out
}

// Keys returns the record keys in report order.
func (r *Report) Keys() []string {
	out := make([]string, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Key
	}
	return out
}

// Record returns the record stored under key.
func (r *Report) Record(key string) (*Record, bool) {
	i, ok := r.keys[key]
	if !ok {
		return nil, false
	}
	return r.records[i], true
}

// AddRun keys a freshly joined run by its index column and appends it.
// The index column is moved from the record's columns to Record.Key.
// source names the run in error messages.
func (r *Report) AddRun(rec *Record, source string) error {
	v, ok := rec.Get(r.index)
	if !ok || v.IsMissing() {
		return apperrors.MissingColumnError{Column: r.index, Source: source}
	}
	keyed := rec.Clone()
	keyed.Key = v.String()
	keyed.Delete(r.index)
	return r.Append(keyed)
}

// Append adds a record whose Key is already set.
func (r *Report) Append(rec *Record) error {
	if _, dup := r.keys[rec.Key]; dup {
		return apperrors.DuplicateKeyError{Column: r.index, Key: rec.Key}
	}
	r.keys[rec.Key] = len(r.records)
	r.records = append(r.records, rec)
	for _, c := range rec.columns {
		if _, ok := r.seen[c]; !ok {
			r.seen[c] = struct{}{}
			r.columns = append(r.columns, c)
		}
	}
	return nil
}

// SortDescending orders records by column, largest first. The sort is
// stable; records whose value is missing or not numeric go last.
func (r *Report) SortDescending(column string) {
	sort.SliceStable(r.records, func(i, j int) bool {
		a, aok := numeric(r.records[i].Value(column))
		b, bok := numeric(r.records[j].Value(column))
		if aok != bok {
			return aok
		}
		return aok && a > b
	})
	for i, rec := range r.records {
		r.keys[rec.Key] = i
	}
}

func numeric(v Value) (float64, bool) {
	f, ok := v.Float()
	if !ok || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Concat stacks the records of every report, in argument order, into a new
// report keyed like the first one. Keys are kept as they are; a key present
// in two inputs is a DuplicateKeyError.
func Concat(reports ...*Report) (*Report, error) {
	index := IndexColumn
	if len(reports) > 0 {
		index = reports[0].index
	}
	out := New(index)
	for _, rep := range reports {
		for _, rec := range rep.records {
			if err := out.Append(rec.Clone()); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
