package collector

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/inferbench/inference-report/internal/errors"
	"github.com/inferbench/inference-report/internal/logging"
	"github.com/inferbench/inference-report/internal/metrics"
	"github.com/inferbench/inference-report/internal/report"
)

func TestGatherTwoRuns(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeRun(t, root, "0", "a1", 10.0)
	writeRun(t, root, "1", "b2", 20.0)

	rep, err := New().Gather(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, []string{"b2", "a1"}, rep.Keys())
	assert.Equal(t, report.IndexColumn, rep.Index())
	assert.True(t, rep.HasColumn("backend.name"))
	assert.True(t, rep.HasColumn(report.LatencyColumn))
	assert.False(t, rep.HasColumn(report.IndexColumn))
}

func TestGatherManyRunsIsOrdered(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	const n = 25
	for i := 0; i < n; i++ {
		writeRun(t, root, fmt.Sprintf("run-%02d", i), fmt.Sprintf("h%02d", i), float64((i*7)%n))
	}

	rep, err := New(WithWorkers(4)).Gather(context.Background(), root)
	require.NoError(t, err)
	require.Equal(t, n, rep.Len())

	prev := 1e18
	seen := make(map[string]bool)
	for _, rec := range rep.Records() {
		f, ok := rec.Value(report.ThroughputColumn).Float()
		require.True(t, ok)
		assert.LessOrEqual(t, f, prev)
		prev = f
		assert.False(t, seen[rec.Key])
		seen[rec.Key] = true
	}
}

func TestGatherErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		_, err := New().Gather(context.Background(), t.TempDir())
		assert.ErrorAs(t, err, &apperrors.NoResultsError{})
	})

	t.Run("duplicate hash", func(t *testing.T) {
		root := t.TempDir()
		writeRun(t, root, "0", "same", 1)
		writeRun(t, root, "1", "same", 2)
		_, err := New().Gather(context.Background(), root)
		var de apperrors.DuplicateKeyError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "same", de.Key)
	})

	t.Run("missing throughput", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "r", ResultsFileName), ",experiment_hash,latency.median(s)\n0,a1,0.1\n")
		writeFile(t, filepath.Join(root, "r", ConfigFileName), "a: 1\n")
		_, err := New().Gather(context.Background(), root)
		var mce apperrors.MissingColumnError
		require.ErrorAs(t, err, &mce)
		assert.Equal(t, report.ThroughputColumn, mce.Column)
	})

	t.Run("missing hash", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "r", ResultsFileName), ",throughput(s^-1)\n0,4.0\n")
		writeFile(t, filepath.Join(root, "r", ConfigFileName), "a: 1\n")
		_, err := New().Gather(context.Background(), root)
		var mce apperrors.MissingColumnError
		require.ErrorAs(t, err, &mce)
		assert.Equal(t, report.IndexColumn, mce.Column)
	})

	t.Run("malformed results", func(t *testing.T) {
		root := t.TempDir()
		writeRun(t, root, "ok", "a1", 1)
		writeFile(t, filepath.Join(root, "bad", ResultsFileName), ",experiment_hash\n0,a\n1,b\n")
		writeFile(t, filepath.Join(root, "bad", ConfigFileName), "a: 1\n")
		_, err := New().Gather(context.Background(), root)
		assert.ErrorAs(t, err, &apperrors.ValidationError{})
	})
}

func TestGatherLogsAndRecords(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeRun(t, root, "0", "a1", 10)
	writeFile(t, filepath.Join(root, "0", ResultsFileName),
		",experiment_hash,throughput(s^-1),backend.name\n0,a1,10.0,onnxruntime\n")

	var buf bytes.Buffer
	rec := metrics.NewRecorder()
	c := New(WithLogger(logging.NewStdLoggerAdapter(newTestLogger(&buf))), WithRecorder(rec))

	rep, err := c.Gather(context.Background(), root)
	require.NoError(t, err)

	got, _ := rep.Record("a1")
	assert.Equal(t, report.Text("onnxruntime"), got.Value("backend.name"))
	assert.Contains(t, buf.String(), "result column overrides config")
	assert.Contains(t, buf.String(), "column=backend.name")
	assert.Contains(t, buf.String(), "collected runs")
	assert.Contains(t, buf.String(), "elapsed=")

	count, err := testutil.GatherAndCount(rec.Gatherer(), "inference_report_runs_collected_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
