package collector

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeRun creates dir/<name>/ with a results CSV and a Hydra config for a
// single run.
func writeRun(t *testing.T, root, name, hash string, throughput float64) string {
	t.Helper()
	dir := filepath.Join(root, name)
	results := fmt.Sprintf(",experiment_hash,throughput(s^-1),latency.median(s)\n0,%s,%v,0.05\n", hash, throughput)
	config := "backend:\n  name: pytorch\n  device: cuda\nbenchmark:\n  batch_size: 1\n  sequence_length: 128\n"
	writeFile(t, filepath.Join(dir, ResultsFileName), results)
	writeFile(t, filepath.Join(dir, ConfigFileName), config)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}
