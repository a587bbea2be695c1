package e2e

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeRun lays out one run directory the way the benchmark harness does.
func writeRun(t *testing.T, root, name, hash string, throughput float64) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	results := fmt.Sprintf(",experiment_hash,throughput(s^-1),latency.median(s),memory.peak(MB)\n0,%s,%v,0.125,512\n", hash, throughput)
	config := "experiment_name: e2e\nbackend:\n  name: pytorch\n  device: cpu\n"
	if err := os.WriteFile(filepath.Join(dir, "inference_results.csv"), []byte(results), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "hydra_config.yaml"), []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}
}

// TestCLI_E2E builds the binary and runs it on generated run trees.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "inference-report"
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs in test/e2e; build from the module root.
	build := exec.Command("go", "build", "-o", binPath, "./cmd/inference-report")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build inference-report: %v", err)
	}

	sweeps := filepath.Join(tmpDir, "sweeps")
	writeRun(t, sweeps, "0", "a1", 10.0)
	writeRun(t, sweeps, "1", "b2", 20.0)
	baseline := filepath.Join(tmpDir, "baseline")
	writeRun(t, baseline, "0", "ref", 5.0)

	tests := []struct {
		name     string
		args     []string
		wantOut  []string
		wantCode int
	}{
		{
			name:     "Experiments only",
			args:     []string{"--experiments-folder", sweeps},
			wantOut:  []string{"Inference Benchmark Report", "b2", "a1", "No baseline provided"},
			wantCode: 0,
		},
		{
			name:     "With baseline",
			args:     []string{"-f", sweeps, "-b", baseline},
			wantOut:  []string{"speedup", "4.00", "2.00", "ref", "Using the provided baseline"},
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  []string{"usage", "--experiments-folder"},
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  []string{"inference-report"},
			wantCode: 0,
		},
		{
			name:     "Empty folder",
			args:     []string{"-f", t.TempDir()},
			wantOut:  []string{"no results found in"},
			wantCode: 1,
		},
		{
			name:     "Bad flag",
			args:     []string{"--nope"},
			wantOut:  []string{"unknown flag"},
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("run: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(want)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", want, outStr)
				}
			}
		})
	}

	data, err := os.ReadFile(filepath.Join(sweeps, "inference_report.csv"))
	if err != nil {
		t.Fatalf("report artifact: %v", err)
	}
	for _, key := range []string{"a1", "b2", "ref"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("artifact should contain %q, got:\n%s", key, data)
		}
	}
}
