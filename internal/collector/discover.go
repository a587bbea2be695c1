package collector

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	apperrors "github.com/inferbench/inference-report/internal/errors"
)

const (
	// ResultsFileName is the per-run benchmark results file.
	ResultsFileName = "inference_results.csv"
	// ConfigFileName is the per-run Hydra configuration dump.
	ConfigFileName = "hydra_config.yaml"
)

// RunFiles locates the two artifacts of a single run.
type RunFiles struct {
	Dir     string
	Results string
	Config  string
}

// Discover walks root and pairs every results file with the config file in
// the same directory. Pairs are returned in lexical order of Dir.
//
// Symlinks are not followed. A root that does not exist, or that holds no
// results file or no config file, yields a NoResultsError.
func Discover(ctx context.Context, root string) ([]RunFiles, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NoResultsError{Root: root}
		}
		return nil, apperrors.WrapError(err, "stat %s", root)
	}

	results := make(map[string]string)
	configs := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		switch d.Name() {
		case ResultsFileName:
			results[filepath.Dir(path)] = path
		case ConfigFileName:
			configs[filepath.Dir(path)] = path
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.WrapError(err, "walk %s", root)
	}
	if len(results) == 0 || len(configs) == 0 {
		return nil, apperrors.NoResultsError{Root: root}
	}

	dirs := make([]string, 0, len(results))
	for dir := range results {
		dirs = append(dirs, dir)
	}
	for dir := range configs {
		if _, ok := results[dir]; !ok {
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)

	runs := make([]RunFiles, 0, len(dirs))
	for _, dir := range dirs {
		res, hasResults := results[dir]
		cfg, hasConfig := configs[dir]
		switch {
		case !hasResults:
			return nil, apperrors.PairingError{Dir: dir, Missing: ResultsFileName}
		case !hasConfig:
			return nil, apperrors.PairingError{Dir: dir, Missing: ConfigFileName}
		}
		runs = append(runs, RunFiles{Dir: dir, Results: res, Config: cfg})
	}
	return runs, nil
}
