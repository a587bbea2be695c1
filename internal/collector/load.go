package collector

import (
	"fmt"
	"os"

	apperrors "github.com/inferbench/inference-report/internal/errors"
	"github.com/inferbench/inference-report/internal/report"
)

// LoadResults reads a results CSV. The file must hold exactly one data row.
func LoadResults(path string) (*report.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.WrapError(err, "open %s", path)
	}
	defer f.Close()

	rows, err := report.ReadRows(f)
	if err != nil {
		return nil, apperrors.WrapError(err, "parse %s", path)
	}
	if len(rows) != 1 {
		return nil, apperrors.ValidationError{
			Field:   path,
			Message: fmt.Sprintf("expected exactly one result row, found %d", len(rows)),
		}
	}
	return rows[0], nil
}

// LoadConfig reads and flattens a Hydra config file.
func LoadConfig(path string) (*report.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.WrapError(err, "read %s", path)
	}
	rec, err := FlattenYAML(data)
	if err != nil {
		return nil, apperrors.WrapError(err, "parse %s", path)
	}
	return rec, nil
}

// LoadRun joins the config and results of a run into one record. Config
// columns come first; a column present in both keeps the result's value.
// The names of such columns are returned.
func LoadRun(run RunFiles) (rec *report.Record, overridden []string, err error) {
	cfg, err := LoadConfig(run.Config)
	if err != nil {
		return nil, nil, err
	}
	res, err := LoadResults(run.Results)
	if err != nil {
		return nil, nil, err
	}
	overridden = cfg.Merge(res)
	return cfg, overridden, nil
}
