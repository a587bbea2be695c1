package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inferbench/inference-report/internal/report"
)

// ReportFileName is the artifact written into the experiments folder.
const ReportFileName = "inference_report.csv"

// WriteReportToFile saves rep as CSV at path, creating parent directories
// as needed.
func WriteReportToFile(path string, rep *report.Report) (err error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report file: %w", cerr)
		}
	}()

	if err := report.WriteCSV(file, rep); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
