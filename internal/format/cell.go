// Package format turns report values and durations into display strings.
package format

import (
	"fmt"

	"github.com/inferbench/inference-report/internal/report"
	"github.com/inferbench/inference-report/internal/ui"
)

// FormatValue renders a report cell for the console table.
//
// Numbers of at least 1 use two decimals and smaller numbers use two-digit
// scientific notation, so 1.0 is "1.00" and 0.999 is "9.99e-01". Booleans
// render as ✔ or ✘, missing values as the empty string, and integers and
// text in their natural form.
func FormatValue(v report.Value) string {
	switch v.Kind() {
	case report.KindNumber:
		f, _ := v.Float()
		if f >= 1.0 {
			return fmt.Sprintf("%.2f", f)
		}
		return fmt.Sprintf("%.2e", f)
	case report.KindBool:
		if b, _ := v.Truth(); b {
			return ui.TrueGlyph
		}
		return ui.FalseGlyph
	case report.KindMissing:
		return ""
	default:
		return v.String()
	}
}
