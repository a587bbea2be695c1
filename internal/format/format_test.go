package format

import (
	"fmt"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/inferbench/inference-report/internal/report"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   report.Value
		want string
	}{
		{"one", report.Number(1.0), "1.00"},
		{"just below one", report.Number(0.999), "9.99e-01"},
		{"large", report.Number(1234.5678), "1234.57"},
		{"small", report.Number(0.000123), "1.23e-04"},
		{"zero", report.Number(0), "0.00e+00"},
		{"negative", report.Number(-2.5), "-2.50e+00"},
		{"true", report.Bool(true), "✔"},
		{"false", report.Bool(false), "✘"},
		{"missing", report.Missing(), ""},
		{"integer", report.Integer(1024), "1024"},
		{"text", report.Text("pytorch"), "pytorch"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatValue(tt.in); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatValueBoundaryProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("values >= 1 use fixed notation with two decimals", prop.ForAll(
		func(f float64) bool {
			return FormatValue(report.Number(f)) == strconv.FormatFloat(f, 'f', 2, 64)
		},
		gen.Float64Range(1, 1e9),
	))

	properties.Property("values in (0, 1) use scientific notation", prop.ForAll(
		func(f float64) bool {
			return FormatValue(report.Number(f)) == fmt.Sprintf("%.2e", f)
		},
		gen.Float64Range(math.SmallestNonzeroFloat64, math.Nextafter(1, 0)),
	))

	properties.TestingRun(t)
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
	}
	for _, tt := range tests {
		tt := tt
		if got := FormatExecutionDuration(tt.in); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
