// Package config defines the command-line configuration of the report tool
// and resolves it from flags, INFERENCE_REPORT_* environment variables and
// defaults, in that order of priority.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	apperrors "github.com/inferbench/inference-report/internal/errors"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "INFERENCE_REPORT_"
	// DefaultExperimentsFolder is the experiments root when none is given.
	DefaultExperimentsFolder = "sweeps/"
	// DefaultLogLevel is the zerolog level used when none is given.
	DefaultLogLevel = "info"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// AppConfig holds the resolved configuration of a run.
type AppConfig struct {
	// ExperimentsFolder is searched recursively for runs.
	ExperimentsFolder string
	// BaselineFolder, when set, must hold exactly one run.
	BaselineFolder string
	// NoColor disables colors in the console table and the browser.
	NoColor bool
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogFormat is "console" or "json".
	LogFormat string
	// MetricsFile, when set, receives Prometheus textfile metrics.
	MetricsFile string
	// Interactive opens the report browser after printing the table.
	Interactive bool
	// Workers bounds concurrent run loading; 0 uses GOMAXPROCS.
	Workers int
	// Completion, when set, names the shell whose completion script is
	// printed instead of running the report.
	Completion string
}

// Default returns the configuration used when nothing is set.
func Default() AppConfig {
	return AppConfig{
		ExperimentsFolder: DefaultExperimentsFolder,
		LogLevel:          DefaultLogLevel,
		LogFormat:         LogFormatConsole,
	}
}

// BindFlags declares every flag on fs, storing values into cfg.
func BindFlags(fs *pflag.FlagSet, cfg *AppConfig) {
	d := Default()
	fs.StringVarP(&cfg.ExperimentsFolder, "experiments-folder", "f", d.ExperimentsFolder, "folder searched recursively for experiment runs")
	fs.StringVarP(&cfg.BaselineFolder, "baseline-folder", "b", "", "folder holding the single baseline run")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&cfg.LogLevel, "log-level", d.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", d.LogFormat, "log format (console, json)")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
	fs.BoolVarP(&cfg.Interactive, "interactive", "i", false, "browse the report in an interactive table")
	fs.IntVar(&cfg.Workers, "workers", 0, "maximum runs loaded concurrently (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.Completion, "completion", "", "print a completion script for the shell (bash, zsh, fish, powershell)")
}

// Resolve applies environment overrides for flags not set on the command
// line and validates the result.
func Resolve(fs *pflag.FlagSet, cfg *AppConfig) error {
	applyEnvOverrides(cfg, fs)
	return cfg.Validate()
}

// Validate checks the configuration for consistency.
func (c AppConfig) Validate() error {
	if strings.TrimSpace(c.ExperimentsFolder) == "" {
		return apperrors.NewConfigError("the experiments folder must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return apperrors.NewConfigError("invalid log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return apperrors.NewConfigError("invalid log format %q (want %s or %s)", c.LogFormat, LogFormatConsole, LogFormatJSON)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers must be >= 0, got %d", c.Workers)
	}
	switch c.Completion {
	case "", "bash", "zsh", "fish", "powershell":
	default:
		return apperrors.NewConfigError("unsupported completion shell %q", c.Completion)
	}
	return nil
}

// Level parses LogLevel.
func (c AppConfig) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}
	if lvl == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("empty log level")
	}
	return lvl, nil
}
