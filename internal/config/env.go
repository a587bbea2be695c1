package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// envOverride maps an environment key (without EnvPrefix) to the flag it
// shadows and a function applying its value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

var envOverrides = []envOverride{
	{"EXPERIMENTS_FOLDER", "experiments-folder", func(c *AppConfig, v string) {
		c.ExperimentsFolder = v
	}},
	{"BASELINE_FOLDER", "baseline-folder", func(c *AppConfig, v string) {
		c.BaselineFolder = v
	}},
	{"LOG_LEVEL", "log-level", func(c *AppConfig, v string) {
		c.LogLevel = v
	}},
	{"LOG_FORMAT", "log-format", func(c *AppConfig, v string) {
		c.LogFormat = v
	}},
	{"METRICS_FILE", "metrics-file", func(c *AppConfig, v string) {
		c.MetricsFile = v
	}},
	{"WORKERS", "workers", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}},
	{"NO_COLOR", "no-color", func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"INTERACTIVE", "interactive", func(c *AppConfig, v string) {
		c.Interactive = parseBoolEnv(v, c.Interactive)
	}},
}

// parseBoolEnv accepts "true", "1", "yes" and "false", "0", "no" in any
// case, and returns defaultVal for anything else.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides copies non-empty environment values into config for
// every flag that was not set explicitly.
func applyEnvOverrides(config *AppConfig, fs *pflag.FlagSet) {
	for _, o := range envOverrides {
		if fs != nil && fs.Changed(o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
