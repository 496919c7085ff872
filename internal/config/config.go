package config

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/MeKo-Tech/perfmon/internal/metrics"
	"github.com/MeKo-Tech/perfmon/internal/perf"
	"github.com/MeKo-Tech/perfmon/internal/report"
)

// Sink types.
const (
	SinkStdout = "stdout"
	SinkStderr = "stderr"
	SinkSlog   = "slog"
	SinkNone   = "none"
)

var (
	validLogLevels = []string{"debug", "info", "warn", "error"}
	validSinkTypes = []string{SinkStdout, SinkStderr, SinkSlog, SinkNone}
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Sink: SinkConfig{
			Type: SinkStdout,
		},
		Report: ReportConfig{
			Format: string(report.FormatTable),
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: metrics.DefaultNamespace,
		},
	}
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if !slices.Contains(validSinkTypes, c.Sink.Type) {
		return fmt.Errorf("invalid sink type: %s (must be one of: %s)", c.Sink.Type, strings.Join(validSinkTypes, ", "))
	}

	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		return fmt.Errorf("invalid report format: %w", err)
	}

	if c.Metrics.Textfile != "" && !c.Metrics.Enabled {
		return fmt.Errorf("metrics textfile %s requires metrics.enabled", c.Metrics.Textfile)
	}

	return nil
}

// SlogLevel maps the configured log level to slog. Verbose forces debug.
func (c *Config) SlogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ToTimerOptions converts the sink settings into timer options. stdout and
// stderr are the streams used by the stdout and stderr sink types.
func (c *Config) ToTimerOptions(stdout, stderr io.Writer, logger *slog.Logger) []perf.Option {
	switch c.Sink.Type {
	case SinkStderr:
		return []perf.Option{perf.WithSink(perf.WriterSink(stderr))}
	case SinkSlog:
		return []perf.Option{perf.WithSink(perf.SlogSink(logger, slog.LevelInfo))}
	case SinkNone:
		return []perf.Option{perf.WithoutSink()}
	default:
		return []perf.Option{perf.WithSink(perf.WriterSink(stdout))}
	}
}

// ReportFormat returns the parsed report format, falling back to text.
func (c *Config) ReportFormat() report.Format {
	f, err := report.ParseFormat(c.Report.Format)
	if err != nil {
		return report.FormatText
	}
	return f
}
