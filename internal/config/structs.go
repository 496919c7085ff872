package config

// Config represents the complete configuration for perfmon.
// It is loaded from configuration files, environment variables, and command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Where timer log lines go
	Sink SinkConfig `mapstructure:"sink" yaml:"sink" json:"sink"`

	// Summary printed after timed runs
	Report ReportConfig `mapstructure:"report" yaml:"report" json:"report"`

	// Prometheus export
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics" json:"metrics"`
}

// SinkConfig selects the timer sink.
type SinkConfig struct {
	// Type is one of stdout, stderr, slog, none.
	Type string `mapstructure:"type" yaml:"type" json:"type"`
}

// ReportConfig contains report formatting settings.
type ReportConfig struct {
	// Format is one of text, table, json, yaml.
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Namespace string `mapstructure:"namespace" yaml:"namespace" json:"namespace"`
	// Textfile is written after a run when set.
	Textfile string `mapstructure:"textfile" yaml:"textfile" json:"textfile"`
}
