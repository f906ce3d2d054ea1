package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups logging and telemetry settings. It is
// optional at the root level; DefaultObservabilityConfig fills it in
// when absent.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs and traces. Forced to
	// "student-rest-api" at load time.
	ServiceName string `koanf:"service_name" validate:"required"`

	// Environment labels telemetry by runtime environment.
	Environment string `koanf:"environment" validate:"required"`

	// Logging controls the structured logger.
	Logging LoggingConfig `koanf:"logging" validate:"required"`

	// NewRelic controls APM and log forwarding. An empty license key
	// disables the agent entirely.
	NewRelic NewRelicConfig `koanf:"new_relic"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required"`

	// Format selects "json" or "console" output.
	Format string `koanf:"format" validate:"required"`

	// SlowQueryThreshold flags SQL statements slower than this duration
	// in the local query log.
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig holds the New Relic agent settings.
type NewRelicConfig struct {
	// LicenseKey is the ingest key; empty means "not configured" and the
	// agent is skipped.
	LicenseKey string `koanf:"license_key"`

	AppLogForwardingEnabled   bool `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool `koanf:"debug_logging"`
}

// DefaultObservabilityConfig provides the defaults used when no
// observability block is configured: info-level JSON logs, New Relic
// off.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: "student-rest-api",
		Environment: "development",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},
		NewRelic: NewRelicConfig{
			LicenseKey:                "",
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false,
		},
	}
}

// Validate applies rules that go beyond struct tags.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	return nil
}

// GetLogLevel returns the effective log level, defaulting by
// environment when unset: info in production, debug in development.
func (c *ObservabilityConfig) GetLogLevel() string {
	switch c.Environment {
	case "production":
		if c.Logging.Level == "" {
			return "info"
		}
	case "development":
		if c.Logging.Level == "" {
			return "debug"
		}
	}
	return c.Logging.Level
}

// IsProduction reports whether the service runs in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}
