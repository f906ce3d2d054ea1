// Package logger configures the application's logging and
// observability.
//
// It uses zerolog for structured logging and optionally wires the New
// Relic agent: when a license key is configured, application logs are
// forwarded through the logcontext zerolog writer and trace ids are
// attached to request-scoped loggers.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/jcilacad/student-rest-api/internal/config"
)

// LoggerService owns the application logger and, when configured, the
// New Relic application instance. A nil agent is a valid state: every
// consumer guards GetApplication() against nil.
type LoggerService struct {
	logger zerolog.Logger
	nrApp  *newrelic.Application
}

// NewLoggerService builds the main logger and initializes the New
// Relic agent when a license key is present.
//
// Log output:
//   - "console" format: human-readable console writer
//   - "json" format: plain JSON, or the New Relic forwarding writer
//     when the agent is active and log forwarding is enabled
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	obs := cfg.Observability

	level, err := zerolog.ParseLevel(obs.GetLogLevel())
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	var nrApp *newrelic.Application
	if obs.NewRelic.LicenseKey != "" {
		opts := []newrelic.ConfigOption{
			newrelic.ConfigAppName(obs.ServiceName),
			newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
			newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
			newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
		}
		if obs.NewRelic.DebugLogging {
			opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
		}

		nrApp, err = newrelic.NewApplication(opts...)
		if err != nil {
			return nil, fmt.Errorf("initializing new relic application: %w", err)
		}
	}

	var out io.Writer = os.Stdout
	switch {
	case obs.Logging.Format == "console":
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	case nrApp != nil && obs.NewRelic.AppLogForwardingEnabled:
		w := zerologWriter.New(os.Stdout, nrApp)
		out = &w
	}

	log := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", obs.ServiceName).
		Logger()

	return &LoggerService{
		logger: log,
		nrApp:  nrApp,
	}, nil
}

// Logger returns the application logger.
func (ls *LoggerService) Logger() *zerolog.Logger {
	return &ls.logger
}

// GetApplication returns the New Relic application, or nil when the
// agent is not configured.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.nrApp
}

// Shutdown flushes pending telemetry. It blocks at most timeout.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if ls.nrApp != nil {
		ls.nrApp.Shutdown(timeout)
	}
}

// WithTraceContext returns a child logger carrying the transaction's
// trace and span ids, so request logs correlate with distributed
// traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}
	md := txn.GetLinkingMetadata()
	return log.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}

// NewPgxLogger builds the logger used for SQL query tracing in the
// local environment. Console output keeps queries readable during
// development.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel converts a zerolog level into the pgx tracelog
// level driving how much SQL detail is emitted.
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6 // tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return 5 // tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return 4 // tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return 3 // tracelog.LogLevelWarn
	default:
		return 2 // tracelog.LogLevelError
	}
}
