package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/jcilacad/student-rest-api/internal/server"
)

// Middlewares groups all middleware components so router setup passes
// one object around instead of many. Build once, reuse everywhere.
type Middlewares struct {
	// Global holds the middleware applied across the whole API: CORS,
	// request logging, recovery, secure headers, and the global error
	// handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip, trace metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing provides the New Relic middleware and transaction
	// attribute helpers; a no-op when the agent is not configured.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components from the
// application container. When New Relic is not configured nrApp is nil
// and the tracing middleware degrades to a pass-through.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
