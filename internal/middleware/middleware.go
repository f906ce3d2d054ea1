// Package middleware holds the Echo middleware used by every route:
// request correlation, request-scoped logging, request logging,
// recovery, security headers, CORS, New Relic tracing, and the global
// error handler that turns application errors into HTTP responses.
package middleware
