// Package errs defines the application error types and the uniform
// error body returned to clients.
//
// The service layer raises *HTTPError values for the two domain
// failure kinds (not-found, duplicate email); the router's global
// error handler is the only place they become HTTP status codes and
// ErrorResponse bodies.
package errs
