// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/jcilacad/student-rest-api/internal/handler"
	"github.com/jcilacad/student-rest-api/internal/middleware"
)

// NewRouter builds the Echo instance: global error handler, the
// middleware chain in execution order, and all route registrations.
//
// Middleware order matters:
//  1. New Relic transaction start (so later middleware can read the txn)
//  2. Request ID assignment
//  3. Context enhancement (request-scoped logger)
//  4. Request logging
//  5. Panic recovery
//  6. CORS + secure headers
//  7. Tracing enrichment (attributes + error noticing)
func NewRouter(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Tracing.EnhanceTracing())

	registerSystemRoutes(e, h)
	registerStudentRoutes(e, h)

	return e
}
