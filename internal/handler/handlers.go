// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the
// validation package, and calls the appropriate service layer.
// It acts as the interface between the HTTP request and the core
// business logic.
package handler

import (
	"github.com/jcilacad/student-rest-api/internal/server"
	"github.com/jcilacad/student-rest-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Student *StudentHandler // Student serves the /api/v1/students endpoints.
	Health  *HealthHandler  // Health serves service health endpoints (liveness/readiness).
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Student: NewStudentHandler(s, services.Student),
		Health:  NewHealthHandler(s),
	}
}
