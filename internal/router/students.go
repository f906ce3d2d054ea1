package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jcilacad/student-rest-api/internal/handler"
)

// registerStudentRoutes registers the student CRUD endpoints under
// /api/v1/students.
func registerStudentRoutes(r *echo.Echo, h *handler.Handlers) {
	students := r.Group("/api/v1/students")

	students.POST("", handler.Handle(h.Student.Handler, h.Student.CreateStudent, http.StatusCreated))
	students.GET("", handler.Handle(h.Student.Handler, h.Student.ListStudents, http.StatusOK))
	students.GET("/:id", handler.Handle(h.Student.Handler, h.Student.GetStudentByID, http.StatusOK))
	students.PUT("/:id", handler.Handle(h.Student.Handler, h.Student.UpdateStudent, http.StatusOK))
	students.DELETE("/:id", handler.Handle(h.Student.Handler, h.Student.DeleteStudent, http.StatusOK))
}
