package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/jcilacad/student-rest-api/internal/errs"
	"github.com/jcilacad/student-rest-api/internal/models"
	"github.com/jcilacad/student-rest-api/internal/server"
	"github.com/jcilacad/student-rest-api/internal/service"
)

// StudentHandler serves the student CRUD endpoints under /api/v1/students.
type StudentHandler struct {
	Handler
	students *service.StudentService
}

func NewStudentHandler(s *server.Server, students *service.StudentService) *StudentHandler {
	return &StudentHandler{
		Handler:  NewHandler(s),
		students: students,
	}
}

// CreateStudentRequest is the payload for POST /api/v1/students.
type CreateStudentRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

func (r *CreateStudentRequest) Validate() error {
	return validate.Struct(r)
}

// ListStudentsRequest is the (empty) payload for GET /api/v1/students.
type ListStudentsRequest struct{}

func (r *ListStudentsRequest) Validate() error {
	return nil
}

// GetStudentRequest carries the path parameter for GET /api/v1/students/:id.
//
// The id is bound from the path only (json:"-" keeps the body out of
// it) and carries no required rule: 0 is a syntactically valid id that
// was simply never assigned, so it flows through and resolves to 404.
type GetStudentRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *GetStudentRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateStudentRequest is the payload for PUT /api/v1/students/:id.
// The target id comes from the path alone; a body "id" key is ignored
// so the record being addressed can never be switched by the payload.
type UpdateStudentRequest struct {
	ID        int64  `param:"id" json:"-"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

func (r *UpdateStudentRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteStudentRequest carries the path parameter for DELETE /api/v1/students/:id.
type DeleteStudentRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteStudentRequest) Validate() error {
	return validate.Struct(r)
}

// CreateStudent registers a new student. Returns 201 with the stored
// record, id included; a duplicate email is rejected with 400.
func (h *StudentHandler) CreateStudent(c echo.Context, req *CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	return h.students.Create(c.Request().Context(), student)
}

// ListStudents returns every stored student. An empty table yields an
// empty JSON array, not null.
func (h *StudentHandler) ListStudents(c echo.Context, req *ListStudentsRequest) ([]models.Student, error) {
	students, err := h.students.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	if students == nil {
		students = []models.Student{}
	}

	return students, nil
}

// GetStudentByID returns a single student, or 404 when the id is unknown.
func (h *StudentHandler) GetStudentByID(c echo.Context, req *GetStudentRequest) (*models.Student, error) {
	student, err := h.students.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}

	if student == nil {
		return nil, errs.NewNotFoundError(fmt.Sprintf("Student not found with id: %d", req.ID), true, nil)
	}

	return student, nil
}

// UpdateStudent replaces all mutable fields of an existing student.
// Returns 404 when the id is unknown; the id itself never changes.
func (h *StudentHandler) UpdateStudent(c echo.Context, req *UpdateStudentRequest) (*models.Student, error) {
	ctx := c.Request().Context()

	student, err := h.students.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if student == nil {
		return nil, errs.NewNotFoundError(fmt.Sprintf("Student not found with id: %d", req.ID), true, nil)
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email

	return h.students.Update(ctx, student)
}

// DeleteStudent removes a student by id. Deletion is idempotent: a
// missing id still returns the success message.
func (h *StudentHandler) DeleteStudent(c echo.Context, req *DeleteStudentRequest) (string, error) {
	if err := h.students.DeleteByID(c.Request().Context(), req.ID); err != nil {
		return "", err
	}

	return "Student deleted successfully!", nil
}
