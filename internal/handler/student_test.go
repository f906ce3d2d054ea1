package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jcilacad/student-rest-api/internal/config"
	"github.com/jcilacad/student-rest-api/internal/handler"
	"github.com/jcilacad/student-rest-api/internal/middleware"
	"github.com/jcilacad/student-rest-api/internal/models"
	"github.com/jcilacad/student-rest-api/internal/repository"
	"github.com/jcilacad/student-rest-api/internal/router"
	"github.com/jcilacad/student-rest-api/internal/server"
	"github.com/jcilacad/student-rest-api/internal/service"
)

// newTestRouter wires the full HTTP stack (router, middleware chain,
// global error handler, handlers, services) on top of the in-memory
// repository, so tests exercise the same request path production uses
// minus the database.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Observability: config.DefaultObservabilityConfig(),
	}

	log := zerolog.Nop()
	srv := &server.Server{
		Config: cfg,
		Logger: &log,
	}

	repos := &repository.Repositories{
		Student: repository.NewInMemoryStudentRepository(),
	}

	services, err := service.NewServices(srv, repos)
	require.NoError(t, err)

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	return router.NewRouter(handlers, middlewares)
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createStudent(t *testing.T, e *echo.Echo, first, last, email string) models.Student {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/api/v1/students", map[string]string{
		"firstName": first,
		"lastName":  last,
		"email":     email,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var student models.Student
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&student))
	return student
}

func TestCreateStudent(t *testing.T) {
	e := newTestRouter(t)

	student := createStudent(t, e, "Ada", "Lovelace", "ada@example.com")

	require.GreaterOrEqual(t, student.ID, int64(100))
	require.Equal(t, "Ada", student.FirstName)
	require.Equal(t, "Lovelace", student.LastName)
	require.Equal(t, "ada@example.com", student.Email)
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	e := newTestRouter(t)

	createStudent(t, e, "Ada", "Lovelace", "ada@example.com")

	rec := doJSON(t, e, http.MethodPost, "/api/v1/students", map[string]string{
		"firstName": "Other",
		"lastName":  "Person",
		"email":     "ada@example.com",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp struct {
		Timestamp string `json:"timestamp"`
		Message   string `json:"message"`
		Details   string `json:"details"`
		Code      string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	require.NotEmpty(t, errResp.Timestamp)
	require.Equal(t, "Student already exists with email: ada@example.com", errResp.Message)
	require.Equal(t, "uri=/api/v1/students", errResp.Details)
	require.Equal(t, "STUDENT_ALREADY_EXISTS", errResp.Code)

	// the rejected insert must not have added a row
	listRec := doJSON(t, e, http.MethodGet, "/api/v1/students", nil)
	require.Equal(t, http.StatusOK, listRec.Code)

	var students []models.Student
	require.NoError(t, json.NewDecoder(listRec.Body).Decode(&students))
	require.Len(t, students, 1)
}

func TestCreateStudentValidation(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/students", map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp struct {
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
			Error string `json:"error"`
		} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	require.NotEmpty(t, errResp.Errors)
	require.Equal(t, "email", errResp.Errors[0].Field)
}

func TestListStudents(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/api/v1/students", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	createStudent(t, e, "Ada", "Lovelace", "ada@example.com")
	createStudent(t, e, "Alan", "Turing", "alan@example.com")

	rec = doJSON(t, e, http.MethodGet, "/api/v1/students", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var students []models.Student
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&students))
	require.Len(t, students, 2)
}

func TestGetStudentByID(t *testing.T) {
	e := newTestRouter(t)

	created := createStudent(t, e, "Ada", "Lovelace", "ada@example.com")

	rec := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/students/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var student models.Student
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&student))
	require.Equal(t, created, student)
}

func TestGetStudentByIDNotFound(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/api/v1/students/9999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var errResp struct {
		Message string `json:"message"`
		Details string `json:"details"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	require.Equal(t, "Student not found with id: 9999", errResp.Message)
	require.Equal(t, "uri=/api/v1/students/9999", errResp.Details)
}

func TestUpdateStudent(t *testing.T) {
	e := newTestRouter(t)

	created := createStudent(t, e, "Ada", "Lovelace", "ada@example.com")

	rec := doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/v1/students/%d", created.ID), map[string]string{
		"firstName": "Augusta",
		"lastName":  "King",
		"email":     "augusta@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Student
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Augusta", updated.FirstName)
	require.Equal(t, "King", updated.LastName)
	require.Equal(t, "augusta@example.com", updated.Email)
}

func TestUpdateStudentBodyIDIgnored(t *testing.T) {
	e := newTestRouter(t)

	target := createStudent(t, e, "Ada", "Lovelace", "ada@example.com")
	other := createStudent(t, e, "Alan", "Turing", "alan@example.com")

	// an "id" key in the body must not redirect the update away from
	// the student addressed by the path
	rec := doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/v1/students/%d", target.ID), map[string]any{
		"id":        other.ID,
		"firstName": "Augusta",
		"lastName":  "King",
		"email":     "augusta@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Student
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	require.Equal(t, target.ID, updated.ID)
	require.Equal(t, "Augusta", updated.FirstName)

	// the other student is untouched
	getRec := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/students/%d", other.ID), nil)
	require.Equal(t, http.StatusOK, getRec.Code)

	var untouched models.Student
	require.NoError(t, json.NewDecoder(getRec.Body).Decode(&untouched))
	require.Equal(t, other, untouched)
}

func TestUpdateStudentNotFound(t *testing.T) {
	e := newTestRouter(t)

	created := createStudent(t, e, "Ada", "Lovelace", "ada@example.com")

	rec := doJSON(t, e, http.MethodPut, "/api/v1/students/9999", map[string]string{
		"firstName": "Ghost",
		"lastName":  "Writer",
		"email":     "ghost@example.com",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	// storage unchanged
	getRec := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/students/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, getRec.Code)

	var student models.Student
	require.NoError(t, json.NewDecoder(getRec.Body).Decode(&student))
	require.Equal(t, created, student)
}

func TestDeleteStudent(t *testing.T) {
	e := newTestRouter(t)

	created := createStudent(t, e, "Ada", "Lovelace", "ada@example.com")

	rec := doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/students/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `"Student deleted successfully!"`, rec.Body.String())

	getRec := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/students/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, getRec.Code)

	// delete is idempotent
	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/students/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

// id 0 is never assigned (the sequence starts at 100) but it is still
// a well-formed id: lookups resolve to 404 and delete stays a 200
// no-op instead of failing validation.
func TestZeroIDIsNotFoundNotInvalid(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/api/v1/students/0", nil)
	require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	rec = doJSON(t, e, http.MethodDelete, "/api/v1/students/0", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.JSONEq(t, `"Student deleted successfully!"`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/api/v1/courses", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var errResp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	require.Equal(t, "Route not found", errResp.Message)
}
