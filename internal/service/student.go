package service

import (
	"context"
	"fmt"

	"github.com/jcilacad/student-rest-api/internal/errs"
	"github.com/jcilacad/student-rest-api/internal/models"
	"github.com/jcilacad/student-rest-api/internal/repository"
)

// duplicateEmailCode is the machine-readable code for the
// duplicate-email failure. It matches the code sqlerr derives from the
// students_email_key constraint, so both detection paths look the same
// to clients.
const duplicateEmailCode = "STUDENT_ALREADY_EXISTS"

// StudentService orchestrates student CRUD on top of the repository.
type StudentService struct {
	students repository.StudentRepository
}

func NewStudentService(students repository.StudentRepository) *StudentService {
	return &StudentService{students: students}
}

// Create stores a new student after checking that no other student
// uses the same email. The check is read-then-write; under a race the
// unique constraint on the email column rejects the second insert and
// sqlerr translates it to the same 400.
func (s *StudentService) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	existing, err := s.students.FindByEmail(ctx, student.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		code := duplicateEmailCode
		return nil, errs.NewBadRequestError(
			fmt.Sprintf("Student already exists with email: %s", student.Email),
			true, &code, nil)
	}

	return s.students.Save(ctx, student)
}

// List returns every stored student, order unspecified.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return s.students.FindAll(ctx)
}

// GetByID returns the matching student, or (nil, nil) when the id was
// never assigned. The handler decides what absence means for its
// response; this layer carries no HTTP concerns.
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.FindByID(ctx, id)
}

// Update overwrites the stored row unconditionally. The caller is
// expected to have fetched and merged the existing record; email
// uniqueness is not re-checked here, but the unique constraint still
// rejects collisions at the storage layer.
func (s *StudentService) Update(ctx context.Context, student *models.Student) (*models.Student, error) {
	return s.students.Save(ctx, student)
}

// DeleteByID removes the student if present. Deleting an id that does
// not exist is not an error.
func (s *StudentService) DeleteByID(ctx context.Context, id int64) error {
	return s.students.DeleteByID(ctx, id)
}
