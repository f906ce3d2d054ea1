package repository

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jcilacad/student-rest-api/internal/models"
)

// firstStudentID mirrors the students_seq start value.
const firstStudentID = 100

// InMemoryStudentRepository is a map-backed StudentRepository used in
// tests. It assigns ids from the same starting point as the database
// sequence and emulates the students_email_key unique constraint by
// returning the same *pgconn.PgError shape the driver would, so the
// sqlerr translation path is exercised without a database.
type InMemoryStudentRepository struct {
	mu       sync.RWMutex
	students map[int64]models.Student
	nextID   int64
}

var _ StudentRepository = (*InMemoryStudentRepository)(nil)

func NewInMemoryStudentRepository() *InMemoryStudentRepository {
	return &InMemoryStudentRepository{
		students: make(map[int64]models.Student),
		nextID:   firstStudentID,
	}
}

// uniqueEmailViolation mimics the server error raised by the
// students_email_key constraint.
func uniqueEmailViolation() *pgconn.PgError {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "students_email_key"`,
		TableName:      "students",
		ConstraintName: "students_email_key",
	}
}

func (r *InMemoryStudentRepository) Save(_ context.Context, student *models.Student) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.students {
		if existing.Email == student.Email && id != student.ID {
			return nil, uniqueEmailViolation()
		}
	}

	if student.ID == 0 {
		student.ID = r.nextID
		r.nextID++
	}
	r.students[student.ID] = *student

	return student, nil
}

func (r *InMemoryStudentRepository) FindAll(_ context.Context) ([]models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	students := make([]models.Student, 0, len(r.students))
	for _, s := range r.students {
		students = append(students, s)
	}
	return students, nil
}

func (r *InMemoryStudentRepository) FindByID(_ context.Context, id int64) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.students[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *InMemoryStudentRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.students, id)
	return nil
}

func (r *InMemoryStudentRepository) FindByEmail(_ context.Context, email string) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.students {
		if s.Email == email {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *InMemoryStudentRepository) FindByName(_ context.Context, firstName, lastName string) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.students {
		if s.FirstName == firstName && s.LastName == lastName {
			return &s, nil
		}
	}
	return nil, nil
}
