package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcilacad/student-rest-api/internal/models"
)

// StudentRepository is the storage-access contract for student rows.
//
// Lookup methods return (nil, nil) when no row matches: absence is not
// an error at this layer, the boundary decides what a missing row
// means. DeleteByID is a no-op for ids that were never assigned.
type StudentRepository interface {
	// Save inserts the student when it has no id yet (the id comes back
	// populated from the sequence) and overwrites the matching row
	// otherwise.
	Save(ctx context.Context, student *models.Student) (*models.Student, error)

	// FindAll returns every stored student; ordering is not part of the
	// contract.
	FindAll(ctx context.Context) ([]models.Student, error)

	// FindByID returns the matching student or (nil, nil).
	FindByID(ctx context.Context, id int64) (*models.Student, error)

	// DeleteByID removes the row if present; absent ids are not an error.
	DeleteByID(ctx context.Context, id int64) error

	// FindByEmail is an exact-match lookup on the unique email column.
	FindByEmail(ctx context.Context, email string) (*models.Student, error)

	// FindByName is an exact match on both name columns and returns a
	// single row. Behavior is undefined when several students share the
	// same full name.
	FindByName(ctx context.Context, firstName, lastName string) (*models.Student, error)
}

// PostgresStudentRepository implements StudentRepository against the
// pgx connection pool.
type PostgresStudentRepository struct {
	pool *pgxpool.Pool
}

// compile-time interface check
var _ StudentRepository = (*PostgresStudentRepository)(nil)

func NewPostgresStudentRepository(pool *pgxpool.Pool) *PostgresStudentRepository {
	return &PostgresStudentRepository{pool: pool}
}

func (r *PostgresStudentRepository) Save(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student.ID == 0 {
		err := r.pool.QueryRow(ctx,
			`INSERT INTO students (first_name, last_name, email)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			student.FirstName, student.LastName, student.Email,
		).Scan(&student.ID)
		if err != nil {
			return nil, fmt.Errorf("inserting student: %w", err)
		}
		return student, nil
	}

	_, err := r.pool.Exec(ctx,
		`UPDATE students
		 SET first_name = $1, last_name = $2, email = $3
		 WHERE id = $4`,
		student.FirstName, student.LastName, student.Email, student.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating student %d: %w", student.ID, err)
	}
	return student, nil
}

func (r *PostgresStudentRepository) FindAll(ctx context.Context) ([]models.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name, email FROM students`)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email); err != nil {
			return nil, fmt.Errorf("scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating student rows: %w", err)
	}

	return students, nil
}

func (r *PostgresStudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.findOne(ctx,
		`SELECT id, first_name, last_name, email FROM students WHERE id = $1`,
		id)
}

func (r *PostgresStudentRepository) DeleteByID(ctx context.Context, id int64) error {
	// Exec reports rows affected, but deleting an absent id is a no-op
	// by contract, so the count is not inspected.
	_, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting student %d: %w", id, err)
	}
	return nil
}

func (r *PostgresStudentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.findOne(ctx,
		`SELECT id, first_name, last_name, email FROM students WHERE email = $1`,
		email)
}

func (r *PostgresStudentRepository) FindByName(ctx context.Context, firstName, lastName string) (*models.Student, error) {
	return r.findOne(ctx,
		`SELECT id, first_name, last_name, email FROM students
		 WHERE first_name = $1 AND last_name = $2`,
		firstName, lastName)
}

// findOne runs a single-row lookup and translates pgx.ErrNoRows into
// the (nil, nil) absence contract.
func (r *PostgresStudentRepository) findOne(ctx context.Context, sql string, args ...any) (*models.Student, error) {
	var s models.Student
	err := r.pool.QueryRow(ctx, sql, args...).
		Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying student: %w", err)
	}
	return &s, nil
}
