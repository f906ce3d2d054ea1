package repository

import (
	"github.com/jcilacad/student-rest-api/internal/server"
)

// Repositories is the container for all repository instances, wired
// once at startup and passed to the service layer.
type Repositories struct {
	Student StudentRepository
}

// NewRepositories constructs the repository container against the
// server's database pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Student: NewPostgresStudentRepository(s.DB.Pool),
	}
}
