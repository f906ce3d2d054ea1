package service

import (
	"github.com/jcilacad/student-rest-api/internal/repository"
	"github.com/jcilacad/student-rest-api/internal/server"
)

// Services is the container for all service instances.
type Services struct {
	Student *StudentService
}

// NewServices constructs the service container on top of the
// repository container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Student: NewStudentService(repos.Student),
	}, nil
}
