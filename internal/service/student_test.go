package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jcilacad/student-rest-api/internal/errs"
	"github.com/jcilacad/student-rest-api/internal/models"
	"github.com/jcilacad/student-rest-api/internal/repository"
)

type StudentServiceSuite struct {
	suite.Suite
	svc *StudentService
	ctx context.Context
}

func (s *StudentServiceSuite) SetupTest() {
	s.svc = NewStudentService(repository.NewInMemoryStudentRepository())
	s.ctx = context.Background()
}

func TestStudentServiceSuite(t *testing.T) {
	suite.Run(t, new(StudentServiceSuite))
}

func (s *StudentServiceSuite) create(first, last, email string) *models.Student {
	created, err := s.svc.Create(s.ctx, &models.Student{
		FirstName: first,
		LastName:  last,
		Email:     email,
	})
	s.Require().NoError(err)
	return created
}

func (s *StudentServiceSuite) TestCreate() {
	s.Run("assigns an id from the sequence start", func() {
		created := s.create("Ada", "Lovelace", "ada@example.com")
		s.Equal(int64(100), created.ID)
	})

	s.Run("rejects a duplicate email with a 400", func() {
		_, err := s.svc.Create(s.ctx, &models.Student{
			FirstName: "Other",
			LastName:  "Person",
			Email:     "ada@example.com",
		})
		s.Require().Error(err)

		var httpErr *errs.HTTPError
		s.Require().ErrorAs(err, &httpErr)
		s.Equal(400, httpErr.Status)
		s.Equal("STUDENT_ALREADY_EXISTS", httpErr.Code)
		s.Equal("Student already exists with email: ada@example.com", httpErr.Message)
	})
}

func (s *StudentServiceSuite) TestList() {
	students, err := s.svc.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(students)

	s.create("Ada", "Lovelace", "ada@example.com")
	s.create("Alan", "Turing", "alan@example.com")

	students, err = s.svc.List(s.ctx)
	s.Require().NoError(err)
	s.Len(students, 2)
}

func (s *StudentServiceSuite) TestGetByID() {
	created := s.create("Ada", "Lovelace", "ada@example.com")

	s.Run("returns the student when present", func() {
		found, err := s.svc.GetByID(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal(created.Email, found.Email)
	})

	s.Run("returns (nil, nil) when absent", func() {
		found, err := s.svc.GetByID(s.ctx, 9999)
		s.Require().NoError(err)
		s.Nil(found)
	})
}

func (s *StudentServiceSuite) TestUpdate() {
	created := s.create("Ada", "Lovelace", "ada@example.com")

	created.FirstName = "Augusta"
	created.Email = "augusta@example.com"

	updated, err := s.svc.Update(s.ctx, created)
	s.Require().NoError(err)
	s.Equal(created.ID, updated.ID)

	found, err := s.svc.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Augusta", found.FirstName)
	s.Equal("augusta@example.com", found.Email)
}

func (s *StudentServiceSuite) TestDeleteByID() {
	created := s.create("Ada", "Lovelace", "ada@example.com")

	s.Require().NoError(s.svc.DeleteByID(s.ctx, created.ID))

	found, err := s.svc.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Nil(found)

	// deleting again is still not an error
	s.Require().NoError(s.svc.DeleteByID(s.ctx, created.ID))
}
