package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"

	"github.com/jcilacad/student-rest-api/internal/models"
)

type StudentMemoryRepositorySuite struct {
	suite.Suite
	repo *InMemoryStudentRepository
	ctx  context.Context
}

func (s *StudentMemoryRepositorySuite) SetupTest() {
	s.repo = NewInMemoryStudentRepository()
	s.ctx = context.Background()
}

func TestStudentMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(StudentMemoryRepositorySuite))
}

func (s *StudentMemoryRepositorySuite) newStudent(first, last, email string) *models.Student {
	return &models.Student{
		FirstName: first,
		LastName:  last,
		Email:     email,
	}
}

// TestSaveAssignsIDs verifies ids come from the sequence: the first
// insert gets 100, subsequent inserts ascend.
func (s *StudentMemoryRepositorySuite) TestSaveAssignsIDs() {
	first, err := s.repo.Save(s.ctx, s.newStudent("Ada", "Lovelace", "ada@example.com"))
	s.Require().NoError(err)
	s.Equal(int64(100), first.ID)

	second, err := s.repo.Save(s.ctx, s.newStudent("Alan", "Turing", "alan@example.com"))
	s.Require().NoError(err)
	s.Equal(int64(101), second.ID)
}

// TestUniqueEmail verifies the emulated unique constraint: inserting a
// second student with the same email surfaces a 23505 driver error.
func (s *StudentMemoryRepositorySuite) TestUniqueEmail() {
	_, err := s.repo.Save(s.ctx, s.newStudent("Ada", "Lovelace", "ada@example.com"))
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, s.newStudent("Other", "Person", "ada@example.com"))
	s.Require().Error(err)

	var pgErr *pgconn.PgError
	s.Require().ErrorAs(err, &pgErr)
	s.Equal("23505", pgErr.Code)
	s.Equal("students", pgErr.TableName)
}

func (s *StudentMemoryRepositorySuite) TestLookups() {
	saved, err := s.repo.Save(s.ctx, s.newStudent("Ada", "Lovelace", "ada@example.com"))
	s.Require().NoError(err)

	s.Run("finds by id", func() {
		found, err := s.repo.FindByID(s.ctx, saved.ID)
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal("ada@example.com", found.Email)
	})

	s.Run("absence is (nil, nil)", func() {
		found, err := s.repo.FindByID(s.ctx, 9999)
		s.Require().NoError(err)
		s.Nil(found)
	})

	s.Run("finds by email", func() {
		found, err := s.repo.FindByEmail(s.ctx, "ada@example.com")
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal(saved.ID, found.ID)

		missing, err := s.repo.FindByEmail(s.ctx, "nobody@example.com")
		s.Require().NoError(err)
		s.Nil(missing)
	})

	s.Run("finds by name", func() {
		found, err := s.repo.FindByName(s.ctx, "Ada", "Lovelace")
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal(saved.ID, found.ID)
	})
}

func (s *StudentMemoryRepositorySuite) TestFindAll() {
	all, err := s.repo.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)

	_, err = s.repo.Save(s.ctx, s.newStudent("Ada", "Lovelace", "ada@example.com"))
	s.Require().NoError(err)
	_, err = s.repo.Save(s.ctx, s.newStudent("Alan", "Turing", "alan@example.com"))
	s.Require().NoError(err)

	all, err = s.repo.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *StudentMemoryRepositorySuite) TestUpdate() {
	saved, err := s.repo.Save(s.ctx, s.newStudent("Ada", "Lovelace", "ada@example.com"))
	s.Require().NoError(err)

	saved.FirstName = "Augusta"
	updated, err := s.repo.Save(s.ctx, saved)
	s.Require().NoError(err)
	s.Equal(saved.ID, updated.ID)

	found, err := s.repo.FindByID(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.Equal("Augusta", found.FirstName)
}

// TestDeleteIsIdempotent verifies deleting an unknown id is not an
// error, matching DELETE semantics at the HTTP layer.
func (s *StudentMemoryRepositorySuite) TestDeleteIsIdempotent() {
	saved, err := s.repo.Save(s.ctx, s.newStudent("Ada", "Lovelace", "ada@example.com"))
	s.Require().NoError(err)

	s.Require().NoError(s.repo.DeleteByID(s.ctx, saved.ID))

	found, err := s.repo.FindByID(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.Nil(found)

	s.Require().NoError(s.repo.DeleteByID(s.ctx, saved.ID))
}
