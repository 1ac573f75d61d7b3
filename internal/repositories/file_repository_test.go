package repositories

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"client_intake_backend/internal/models"

	"github.com/stretchr/testify/suite"
)

type FileRepositorySuite struct {
	suite.Suite
	dir  string
	repo UserRepository
}

func TestFileRepositorySuite(t *testing.T) {
	suite.Run(t, new(FileRepositorySuite))
}

func (s *FileRepositorySuite) SetupTest() {
	s.dir = s.T().TempDir()
	repo, err := NewFileRepository(s.dir)
	s.Require().NoError(err)
	s.repo = repo
}

func (s *FileRepositorySuite) user(email string) *models.User {
	return &models.User{
		FullName:  "Jane Doe",
		Email:     email,
		Phone:     "612345678",
		BirthDate: "1990-01-01",
		Address:   "123 Main St",
		CreatedAt: time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
	}
}

// TestRoundTrip writes records and reads them back unchanged, with
// positional IDs assigned in insertion order.
func (s *FileRepositorySuite) TestRoundTrip() {
	first, err := s.repo.CreateUser(s.user("jane@example.com"))
	s.Require().NoError(err)
	s.Equal(int64(1), first.ID)

	second := s.user("john@example.com")
	second.FullName = "John Doe"
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	_, err = s.repo.CreateUser(second)
	s.Require().NoError(err)

	users, err := s.repo.GetUsers()
	s.Require().NoError(err)
	s.Require().Len(users, 2)

	s.Equal(int64(1), users[0].ID)
	s.Equal("Jane Doe", users[0].FullName)
	s.Equal("jane@example.com", users[0].Email)
	s.Equal("612345678", users[0].Phone)
	s.Equal("1990-01-01", users[0].BirthDate)
	s.Equal("123 Main St", users[0].Address)
	s.True(users[0].CreatedAt.Equal(time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)))

	s.Equal(int64(2), users[1].ID)
	s.Equal("John Doe", users[1].FullName)

	// created_at monotonic non-decreasing with insertion order.
	s.False(users[1].CreatedAt.Before(users[0].CreatedAt))
}

func (s *FileRepositorySuite) TestGetUserByEmail() {
	_, err := s.repo.GetUserByEmail("jane@example.com")
	s.ErrorIs(err, ErrNotFound)

	_, err = s.repo.CreateUser(s.user("jane@example.com"))
	s.Require().NoError(err)

	found, err := s.repo.GetUserByEmail("jane@example.com")
	s.Require().NoError(err)
	s.Equal("jane@example.com", found.Email)
	s.Equal(int64(1), found.ID)

	// Case-insensitive match.
	found, err = s.repo.GetUserByEmail("Jane@Example.COM")
	s.Require().NoError(err)
	s.Equal("jane@example.com", found.Email)
}

func (s *FileRepositorySuite) TestDuplicateEmailRejected() {
	_, err := s.repo.CreateUser(s.user("jane@example.com"))
	s.Require().NoError(err)

	_, err = s.repo.CreateUser(s.user("jane@example.com"))
	s.ErrorIs(err, ErrDuplicateKey)

	users, err := s.repo.GetUsers()
	s.Require().NoError(err)
	s.Len(users, 1)
}

// TestCSVFile checks the header-once format and field order on disk.
func (s *FileRepositorySuite) TestCSVFile() {
	_, err := s.repo.CreateUser(s.user("jane@example.com"))
	s.Require().NoError(err)
	second := s.user("john@example.com")
	_, err = s.repo.CreateUser(second)
	s.Require().NoError(err)

	f, err := os.Open(filepath.Join(s.dir, "data.csv"))
	s.Require().NoError(err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(rows, 3)

	s.Equal(models.CSVHeader(), rows[0])
	s.Equal("jane@example.com", rows[1][1])
	s.Equal("john@example.com", rows[2][1])
	s.Equal("2024-06-15T10:00:00Z", rows[1][5])
}

// TestCSVFailureIsInconsistentWrite forces the CSV append to fail
// after the JSON write succeeded: the error must be the distinct
// partial-write class, not a plain storage error, and the JSON side
// keeps the record, showing the two files diverged.
func (s *FileRepositorySuite) TestCSVFailureIsInconsistentWrite() {
	s.Require().NoError(os.Mkdir(filepath.Join(s.dir, "data.csv"), 0o775))

	_, err := s.repo.CreateUser(s.user("jane@example.com"))
	s.ErrorIs(err, ErrInconsistentWrite)
	s.NotErrorIs(err, ErrStorage)

	users, err := s.repo.GetUsers()
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal("jane@example.com", users[0].Email)
}

// TestJSONFileIsArray checks data.json stays a single JSON array.
func (s *FileRepositorySuite) TestJSONFileIsArray() {
	_, err := s.repo.CreateUser(s.user("jane@example.com"))
	s.Require().NoError(err)

	content, err := os.ReadFile(filepath.Join(s.dir, "data.json"))
	s.Require().NoError(err)
	s.Equal(byte('['), content[0])
}

func (s *FileRepositorySuite) TestEmptyListBeforeFirstWrite() {
	users, err := s.repo.GetUsers()
	s.Require().NoError(err)
	s.Empty(users)
}

func (s *FileRepositorySuite) TestCorruptJSONIsStorageError() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "data.json"), []byte("{not json"), 0o664))

	_, err := s.repo.GetUsers()
	s.ErrorIs(err, ErrStorage)

	_, err = s.repo.CreateUser(s.user("jane@example.com"))
	s.ErrorIs(err, ErrStorage)
}
