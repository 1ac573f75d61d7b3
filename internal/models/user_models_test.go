package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type UserCodecSuite struct {
	suite.Suite
}

func TestUserCodecSuite(t *testing.T) {
	suite.Run(t, new(UserCodecSuite))
}

func (s *UserCodecSuite) sample() User {
	return User{
		FullName:  "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "612345678",
		BirthDate: "1990-01-01",
		Address:   "123 Main St",
		CreatedAt: time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
	}
}

// TestCSVOrdering pins the header/row field order contract.
func (s *UserCodecSuite) TestCSVOrdering() {
	s.Equal([]string{"fullname", "email", "phone", "birthdate", "address", "created_at"}, CSVHeader())

	row := s.sample().CSVRow()
	s.Require().Len(row, len(CSVHeader()))
	s.Equal("Jane Doe", row[0])
	s.Equal("jane@example.com", row[1])
	s.Equal("612345678", row[2])
	s.Equal("1990-01-01", row[3])
	s.Equal("123 Main St", row[4])
	s.Equal("2024-06-15T10:00:00Z", row[5])
}

// TestCSVRowConvertsToUTC verifies created_at is serialized in UTC.
func (s *UserCodecSuite) TestCSVRowConvertsToUTC() {
	u := s.sample()
	u.CreatedAt = time.Date(2024, 6, 15, 12, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))
	s.Equal("2024-06-15T10:00:00Z", u.CSVRow()[5])
}

// TestJSONShape verifies the JSON keys and that a zero ID is omitted
// for file-backend records.
func (s *UserCodecSuite) TestJSONShape() {
	encoded, err := json.Marshal(s.sample())
	s.Require().NoError(err)

	var decoded map[string]interface{}
	s.Require().NoError(json.Unmarshal(encoded, &decoded))

	for _, key := range []string{"fullname", "email", "phone", "birthdate", "address", "created_at"} {
		s.Contains(decoded, key)
	}
	s.NotContains(decoded, "id")
	s.Equal("2024-06-15T10:00:00Z", decoded["created_at"])

	withID := s.sample()
	withID.ID = 7
	encoded, err = json.Marshal(withID)
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal(encoded, &decoded))
	s.Contains(decoded, "id")
}
