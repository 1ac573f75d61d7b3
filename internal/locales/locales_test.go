package locales

import (
	"testing"

	"client_intake_backend/internal/validation"

	"github.com/stretchr/testify/suite"
)

type LocalesSuite struct {
	suite.Suite
}

func TestLocalesSuite(t *testing.T) {
	suite.Run(t, new(LocalesSuite))
}

func (s *LocalesSuite) TestGetFallsBackToFrench() {
	s.Equal("fr", Get("fr").Code)
	s.Equal("en", Get("en").Code)
	s.Equal("fr", Get("").Code)
	s.Equal("fr", Get("de").Code)
}

// TestEveryValidatorKeyResolved: each stable error key must have a
// message and a label in both locales, so no raw key ever renders.
func (s *LocalesSuite) TestEveryValidatorKeyResolved() {
	keys := []string{
		validation.KeyFullName,
		validation.KeyEmail,
		validation.KeyPhone,
		validation.KeyBirthDate,
		validation.KeyAddress,
	}
	for _, code := range []string{"fr", "en"} {
		loc := Get(code)
		for _, key := range keys {
			s.NotEmpty(loc.Labels[key], "%s label %s", code, key)
			s.NotEmpty(loc.Messages[key], "%s message %s", code, key)
		}
		for _, key := range []string{MsgSuccess, MsgCSRFInvalid, MsgEmailExists, MsgStorage} {
			s.NotEmpty(loc.Messages[key], "%s message %s", code, key)
		}
	}
}
