// Package validation holds the per-field rules for intake form
// submissions. The same rules are mirrored by the browser script; the
// server side is authoritative. Validators are pure and return stable
// error keys that the locale tables resolve into display messages.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Stable error keys, shared with the client script and the locale tables.
const (
	KeyFullName  = "fullname"
	KeyEmail     = "email"
	KeyPhone     = "phone"
	KeyBirthDate = "birthdate"
	KeyAddress   = "address"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Local numbers start with 6, the international form with the 2376
	// prefix. The separate 9..12 length bound is kept as a second check
	// on purpose, matching the historical rule, even though every regex
	// match already falls inside it (9 and 12 characters respectively).
	phoneRegex = regexp.MustCompile(`^(6\d{8}|2376\d{8})$`)
)

// Fields is the raw form input handed to the validators, untrimmed.
type Fields struct {
	FullName  string
	Email     string
	Phone     string
	BirthDate string
	Address   string
}

// FullName requires a trimmed length between 3 and 50 characters.
func FullName(s string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= 3 && n <= 50
}

// Email requires a basic local@domain.tld shape.
func Email(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// Phone requires the local or international pattern and a trimmed
// length between 9 and 12 characters.
func Phone(s string) bool {
	p := strings.TrimSpace(s)
	return phoneRegex.MatchString(p) && len(p) >= 9 && len(p) <= 12
}

// BirthDate requires a parseable YYYY-MM-DD date strictly before the
// current day; today itself fails.
func BirthDate(s string, now time.Time) bool {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}

// Address requires a trimmed length of at least 3 characters.
func Address(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= 3
}

// Validate runs every field validator with no short-circuit and returns
// the failing error keys in form order, so the user sees all problems
// at once. An empty result means the submission passed.
func Validate(f Fields, now time.Time) []string {
	var keys []string
	if !FullName(f.FullName) {
		keys = append(keys, KeyFullName)
	}
	if !Email(f.Email) {
		keys = append(keys, KeyEmail)
	}
	if !Phone(f.Phone) {
		keys = append(keys, KeyPhone)
	}
	if !BirthDate(f.BirthDate, now) {
		keys = append(keys, KeyBirthDate)
	}
	if !Address(f.Address) {
		keys = append(keys, KeyAddress)
	}
	return keys
}
