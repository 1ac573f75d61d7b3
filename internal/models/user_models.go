package models

import "time"

// BirthDateLayout is the wire format for birth dates, both in form input
// and in the persisted files.
const BirthDateLayout = "2006-01-02"

// User represents a client record collected through the intake form.
// BirthDate stays a YYYY-MM-DD string end to end; CreatedAt is captured
// in UTC when the submission is accepted and never changes afterwards.
type User struct {
	ID        int64     `json:"id,omitempty" db:"id"`
	FullName  string    `json:"fullname" db:"fullname"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	BirthDate string    `json:"birthdate" db:"birthdate"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// csvFields fixes the column order shared by the CSV header and every
// data row. CSVHeader and CSVRow must stay in lockstep with it.
var csvFields = []string{"fullname", "email", "phone", "birthdate", "address", "created_at"}

// CSVHeader returns the header row written once, on first append.
func CSVHeader() []string {
	header := make([]string, len(csvFields))
	copy(header, csvFields)
	return header
}

// CSVRow flattens the record into a CSV data row, fields in the same
// order as CSVHeader, dates as ISO-8601.
func (u User) CSVRow() []string {
	return []string{
		u.FullName,
		u.Email,
		u.Phone,
		u.BirthDate,
		u.Address,
		u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
