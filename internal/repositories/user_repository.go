package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"client_intake_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// UserRepository is the persistence store for accepted submissions.
// The backend (file or relational) is selected at process start, never
// per request.
type UserRepository interface {
	// CreateUser durably appends an accepted record and returns it with
	// its assigned ID. Returns ErrDuplicateKey when the email is taken.
	CreateUser(user *models.User) (*models.User, error)
	// GetUserByEmail returns the stored record for an email, or
	// ErrNotFound.
	GetUserByEmail(email string) (*models.User, error)
	// GetUsers returns every stored record in insertion order.
	GetUsers() ([]models.User, error)
}

type postgresUserRepository struct {
	db SQLExecutor
}

// NewPostgresUserRepository creates the relational UserRepository over
// the users table. The executor may be a *sql.DB pool or a *sql.Tx, so
// the same repository runs inside or outside a transaction.
func NewPostgresUserRepository(db SQLExecutor) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) CreateUser(user *models.User) (*models.User, error) {
	query := `INSERT INTO users (fullname, email, phone, birthdate, address, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	err := r.db.QueryRow(query,
		user.FullName, user.Email, user.Phone, user.BirthDate, user.Address, user.CreatedAt,
	).Scan(&user.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return nil, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
			}
		}
		return nil, fmt.Errorf("%w: creating user: %v", ErrStorage, err)
	}
	return user, nil
}

func (r *postgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, fullname, email, phone, birthdate, address, created_at
	          FROM users WHERE email = $1`

	var birthDate time.Time
	err := r.db.QueryRow(query, email).Scan(
		&user.ID, &user.FullName, &user.Email, &user.Phone, &birthDate, &user.Address, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting user by email %s: %v", ErrStorage, email, err)
	}
	user.BirthDate = birthDate.Format(models.BirthDateLayout)
	return user, nil
}

func (r *postgresUserRepository) GetUsers() ([]models.User, error) {
	users := []models.User{}
	query := `SELECT id, fullname, email, phone, birthdate, address, created_at
	          FROM users ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying users: %v", ErrStorage, err)
	}
	defer rows.Close()

	for rows.Next() {
		var user models.User
		var birthDate time.Time
		if err := rows.Scan(
			&user.ID, &user.FullName, &user.Email, &user.Phone, &birthDate, &user.Address, &user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning user: %v", ErrStorage, err)
		}
		user.BirthDate = birthDate.Format(models.BirthDateLayout)
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating user rows: %v", ErrStorage, err)
	}
	return users, nil
}
