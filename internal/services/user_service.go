package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"client_intake_backend/internal/models"
	"client_intake_backend/internal/repositories"
	"client_intake_backend/internal/validation"
	"client_intake_backend/pkg/utils"
)

// --- Custom Service Errors for User submissions ---
var (
	ErrSubmissionInvalid = errors.New("submission failed validation")
	ErrEmailExists       = errors.New("email already exists")
)

// --- User DTOs ---

// SubmitUserRequest carries the raw form fields of one submission.
type SubmitUserRequest struct {
	FullName  string `form:"fullname"`
	Email     string `form:"email"`
	Phone     string `form:"phone"`
	BirthDate string `form:"birthdate"` // Format YYYY-MM-DD
	Address   string `form:"address"`
}

// --- UserService Interface ---

// UserService drives a submission from raw input to a stored record
// and reads records back for display.
type UserService interface {
	// SubmitUser validates, checks email uniqueness and persists one
	// submission. On validation failure it returns the failing field
	// keys alongside ErrSubmissionInvalid and persists nothing.
	SubmitUser(req SubmitUserRequest) (*models.User, []string, error)
	ListUsers() ([]models.User, error)
}

// --- userService Implementation ---
type userService struct {
	userRepo repositories.UserRepository
	now      func() time.Time
}

// NewUserService creates a new instance of UserService over the
// configured repository backend.
func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{userRepo: repo, now: time.Now}
}

// SubmitUser walks the pipeline Received -> Validated ->
// UniquenessChecked -> Persisted. Validation findings accumulate
// across all fields; duplicate email and storage failures abort. There
// are no retries: a transient store failure is reported to the caller,
// who resubmits the form.
func (s *userService) SubmitUser(req SubmitUserRequest) (*models.User, []string, error) {
	now := s.now()

	fieldKeys := validation.Validate(validation.Fields{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Address:   req.Address,
	}, now)
	if len(fieldKeys) > 0 {
		utils.LogDebug("Submission rejected by validation", map[string]interface{}{"fields": fieldKeys})
		return nil, fieldKeys, ErrSubmissionInvalid
	}
	utils.LogDebug("Submission validated")

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Explicit pre-insert check so the user gets a field message; the
	// backend's own uniqueness enforcement remains as backstop.
	_, err := s.userRepo.GetUserByEmail(email)
	if err == nil {
		utils.LogDebug("Submission rejected: duplicate email")
		return nil, nil, ErrEmailExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, nil, fmt.Errorf("checking email uniqueness: %w", err)
	}

	user := &models.User{
		FullName:  strings.TrimSpace(req.FullName),
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		BirthDate: strings.TrimSpace(req.BirthDate),
		Address:   strings.TrimSpace(req.Address),
		CreatedAt: now.UTC(),
	}

	stored, err := s.userRepo.CreateUser(user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, nil, ErrEmailExists
		}
		return nil, nil, fmt.Errorf("persisting submission: %w", err)
	}
	utils.LogInfo("Submission persisted", map[string]interface{}{"email": stored.Email, "id": stored.ID})
	return stored, nil, nil
}

func (s *userService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.GetUsers()
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}
