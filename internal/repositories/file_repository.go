package repositories

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"client_intake_backend/internal/models"

	"github.com/gofrs/flock"
)

const (
	jsonFileName = "data.json"
	csvFileName  = "data.csv"
)

// fileRepository keeps data.json (a pretty-printed array of records)
// and data.csv (header plus one row per record) in lockstep.
//
// The CSV append holds an exclusive flock for the duration of the
// write, so concurrent processes serialize on that one operation. The
// JSON document is rewritten whole (read-modify-write) and is NOT
// covered by the same lock: under concurrent writer processes it is
// subject to lost updates. Single-writer deployment is assumed; the
// in-process mutex below only serializes goroutines of this server.
type fileRepository struct {
	jsonPath string
	csvPath  string
	mu       sync.Mutex
}

// NewFileRepository creates the flat-file UserRepository rooted at
// dataDir, creating the directory if needed.
func NewFileRepository(dataDir string) (UserRepository, error) {
	if err := os.MkdirAll(dataDir, 0o775); err != nil {
		return nil, fmt.Errorf("%w: creating data directory %s: %v", ErrStorage, dataDir, err)
	}
	return &fileRepository{
		jsonPath: filepath.Join(dataDir, jsonFileName),
		csvPath:  filepath.Join(dataDir, csvFileName),
	}, nil
}

// readAll decodes the JSON array, treating a missing file as empty.
func (r *fileRepository) readAll() ([]models.User, error) {
	content, err := os.ReadFile(r.jsonPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStorage, r.jsonPath, err)
	}
	users := []models.User{}
	if len(content) > 0 {
		if err := json.Unmarshal(content, &users); err != nil {
			return nil, fmt.Errorf("%w: decoding %s: %v", ErrStorage, r.jsonPath, err)
		}
	}
	return users, nil
}

func (r *fileRepository) CreateUser(user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	users, err := r.readAll()
	if err != nil {
		return nil, err
	}
	// Backstop for the service-level check, same role as the relational
	// unique constraint.
	for _, existing := range users {
		if strings.EqualFold(existing.Email, user.Email) {
			return nil, fmt.Errorf("%w: email %s", ErrDuplicateKey, user.Email)
		}
	}

	stored := *user
	stored.ID = 0 // positional for this backend, assigned at read time
	users = append(users, stored)

	encoded, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("%w: encoding %s: %v", ErrStorage, r.jsonPath, err)
	}
	if err := os.WriteFile(r.jsonPath, encoded, 0o664); err != nil {
		return nil, fmt.Errorf("%w: writing %s: %v", ErrStorage, r.jsonPath, err)
	}

	// JSON is on disk; from here a CSV failure leaves the two files
	// diverged and must be reported as such.
	if err := r.appendCSV(stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInconsistentWrite, err)
	}

	user.ID = int64(len(users))
	return user, nil
}

// appendCSV writes the header on first use, then the record row, under
// an exclusive lock on the CSV file.
func (r *fileRepository) appendCSV(user models.User) error {
	lock := flock.New(r.csvPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking %s: %v", r.csvPath, err)
	}
	defer lock.Unlock()

	f, err := os.OpenFile(r.csvPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return fmt.Errorf("opening %s: %v", r.csvPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %v", r.csvPath, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(models.CSVHeader()); err != nil {
			return fmt.Errorf("writing header to %s: %v", r.csvPath, err)
		}
	}
	if err := w.Write(user.CSVRow()); err != nil {
		return fmt.Errorf("writing row to %s: %v", r.csvPath, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %v", r.csvPath, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %v", r.csvPath, err)
	}
	return nil
}

func (r *fileRepository) GetUserByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for i, user := range users {
		if strings.EqualFold(user.Email, email) {
			user.ID = int64(i + 1)
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fileRepository) GetUsers() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].ID = int64(i + 1)
	}
	return users, nil
}
