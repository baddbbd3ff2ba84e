package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"prompt-vault/internal/domain/user"
	vault_errors "prompt-vault/pkg/errors"
)

// FileUserRepository persists the account directory as a single flat JSON
// file. The whole list is read, modified and rewritten under a mutex; the
// next id comes from a monotonic counter seeded from the max existing id,
// so ids are never reused even if accounts were ever removed.
type FileUserRepository struct {
	path   string
	mu     sync.Mutex
	nextID int
}

func NewFileUserRepository(dir string) (*FileUserRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileUserRepository{path: filepath.Join(dir, "users.json")}, nil
}

func (r *FileUserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return user.User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, vault_errors.ErrNotFound
}

func (r *FileUserRepository) Create(ctx context.Context, username, passwordHash string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return user.User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return user.User{}, vault_errors.ErrAlreadyExists
		}
	}

	if r.nextID == 0 {
		max := 0
		for _, u := range users {
			if u.ID > max {
				max = u.ID
			}
		}
		r.nextID = max + 1
	}

	newUser := user.User{
		ID:           r.nextID,
		Username:     username,
		PasswordHash: passwordHash,
	}
	users = append(users, newUser)
	if err := r.save(users); err != nil {
		return user.User{}, err
	}
	r.nextID++
	return newUser, nil
}

func (r *FileUserRepository) load() ([]user.User, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []user.User{}, nil
		}
		return nil, err
	}
	var users []user.User
	if err := json.Unmarshal(raw, &users); err != nil {
		// Corrupt directory file: treat as empty and reinitialize on the
		// next save.
		return []user.User{}, nil
	}
	return users, nil
}

func (r *FileUserRepository) save(users []user.User) error {
	raw, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, raw, 0o644)
}
