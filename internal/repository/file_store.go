package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"prompt-vault/internal/domain/prompt"
	vault_errors "prompt-vault/pkg/errors"
)

// FileStore keeps one JSON file per user under a data directory. A file is
// loaded in full, mutated in memory and rewritten in full on every mutating
// operation. A missing or unreadable file is reinitialized to the empty
// shape on first access. Load-mutate-save sequences for the same user are
// serialized by a per-user mutex.
type FileStore struct {
	dir   string
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *FileStore) userLock(username string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[username]
	if !ok {
		l = &sync.Mutex{}
		s.locks[username] = l
	}
	return l
}

func (s *FileStore) userFile(username string) string {
	return filepath.Join(s.dir, username+".json")
}

// Provision writes the initial empty structure for a new user.
func (s *FileStore) Provision(username string) error {
	l := s.userLock(username)
	l.Lock()
	defer l.Unlock()
	return s.save(username, prompt.NewUserData(username))
}

// Load reads a user's data file under the user lock. Corrupt or missing
// files self-heal to the empty shape.
func (s *FileStore) Load(username string) (prompt.UserData, error) {
	l := s.userLock(username)
	l.Lock()
	defer l.Unlock()
	return s.load(username)
}

// Mutate runs fn against the user's data under the user lock and rewrites
// the file if fn succeeds.
func (s *FileStore) Mutate(username string, fn func(*prompt.UserData) error) error {
	l := s.userLock(username)
	l.Lock()
	defer l.Unlock()

	data, err := s.load(username)
	if err != nil {
		return err
	}
	if err := fn(&data); err != nil {
		return err
	}
	return s.save(username, data)
}

func (s *FileStore) load(username string) (prompt.UserData, error) {
	raw, err := os.ReadFile(s.userFile(username))
	if err != nil {
		if os.IsNotExist(err) {
			initial := prompt.NewUserData(username)
			if err := s.save(username, initial); err != nil {
				return prompt.UserData{}, err
			}
			return initial, nil
		}
		return prompt.UserData{}, err
	}

	var data prompt.UserData
	if err := json.Unmarshal(raw, &data); err != nil {
		// Corrupt file: reinitialize rather than surface an error.
		initial := prompt.NewUserData(username)
		if err := s.save(username, initial); err != nil {
			return prompt.UserData{}, err
		}
		return initial, nil
	}
	if data.Prompts == nil {
		data.Prompts = []prompt.Record{}
	}
	if data.History == nil {
		data.History = []prompt.HistoryEntry{}
	}
	return data, nil
}

func (s *FileStore) save(username string, data prompt.UserData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.userFile(username), raw, 0o644)
}

// AppendHistory appends a chat exchange with the next local sequence number
// and persists the user's file.
func (s *FileStore) AppendHistory(username, promptText, response string, raw json.RawMessage) (prompt.HistoryEntry, error) {
	var entry prompt.HistoryEntry
	err := s.Mutate(username, func(data *prompt.UserData) error {
		entry = prompt.HistoryEntry{
			ID:        len(data.History) + 1,
			Prompt:    promptText,
			Response:  response,
			Raw:       raw,
			CreatedAt: prompt.Now(),
		}
		data.History = append(data.History, entry)
		return nil
	})
	return entry, err
}

// History returns the user's chat exchanges in append order.
func (s *FileStore) History(username string) ([]prompt.HistoryEntry, error) {
	data, err := s.Load(username)
	if err != nil {
		return nil, err
	}
	return data.History, nil
}

// ForUser exposes one user's prompt collection as a PromptStore.
func (s *FileStore) ForUser(username string) PromptStore {
	return &userPromptStore{files: s, username: username}
}

type userPromptStore struct {
	files    *FileStore
	username string
}

func (s *userPromptStore) Insert(ctx context.Context, rec prompt.Record) error {
	return s.files.Mutate(s.username, func(data *prompt.UserData) error {
		data.Prompts = append(data.Prompts, rec)
		return nil
	})
}

func (s *userPromptStore) List(ctx context.Context, typeFilter string, limit, offset int) ([]prompt.Record, error) {
	data, err := s.files.Load(s.username)
	if err != nil {
		return nil, err
	}
	items := make([]prompt.Record, 0, len(data.Prompts))
	for _, rec := range data.Prompts {
		if typeFilter != "" && rec.Type != typeFilter {
			continue
		}
		items = append(items, rec)
	}
	return paginate(items, limit, offset), nil
}

func (s *userPromptStore) Get(ctx context.Context, id string) (prompt.Record, error) {
	data, err := s.files.Load(s.username)
	if err != nil {
		return prompt.Record{}, err
	}
	for _, rec := range data.Prompts {
		if rec.ID == id {
			return rec, nil
		}
	}
	return prompt.Record{}, vault_errors.ErrNotFound
}

func (s *userPromptStore) Update(ctx context.Context, id string, mutate func(*prompt.Record)) (prompt.Record, error) {
	var updated prompt.Record
	err := s.files.Mutate(s.username, func(data *prompt.UserData) error {
		for i := range data.Prompts {
			if data.Prompts[i].ID == id {
				mutate(&data.Prompts[i])
				updated = data.Prompts[i]
				return nil
			}
		}
		return vault_errors.ErrNotFound
	})
	if err != nil {
		return prompt.Record{}, err
	}
	return updated, nil
}

func (s *userPromptStore) Delete(ctx context.Context, id string) error {
	return s.files.Mutate(s.username, func(data *prompt.UserData) error {
		for i := range data.Prompts {
			if data.Prompts[i].ID == id {
				data.Prompts = append(data.Prompts[:i], data.Prompts[i+1:]...)
				return nil
			}
		}
		return vault_errors.ErrNotFound
	})
}
