package bagabo

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goliatone/go-errors"
)

// CredentialStore persists the raw credential between processes. A store
// holds at most one credential; Load returns ErrCredentialNotFound when
// nothing has been saved.
type CredentialStore interface {
	Load() (string, error)
	Save(raw string) error
	Clear() error
}

// FileCredentialStore keeps the credential as a single opaque string in a
// file, the CLI equivalent of the browser's well-known storage key.
type FileCredentialStore struct {
	path string
	mu   sync.Mutex
}

// NewFileCredentialStore creates a store backed by the file at path.
func NewFileCredentialStore(path string) (*FileCredentialStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("credential file path is required", errors.CategoryBadInput)
	}
	return &FileCredentialStore{path: path}, nil
}

func (s *FileCredentialStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrCredentialNotFound
		}
		return "", errors.Wrap(err, ErrCredentialStore.Category, "read credential file").
			WithTextCode(ErrCredentialStore.TextCode)
	}

	raw := strings.TrimSpace(string(b))
	if raw == "" {
		return "", ErrCredentialNotFound
	}
	return raw, nil
}

func (s *FileCredentialStore) Save(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, ErrCredentialStore.Category, "mkdir credential dir").
			WithTextCode(ErrCredentialStore.TextCode)
	}
	// Credentials are secrets; keep the file owner-only.
	if err := os.WriteFile(s.path, []byte(raw+"\n"), 0o600); err != nil {
		return errors.Wrap(err, ErrCredentialStore.Category, "write credential file").
			WithTextCode(ErrCredentialStore.TextCode)
	}
	return nil
}

func (s *FileCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, ErrCredentialStore.Category, "remove credential file").
			WithTextCode(ErrCredentialStore.TextCode)
	}
	return nil
}

// MemoryCredentialStore is an in-process store used by tests and by
// callers that do not want the session to survive a restart.
type MemoryCredentialStore struct {
	mu  sync.Mutex
	raw string
	set bool
}

func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

func (s *MemoryCredentialStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ErrCredentialNotFound
	}
	return s.raw, nil
}

func (s *MemoryCredentialStore) Save(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = raw
	s.set = true
	return nil
}

func (s *MemoryCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = ""
	s.set = false
	return nil
}
