package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/agroassist/engine/internal/models"
)

// Session is the client-held authentication state: the public user view plus
// the bearer token the server issued. Nothing else is ever persisted.
type Session struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// Storage is the durable persistence port for the session. Load returns
// (nil, nil) when no session is stored.
type Storage interface {
	Load() (*Session, error)
	Save(*Session) error
	Clear() error
}

// sessionFileName is the fixed key the session lives under, the counterpart
// of the browser's single localStorage entry.
const sessionFileName = "session.json"

// FileStorage keeps the session as one JSON file in a directory.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (s *FileStorage) path() string {
	return filepath.Join(s.dir, sessionFileName)
}

func (s *FileStorage) Load() (*Session, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *FileStorage) Save(sess *Session) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0o600)
}

func (s *FileStorage) Clear() error {
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryStorage is an in-process Storage for tests.
type MemoryStorage struct {
	mu   sync.Mutex
	sess *Session
}

func NewMemoryStorage() *MemoryStorage { return &MemoryStorage{} }

func (s *MemoryStorage) Load() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return nil, nil
	}
	cp := *s.sess
	return &cp, nil
}

func (s *MemoryStorage) Save(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sess
	s.sess = &cp
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	return nil
}
