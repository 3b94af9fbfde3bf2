package session

import (
	"errors"
	"io/fs"
	"os"
)

// Store persists the raw session token between runs. The console's analog of
// the browser's local storage: one value under one fixed key.
type Store interface {
	Read() (string, error)
	Write(token string) error
	Clear() error
}

// FileStore keeps the token in a single file on disk.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Read returns the stored token, or empty string when none is stored.
func (f *FileStore) Read() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

func (f *FileStore) Write(token string) error {
	return os.WriteFile(f.Path, []byte(token), 0o600)
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryStore holds the token in memory only. Used in tests.
type MemoryStore struct {
	token string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Read() (string, error) { return m.token, nil }

func (m *MemoryStore) Write(token string) error {
	m.token = token
	return nil
}

func (m *MemoryStore) Clear() error {
	m.token = ""
	return nil
}
