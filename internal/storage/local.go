// Package storage persists uploaded image binaries under generated file
// names in the static content area the API serves them from.
package storage

import (
	"os"
	"path/filepath"
)

type Store interface {
	Save(name string, data []byte) error
	Remove(name string) error
	Path(name string) string
	Exists(name string) bool
}

type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(name string, data []byte) error {
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}

func (s *LocalStore) Remove(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *LocalStore) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}
