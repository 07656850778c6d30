package cart

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// FileStore persists the cart as a single JSON record on disk, the local
// key-value storage analog. The record lives in one file named after the
// storage key.
type FileStore struct {
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, storageKey+".json")}
}

func (s *FileStore) Load() ([]Item, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var rec storedCart
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return rec.Items, nil
}

func (s *FileStore) Save(items []Item) error {
	raw, err := json.Marshal(storedCart{Items: items})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
