package tokenstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore keeps the auth blob as a JSON file, the desktop analog of
// browser local storage.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (Blob, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Blob{}, false
	}
	var blob Blob
	if err := json.Unmarshal(data, &blob); err != nil || blob.Token == "" {
		return Blob{}, false
	}
	return blob, true
}

func (s *FileStore) Save(_ context.Context, blob Blob) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(blob)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Clear(_ context.Context) {
	_ = os.Remove(s.path)
}
