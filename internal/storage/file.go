// internal/storage/file.go
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go-dodge-tejecks/internal/profile"
	"os"
	"path/filepath"
)

// FileStore хранит прогресс в локальном JSON-файле.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Name() string { return "file:" + s.path }

// Save пишет во временный файл и переименовывает, чтобы оборванная запись
// не испортила предыдущее сохранение.
func (s *FileStore) Save(ctx context.Context, r profile.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create save dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".progress-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context) (profile.Record, error) {
	if err := ctx.Err(); err != nil {
		return profile.Record{}, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return profile.Record{}, ErrNotFound
	}
	if err != nil {
		return profile.Record{}, fmt.Errorf("failed to read save file: %w", err)
	}
	var r profile.Record
	if err := json.Unmarshal(data, &r); err != nil {
		return profile.Record{}, fmt.Errorf("%s: %w: %v", s.path, ErrCorrupt, err)
	}
	return r, nil
}
