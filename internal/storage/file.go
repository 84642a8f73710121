package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/readingnest/server/internal/model"
)

// FileSnapshot stores the collection as one JSON file. It is the default
// backend and the single-user stand-in for a browser's local storage.
type FileSnapshot struct {
	path string
}

func NewFileSnapshot(path string) *FileSnapshot {
	return &FileSnapshot{path: path}
}

func (f *FileSnapshot) Read(ctx context.Context) ([]model.Book, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		// Missing or unreadable snapshot means an empty library.
		return []model.Book{}, nil
	}

	var books []model.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return []model.Book{}, nil
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

func (f *FileSnapshot) Write(ctx context.Context, books []model.Book) error {
	if books == nil {
		books = []model.Book{}
	}

	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write never truncates the snapshot.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileSnapshot) Ping(ctx context.Context) error {
	dir := filepath.Dir(f.path)
	_, err := os.Stat(dir)
	return err
}
