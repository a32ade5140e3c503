package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const DefaultFile = "data/highscore.json"

type fileStats struct {
	HighScore int `json:"highScore"`
}

// FileStore keeps the best score in a small JSON document.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultFile
	}
	return &FileStore{path: path}
}

func (s *FileStore) Get(_ context.Context) (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read %s: %w", s.path, err)
	}

	var stats fileStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return 0, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if stats.HighScore < 0 {
		return 0, nil
	}
	return stats.HighScore, nil
}

// Set writes through a temp file and rename so a crash never leaves a
// truncated document.
func (s *FileStore) Set(_ context.Context, score int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(fileStats{HighScore: score}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write high score: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace high score: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
