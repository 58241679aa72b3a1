package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ReportStore defines the interface for persisting generated report files
type ReportStore interface {
	// Store persists the report under a unique key derived from filename and
	// returns the location of the stored object.
	Store(ctx context.Context, filename string, data io.Reader) (string, error)
}

// GenerateObjectKey creates a unique object key for a report file
func GenerateObjectKey(filename string) string {
	return fmt.Sprintf("%s_%s", uuid.New().String(), filename)
}

// LocalReportStore implements ReportStore on the local filesystem
type LocalReportStore struct {
	dir string
}

// NewLocalReportStore creates a report store rooted at dir, creating the
// directory if needed.
func NewLocalReportStore(dir string) (*LocalReportStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	return &LocalReportStore{dir: dir}, nil
}

// Store writes the report into the store's directory
func (s *LocalReportStore) Store(ctx context.Context, filename string, data io.Reader) (string, error) {
	path := filepath.Join(s.dir, GenerateObjectKey(filename))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}

	if _, err := io.Copy(f, data); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close report file: %w", err)
	}
	return path, nil
}
