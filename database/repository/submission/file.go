package submissionRepo

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"medcard/models"
)

// fileSubmissionRepo persists the whole submission list as one JSON document,
// rewritten on every append. The mutex serializes the read-modify-write cycle
// within this process; without it concurrent appends can drop each other's
// writes.
type fileSubmissionRepo struct {
	path string
	mu   sync.Mutex
}

// NewFileSubmissionRepo returns a SubmissionRepository backed by a JSON file.
// The file does not need to exist yet; the first append creates it.
func NewFileSubmissionRepo(path string) SubmissionRepository {
	return &fileSubmissionRepo{path: path}
}

func (r *fileSubmissionRepo) Append(ctx context.Context, sub models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.load()
	if err != nil {
		return &StorageError{Op: "read", Err: err}
	}
	subs = append(subs, sub)

	data, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return &StorageError{Op: "encode", Err: err}
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &StorageError{Op: "mkdir", Err: err}
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}

// ListAll favors availability: a missing or unreadable document yields an
// empty list rather than an error.
func (r *fileSubmissionRepo) ListAll(ctx context.Context) ([]models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.load()
	if err != nil {
		return []models.Submission{}, nil
	}
	return subs, nil
}

func (r *fileSubmissionRepo) load() ([]models.Submission, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Submission{}, nil
	}
	if err != nil {
		return nil, err
	}
	var subs []models.Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
