package submissionRepo

import (
	"context"

	"medcard/models"
)

// SubmissionRepository is the append-only store for eligibility applications.
// Append persists one record; ListAll returns every record in original append
// order, oldest first. A store that does not exist yet reads as empty.
type SubmissionRepository interface {
	Append(ctx context.Context, sub models.Submission) error
	ListAll(ctx context.Context) ([]models.Submission, error)
}

// StorageError wraps an I/O failure of the backing medium. Handlers surface
// it to callers as an opaque failure; the detail stays in the server logs.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "submission store: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
