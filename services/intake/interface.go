package intake

import (
	"context"

	submissionRepo "medcard/database/repository/submission"
	"medcard/models"
)

// IntakeService validates and persists eligibility applications.
type IntakeService interface {
	// Submit validates the raw input and, if every rule passes, persists and
	// returns the created submission. On validation failure the returned
	// error is a *ValidationError naming every violated field; nothing is
	// written.
	Submit(ctx context.Context, input models.RawSubmissionInput) (*models.Submission, error)

	// ListAll returns every submission in append order, oldest first.
	ListAll(ctx context.Context) ([]models.Submission, error)
}

// StateFinder answers whether a state slug exists in the catalog.
type StateFinder interface {
	Find(slug string) (models.StateInfo, bool)
}

// DefaultIntakeService is the production implementation.
type DefaultIntakeService struct {
	Repo   submissionRepo.SubmissionRepository
	States StateFinder
}
