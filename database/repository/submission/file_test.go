package submissionRepo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"medcard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSubmission(name string) models.Submission {
	return models.Submission{
		ID:               "sub-" + name,
		FullName:         name,
		Email:            name + "@example.com",
		Age:              30,
		MedicalCondition: "Chronic back pain requiring treatment",
		State:            "california",
		AgreedToPrivacy:  true,
		SubmittedAt:      time.Now().UTC(),
	}
}

func TestListAllMissingDocument(t *testing.T) {
	repo := NewFileSubmissionRepo(filepath.Join(t.TempDir(), "submissions.json"))

	subs, err := repo.ListAll(context.Background())
	require.NoError(t, err, "a store that does not exist yet reads as empty")
	assert.Empty(t, subs)
}

func TestAppendThenListRoundTrip(t *testing.T) {
	repo := NewFileSubmissionRepo(filepath.Join(t.TempDir(), "submissions.json"))
	ctx := context.Background()

	first := testSubmission("jane")
	second := testSubmission("john")

	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	subs, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	// Oldest first, and the last element deep-equals the appended record.
	assert.Equal(t, first, subs[0])
	assert.Equal(t, second, subs[1])
}

func TestListAllIsIdempotent(t *testing.T) {
	repo := NewFileSubmissionRepo(filepath.Join(t.TempDir(), "submissions.json"))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testSubmission("jane")))

	once, err := repo.ListAll(ctx)
	require.NoError(t, err)
	twice, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestAppendCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "submissions.json")
	repo := NewFileSubmissionRepo(path)

	require.NoError(t, repo.Append(context.Background(), testSubmission("jane")))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestAppendCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewFileSubmissionRepo(path)
	err := repo.Append(context.Background(), testSubmission("jane"))
	require.Error(t, err)

	var storageErr *StorageError
	assert.True(t, errors.As(err, &storageErr))
}

func TestListAllCorruptDocumentReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewFileSubmissionRepo(path)
	subs, err := repo.ListAll(context.Background())
	require.NoError(t, err, "reads favor availability over error surfacing")
	assert.Empty(t, subs)
}

func TestConcurrentAppendsAllSurvive(t *testing.T) {
	repo := NewFileSubmissionRepo(filepath.Join(t.TempDir(), "submissions.json"))
	ctx := context.Background()

	const n = 20
	done := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			sub := testSubmission("worker")
			sub.ID = sub.ID + "-" + string(rune('a'+i))
			done <- repo.Append(ctx, sub)
		}(i)
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-done)
	}

	subs, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, n, "the store mutex must prevent lost updates")
}
