package submissionRepo

import (
	"context"
	"encoding/json"

	"medcard/models"

	"github.com/go-redis/redis/v8"
)

const submissionsKey = "submissions"

// redisSubmissionRepo keeps submissions in a Redis list, one JSON-encoded
// record per element. RPUSH preserves append order.
type redisSubmissionRepo struct {
	client *redis.Client
}

// NewRedisSubmissionRepo returns a SubmissionRepository backed by Redis.
func NewRedisSubmissionRepo(client *redis.Client) SubmissionRepository {
	return &redisSubmissionRepo{client: client}
}

func (r *redisSubmissionRepo) Append(ctx context.Context, sub models.Submission) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return &StorageError{Op: "encode", Err: err}
	}
	if err := r.client.RPush(ctx, submissionsKey, data).Err(); err != nil {
		return &StorageError{Op: "rpush", Err: err}
	}
	return nil
}

func (r *redisSubmissionRepo) ListAll(ctx context.Context) ([]models.Submission, error) {
	raw, err := r.client.LRange(ctx, submissionsKey, 0, -1).Result()
	if err != nil {
		return []models.Submission{}, nil
	}
	subs := make([]models.Submission, 0, len(raw))
	for _, item := range raw {
		var sub models.Submission
		if err := json.Unmarshal([]byte(item), &sub); err != nil {
			continue
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
