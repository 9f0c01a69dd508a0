package submissionRepo

import (
	"context"

	"medcard/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoSubmissionRepo struct {
	coll *mongo.Collection
}

// NewMongoSubmissionRepo returns a SubmissionRepository backed by the
// "submissions" collection of the given database.
func NewMongoSubmissionRepo(db *mongo.Database) SubmissionRepository {
	return &mongoSubmissionRepo{coll: db.Collection("submissions")}
}

func (r *mongoSubmissionRepo) Append(ctx context.Context, sub models.Submission) error {
	if _, err := r.coll.InsertOne(ctx, sub); err != nil {
		return &StorageError{Op: "insert", Err: err}
	}
	return nil
}

func (r *mongoSubmissionRepo) ListAll(ctx context.Context) ([]models.Submission, error) {
	// Oldest first, matching the file store's append order.
	findOpts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return []models.Submission{}, nil
	}
	defer cursor.Close(ctx)

	subs := []models.Submission{}
	if err := cursor.All(ctx, &subs); err != nil {
		return []models.Submission{}, nil
	}
	return subs, nil
}
