package import_feature

import (
	"context"

	"go-campus/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ImportRepository interface {
	Create(ctx context.Context, job *ImportJob) error
	Get(ctx context.Context, id string) (*ImportJob, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]ImportJob, error)
	Update(ctx context.Context, id string, job *ImportJob) error
}

type ImportRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewImportRepository(mongodb *database.MongodbDB) ImportRepository {
	return &ImportRepositoryImpl{
		Collection: mongodb.DB.Collection("import_jobs"),
	}
}

func (r *ImportRepositoryImpl) Create(ctx context.Context, job *ImportJob) error {
	_, err := r.Collection.InsertOne(ctx, job)
	return err
}

func (r *ImportRepositoryImpl) Get(ctx context.Context, id string) (*ImportJob, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var job ImportJob
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *ImportRepositoryImpl) FindByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]ImportJob, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.Collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []ImportJob
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *ImportRepositoryImpl) Update(ctx context.Context, id string, job *ImportJob) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"status":       job.Status,
			"total_rows":   job.TotalRows,
			"processed":    job.Processed,
			"failed":       job.Failed,
			"errors":       job.Errors,
			"updated_at":   job.UpdatedAt,
			"completed_at": job.CompletedAt,
		},
	}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	return err
}
