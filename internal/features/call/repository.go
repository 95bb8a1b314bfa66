package call

import (
	"context"
	"time"

	"go-campus/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CallRepository interface {
	Create(ctx context.Context, call *Call) error
	FindByID(ctx context.Context, id string) (*Call, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Call, int64, error)
	Update(ctx context.Context, id string, call *Call) error
	Delete(ctx context.Context, id string) error
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
}

type CallRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewCallRepository(mongodb *database.MongodbDB) CallRepository {
	return &CallRepositoryImpl{
		Collection: mongodb.DB.Collection("calls"),
	}
}

func (r *CallRepositoryImpl) Create(ctx context.Context, call *Call) error {
	_, err := r.Collection.InsertOne(ctx, call)
	return err
}

func (r *CallRepositoryImpl) FindByID(ctx context.Context, id string) (*Call, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var call Call
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&call); err != nil {
		return nil, err
	}
	return &call, nil
}

func (r *CallRepositoryImpl) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Call, int64, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if offset > 0 {
		opts.SetSkip(offset)
	}
	opts.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var calls []Call
	if err := cursor.All(ctx, &calls); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return calls, total, nil
}

func (r *CallRepositoryImpl) Update(ctx context.Context, id string, call *Call) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"program_id":           call.ProgramID,
			"academic_year_id":     call.AcademicYearID,
			"title":                call.Title,
			"slug":                 call.Slug,
			"type":                 call.Type,
			"modality":             call.Modality,
			"places":               call.Places,
			"destinations":         call.Destinations,
			"estimated_start_date": call.EstimatedStartDate,
			"estimated_end_date":   call.EstimatedEndDate,
			"requirements":         call.Requirements,
			"documentation":        call.Documentation,
			"selection_criteria":   call.SelectionCriteria,
			"status":               call.Status,
			"publication_date":     call.PublicationDate,
			"closing_date":         call.ClosingDate,
			"updated_by":           call.UpdatedBy,
			"updated_at":           call.UpdatedAt,
		},
	}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	return err
}

func (r *CallRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

// CloseExpired marks published calls whose closing date has passed as closed.
func (r *CallRepositoryImpl) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{
		"status":       StatusPublished,
		"closing_date": bson.M{"$ne": nil, "$lt": now},
	}
	res, err := r.Collection.UpdateMany(ctx, filter, bson.M{
		"$set": bson.M{"status": StatusClosed, "updated_at": now},
	})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
