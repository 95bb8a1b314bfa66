package academicyear

import (
	"context"

	"go-campus/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AcademicYearRepository interface {
	Create(ctx context.Context, year *AcademicYear) error
	FindByID(ctx context.Context, id string) (*AcademicYear, error)
	List(ctx context.Context) ([]AcademicYear, error)
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type AcademicYearRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewAcademicYearRepository(mongodb *database.MongodbDB) AcademicYearRepository {
	return &AcademicYearRepositoryImpl{
		Collection: mongodb.DB.Collection("academic_years"),
	}
}

func (r *AcademicYearRepositoryImpl) Create(ctx context.Context, year *AcademicYear) error {
	_, err := r.Collection.InsertOne(ctx, year)
	return err
}

func (r *AcademicYearRepositoryImpl) FindByID(ctx context.Context, id string) (*AcademicYear, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var year AcademicYear
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&year); err != nil {
		return nil, err
	}
	return &year, nil
}

func (r *AcademicYearRepositoryImpl) List(ctx context.Context) ([]AcademicYear, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var years []AcademicYear
	if err := cursor.All(ctx, &years); err != nil {
		return nil, err
	}
	return years, nil
}

func (r *AcademicYearRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

func (r *AcademicYearRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
