package program

import (
	"context"

	"go-campus/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgramRepository interface {
	Create(ctx context.Context, program *Program) error
	FindByID(ctx context.Context, id string) (*Program, error)
	List(ctx context.Context) ([]Program, error)
	Update(ctx context.Context, id string, program *Program) error
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type ProgramRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewProgramRepository(mongodb *database.MongodbDB) ProgramRepository {
	return &ProgramRepositoryImpl{
		Collection: mongodb.DB.Collection("programs"),
	}
}

func (r *ProgramRepositoryImpl) Create(ctx context.Context, program *Program) error {
	_, err := r.Collection.InsertOne(ctx, program)
	return err
}

func (r *ProgramRepositoryImpl) FindByID(ctx context.Context, id string) (*Program, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var program Program
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&program); err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *ProgramRepositoryImpl) List(ctx context.Context) ([]Program, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var programs []Program
	if err := cursor.All(ctx, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *ProgramRepositoryImpl) Update(ctx context.Context, id string, program *Program) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"code":        program.Code,
			"name":        program.Name,
			"description": program.Description,
			"updated_at":  program.UpdatedAt,
		},
	}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	return err
}

func (r *ProgramRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

func (r *ProgramRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
