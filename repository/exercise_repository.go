package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kevincode06/gym-tracker-backend/models"
)

// ExerciseStore is the persistence boundary for the exercise catalog.
type ExerciseStore interface {
	Create(ctx context.Context, exercise models.Exercise) (*models.Exercise, error)
	FindAll(ctx context.Context) ([]models.Exercise, error)
	DeleteByID(ctx context.Context, id string) error
}

type MongoExerciseRepository struct {
	col *mongo.Collection
}

func NewExerciseRepository(db *mongo.Database) *MongoExerciseRepository {
	return &MongoExerciseRepository{col: db.Collection("exercises")}
}

func (r *MongoExerciseRepository) Create(ctx context.Context, exercise models.Exercise) (*models.Exercise, error) {
	exercise.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, exercise); err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *MongoExerciseRepository) FindAll(ctx context.Context) ([]models.Exercise, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	var exercises []models.Exercise
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *MongoExerciseRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
