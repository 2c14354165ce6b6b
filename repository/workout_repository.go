package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kevincode06/gym-tracker-backend/models"
)

// ErrNotFound is returned when an id matches no stored document.
var ErrNotFound = errors.New("record not found")

// WorkoutStore is the persistence boundary for workout records.
type WorkoutStore interface {
	Create(ctx context.Context, payload models.WorkoutPayload) (*models.Workout, error)
	FindAll(ctx context.Context) ([]models.Workout, error)
	// UpdateByID replaces the mutable fields of the workout with the
	// given id and returns the post-update document.
	UpdateByID(ctx context.Context, id string, payload models.WorkoutPayload) (*models.Workout, error)
	// DeleteByID removes the workout with the given id and returns its
	// prior contents.
	DeleteByID(ctx context.Context, id string) (*models.Workout, error)
}

// MongoWorkoutRepository implements WorkoutStore on a Mongo collection.
type MongoWorkoutRepository struct {
	col *mongo.Collection
}

func NewWorkoutRepository(db *mongo.Database) *MongoWorkoutRepository {
	return &MongoWorkoutRepository{col: db.Collection("workouts")}
}

func (r *MongoWorkoutRepository) Create(ctx context.Context, payload models.WorkoutPayload) (*models.Workout, error) {
	now := time.Now()
	workout := models.Workout{
		ID:        primitive.NewObjectID(),
		Name:      payload.Name,
		Category:  payload.Category,
		Exercise:  payload.Exercise,
		Reps:      payload.Reps,
		Sets:      payload.Sets,
		Weight:    payload.Weight,
		Date:      payload.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.col.InsertOne(ctx, workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *MongoWorkoutRepository) FindAll(ctx context.Context) ([]models.Workout, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	var workouts []models.Workout
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *MongoWorkoutRepository) UpdateByID(ctx context.Context, id string, payload models.WorkoutPayload) (*models.Workout, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a document.
		return nil, ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":      payload.Name,
		"category":  payload.Category,
		"exercise":  payload.Exercise,
		"reps":      payload.Reps,
		"sets":      payload.Sets,
		"weight":    payload.Weight,
		"date":      payload.Date,
		"updatedAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Workout
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoWorkoutRepository) DeleteByID(ctx context.Context, id string) (*models.Workout, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var deleted models.Workout
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
