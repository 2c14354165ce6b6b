package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Exercise is a catalog entry describing an exercise that workouts
// can reference by name.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}
