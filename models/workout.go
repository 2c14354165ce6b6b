package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is a single logged workout entry.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category" json:"category"`
	Exercise  string             `bson:"exercise" json:"exercise"`
	Reps      int                `bson:"reps" json:"reps"`
	Sets      int                `bson:"sets" json:"sets"`
	Weight    float64            `bson:"weight" json:"weight"`
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// WorkoutPayload holds the normalized mutable fields of a workout,
// ready to be inserted or to replace an existing document's fields.
type WorkoutPayload struct {
	Name     string    `bson:"name"`
	Category string    `bson:"category"`
	Exercise string    `bson:"exercise"`
	Reps     int       `bson:"reps"`
	Sets     int       `bson:"sets"`
	Weight   float64   `bson:"weight"`
	Date     time.Time `bson:"date"`
}

// Validate enforces the document constraints the store would reject:
// reps, sets and weight must not be negative. It returns nil when the
// payload is storable.
func (p WorkoutPayload) Validate() *ValidationError {
	var details []string
	if p.Reps < 0 {
		details = append(details, "Reps cannot be negative")
	}
	if p.Sets < 0 {
		details = append(details, "Sets cannot be negative")
	}
	if p.Weight < 0 {
		details = append(details, "Weight cannot be negative")
	}
	if len(details) == 0 {
		return nil
	}
	return &ValidationError{Details: details}
}

// ValidationError carries the constraint messages for a rejected payload.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// WorkoutView is the wire representation of a workout. Dates are
// rendered as YYYY-MM-DD, dropping any time-of-day component.
type WorkoutView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Exercise  string    `json:"exercise"`
	Reps      int       `json:"reps"`
	Sets      int       `json:"sets"`
	Weight    float64   `json:"weight"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// View converts a stored workout into its wire representation.
func (w Workout) View() WorkoutView {
	return WorkoutView{
		ID:        w.ID.Hex(),
		Name:      w.Name,
		Category:  w.Category,
		Exercise:  w.Exercise,
		Reps:      w.Reps,
		Sets:      w.Sets,
		Weight:    w.Weight,
		Date:      w.Date.Format("2006-01-02"),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
