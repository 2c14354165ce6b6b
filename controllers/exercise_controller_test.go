package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kevincode06/gym-tracker-backend/models"
	"github.com/kevincode06/gym-tracker-backend/repository"
)

type fakeExerciseStore struct {
	exercises []models.Exercise
}

func (f *fakeExerciseStore) Create(_ context.Context, exercise models.Exercise) (*models.Exercise, error) {
	exercise.ID = primitive.NewObjectID()
	f.exercises = append(f.exercises, exercise)
	return &exercise, nil
}

func (f *fakeExerciseStore) FindAll(_ context.Context) ([]models.Exercise, error) {
	out := make([]models.Exercise, len(f.exercises))
	copy(out, f.exercises)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeExerciseStore) DeleteByID(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	for i := range f.exercises {
		if f.exercises[i].ID == oid {
			f.exercises = append(f.exercises[:i], f.exercises[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func TestCreateExercise(t *testing.T) {
	store := &fakeExerciseStore{}
	r := newTestRouter(&fakeWorkoutStore{}, store)

	rr := doJSON(t, r, http.MethodPost, "/api/exercises", map[string]any{
		"name":        " Deadlift ",
		"category":    "strength",
		"description": "Hip hinge with a barbell",
	})

	require.Equal(t, http.StatusCreated, rr.Code)

	var exercise models.Exercise
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &exercise))
	require.Equal(t, "Deadlift", exercise.Name)
	require.Len(t, store.exercises, 1)
}

func TestCreateExerciseMissingName(t *testing.T) {
	store := &fakeExerciseStore{}
	r := newTestRouter(&fakeWorkoutStore{}, store)

	rr := doJSON(t, r, http.MethodPost, "/api/exercises", map[string]any{
		"category": "strength",
	})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Empty(t, store.exercises)
}

func TestGetExercisesSortedByName(t *testing.T) {
	store := &fakeExerciseStore{}
	r := newTestRouter(&fakeWorkoutStore{}, store)

	for _, name := range []string{"Squat", "Bench Press", "Deadlift"} {
		_, err := store.Create(context.Background(), models.Exercise{Name: name})
		require.NoError(t, err)
	}

	rr := doJSON(t, r, http.MethodGet, "/api/exercises", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var exercises []models.Exercise
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &exercises))
	require.Len(t, exercises, 3)
	require.Equal(t, "Bench Press", exercises[0].Name)
}

func TestDeleteExercise(t *testing.T) {
	store := &fakeExerciseStore{}
	r := newTestRouter(&fakeWorkoutStore{}, store)

	created, err := store.Create(context.Background(), models.Exercise{Name: "Squat"})
	require.NoError(t, err)

	rr := doJSON(t, r, http.MethodDelete, "/api/exercises/"+created.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Empty(t, store.exercises)

	rr = doJSON(t, r, http.MethodDelete, "/api/exercises/"+created.ID.Hex(), nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
