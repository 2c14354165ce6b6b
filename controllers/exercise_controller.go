package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kevincode06/gym-tracker-backend/models"
	"github.com/kevincode06/gym-tracker-backend/repository"
)

type ExerciseController struct {
	store repository.ExerciseStore
}

func NewExerciseController(store repository.ExerciseStore) *ExerciseController {
	return &ExerciseController{store: store}
}

// CreateExercise handles POST /api/exercises.
func (ec *ExerciseController) CreateExercise(c *gin.Context) {
	var body struct {
		Name        string `json:"name"`
		Category    string `json:"category"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
		return
	}

	exercise, err := ec.store.Create(c.Request.Context(), models.Exercise{
		Name:        name,
		Category:    body.Category,
		Description: body.Description,
	})
	if err != nil {
		log.Printf("Exercise creation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating exercise", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, exercise)
}

// GetExercises handles GET /api/exercises.
func (ec *ExerciseController) GetExercises(c *gin.Context) {
	exercises, err := ec.store.FindAll(c.Request.Context())
	if err != nil {
		log.Printf("Fetch exercises error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching exercises", "error": err.Error()})
		return
	}
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

// DeleteExercise handles DELETE /api/exercises/:id.
func (ec *ExerciseController) DeleteExercise(c *gin.Context) {
	err := ec.store.DeleteByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Exercise not found"})
		return
	}
	if err != nil {
		log.Printf("Exercise deletion error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting exercise", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exercise deleted successfully"})
}
