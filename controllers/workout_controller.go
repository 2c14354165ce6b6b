package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kevincode06/gym-tracker-backend/models"
	"github.com/kevincode06/gym-tracker-backend/repository"
	"github.com/kevincode06/gym-tracker-backend/services"
)

type WorkoutController struct {
	store repository.WorkoutStore
}

func NewWorkoutController(store repository.WorkoutStore) *WorkoutController {
	return &WorkoutController{store: store}
}

// CreateWorkout handles POST /api/workouts.
func (wc *WorkoutController) CreateWorkout(c *gin.Context) {
	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	payload, missing := services.Normalize(input, time.Now())
	if missing != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":       "Name, category, and exercise are required",
			"missingFields": missing,
		})
		return
	}
	if verr := payload.Validate(); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "details": verr.Details})
		return
	}

	workout, err := wc.store.Create(c.Request.Context(), *payload)
	if err != nil {
		log.Printf("Workout creation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating workout", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, workout.View())
}

// GetWorkouts handles GET /api/workouts, newest date first.
func (wc *WorkoutController) GetWorkouts(c *gin.Context) {
	workouts, err := wc.store.FindAll(c.Request.Context())
	if err != nil {
		log.Printf("Fetch workouts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching workouts", "error": err.Error()})
		return
	}

	views := make([]models.WorkoutView, 0, len(workouts))
	for _, w := range workouts {
		views = append(views, w.View())
	}
	c.JSON(http.StatusOK, views)
}

// UpdateWorkout handles PUT /api/workouts/:id. The same required-field
// rules apply as on create; id and creation time are preserved.
func (wc *WorkoutController) UpdateWorkout(c *gin.Context) {
	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	payload, missing := services.Normalize(input, time.Now())
	if missing != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":       "Name, category, and exercise are required",
			"missingFields": missing,
		})
		return
	}
	if verr := payload.Validate(); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "details": verr.Details})
		return
	}

	workout, err := wc.store.UpdateByID(c.Request.Context(), c.Param("id"), *payload)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Workout not found"})
		return
	}
	if err != nil {
		log.Printf("Workout update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating workout", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workout.View())
}

// DeleteWorkout handles DELETE /api/workouts/:id and echoes the removed
// record back to the client.
func (wc *WorkoutController) DeleteWorkout(c *gin.Context) {
	workout, err := wc.store.DeleteByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Workout not found"})
		return
	}
	if err != nil {
		log.Printf("Workout deletion error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting workout", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Workout deleted successfully",
		"deletedWorkout": workout.View(),
	})
}
