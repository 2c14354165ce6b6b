package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kevincode06/gym-tracker-backend/controllers"
)

func SetupRouter(workouts *controllers.WorkoutController, exercises *controllers.ExerciseController) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")
	{
		w := api.Group("/workouts")
		{
			w.POST("", workouts.CreateWorkout)
			w.GET("", workouts.GetWorkouts)
			w.PUT("/:id", workouts.UpdateWorkout)
			w.DELETE("/:id", workouts.DeleteWorkout)
		}

		e := api.Group("/exercises")
		{
			e.POST("", exercises.CreateExercise)
			e.GET("", exercises.GetExercises)
			e.DELETE("/:id", exercises.DeleteExercise)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return r
}
