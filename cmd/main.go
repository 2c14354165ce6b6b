package main

import (
	"github.com/kevincode06/gym-tracker-backend/config"
	"github.com/kevincode06/gym-tracker-backend/controllers"
	"github.com/kevincode06/gym-tracker-backend/repository"
	"github.com/kevincode06/gym-tracker-backend/routes"
)

func main() {
	config.InitDB()

	workouts := controllers.NewWorkoutController(repository.NewWorkoutRepository(config.DB))
	exercises := controllers.NewExerciseController(repository.NewExerciseRepository(config.DB))

	r := routes.SetupRouter(workouts, exercises)
	r.Run(":" + config.Port())
}
