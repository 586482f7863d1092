package workouts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
	"github.com/killallgit/planner-api/internal/models"
	"github.com/killallgit/planner-api/internal/services/workouts"
)

// ListWorkouts lists every workout with its sections
// @Summary      List workouts
// @Tags         workouts
// @Produce      json
// @Success      200 {array} models.Workout
// @Router       /api/workouts [get]
func ListWorkouts(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.WorkoutService.ListWorkouts(c.Request.Context())
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		if list == nil {
			list = []models.Workout{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// CreateWorkout creates a workout with its sections and exercises
// @Summary      Create workout
// @Description  A title and at least one section are required. unit is CZAS (timed) or ILOŚĆ (counted).
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        workout body workouts.Input true "Workout"
// @Success      201 {object} models.Workout
// @Failure      400 {object} types.ErrorResponse "Invalid workout"
// @Failure      404 {object} types.ErrorResponse "Referenced exercise not found"
// @Router       /api/workouts [post]
func CreateWorkout(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input workouts.Input
		if !types.BindJSONOrError(c, &input) {
			return
		}

		workout, err := deps.WorkoutService.CreateWorkout(c.Request.Context(), input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendCreated(c, workout)
	}
}

// GetWorkout retrieves one workout
// @Summary      Get workout
// @Tags         workouts
// @Produce      json
// @Param        id path int true "Workout ID"
// @Success      200 {object} models.Workout
// @Failure      404 {object} types.ErrorResponse "Workout not found"
// @Router       /api/workouts/{id} [get]
func GetWorkout(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		workout, err := deps.WorkoutService.GetWorkout(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, workout)
	}
}

// UpdateWorkout replaces a workout and all of its sections
// @Summary      Update workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        id path int true "Workout ID"
// @Param        workout body workouts.Input true "Workout"
// @Success      200 {object} models.Workout
// @Failure      400 {object} types.ErrorResponse "Invalid workout"
// @Failure      404 {object} types.ErrorResponse "Workout or exercise not found"
// @Router       /api/workouts/{id} [put]
func UpdateWorkout(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var input workouts.Input
		if !types.BindJSONOrError(c, &input) {
			return
		}

		workout, err := deps.WorkoutService.UpdateWorkout(c.Request.Context(), id, input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, workout)
	}
}

// DeleteWorkout deletes a workout and unlinks it from plans
// @Summary      Delete workout
// @Tags         workouts
// @Produce      json
// @Param        id path int true "Workout ID"
// @Success      200 {object} types.MessageResponse
// @Failure      404 {object} types.ErrorResponse "Workout not found"
// @Router       /api/workouts/{id} [delete]
func DeleteWorkout(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.WorkoutService.DeleteWorkout(c.Request.Context(), id); err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendMessage(c, "Workout deleted successfully")
	}
}
