package plans

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
	"github.com/killallgit/planner-api/internal/models"
	"github.com/killallgit/planner-api/internal/services/plans"
)

// ListWorkoutPlans lists the workouts scheduled in a week
// @Summary      List scheduled workouts of a week
// @Tags         plans
// @Produce      json
// @Param        id path int true "Week ID"
// @Success      200 {array} models.WorkoutPlan
// @Failure      404 {object} types.ErrorResponse "Week not found"
// @Router       /api/plans/weeks/{id}/workouts [get]
func ListWorkoutPlans(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		weekID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		list, err := deps.PlanService.ListWorkoutPlans(c.Request.Context(), weekID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		if list == nil {
			list = []models.WorkoutPlan{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// CreateWorkoutPlan schedules a workout on a day of a week
// @Summary      Schedule workout
// @Description  week_id must belong to plan_id. day_of_week is Monday..Sunday.
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        entry body plans.WorkoutPlanInput true "Scheduled workout"
// @Success      201 {object} models.WorkoutPlan
// @Failure      400 {object} types.ErrorResponse "Week does not belong to plan or bad day"
// @Failure      404 {object} types.ErrorResponse "Plan, week or workout not found"
// @Router       /api/plans/workouts [post]
func CreateWorkoutPlan(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input plans.WorkoutPlanInput
		if !types.BindJSONOrError(c, &input) {
			return
		}

		entry, err := deps.PlanService.CreateWorkoutPlan(c.Request.Context(), input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendCreated(c, entry)
	}
}

// GetWorkoutPlan retrieves one scheduled workout
// @Summary      Get scheduled workout
// @Tags         plans
// @Produce      json
// @Param        id path int true "Scheduled workout ID"
// @Success      200 {object} models.WorkoutPlan
// @Failure      404 {object} types.ErrorResponse "Not found"
// @Router       /api/plans/workouts/{id} [get]
func GetWorkoutPlan(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		entry, err := deps.PlanService.GetWorkoutPlan(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

// UpdateWorkoutPlan changes a scheduled workout
// @Summary      Update scheduled workout
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id path int true "Scheduled workout ID"
// @Param        entry body plans.WorkoutPlanInput true "Scheduled workout"
// @Success      200 {object} models.WorkoutPlan
// @Failure      400 {object} types.ErrorResponse "Invalid move"
// @Failure      404 {object} types.ErrorResponse "Not found"
// @Router       /api/plans/workouts/{id} [put]
func UpdateWorkoutPlan(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var input plans.WorkoutPlanInput
		if !types.BindJSONOrError(c, &input) {
			return
		}

		entry, err := deps.PlanService.UpdateWorkoutPlan(c.Request.Context(), id, input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

// DeleteWorkoutPlan removes a scheduled workout
// @Summary      Delete scheduled workout
// @Tags         plans
// @Produce      json
// @Param        id path int true "Scheduled workout ID"
// @Success      200 {object} types.MessageResponse
// @Failure      404 {object} types.ErrorResponse "Not found"
// @Router       /api/plans/workouts/{id} [delete]
func DeleteWorkoutPlan(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.PlanService.DeleteWorkoutPlan(c.Request.Context(), id); err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendMessage(c, "Scheduled workout deleted successfully")
	}
}
