package plans

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
	"github.com/killallgit/planner-api/internal/models"
	"github.com/killallgit/planner-api/internal/services/plans"
)

// ListWeeks lists a plan's weeks ordered by position
// @Summary      List weeks of a plan
// @Tags         plans
// @Produce      json
// @Param        id path int true "Plan ID"
// @Success      200 {array} models.WeekPlan
// @Failure      404 {object} types.ErrorResponse "Plan not found"
// @Router       /api/plans/{id}/weeks [get]
func ListWeeks(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		planID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		list, err := deps.PlanService.ListWeeks(c.Request.Context(), planID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		if list == nil {
			list = []models.WeekPlan{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// CreateWeek adds a week to a plan
// @Summary      Create week
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        week body plans.WeekInput true "Week"
// @Success      201 {object} models.WeekPlan
// @Failure      404 {object} types.ErrorResponse "Plan not found"
// @Router       /api/plans/weeks [post]
func CreateWeek(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input plans.WeekInput
		if !types.BindJSONOrError(c, &input) {
			return
		}

		week, err := deps.PlanService.CreateWeek(c.Request.Context(), input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendCreated(c, week)
	}
}

// GetWeek retrieves one week with its scheduled workouts
// @Summary      Get week
// @Tags         plans
// @Produce      json
// @Param        id path int true "Week ID"
// @Success      200 {object} models.WeekPlan
// @Failure      404 {object} types.ErrorResponse "Week not found"
// @Router       /api/plans/weeks/{id} [get]
func GetWeek(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		week, err := deps.PlanService.GetWeek(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, week)
	}
}

// UpdateWeek changes a week's position or notes
// @Summary      Update week
// @Description  A week cannot be moved to another plan.
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id path int true "Week ID"
// @Param        week body plans.WeekInput true "Week"
// @Success      200 {object} models.WeekPlan
// @Failure      400 {object} types.ErrorResponse "Week belongs to another plan"
// @Failure      404 {object} types.ErrorResponse "Week not found"
// @Router       /api/plans/weeks/{id} [put]
func UpdateWeek(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var input plans.WeekInput
		if !types.BindJSONOrError(c, &input) {
			return
		}

		week, err := deps.PlanService.UpdateWeek(c.Request.Context(), id, input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, week)
	}
}

// DeleteWeek deletes a week and its scheduled workouts
// @Summary      Delete week
// @Tags         plans
// @Produce      json
// @Param        id path int true "Week ID"
// @Success      200 {object} types.MessageResponse
// @Failure      404 {object} types.ErrorResponse "Week not found"
// @Router       /api/plans/weeks/{id} [delete]
func DeleteWeek(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.PlanService.DeleteWeek(c.Request.Context(), id); err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendMessage(c, "Week deleted successfully")
	}
}
