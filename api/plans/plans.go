package plans

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
	"github.com/killallgit/planner-api/internal/models"
	"github.com/killallgit/planner-api/internal/services/plans"
)

// ListPlans lists every plan
// @Summary      List plans
// @Tags         plans
// @Produce      json
// @Success      200 {array} models.Plan
// @Router       /api/plans [get]
func ListPlans(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.PlanService.ListPlans(c.Request.Context())
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		if list == nil {
			list = []models.Plan{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// CreatePlan creates a training plan
// @Summary      Create plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        plan body plans.PlanInput true "Plan"
// @Success      201 {object} models.Plan
// @Failure      400 {object} types.ErrorResponse "Missing name or bad event_date"
// @Router       /api/plans [post]
func CreatePlan(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input plans.PlanInput
		if !types.BindJSONOrError(c, &input) {
			return
		}

		plan, err := deps.PlanService.CreatePlan(c.Request.Context(), input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendCreated(c, plan)
	}
}

// GetPlan retrieves one plan with its weeks
// @Summary      Get plan
// @Tags         plans
// @Produce      json
// @Param        id path int true "Plan ID"
// @Success      200 {object} models.Plan
// @Failure      404 {object} types.ErrorResponse "Plan not found"
// @Router       /api/plans/{id} [get]
func GetPlan(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		plan, err := deps.PlanService.GetPlan(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}

// UpdatePlan changes a plan's name or event date
// @Summary      Update plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id path int true "Plan ID"
// @Param        plan body plans.PlanInput true "Plan"
// @Success      200 {object} models.Plan
// @Failure      404 {object} types.ErrorResponse "Plan not found"
// @Router       /api/plans/{id} [put]
func UpdatePlan(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var input plans.PlanInput
		if !types.BindJSONOrError(c, &input) {
			return
		}

		plan, err := deps.PlanService.UpdatePlan(c.Request.Context(), id, input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}

// DeletePlan deletes a plan with its weeks and scheduled workouts
// @Summary      Delete plan
// @Tags         plans
// @Produce      json
// @Param        id path int true "Plan ID"
// @Success      200 {object} types.MessageResponse
// @Failure      404 {object} types.ErrorResponse "Plan not found"
// @Router       /api/plans/{id} [delete]
func DeletePlan(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.PlanService.DeletePlan(c.Request.Context(), id); err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendMessage(c, "Plan deleted successfully")
	}
}
