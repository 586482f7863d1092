package plans

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
)

// RegisterRoutes registers plan, week and scheduled workout routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListPlans(deps))
	router.POST("", CreatePlan(deps))
	router.GET("/:id", GetPlan(deps))
	router.PUT("/:id", UpdatePlan(deps))
	router.DELETE("/:id", DeletePlan(deps))
	router.GET("/:id/weeks", ListWeeks(deps))

	weeks := router.Group("/weeks")
	{
		weeks.POST("", CreateWeek(deps))
		weeks.GET("/:id", GetWeek(deps))
		weeks.PUT("/:id", UpdateWeek(deps))
		weeks.DELETE("/:id", DeleteWeek(deps))
		weeks.GET("/:id/workouts", ListWorkoutPlans(deps))
	}

	entries := router.Group("/workouts")
	{
		entries.POST("", CreateWorkoutPlan(deps))
		entries.GET("/:id", GetWorkoutPlan(deps))
		entries.PUT("/:id", UpdateWorkoutPlan(deps))
		entries.DELETE("/:id", DeleteWorkoutPlan(deps))
	}
}
