package workouts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
)

// RegisterRoutes registers workout routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListWorkouts(deps))
	router.POST("", CreateWorkout(deps))
	router.GET("/:id", GetWorkout(deps))
	router.PUT("/:id", UpdateWorkout(deps))
	router.DELETE("/:id", DeleteWorkout(deps))
}
