package exercises

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
)

// RegisterRoutes registers exercise routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListExercises(deps))
	router.POST("", CreateExercise(deps))
	router.GET("/:id", GetExercise(deps))
	router.PUT("/:id", UpdateExercise(deps))
	router.DELETE("/:id", DeleteExercise(deps))
}

// RegisterTagRoutes registers tag routes
func RegisterTagRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListTags(deps))
	router.POST("", CreateTag(deps))
}
