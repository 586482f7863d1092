package annotations

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
)

// RegisterRoutes registers annotation-related routes on the analysers group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// Annotations nested under an analyser
	router.POST("/:id/annotations", CreateAnnotation(deps))
	router.GET("/:id/annotations", GetAnnotations(deps))

	// Direct annotation endpoints (not nested under analysers)
	annotationsGroup := router.Group("/annotations")
	{
		annotationsGroup.GET("/:id", GetAnnotation(deps))
		annotationsGroup.PUT("/:id", UpdateAnnotation(deps))
		annotationsGroup.DELETE("/:id", DeleteAnnotation(deps))
	}
}
