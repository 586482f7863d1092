package analysers

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
)

// RegisterRoutes registers analyser CRUD and media diagnostics
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListAnalysers(deps))
	router.POST("", CreateAnalyser(deps))

	// Diagnostics
	router.GET("/check-ffmpeg", CheckFFmpeg(deps))
	router.GET("/check-file", CheckFile(deps))

	router.GET("/:id", GetAnalyser(deps))
	router.PUT("/:id", UpdateAnalyser(deps))
	router.DELETE("/:id", DeleteAnalyser(deps))
}
