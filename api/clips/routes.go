package clips

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
)

// RegisterRoutes registers clip routes on the analysers group.
// transcode guards the routes that start an ffmpeg run.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, transcode gin.HandlerFunc) {
	router.POST("/:id/annotations/:annotationId/crop-video", transcode, CropVideo(deps))
	router.POST("/annotations/:id/crop-video", transcode, CropVideoByAnnotation(deps))

	router.GET("/annotations/:id/cropped-videos", ListClips(deps))
	router.POST("/annotations/:id/cropped-videos", CreateClip(deps))

	clipsGroup := router.Group("/cropped-videos")
	{
		clipsGroup.GET("/:id", GetClip(deps))
		clipsGroup.PUT("/:id", UpdateClip(deps))
		clipsGroup.DELETE("/:id", DeleteClip(deps))
	}
}
