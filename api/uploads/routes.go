package uploads

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
)

// RegisterRoutes registers the upload route
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Upload(deps))
}
