package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
)

// Get handles version requests
// @Summary      Service information
// @Tags         health
// @Produce      json
// @Success      200 {object} object
// @Router       / [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	version := "dev"
	if deps != nil && deps.Version != "" {
		version = deps.Version
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Workout Planner API",
			"version":     version,
			"description": "API for workout planning and exercise video analysis",
			"status":      "running",
		})
	}
}
