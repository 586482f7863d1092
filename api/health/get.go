package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports database connectivity and whether ffmpeg is available for clip extraction
// @Tags         health
// @Produce      json
// @Success      200 {object} object "Service is healthy"
// @Failure      503 {object} object "Database unreachable"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
		code := http.StatusOK

		// Add database status
		if deps != nil && deps.DB != nil {
			dbStatus := getDatabaseStatus(deps)
			if dbStatus["status"] != "healthy" {
				response["status"] = "unhealthy"
				code = http.StatusServiceUnavailable
			}
			response["database"] = dbStatus
		} else {
			response["database"] = gin.H{"status": "not configured"}
		}

		// A missing transcoder only disables clip extraction
		if deps != nil && deps.ClipService != nil {
			avail := deps.ClipService.TranscoderStatus(c.Request.Context())
			transcoder := gin.H{"available": avail.Available, "message": avail.Message}
			if avail.Version != "" {
				transcoder["version"] = avail.Version
			}
			response["transcoder"] = transcoder
		}

		c.JSON(code, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}
