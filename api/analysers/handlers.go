package analysers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
	"github.com/killallgit/planner-api/internal/models"
	"github.com/killallgit/planner-api/internal/services/analysers"
)

// ListAnalysers lists every analyser with its annotations
// @Summary      List analysers
// @Tags         analysers
// @Produce      json
// @Success      200 {array} models.Analyser
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/analysers [get]
func ListAnalysers(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.AnalyserService.ListAnalysers(c.Request.Context())
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		if list == nil {
			list = []models.Analyser{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// CreateAnalyser creates an analyser for a video
// @Summary      Create analyser
// @Description  Create an analyser for a video reference, usually a "/uploads/..." URL returned by the upload endpoint
// @Tags         analysers
// @Accept       json
// @Produce      json
// @Param        analyser body analysers.Input true "Name and video reference"
// @Success      201 {object} models.Analyser
// @Failure      400 {object} types.ErrorResponse "Missing name or video_url"
// @Router       /api/analysers [post]
func CreateAnalyser(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input analysers.Input
		if !types.BindJSONOrError(c, &input) {
			return
		}

		analyser, err := deps.AnalyserService.CreateAnalyser(c.Request.Context(), input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendCreated(c, analyser)
	}
}

// GetAnalyser retrieves one analyser
// @Summary      Get analyser
// @Tags         analysers
// @Produce      json
// @Param        id path int true "Analyser ID"
// @Success      200 {object} models.Analyser
// @Failure      404 {object} types.ErrorResponse "Analyser not found"
// @Router       /api/analysers/{id} [get]
func GetAnalyser(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		analyser, err := deps.AnalyserService.GetAnalyser(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, analyser)
	}
}

// UpdateAnalyser renames an analyser or changes its video
// @Summary      Update analyser
// @Tags         analysers
// @Accept       json
// @Produce      json
// @Param        id path int true "Analyser ID"
// @Param        analyser body analysers.Input true "Name and video reference"
// @Success      200 {object} models.Analyser
// @Failure      400 {object} types.ErrorResponse "Missing name or video_url"
// @Failure      404 {object} types.ErrorResponse "Analyser not found"
// @Router       /api/analysers/{id} [put]
func UpdateAnalyser(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var input analysers.Input
		if !types.BindJSONOrError(c, &input) {
			return
		}

		analyser, err := deps.AnalyserService.UpdateAnalyser(c.Request.Context(), id, input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, analyser)
	}
}

// DeleteAnalyser deletes an analyser and everything its annotations own
// @Summary      Delete analyser
// @Description  Delete an analyser. Every annotation is removed with its cropped videos and their files.
// @Tags         analysers
// @Produce      json
// @Param        id path int true "Analyser ID"
// @Success      200 {object} types.MessageResponse
// @Failure      404 {object} types.ErrorResponse "Analyser not found"
// @Router       /api/analysers/{id} [delete]
func DeleteAnalyser(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.ClipService.DeleteAnalyser(c.Request.Context(), id); err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendMessage(c, "Analyser deleted successfully")
	}
}
