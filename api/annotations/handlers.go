package annotations

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
	"github.com/killallgit/planner-api/internal/models"
	"github.com/killallgit/planner-api/internal/services/annotations"
)

// CreateAnnotation creates a new annotation for an analyser
// @Summary      Create annotation for analyser
// @Description  Create a labelled time range on the analyser's video. Times are "HH:MM:SS" strings.
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        id path int true "Analyser ID"
// @Param        annotation body annotations.Input true "Annotation data (title, color, time_from, time_to)"
// @Success      201 {object} models.Annotation "Created annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Analyser not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/analysers/{id}/annotations [post]
func CreateAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		analyserID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return // Error response already sent by utility
		}

		var input annotations.Input
		if !types.BindJSONOrError(c, &input) {
			return
		}

		annotation, err := deps.AnnotationService.CreateAnnotation(c.Request.Context(), analyserID, input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, annotation)
	}
}

// GetAnnotations retrieves all annotations for an analyser
// @Summary      Get annotations for analyser
// @Description  Retrieve all annotations of an analyser ordered by start time, each with its cropped videos
// @Tags         annotations
// @Produce      json
// @Param        id path int true "Analyser ID"
// @Success      200 {array} models.Annotation "List of annotations"
// @Failure      400 {object} types.ErrorResponse "Invalid analyser ID"
// @Failure      404 {object} types.ErrorResponse "Analyser not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/analysers/{id}/annotations [get]
func GetAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		analyserID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		list, err := deps.AnnotationService.GetAnnotationsByAnalyserID(c.Request.Context(), analyserID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		if list == nil {
			list = []models.Annotation{}
		}

		c.JSON(http.StatusOK, list)
	}
}

// GetAnnotation retrieves a single annotation
// @Summary      Get annotation
// @Tags         annotations
// @Produce      json
// @Param        id path int true "Annotation ID"
// @Success      200 {object} models.Annotation
// @Failure      400 {object} types.ErrorResponse "Invalid annotation ID"
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Router       /api/analysers/annotations/{id} [get]
func GetAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		annotationID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		annotation, err := deps.AnnotationService.GetAnnotationByID(c.Request.Context(), annotationID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, annotation)
	}
}

// UpdateAnnotation updates an existing annotation
// @Summary      Update annotation
// @Description  Update an annotation's title, description, color or time range. The saved flag is not writable.
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        id path int true "Annotation ID"
// @Param        annotation body annotations.Input true "Updated annotation data"
// @Success      200 {object} models.Annotation "Updated annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/analysers/annotations/{id} [put]
func UpdateAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		annotationID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var input annotations.Input
		if !types.BindJSONOrError(c, &input) {
			return
		}

		annotation, err := deps.AnnotationService.UpdateAnnotation(c.Request.Context(), annotationID, input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, annotation)
	}
}

// DeleteAnnotation deletes an annotation together with its clips
// @Summary      Delete annotation
// @Description  Delete an annotation, its cropped videos and their files, and exercises created only for those clips
// @Tags         annotations
// @Produce      json
// @Param        id path int true "Annotation ID"
// @Success      200 {object} types.MessageResponse "Annotation deleted successfully"
// @Failure      400 {object} types.ErrorResponse "Invalid annotation ID"
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/analysers/annotations/{id} [delete]
func DeleteAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		annotationID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.ClipService.DeleteAnnotation(c.Request.Context(), annotationID); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendMessage(c, "Annotation deleted successfully")
	}
}
