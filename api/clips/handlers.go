package clips

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
	"github.com/killallgit/planner-api/internal/models"
	"github.com/killallgit/planner-api/internal/services/clips"
)

// CropVideo cuts an annotation's time range out of its analyser's video
// @Summary Extract a clip for an annotation
// @Description Cut the annotation's [time_from, time_to) range out of the analyser video with ffmpeg,
// @Description store the file next to the source (or in the uploads/temp directory when that is not writable)
// @Description and record it as a cropped video. The annotation is marked saved.
// @Description exercise_id is optional and defaults to the configured placeholder exercise.
// @Tags clips
// @Accept json
// @Produce json
// @Param analyserId path int true "Analyser ID"
// @Param annotationId path int true "Annotation ID"
// @Param request body clips.ExtractRequest false "Optional target exercise"
// @Success 201 {object} models.Clip "Created clip"
// @Failure 400 {object} types.ErrorResponse "Invalid time range or remote video"
// @Failure 403 {object} types.ErrorResponse "Video unreadable or no writable output directory"
// @Failure 404 {object} types.ErrorResponse "Analyser, annotation, exercise or video file not found"
// @Failure 500 {object} types.ErrorResponse "ffmpeg unavailable or failed"
// @Router /api/analysers/{analyserId}/annotations/{annotationId}/crop-video [post]
func CropVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		analyserID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		annotationID, ok := types.ParseUintParam(c, "annotationId")
		if !ok {
			return
		}
		extract(c, deps, analyserID, annotationID)
	}
}

// CropVideoByAnnotation extracts a clip addressed by annotation only
// @Summary Extract a clip for an annotation (annotation path)
// @Description Same as the analyser-scoped route; the analyser is taken from the annotation.
// @Tags clips
// @Accept json
// @Produce json
// @Param id path int true "Annotation ID"
// @Param request body clips.ExtractRequest false "Optional target exercise"
// @Success 201 {object} models.Clip "Created clip"
// @Failure 400 {object} types.ErrorResponse "Invalid time range or remote video"
// @Failure 404 {object} types.ErrorResponse "Annotation, exercise or video file not found"
// @Failure 500 {object} types.ErrorResponse "ffmpeg unavailable or failed"
// @Router /api/analysers/annotations/{id}/crop-video [post]
func CropVideoByAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		annotationID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		extract(c, deps, 0, annotationID)
	}
}

func extract(c *gin.Context, deps *types.Dependencies, analyserID, annotationID uint) {
	var req clips.ExtractRequest
	if !types.BindOptionalJSON(c, &req) {
		return
	}

	clip, err := deps.ClipService.ExtractClip(c.Request.Context(), analyserID, annotationID, req)
	if err != nil {
		types.SendAppError(c, err)
		return
	}

	types.SendCreated(c, clip)
}

// ListClips lists the cropped videos of an annotation
// @Summary List cropped videos of an annotation
// @Tags clips
// @Produce json
// @Param id path int true "Annotation ID"
// @Success 200 {array} models.Clip
// @Failure 404 {object} types.ErrorResponse "Annotation not found"
// @Router /api/analysers/annotations/{id}/cropped-videos [get]
func ListClips(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		annotationID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		list, err := deps.ClipService.ListClips(c.Request.Context(), annotationID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		if list == nil {
			list = []models.Clip{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// CreateClip registers an already existing file as a cropped video
// @Summary Register a cropped video
// @Description Record a clip without running ffmpeg. The annotation is marked saved.
// @Tags clips
// @Accept json
// @Produce json
// @Param id path int true "Annotation ID"
// @Param clip body clips.ClipInput true "Clip reference and optional exercise"
// @Success 201 {object} models.Clip
// @Failure 400 {object} types.ErrorResponse "Missing video_url"
// @Failure 404 {object} types.ErrorResponse "Annotation or exercise not found"
// @Router /api/analysers/annotations/{id}/cropped-videos [post]
func CreateClip(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		annotationID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var input clips.ClipInput
		if !types.BindJSONOrError(c, &input) {
			return
		}
		input.AnnoID = annotationID

		clip, err := deps.ClipService.CreateClip(c.Request.Context(), input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendCreated(c, clip)
	}
}

// GetClip retrieves a cropped video
// @Summary Get cropped video
// @Tags clips
// @Produce json
// @Param id path int true "Clip ID"
// @Success 200 {object} models.Clip
// @Failure 404 {object} types.ErrorResponse "Clip not found"
// @Router /api/analysers/cropped-videos/{id} [get]
func GetClip(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		clip, err := deps.ClipService.GetClip(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, clip)
	}
}

// UpdateClip changes a cropped video's annotation, reference or exercise
// @Summary Update cropped video
// @Tags clips
// @Accept json
// @Produce json
// @Param id path int true "Clip ID"
// @Param clip body clips.ClipInput true "Fields to change"
// @Success 200 {object} models.Clip
// @Failure 404 {object} types.ErrorResponse "Clip, annotation or exercise not found"
// @Router /api/analysers/cropped-videos/{id} [put]
func UpdateClip(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var input clips.ClipInput
		if !types.BindJSONOrError(c, &input) {
			return
		}

		clip, err := deps.ClipService.UpdateClip(c.Request.Context(), id, input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, clip)
	}
}

// DeleteClip removes a cropped video and its file
// @Summary Delete cropped video
// @Tags clips
// @Produce json
// @Param id path int true "Clip ID"
// @Success 200 {object} types.MessageResponse
// @Failure 404 {object} types.ErrorResponse "Clip not found"
// @Router /api/analysers/cropped-videos/{id} [delete]
func DeleteClip(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.ClipService.DeleteClip(c.Request.Context(), id); err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendMessage(c, "Cropped video deleted successfully")
	}
}
