package uploads

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
)

// Upload stores a video or image under the public uploads directory
// @Summary      Upload media
// @Description  Store a file under a uuid-prefixed sanitized name and return its public "/uploads/..." URL.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Video or image"
// @Success      200 {object} types.UploadResponse
// @Failure      400 {object} types.ErrorResponse "Missing file or unsupported type"
// @Failure      413 {object} types.ErrorResponse "File too large"
// @Router       /api/upload [post]
func Upload(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				c.JSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "File too large",
					Error:   string(apperrors.ErrCodeInvalidInput),
					Details: map[string]int64{"limit": maxErr.Limit},
				})
				return
			}
			types.SendBadRequest(c, "file field is required")
			return
		}

		file, err := header.Open()
		if err != nil {
			types.SendAppError(c, apperrors.Wrap(err, apperrors.ErrCodeInvalidInput, "cannot read uploaded file"))
			return
		}
		defer file.Close()

		url, err := deps.UploadService.Save(c.Request.Context(), header.Filename, file)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.UploadResponse{URL: url})
	}
}
