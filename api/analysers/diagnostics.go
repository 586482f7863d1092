package analysers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
)

// CheckFFmpeg reports whether clips can be extracted on this host
// @Summary      Check ffmpeg availability
// @Description  Locate ffmpeg through PATH and the configured fallback locations and report its version.
// @Description  An unavailable transcoder is reported with status "error" and a 200 response.
// @Tags         diagnostics
// @Produce      json
// @Success      200 {object} types.TranscoderStatusResponse
// @Router       /api/analysers/check-ffmpeg [get]
func CheckFFmpeg(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		avail := deps.ClipService.TranscoderStatus(c.Request.Context())

		status := types.StatusOK
		if !avail.Available {
			status = types.StatusError
		}
		c.JSON(http.StatusOK, types.TranscoderStatusResponse{
			BaseResponse: types.BaseResponse{Status: status, Message: avail.Message},
			Version:      avail.Version,
			Path:         avail.Path,
			Checked:      avail.Checked,
		})
	}
}

// CheckFile runs the video lookup for a reference and reports where it was found
// @Summary      Check a video reference
// @Description  Resolve a stored video reference the same way clip extraction does, including the
// @Description  fallback mount roots, and report the file size and modification time.
// @Tags         diagnostics
// @Produce      json
// @Param        file_path query string true "Stored video reference, e.g. /uploads/squat.mp4"
// @Success      200 {object} types.FileCheckResponse
// @Failure      400 {object} types.ErrorResponse "file_path missing"
// @Router       /api/analysers/check-file [get]
func CheckFile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := strings.TrimSpace(c.Query("file_path"))
		if ref == "" {
			types.SendBadRequest(c, "file_path query parameter is required")
			return
		}

		report, err := deps.Resolver.Inspect(ref)
		if err != nil {
			response := types.FileCheckResponse{
				BaseResponse: types.BaseResponse{Status: types.StatusError, Message: err.Error()},
				Checked:      deps.Resolver.Candidates(ref),
			}
			if appErr, ok := apperrors.As(err); ok {
				response.Message = appErr.Message
				if checked, ok := appErr.Details["checked_paths"].([]string); ok {
					response.Checked = checked
				}
			}
			c.JSON(http.StatusOK, response)
			return
		}

		c.JSON(http.StatusOK, types.FileCheckResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "File found"},
			Path:         report.Path,
			Size:         report.Size,
			Modified:     float64(report.Modified.UnixNano()) / 1e9,
			Checked:      report.Checked,
		})
	}
}
