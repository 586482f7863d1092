package types

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/internal/logging"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil || value == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid " + paramName,
			Error:   string(apperrors.ErrCodeInvalidInput),
		})
		return 0, false
	}
	return uint(value), true
}

// ParseUintQuery reads an optional uint query parameter; absent means 0
func ParseUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		SendBadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(value), true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		sendBindError(c, err)
		return false
	}
	return true
}

// BindOptionalJSON binds the body when one was sent and accepts an empty body,
// including an empty chunked body whose length is unknown up front
func BindOptionalJSON(c *gin.Context, target interface{}) bool {
	if c.Request.ContentLength == 0 || c.Request.Body == nil || c.Request.Body == http.NoBody {
		return true
	}
	if err := c.ShouldBindJSON(target); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		sendBindError(c, err)
		return false
	}
	return true
}

func sendBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:  StatusError,
		Message: "Invalid request body",
		Error:   string(apperrors.ErrCodeInvalidInput),
		Details: err.Error(),
	})
}

// SendAppError maps err onto the error envelope using its AppError code
func SendAppError(c *gin.Context, err error) {
	status := apperrors.GetHTTPCode(err)
	response := ErrorResponse{
		Status:  StatusError,
		Message: "Internal server error",
		Error:   string(apperrors.GetCode(err)),
	}
	if appErr, ok := apperrors.As(err); ok {
		response.Message = appErr.Message
		if len(appErr.Details) > 0 {
			response.Details = appErr.Details
		}
	}

	if status >= http.StatusInternalServerError {
		logging.WithComponent("api").WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	}
	c.JSON(status, response)
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Status: StatusError, Message: message, Error: string(apperrors.ErrCodeInvalidInput)})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Status: StatusError, Message: message, Error: string(apperrors.ErrCodeNotFound)})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Status: StatusError, Message: message, Error: string(apperrors.ErrCodeInternal)})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// SendMessage sends a confirmation message
func SendMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}
