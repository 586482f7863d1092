package exercises

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api/types"
	"github.com/killallgit/planner-api/internal/models"
	"github.com/killallgit/planner-api/internal/services/exercises"
)

// ListExercises lists exercises, optionally filtered by tag
// @Summary      List exercises
// @Tags         exercises
// @Produce      json
// @Param        tag_id query int false "Only exercises carrying this tag"
// @Success      200 {array} models.Exercise
// @Router       /api/exercises [get]
func ListExercises(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		tagID, ok := types.ParseUintQuery(c, "tag_id")
		if !ok {
			return
		}

		list, err := deps.ExerciseService.ListExercises(c.Request.Context(), tagID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		if list == nil {
			list = []models.Exercise{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// CreateExercise creates an exercise
// @Summary      Create exercise
// @Description  Unknown tag ids are ignored.
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        exercise body exercises.ExerciseInput true "Exercise"
// @Success      201 {object} models.Exercise
// @Failure      400 {object} types.ErrorResponse "Missing name"
// @Router       /api/exercises [post]
func CreateExercise(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input exercises.ExerciseInput
		if !types.BindJSONOrError(c, &input) {
			return
		}

		exercise, err := deps.ExerciseService.CreateExercise(c.Request.Context(), input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendCreated(c, exercise)
	}
}

// GetExercise retrieves one exercise with its tags
// @Summary      Get exercise
// @Tags         exercises
// @Produce      json
// @Param        id path int true "Exercise ID"
// @Success      200 {object} models.Exercise
// @Failure      404 {object} types.ErrorResponse "Exercise not found"
// @Router       /api/exercises/{id} [get]
func GetExercise(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		exercise, err := deps.ExerciseService.GetExercise(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, exercise)
	}
}

// UpdateExercise replaces an exercise's fields and tags
// @Summary      Update exercise
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        id path int true "Exercise ID"
// @Param        exercise body exercises.ExerciseInput true "Exercise"
// @Success      200 {object} models.Exercise
// @Failure      404 {object} types.ErrorResponse "Exercise not found"
// @Router       /api/exercises/{id} [put]
func UpdateExercise(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var input exercises.ExerciseInput
		if !types.BindJSONOrError(c, &input) {
			return
		}

		exercise, err := deps.ExerciseService.UpdateExercise(c.Request.Context(), id, input)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, exercise)
	}
}

// DeleteExercise deletes an exercise and the clips targeting it
// @Summary      Delete exercise
// @Description  Clips targeting the exercise are deleted with their files and the owning annotations' saved flags are recomputed.
// @Tags         exercises
// @Produce      json
// @Param        id path int true "Exercise ID"
// @Success      200 {object} types.MessageResponse
// @Failure      404 {object} types.ErrorResponse "Exercise not found"
// @Router       /api/exercises/{id} [delete]
func DeleteExercise(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.ClipService.DeleteExercise(c.Request.Context(), id); err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendMessage(c, "Exercise deleted successfully")
	}
}

// ListTags lists every tag
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Success      200 {array} models.Tag
// @Router       /api/tags [get]
func ListTags(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.ExerciseService.ListTags(c.Request.Context())
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		if list == nil {
			list = []models.Tag{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// CreateTag creates a tag
// @Summary      Create tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        tag body types.TagRequest true "Tag"
// @Success      201 {object} models.Tag
// @Failure      400 {object} types.ErrorResponse "Missing name"
// @Failure      409 {object} types.ErrorResponse "Tag already exists"
// @Router       /api/tags [post]
func CreateTag(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TagRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		tag, err := deps.ExerciseService.CreateTag(c.Request.Context(), req.Name)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendCreated(c, tag)
	}
}
