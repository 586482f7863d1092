package exercises

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/killallgit/planner-api/internal/database"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) Service {
	t.Helper()
	conn, err := database.Initialize(filepath.Join(t.TempDir(), "exercises.db"), false)
	require.NoError(t, err)
	require.NoError(t, conn.Migrate())
	t.Cleanup(func() { conn.Close() })
	return NewService(NewRepository(conn.DB))
}

func TestServiceImpl_Tags(t *testing.T) {
	ctx := context.Background()
	service := setupService(t)

	legs, err := service.CreateTag(ctx, " legs ")
	require.NoError(t, err)
	assert.Equal(t, "legs", legs.Name)

	_, err = service.CreateTag(ctx, "Legs")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConflict))

	_, err = service.CreateTag(ctx, "")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))

	_, err = service.CreateTag(ctx, "core")
	require.NoError(t, err)

	tags, err := service.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "core", tags[0].Name)
}

func TestServiceImpl_Exercises(t *testing.T) {
	ctx := context.Background()
	service := setupService(t)

	legs, err := service.CreateTag(ctx, "legs")
	require.NoError(t, err)
	core, err := service.CreateTag(ctx, "core")
	require.NoError(t, err)

	t.Run("create links known tags and ignores unknown ones", func(t *testing.T) {
		exercise, err := service.CreateExercise(ctx, ExerciseInput{
			Name:     "Squat",
			VideoURL: "/uploads/squat.mp4",
			TagIDs:   []uint{legs.ID, 999},
		})
		require.NoError(t, err)
		require.Len(t, exercise.Tags, 1)
		assert.Equal(t, "legs", exercise.Tags[0].Name)

		loaded, err := service.GetExercise(ctx, exercise.ID)
		require.NoError(t, err)
		assert.Len(t, loaded.Tags, 1)
		assert.Equal(t, "/uploads/squat.mp4", loaded.VideoURL)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := service.CreateExercise(ctx, ExerciseInput{})
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))
	})

	t.Run("update replaces tags", func(t *testing.T) {
		exercise, err := service.CreateExercise(ctx, ExerciseInput{Name: "Plank", TagIDs: []uint{legs.ID}})
		require.NoError(t, err)

		updated, err := service.UpdateExercise(ctx, exercise.ID, ExerciseInput{
			Name:         "Side plank",
			Instructions: "hold",
			TagIDs:       []uint{core.ID},
		})
		require.NoError(t, err)
		assert.Equal(t, "Side plank", updated.Name)

		loaded, err := service.GetExercise(ctx, exercise.ID)
		require.NoError(t, err)
		require.Len(t, loaded.Tags, 1)
		assert.Equal(t, "core", loaded.Tags[0].Name)
		assert.Equal(t, "hold", loaded.Instructions)

		_, err = service.UpdateExercise(ctx, 999, ExerciseInput{Name: "x"})
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})

	t.Run("list filters by tag", func(t *testing.T) {
		all, err := service.ListExercises(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		coreOnly, err := service.ListExercises(ctx, core.ID)
		require.NoError(t, err)
		require.Len(t, coreOnly, 1)
		assert.Equal(t, "Side plank", coreOnly[0].Name)
	})
}
