package analysers

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/killallgit/planner-api/internal/database"
	"github.com/killallgit/planner-api/internal/models"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (Service, *database.DB) {
	t.Helper()
	conn, err := database.Initialize(filepath.Join(t.TempDir(), "analysers.db"), false)
	require.NoError(t, err)
	require.NoError(t, conn.Migrate())
	t.Cleanup(func() { conn.Close() })
	return NewService(NewRepository(conn.DB)), conn
}

func TestServiceImpl_CreateAnalyser(t *testing.T) {
	ctx := context.Background()
	service, _ := setupService(t)

	tests := []struct {
		name    string
		input   Input
		wantErr apperrors.ErrorCode
	}{
		{name: "valid", input: Input{Name: "Squat", VideoURL: "/uploads/squat.mp4"}},
		{name: "missing name", input: Input{VideoURL: "/uploads/squat.mp4"}, wantErr: apperrors.ErrCodeMissingField},
		{name: "missing video", input: Input{Name: "Squat"}, wantErr: apperrors.ErrCodeMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyser, err := service.CreateAnalyser(ctx, tt.input)
			if tt.wantErr != "" {
				assert.True(t, apperrors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, analyser.ID)
			assert.NotNil(t, analyser.Annotations)
		})
	}
}

func TestServiceImpl_GetAnalyser(t *testing.T) {
	ctx := context.Background()
	service, conn := setupService(t)

	analyser, err := service.CreateAnalyser(ctx, Input{Name: "Lunge", VideoURL: "/uploads/lunge.mp4"})
	require.NoError(t, err)

	late := models.NewClockTime(0, 1, 0)
	early := models.NewClockTime(0, 0, 5)
	require.NoError(t, conn.Create(&models.Annotation{AnalyserID: analyser.ID, TimeFrom: &late, Title: "late", Color: "#111"}).Error)
	first := models.Annotation{AnalyserID: analyser.ID, TimeFrom: &early, Title: "early", Color: "#222", Saved: true}
	require.NoError(t, conn.Create(&first).Error)
	require.NoError(t, conn.Create(&models.Clip{AnnoID: first.ID, VideoURL: "/uploads/lunge_crop_1.mp4", CropID: 1}).Error)

	loaded, err := service.GetAnalyser(ctx, analyser.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Annotations, 2)
	assert.Equal(t, "early", loaded.Annotations[0].Title)
	require.Len(t, loaded.Annotations[0].Clips, 1)
	assert.Equal(t, "/uploads/lunge_crop_1.mp4", loaded.Annotations[0].Clips[0].VideoURL)

	all, err := service.ListAnalysers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = service.GetAnalyser(ctx, 404)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}

func TestServiceImpl_UpdateAnalyser(t *testing.T) {
	ctx := context.Background()
	service, _ := setupService(t)

	analyser, err := service.CreateAnalyser(ctx, Input{Name: "Press", VideoURL: "/uploads/press.mp4"})
	require.NoError(t, err)

	updated, err := service.UpdateAnalyser(ctx, analyser.ID, Input{Name: "Overhead press", VideoURL: "/srv/videos/press.mp4"})
	require.NoError(t, err)
	assert.Equal(t, "Overhead press", updated.Name)

	reloaded, err := service.GetAnalyser(ctx, analyser.ID)
	require.NoError(t, err)
	assert.Equal(t, "/srv/videos/press.mp4", reloaded.VideoURL)

	_, err = service.UpdateAnalyser(ctx, 999, Input{Name: "x", VideoURL: "y"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

	_, err = service.UpdateAnalyser(ctx, analyser.ID, Input{Name: "x"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))
}
