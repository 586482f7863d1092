package exercises

import (
	"context"

	"github.com/killallgit/planner-api/internal/models"
)

// Repository defines the interface for exercise and tag data access
type Repository interface {
	CreateExercise(ctx context.Context, exercise *models.Exercise) error
	GetExerciseByID(ctx context.Context, id uint) (*models.Exercise, error)
	ListExercises(ctx context.Context, tagID uint) ([]models.Exercise, error)
	UpdateExercise(ctx context.Context, exercise *models.Exercise) error
	FindTags(ctx context.Context, ids []uint) ([]models.Tag, error)

	CreateTag(ctx context.Context, tag *models.Tag) error
	ListTags(ctx context.Context) ([]models.Tag, error)
}

// Service defines the interface for exercise business logic.
// Deleting an exercise cascades through clips and lives in the clips service.
type Service interface {
	CreateExercise(ctx context.Context, input ExerciseInput) (*models.Exercise, error)
	GetExercise(ctx context.Context, id uint) (*models.Exercise, error)
	ListExercises(ctx context.Context, tagID uint) ([]models.Exercise, error)
	UpdateExercise(ctx context.Context, id uint, input ExerciseInput) (*models.Exercise, error)

	CreateTag(ctx context.Context, name string) (*models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
}

// ExerciseInput is the client-writable part of an exercise
type ExerciseInput struct {
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
	Enrichment   string `json:"enrichment"`
	VideoURL     string `json:"videoUrl"`
	CropID       *uint  `json:"crop_id"`
	TagIDs       []uint `json:"tag_ids"`
}
