package annotations

import (
	"context"

	"github.com/killallgit/planner-api/internal/models"
)

// Repository defines the interface for annotation data access
type Repository interface {
	// Create operations
	CreateAnnotation(ctx context.Context, annotation *models.Annotation) error

	// Read operations
	GetAnnotationByID(ctx context.Context, id uint) (*models.Annotation, error)
	GetAnnotationsByAnalyserID(ctx context.Context, analyserID uint) ([]models.Annotation, error)
	AnalyserExists(ctx context.Context, analyserID uint) (bool, error)

	// Update operations
	UpdateAnnotation(ctx context.Context, annotation *models.Annotation) error
}

// Service defines the interface for annotation business logic.
// Deleting an annotation cascades through its clips and lives in the clips service.
type Service interface {
	// Create operations
	CreateAnnotation(ctx context.Context, analyserID uint, input Input) (*models.Annotation, error)

	// Read operations
	GetAnnotationByID(ctx context.Context, id uint) (*models.Annotation, error)
	GetAnnotationsByAnalyserID(ctx context.Context, analyserID uint) ([]models.Annotation, error)

	// Update operations
	UpdateAnnotation(ctx context.Context, id uint, input Input) (*models.Annotation, error)
}

// Input is the client-writable part of an annotation.
// The saved flag follows the clip lifecycle and is never taken from input.
type Input struct {
	AnalyserID  uint              `json:"analyser_id,omitempty"`
	TimeFrom    *models.ClockTime `json:"time_from"`
	TimeTo      *models.ClockTime `json:"time_to"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Color       string            `json:"color"`
}
