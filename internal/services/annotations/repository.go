package annotations

import (
	"context"
	"errors"

	"github.com/killallgit/planner-api/internal/models"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new annotation repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateAnnotation creates a new annotation in the database
func (r *RepositoryImpl) CreateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	if err := r.db.WithContext(ctx).Omit("Clips").Create(annotation).Error; err != nil {
		return apperrors.StorageError("create annotation", err)
	}
	return nil
}

// GetAnnotationByID retrieves an annotation and its clips
func (r *RepositoryImpl) GetAnnotationByID(ctx context.Context, id uint) (*models.Annotation, error) {
	var annotation models.Annotation
	if err := r.db.WithContext(ctx).Preload("Clips").First(&annotation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("annotation", id)
		}
		return nil, apperrors.StorageError("get annotation", err)
	}
	return &annotation, nil
}

// GetAnnotationsByAnalyserID retrieves all annotations of an analyser ordered by start time
func (r *RepositoryImpl) GetAnnotationsByAnalyserID(ctx context.Context, analyserID uint) ([]models.Annotation, error) {
	var annotations []models.Annotation
	if err := r.db.WithContext(ctx).
		Preload("Clips").
		Where("analyser_id = ?", analyserID).
		Order("time_from ASC").
		Order("id ASC").
		Find(&annotations).Error; err != nil {
		return nil, apperrors.StorageError("list annotations", err)
	}
	return annotations, nil
}

// AnalyserExists reports whether an analyser row exists
func (r *RepositoryImpl) AnalyserExists(ctx context.Context, analyserID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Analyser{}).Where("id = ?", analyserID).Count(&count).Error; err != nil {
		return false, apperrors.StorageError("get analyser", err)
	}
	return count > 0, nil
}

// UpdateAnnotation writes the client-editable columns of an annotation
func (r *RepositoryImpl) UpdateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	result := r.db.WithContext(ctx).
		Model(annotation).
		Select("analyser_id", "time_from", "time_to", "title", "description", "color").
		Updates(annotation)
	if result.Error != nil {
		return apperrors.StorageError("update annotation", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("annotation", annotation.ID)
	}
	return nil
}
