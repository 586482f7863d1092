package analysers

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

// NewRepository creates a new analyser repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) withAnnotations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Annotations", func(db *gorm.DB) *gorm.DB {
			return db.Order("time_from ASC").Order("id ASC")
		}).
		Preload("Annotations.Clips")
}

// CreateAnalyser inserts an analyser
func (r *RepositoryImpl) CreateAnalyser(ctx context.Context, analyser *models.Analyser) error {
	if err := r.db.WithContext(ctx).Omit("Annotations").Create(analyser).Error; err != nil {
		return apperrors.StorageError("create analyser", err)
	}
	return nil
}

// GetAnalyserByID retrieves an analyser with its annotations and their clips
func (r *RepositoryImpl) GetAnalyserByID(ctx context.Context, id uint) (*models.Analyser, error) {
	var analyser models.Analyser
	if err := r.withAnnotations(ctx).First(&analyser, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("analyser", id)
		}
		return nil, apperrors.StorageError("get analyser", err)
	}
	return &analyser, nil
}

// ListAnalysers retrieves every analyser
func (r *RepositoryImpl) ListAnalysers(ctx context.Context) ([]models.Analyser, error) {
	var analysers []models.Analyser
	if err := r.withAnnotations(ctx).Order("id ASC").Find(&analysers).Error; err != nil {
		return nil, apperrors.StorageError("list analysers", err)
	}
	return analysers, nil
}

// UpdateAnalyser writes the name and video reference of an analyser
func (r *RepositoryImpl) UpdateAnalyser(ctx context.Context, analyser *models.Analyser) error {
	result := r.db.WithContext(ctx).Model(analyser).Select("name", "video_url").Updates(analyser)
	if result.Error != nil {
		return apperrors.StorageError("update analyser", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("analyser", analyser.ID)
	}
	return nil
}
