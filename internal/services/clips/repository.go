package clips

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

// NewRepository creates a new clip repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// Transaction runs fn inside a database transaction
func (r *RepositoryImpl) Transaction(ctx context.Context, fn func(tx Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&RepositoryImpl{db: tx})
	})
}

func (r *RepositoryImpl) first(ctx context.Context, dest interface{}, resource string, id uint) error {
	if err := r.db.WithContext(ctx).First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound(resource, id)
		}
		return apperrors.StorageError("get "+resource, err)
	}
	return nil
}

// GetAnalyser retrieves an analyser by its ID
func (r *RepositoryImpl) GetAnalyser(ctx context.Context, id uint) (*models.Analyser, error) {
	var analyser models.Analyser
	if err := r.first(ctx, &analyser, "analyser", id); err != nil {
		return nil, err
	}
	return &analyser, nil
}

// GetAnnotation retrieves an annotation by its ID
func (r *RepositoryImpl) GetAnnotation(ctx context.Context, id uint) (*models.Annotation, error) {
	var annotation models.Annotation
	if err := r.first(ctx, &annotation, "annotation", id); err != nil {
		return nil, err
	}
	return &annotation, nil
}

// ListAnnotationsByAnalyser retrieves every annotation of an analyser
func (r *RepositoryImpl) ListAnnotationsByAnalyser(ctx context.Context, analyserID uint) ([]models.Annotation, error) {
	var annotations []models.Annotation
	if err := r.db.WithContext(ctx).Where("analyser_id = ?", analyserID).Order("id").Find(&annotations).Error; err != nil {
		return nil, apperrors.StorageError("list annotations", err)
	}
	return annotations, nil
}

// GetExercise retrieves an exercise by its ID
func (r *RepositoryImpl) GetExercise(ctx context.Context, id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := r.first(ctx, &exercise, "exercise", id); err != nil {
		return nil, err
	}
	return &exercise, nil
}

// GetClip retrieves a clip by its ID
func (r *RepositoryImpl) GetClip(ctx context.Context, id uint) (*models.Clip, error) {
	var clip models.Clip
	if err := r.first(ctx, &clip, "cropped video", id); err != nil {
		return nil, err
	}
	return &clip, nil
}

// ListClipsByAnnotation retrieves the clips cut for an annotation
func (r *RepositoryImpl) ListClipsByAnnotation(ctx context.Context, annotationID uint) ([]models.Clip, error) {
	var clips []models.Clip
	if err := r.db.WithContext(ctx).Where("anno_id = ?", annotationID).Order("id").Find(&clips).Error; err != nil {
		return nil, apperrors.StorageError("list cropped videos", err)
	}
	return clips, nil
}

// ListClipsByExercise retrieves the clips that target an exercise
func (r *RepositoryImpl) ListClipsByExercise(ctx context.Context, exerciseID uint) ([]models.Clip, error) {
	var clips []models.Clip
	if err := r.db.WithContext(ctx).Where("crop_id = ?", exerciseID).Order("id").Find(&clips).Error; err != nil {
		return nil, apperrors.StorageError("list cropped videos", err)
	}
	return clips, nil
}

// CountClipsByAnnotation counts the clips cut for an annotation
func (r *RepositoryImpl) CountClipsByAnnotation(ctx context.Context, annotationID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Clip{}).Where("anno_id = ?", annotationID).Count(&count).Error; err != nil {
		return 0, apperrors.StorageError("count cropped videos", err)
	}
	return count, nil
}

// CountClipsByExerciseOutside counts clips targeting exerciseID that belong to other annotations
func (r *RepositoryImpl) CountClipsByExerciseOutside(ctx context.Context, exerciseID, annotationID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Clip{}).
		Where("crop_id = ? AND anno_id <> ?", exerciseID, annotationID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.StorageError("count cropped videos", err)
	}
	return count, nil
}

// ClipURLExists reports whether any clip stores videoURL
func (r *RepositoryImpl) ClipURLExists(ctx context.Context, videoURL string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Clip{}).Where("video_url = ?", videoURL).Count(&count).Error; err != nil {
		return false, apperrors.StorageError("count cropped videos", err)
	}
	return count > 0, nil
}

// AnalyserURLExists reports whether any analyser uses videoURL as its source
func (r *RepositoryImpl) AnalyserURLExists(ctx context.Context, videoURL string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Analyser{}).Where("video_url = ?", videoURL).Count(&count).Error; err != nil {
		return false, apperrors.StorageError("count analysers", err)
	}
	return count > 0, nil
}

// CreateClip inserts a clip
func (r *RepositoryImpl) CreateClip(ctx context.Context, clip *models.Clip) error {
	if err := r.db.WithContext(ctx).Create(clip).Error; err != nil {
		return apperrors.StorageError("create cropped video", err)
	}
	return nil
}

// UpdateClip saves every column of an existing clip
func (r *RepositoryImpl) UpdateClip(ctx context.Context, clip *models.Clip) error {
	result := r.db.WithContext(ctx).Model(clip).Select("anno_id", "video_url", "crop_id").Updates(clip)
	if result.Error != nil {
		return apperrors.StorageError("update cropped video", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("cropped video", clip.ID)
	}
	return nil
}

// SetAnnotationSaved updates the saved flag of an annotation
func (r *RepositoryImpl) SetAnnotationSaved(ctx context.Context, annotationID uint, saved bool) error {
	result := r.db.WithContext(ctx).Model(&models.Annotation{}).
		Where("id = ?", annotationID).
		Update("saved", saved)
	if result.Error != nil {
		return apperrors.StorageError("update annotation", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("annotation", annotationID)
	}
	return nil
}

func (r *RepositoryImpl) deleteByID(ctx context.Context, model interface{}, resource string, id uint) error {
	result := r.db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return apperrors.StorageError("delete "+resource, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(resource, id)
	}
	return nil
}

// DeleteClip deletes a clip row
func (r *RepositoryImpl) DeleteClip(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &models.Clip{}, "cropped video", id)
}

// DeleteAnnotation deletes an annotation row
func (r *RepositoryImpl) DeleteAnnotation(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &models.Annotation{}, "annotation", id)
}

// DeleteExercise detaches an exercise's tags and deletes its row
func (r *RepositoryImpl) DeleteExercise(ctx context.Context, id uint) error {
	exercise := models.Exercise{ID: id}
	if err := r.db.WithContext(ctx).Model(&exercise).Association("Tags").Clear(); err != nil {
		return apperrors.StorageError("detach exercise tags", err)
	}
	return r.deleteByID(ctx, &models.Exercise{}, "exercise", id)
}

// DeleteAnalyser deletes an analyser row
func (r *RepositoryImpl) DeleteAnalyser(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &models.Analyser{}, "analyser", id)
}
