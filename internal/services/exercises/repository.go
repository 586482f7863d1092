package exercises

import (
	"context"
	"errors"
	"strings"

	"github.com/killallgit/planner-api/internal/models"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new exercise repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateExercise inserts an exercise and links its tags
func (r *RepositoryImpl) CreateExercise(ctx context.Context, exercise *models.Exercise) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := exercise.Tags
		exercise.Tags = []models.Tag{}
		if err := tx.Omit("Tags").Create(exercise).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		return tx.Model(exercise).Association("Tags").Append(tags)
	})
	if err != nil {
		return apperrors.StorageError("create exercise", err)
	}
	return nil
}

// GetExerciseByID retrieves an exercise with its tags
func (r *RepositoryImpl) GetExerciseByID(ctx context.Context, id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := r.db.WithContext(ctx).Preload("Tags").First(&exercise, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("exercise", id)
		}
		return nil, apperrors.StorageError("get exercise", err)
	}
	return &exercise, nil
}

// ListExercises retrieves exercises, optionally only those carrying tagID
func (r *RepositoryImpl) ListExercises(ctx context.Context, tagID uint) ([]models.Exercise, error) {
	query := r.db.WithContext(ctx).Preload("Tags").Order("exercises.id ASC")
	if tagID != 0 {
		query = query.
			Joins("JOIN exercise_tags ON exercise_tags.ex_id = exercises.id").
			Where("exercise_tags.tag_id = ?", tagID)
	}

	var exercises []models.Exercise
	if err := query.Find(&exercises).Error; err != nil {
		return nil, apperrors.StorageError("list exercises", err)
	}
	return exercises, nil
}

// UpdateExercise writes an exercise's columns and replaces its tags
func (r *RepositoryImpl) UpdateExercise(ctx context.Context, exercise *models.Exercise) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := exercise.Tags
		result := tx.Model(exercise).
			Select("name", "instructions", "enrichment", "video_url", "crop_id").
			Updates(exercise)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("exercise", exercise.ID)
		}
		return tx.Model(exercise).Association("Tags").Replace(tags)
	})
	if err != nil {
		if _, ok := apperrors.As(err); ok {
			return err
		}
		return apperrors.StorageError("update exercise", err)
	}
	return nil
}

// FindTags loads the tags with the given ids; unknown ids are skipped
func (r *RepositoryImpl) FindTags(ctx context.Context, ids []uint) ([]models.Tag, error) {
	tags := []models.Tag{}
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&tags).Error; err != nil {
		return nil, apperrors.StorageError("find tags", err)
	}
	return tags, nil
}

// CreateTag inserts a tag; duplicate names are a conflict
func (r *RepositoryImpl) CreateTag(ctx context.Context, tag *models.Tag) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Tag{}).Where("LOWER(name) = ?", strings.ToLower(tag.Name)).Count(&count).Error; err != nil {
		return apperrors.StorageError("create tag", err)
	}
	if count > 0 {
		return apperrors.New(apperrors.ErrCodeConflict, "tag already exists").WithDetail("name", tag.Name)
	}
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return apperrors.StorageError("create tag", err)
	}
	return nil
}

// ListTags retrieves every tag ordered by name
func (r *RepositoryImpl) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, apperrors.StorageError("list tags", err)
	}
	return tags, nil
}
