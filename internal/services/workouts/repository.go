package workouts

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

// NewRepository creates a new workout repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) withSections(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC").Order("id ASC")
		}).
		Preload("Sections.Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("workout_exercise.position ASC").Order("workout_exercise.id ASC")
		})
}

// CreateWorkout inserts a workout with its sections and exercise instances
func (r *RepositoryImpl) CreateWorkout(ctx context.Context, workout *models.Workout) error {
	if err := r.db.WithContext(ctx).Create(workout).Error; err != nil {
		return apperrors.StorageError("create workout", err)
	}
	return nil
}

// GetWorkoutByID retrieves a workout with ordered sections and exercises
func (r *RepositoryImpl) GetWorkoutByID(ctx context.Context, id uint) (*models.Workout, error) {
	var workout models.Workout
	if err := r.withSections(ctx).First(&workout, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("workout", id)
		}
		return nil, apperrors.StorageError("get workout", err)
	}
	return &workout, nil
}

// ListWorkouts retrieves every workout, newest first
func (r *RepositoryImpl) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := r.withSections(ctx).Order("created_at DESC").Order("id DESC").Find(&workouts).Error; err != nil {
		return nil, apperrors.StorageError("list workouts", err)
	}
	return workouts, nil
}

// ReplaceWorkout updates a workout's columns and replaces all of its sections
func (r *RepositoryImpl) ReplaceWorkout(ctx context.Context, workout *models.Workout) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(workout).Select("title", "description", "duration").Updates(workout)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("workout", workout.ID)
		}
		if err := deleteSections(tx, workout.ID); err != nil {
			return err
		}
		for i := range workout.Sections {
			workout.Sections[i].ID = 0
			workout.Sections[i].WorkID = workout.ID
		}
		if len(workout.Sections) == 0 {
			return nil
		}
		return tx.Create(&workout.Sections).Error
	})
	return storageErr("update workout", err)
}

// DeleteWorkout deletes a workout and its sections and unlinks it from plans
func (r *RepositoryImpl) DeleteWorkout(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.WorkoutPlan{}).Where("work_id = ?", id).Update("work_id", nil).Error; err != nil {
			return err
		}
		if err := deleteSections(tx, id); err != nil {
			return err
		}
		result := tx.Delete(&models.Workout{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("workout", id)
		}
		return nil
	})
	return storageErr("delete workout", err)
}

// deleteSections removes a workout's sections, their join rows and exercise instances
func deleteSections(tx *gorm.DB, workoutID uint) error {
	var sectionIDs []uint
	if err := tx.Model(&models.WorkoutSection{}).Where("work_id = ?", workoutID).Pluck("id", &sectionIDs).Error; err != nil {
		return err
	}
	if len(sectionIDs) == 0 {
		return nil
	}

	var instanceIDs []uint
	if err := tx.Table("section_exercises").Where("section_id IN ?", sectionIDs).Pluck("workout_exercise_id", &instanceIDs).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM section_exercises WHERE section_id IN ?", sectionIDs).Error; err != nil {
		return err
	}
	if len(instanceIDs) > 0 {
		if err := tx.Delete(&models.WorkoutExercise{}, instanceIDs).Error; err != nil {
			return err
		}
	}
	return tx.Delete(&models.WorkoutSection{}, sectionIDs).Error
}

// MissingExercises returns the ids in ids that have no exercise row
func (r *RepositoryImpl) MissingExercises(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uint
	if err := r.db.WithContext(ctx).Model(&models.Exercise{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, apperrors.StorageError("find exercises", err)
	}
	known := make(map[uint]bool, len(found))
	for _, id := range found {
		known[id] = true
	}
	var missing []uint
	for _, id := range ids {
		if !known[id] {
			missing = append(missing, id)
			known[id] = true
		}
	}
	return missing, nil
}

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	return apperrors.StorageError(op, err)
}
