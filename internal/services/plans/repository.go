package plans

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

// NewRepository creates a new plan repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

func orderWeeks(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC").Order("id ASC")
}

func orderEntries(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func first(query *gorm.DB, dest interface{}, resource string, id uint) error {
	if err := query.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound(resource, id)
		}
		return apperrors.StorageError("get "+resource, err)
	}
	return nil
}

func updated(result *gorm.DB, op, resource string, id uint) error {
	if result.Error != nil {
		return apperrors.StorageError(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(resource, id)
	}
	return nil
}

// CreatePlan inserts a plan
func (r *RepositoryImpl) CreatePlan(ctx context.Context, plan *models.Plan) error {
	if err := r.db.WithContext(ctx).Omit("Weeks").Create(plan).Error; err != nil {
		return apperrors.StorageError("create plan", err)
	}
	return nil
}

// GetPlanByID retrieves a plan with its weeks and their scheduled workouts
func (r *RepositoryImpl) GetPlanByID(ctx context.Context, id uint) (*models.Plan, error) {
	var plan models.Plan
	query := r.db.WithContext(ctx).Preload("Weeks", orderWeeks).Preload("Weeks.Workouts", orderEntries)
	if err := first(query, &plan, "plan", id); err != nil {
		return nil, err
	}
	return &plan, nil
}

// ListPlans retrieves every plan ordered by event date
func (r *RepositoryImpl) ListPlans(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan
	if err := r.db.WithContext(ctx).Preload("Weeks", orderWeeks).Order("event_date ASC").Order("id ASC").Find(&plans).Error; err != nil {
		return nil, apperrors.StorageError("list plans", err)
	}
	return plans, nil
}

// UpdatePlan writes a plan's name and event date
func (r *RepositoryImpl) UpdatePlan(ctx context.Context, plan *models.Plan) error {
	return updated(r.db.WithContext(ctx).Model(plan).Select("name", "event_date").Updates(plan), "update plan", "plan", plan.ID)
}

// DeletePlan deletes a plan with all of its weeks and scheduled workouts
func (r *RepositoryImpl) DeletePlan(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", id).Delete(&models.WorkoutPlan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("plan_id = ?", id).Delete(&models.WeekPlan{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Plan{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("plan", id)
		}
		return nil
	})
	return wrap("delete plan", err)
}

// CreateWeek inserts a week
func (r *RepositoryImpl) CreateWeek(ctx context.Context, week *models.WeekPlan) error {
	if err := r.db.WithContext(ctx).Omit("Workouts").Create(week).Error; err != nil {
		return apperrors.StorageError("create week", err)
	}
	return nil
}

// GetWeekByID retrieves a week with its scheduled workouts
func (r *RepositoryImpl) GetWeekByID(ctx context.Context, id uint) (*models.WeekPlan, error) {
	var week models.WeekPlan
	if err := first(r.db.WithContext(ctx).Preload("Workouts", orderEntries), &week, "week", id); err != nil {
		return nil, err
	}
	return &week, nil
}

// ListWeeks retrieves the weeks of a plan in position order
func (r *RepositoryImpl) ListWeeks(ctx context.Context, planID uint) ([]models.WeekPlan, error) {
	var weeks []models.WeekPlan
	if err := orderWeeks(r.db.WithContext(ctx).Preload("Workouts", orderEntries).Where("plan_id = ?", planID)).Find(&weeks).Error; err != nil {
		return nil, apperrors.StorageError("list weeks", err)
	}
	return weeks, nil
}

// UpdateWeek writes a week's position and notes
func (r *RepositoryImpl) UpdateWeek(ctx context.Context, week *models.WeekPlan) error {
	return updated(r.db.WithContext(ctx).Model(week).Select("position", "notes").Updates(week), "update week", "week", week.ID)
}

// DeleteWeek deletes a week and its scheduled workouts
func (r *RepositoryImpl) DeleteWeek(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("week_id = ?", id).Delete(&models.WorkoutPlan{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.WeekPlan{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("week", id)
		}
		return nil
	})
	return wrap("delete week", err)
}

// CreateWorkoutPlan inserts a scheduled workout
func (r *RepositoryImpl) CreateWorkoutPlan(ctx context.Context, entry *models.WorkoutPlan) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return apperrors.StorageError("create workout plan", err)
	}
	return nil
}

// GetWorkoutPlanByID retrieves a scheduled workout
func (r *RepositoryImpl) GetWorkoutPlanByID(ctx context.Context, id uint) (*models.WorkoutPlan, error) {
	var entry models.WorkoutPlan
	if err := first(r.db.WithContext(ctx), &entry, "workout plan", id); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListWorkoutPlans retrieves the scheduled workouts of a week
func (r *RepositoryImpl) ListWorkoutPlans(ctx context.Context, weekID uint) ([]models.WorkoutPlan, error) {
	var entries []models.WorkoutPlan
	if err := orderEntries(r.db.WithContext(ctx).Where("week_id = ?", weekID)).Find(&entries).Error; err != nil {
		return nil, apperrors.StorageError("list workout plans", err)
	}
	return entries, nil
}

// UpdateWorkoutPlan writes every column of a scheduled workout
func (r *RepositoryImpl) UpdateWorkoutPlan(ctx context.Context, entry *models.WorkoutPlan) error {
	result := r.db.WithContext(ctx).Model(entry).
		Select("plan_id", "week_id", "name", "description", "day_of_week", "completed", "notes", "work_id").
		Updates(entry)
	return updated(result, "update workout plan", "workout plan", entry.ID)
}

// DeleteWorkoutPlan deletes a scheduled workout
func (r *RepositoryImpl) DeleteWorkoutPlan(ctx context.Context, id uint) error {
	return updated(r.db.WithContext(ctx).Delete(&models.WorkoutPlan{}, id), "delete workout plan", "workout plan", id)
}

// WorkoutExists reports whether a workout row exists
func (r *RepositoryImpl) WorkoutExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Workout{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.StorageError("get workout", err)
	}
	return count > 0, nil
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	return apperrors.StorageError(op, err)
}
