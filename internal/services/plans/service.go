package plans

import (
	"context"
	"strings"
	"time"

	"github.com/killallgit/planner-api/internal/models"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new plan service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

func parsePlan(input PlanInput) (string, datatypes.Date, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return "", datatypes.Date{}, apperrors.MissingFieldError("name")
	}
	if strings.TrimSpace(input.EventDate) == "" {
		return "", datatypes.Date{}, apperrors.MissingFieldError("event_date")
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(input.EventDate))
	if err != nil {
		return "", datatypes.Date{}, apperrors.ValidationError("event_date", "expected YYYY-MM-DD")
	}
	return name, datatypes.Date(date), nil
}

// CreatePlan creates a plan for an event date
func (s *ServiceImpl) CreatePlan(ctx context.Context, input PlanInput) (*models.Plan, error) {
	name, date, err := parsePlan(input)
	if err != nil {
		return nil, err
	}
	plan := &models.Plan{Name: name, EventDate: date, Weeks: []models.WeekPlan{}}
	if err := s.repository.CreatePlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// GetPlan retrieves a plan by its ID
func (s *ServiceImpl) GetPlan(ctx context.Context, id uint) (*models.Plan, error) {
	return s.repository.GetPlanByID(ctx, id)
}

// ListPlans retrieves every plan
func (s *ServiceImpl) ListPlans(ctx context.Context) ([]models.Plan, error) {
	return s.repository.ListPlans(ctx)
}

// UpdatePlan renames a plan or moves its event date
func (s *ServiceImpl) UpdatePlan(ctx context.Context, id uint, input PlanInput) (*models.Plan, error) {
	name, date, err := parsePlan(input)
	if err != nil {
		return nil, err
	}
	plan, err := s.repository.GetPlanByID(ctx, id)
	if err != nil {
		return nil, err
	}
	plan.Name = name
	plan.EventDate = date
	if err := s.repository.UpdatePlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// DeletePlan deletes a plan with its weeks
func (s *ServiceImpl) DeletePlan(ctx context.Context, id uint) error {
	return s.repository.DeletePlan(ctx, id)
}

// CreateWeek adds a week to a plan
func (s *ServiceImpl) CreateWeek(ctx context.Context, input WeekInput) (*models.WeekPlan, error) {
	if input.PlanID == 0 {
		return nil, apperrors.MissingFieldError("plan_id")
	}
	if _, err := s.repository.GetPlanByID(ctx, input.PlanID); err != nil {
		return nil, err
	}
	week := &models.WeekPlan{PlanID: input.PlanID, Position: input.Position, Notes: input.Notes, Workouts: []models.WorkoutPlan{}}
	if err := s.repository.CreateWeek(ctx, week); err != nil {
		return nil, err
	}
	return week, nil
}

// GetWeek retrieves a week by its ID
func (s *ServiceImpl) GetWeek(ctx context.Context, id uint) (*models.WeekPlan, error) {
	return s.repository.GetWeekByID(ctx, id)
}

// ListWeeks retrieves a plan's weeks in position order
func (s *ServiceImpl) ListWeeks(ctx context.Context, planID uint) ([]models.WeekPlan, error) {
	if _, err := s.repository.GetPlanByID(ctx, planID); err != nil {
		return nil, err
	}
	return s.repository.ListWeeks(ctx, planID)
}

// UpdateWeek changes a week's position and notes; weeks cannot move between plans
func (s *ServiceImpl) UpdateWeek(ctx context.Context, id uint, input WeekInput) (*models.WeekPlan, error) {
	week, err := s.repository.GetWeekByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.PlanID != 0 && input.PlanID != week.PlanID {
		return nil, apperrors.InvalidInput("a week cannot be moved to another plan").
			WithDetail("plan_id", week.PlanID)
	}
	week.Position = input.Position
	week.Notes = input.Notes
	if err := s.repository.UpdateWeek(ctx, week); err != nil {
		return nil, err
	}
	return week, nil
}

// DeleteWeek deletes a week with its scheduled workouts
func (s *ServiceImpl) DeleteWeek(ctx context.Context, id uint) error {
	return s.repository.DeleteWeek(ctx, id)
}

// checkEntry validates the plan, week and workout references of a scheduled workout
func (s *ServiceImpl) checkEntry(ctx context.Context, input WorkoutPlanInput) error {
	if input.PlanID == 0 {
		return apperrors.MissingFieldError("plan_id")
	}
	if input.WeekID == 0 {
		return apperrors.MissingFieldError("week_id")
	}
	if !input.DayOfWeek.Valid() {
		return apperrors.ValidationError("day_of_week", "must be a day name from Monday to Sunday")
	}

	week, err := s.repository.GetWeekByID(ctx, input.WeekID)
	if err != nil {
		return err
	}
	if week.PlanID != input.PlanID {
		return apperrors.InvalidInput("week does not belong to the plan").
			WithDetail("week_id", input.WeekID).
			WithDetail("plan_id", input.PlanID)
	}

	if input.WorkID != nil {
		ok, err := s.repository.WorkoutExists(ctx, *input.WorkID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.NotFound("workout", *input.WorkID)
		}
	}
	return nil
}

func applyEntry(entry *models.WorkoutPlan, input WorkoutPlanInput) {
	entry.PlanID = input.PlanID
	entry.WeekID = input.WeekID
	entry.Name = input.Name
	entry.Description = input.Description
	entry.DayOfWeek = input.DayOfWeek
	entry.Completed = input.Completed
	entry.Notes = input.Notes
	entry.WorkID = input.WorkID
}

// CreateWorkoutPlan schedules a workout on a day of a week
func (s *ServiceImpl) CreateWorkoutPlan(ctx context.Context, input WorkoutPlanInput) (*models.WorkoutPlan, error) {
	if err := s.checkEntry(ctx, input); err != nil {
		return nil, err
	}
	entry := &models.WorkoutPlan{}
	applyEntry(entry, input)
	if err := s.repository.CreateWorkoutPlan(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetWorkoutPlan retrieves a scheduled workout by its ID
func (s *ServiceImpl) GetWorkoutPlan(ctx context.Context, id uint) (*models.WorkoutPlan, error) {
	return s.repository.GetWorkoutPlanByID(ctx, id)
}

// ListWorkoutPlans retrieves the scheduled workouts of a week
func (s *ServiceImpl) ListWorkoutPlans(ctx context.Context, weekID uint) ([]models.WorkoutPlan, error) {
	if _, err := s.repository.GetWeekByID(ctx, weekID); err != nil {
		return nil, err
	}
	return s.repository.ListWorkoutPlans(ctx, weekID)
}

// UpdateWorkoutPlan rewrites a scheduled workout. It may move to another week of
// the same plan but never to another plan.
func (s *ServiceImpl) UpdateWorkoutPlan(ctx context.Context, id uint, input WorkoutPlanInput) (*models.WorkoutPlan, error) {
	entry, err := s.repository.GetWorkoutPlanByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.PlanID != entry.PlanID {
		return nil, apperrors.InvalidInput("a scheduled workout cannot be moved to another plan").
			WithDetail("plan_id", entry.PlanID)
	}
	if err := s.checkEntry(ctx, input); err != nil {
		return nil, err
	}
	applyEntry(entry, input)
	if err := s.repository.UpdateWorkoutPlan(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteWorkoutPlan removes a scheduled workout
func (s *ServiceImpl) DeleteWorkoutPlan(ctx context.Context, id uint) error {
	return s.repository.DeleteWorkoutPlan(ctx, id)
}
