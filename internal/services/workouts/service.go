package workouts

import (
	"context"
	"fmt"
	"strings"

	"github.com/killallgit/planner-api/internal/models"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new workout service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// buildSections validates the submitted sections and converts them to models
func (s *ServiceImpl) buildSections(ctx context.Context, input []SectionInput) ([]models.WorkoutSection, error) {
	var exerciseIDs []uint
	sections := make([]models.WorkoutSection, 0, len(input))

	for i, in := range input {
		if strings.TrimSpace(in.Name) == "" {
			return nil, apperrors.MissingFieldError(fmt.Sprintf("sections[%d].name", i))
		}
		section := models.WorkoutSection{
			Name:      strings.TrimSpace(in.Name),
			Position:  in.Position,
			Exercises: make([]models.WorkoutExercise, 0, len(in.Exercises)),
		}
		for j, ex := range in.Exercises {
			field := fmt.Sprintf("sections[%d].exercises[%d]", i, j)
			if ex.ExID == 0 {
				return nil, apperrors.MissingFieldError(field + ".ex_id")
			}
			if !ex.Unit.Valid() {
				return nil, apperrors.ValidationError(field+".unit", fmt.Sprintf("must be %q or %q", models.UnitTime, models.UnitQuantity))
			}
			if ex.Sets < 0 || ex.Rest < 0 {
				return nil, apperrors.ValidationError(field, "sets and rest must not be negative")
			}
			exerciseIDs = append(exerciseIDs, ex.ExID)
			section.Exercises = append(section.Exercises, models.WorkoutExercise{
				ExID:     ex.ExID,
				Sets:     ex.Sets,
				Quantity: ex.Quantity,
				Unit:     ex.Unit,
				Duration: ex.Duration,
				Rest:     ex.Rest,
				Position: ex.Position,
			})
		}
		sections = append(sections, section)
	}

	missing, err := s.repository.MissingExercises(ctx, exerciseIDs)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, apperrors.NotFound("exercise", missing[0]).WithDetail("missing_ids", missing)
	}
	return sections, nil
}

// CreateWorkout creates a workout with at least one section
func (s *ServiceImpl) CreateWorkout(ctx context.Context, input Input) (*models.Workout, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.MissingFieldError("title")
	}
	if len(input.Sections) == 0 {
		return nil, apperrors.InvalidInput("a workout needs at least one section")
	}
	sections, err := s.buildSections(ctx, input.Sections)
	if err != nil {
		return nil, err
	}

	workout := &models.Workout{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Duration:    input.Duration,
		Sections:    sections,
	}
	if err := s.repository.CreateWorkout(ctx, workout); err != nil {
		return nil, err
	}
	return s.repository.GetWorkoutByID(ctx, workout.ID)
}

// GetWorkout retrieves a workout by its ID
func (s *ServiceImpl) GetWorkout(ctx context.Context, id uint) (*models.Workout, error) {
	return s.repository.GetWorkoutByID(ctx, id)
}

// ListWorkouts retrieves every workout
func (s *ServiceImpl) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	return s.repository.ListWorkouts(ctx)
}

// UpdateWorkout replaces a workout's fields and sections
func (s *ServiceImpl) UpdateWorkout(ctx context.Context, id uint, input Input) (*models.Workout, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.MissingFieldError("title")
	}
	workout, err := s.repository.GetWorkoutByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sections, err := s.buildSections(ctx, input.Sections)
	if err != nil {
		return nil, err
	}

	workout.Title = strings.TrimSpace(input.Title)
	workout.Description = input.Description
	workout.Duration = input.Duration
	workout.Sections = sections
	if err := s.repository.ReplaceWorkout(ctx, workout); err != nil {
		return nil, err
	}
	return s.repository.GetWorkoutByID(ctx, id)
}

// DeleteWorkout deletes a workout; plan entries that used it keep their slot without a workout
func (s *ServiceImpl) DeleteWorkout(ctx context.Context, id uint) error {
	return s.repository.DeleteWorkout(ctx, id)
}
