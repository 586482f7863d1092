package workouts

import (
	"context"

	"github.com/killallgit/planner-api/internal/models"
)

// Repository defines the interface for workout data access
type Repository interface {
	CreateWorkout(ctx context.Context, workout *models.Workout) error
	GetWorkoutByID(ctx context.Context, id uint) (*models.Workout, error)
	ListWorkouts(ctx context.Context) ([]models.Workout, error)
	ReplaceWorkout(ctx context.Context, workout *models.Workout) error
	DeleteWorkout(ctx context.Context, id uint) error
	MissingExercises(ctx context.Context, ids []uint) ([]uint, error)
}

// Service defines the interface for workout business logic
type Service interface {
	CreateWorkout(ctx context.Context, input Input) (*models.Workout, error)
	GetWorkout(ctx context.Context, id uint) (*models.Workout, error)
	ListWorkouts(ctx context.Context) ([]models.Workout, error)
	UpdateWorkout(ctx context.Context, id uint, input Input) (*models.Workout, error)
	DeleteWorkout(ctx context.Context, id uint) error
}

// Input describes a whole workout as submitted by a client
type Input struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Duration    *int           `json:"duration"`
	Sections    []SectionInput `json:"sections"`
}

// SectionInput is one section of a workout
type SectionInput struct {
	Name      string          `json:"name"`
	Position  int             `json:"position"`
	Exercises []ExerciseInput `json:"exercises"`
}

// ExerciseInput prescribes one exercise inside a section
type ExerciseInput struct {
	ExID     uint                `json:"ex_id"`
	Sets     int                 `json:"sets"`
	Quantity *int                `json:"quantity"`
	Unit     models.ExerciseUnit `json:"unit"`
	Duration *int                `json:"duration"`
	Rest     int                 `json:"rest"`
	Position int                 `json:"position"`
}
