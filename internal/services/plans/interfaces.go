package plans

import (
	"context"

	"github.com/killallgit/planner-api/internal/models"
)

// Repository defines the interface for plan data access
type Repository interface {
	CreatePlan(ctx context.Context, plan *models.Plan) error
	GetPlanByID(ctx context.Context, id uint) (*models.Plan, error)
	ListPlans(ctx context.Context) ([]models.Plan, error)
	UpdatePlan(ctx context.Context, plan *models.Plan) error
	DeletePlan(ctx context.Context, id uint) error

	CreateWeek(ctx context.Context, week *models.WeekPlan) error
	GetWeekByID(ctx context.Context, id uint) (*models.WeekPlan, error)
	ListWeeks(ctx context.Context, planID uint) ([]models.WeekPlan, error)
	UpdateWeek(ctx context.Context, week *models.WeekPlan) error
	DeleteWeek(ctx context.Context, id uint) error

	CreateWorkoutPlan(ctx context.Context, entry *models.WorkoutPlan) error
	GetWorkoutPlanByID(ctx context.Context, id uint) (*models.WorkoutPlan, error)
	ListWorkoutPlans(ctx context.Context, weekID uint) ([]models.WorkoutPlan, error)
	UpdateWorkoutPlan(ctx context.Context, entry *models.WorkoutPlan) error
	DeleteWorkoutPlan(ctx context.Context, id uint) error

	WorkoutExists(ctx context.Context, id uint) (bool, error)
}

// Service defines the interface for plan business logic
type Service interface {
	CreatePlan(ctx context.Context, input PlanInput) (*models.Plan, error)
	GetPlan(ctx context.Context, id uint) (*models.Plan, error)
	ListPlans(ctx context.Context) ([]models.Plan, error)
	UpdatePlan(ctx context.Context, id uint, input PlanInput) (*models.Plan, error)
	DeletePlan(ctx context.Context, id uint) error

	CreateWeek(ctx context.Context, input WeekInput) (*models.WeekPlan, error)
	GetWeek(ctx context.Context, id uint) (*models.WeekPlan, error)
	ListWeeks(ctx context.Context, planID uint) ([]models.WeekPlan, error)
	UpdateWeek(ctx context.Context, id uint, input WeekInput) (*models.WeekPlan, error)
	DeleteWeek(ctx context.Context, id uint) error

	CreateWorkoutPlan(ctx context.Context, input WorkoutPlanInput) (*models.WorkoutPlan, error)
	GetWorkoutPlan(ctx context.Context, id uint) (*models.WorkoutPlan, error)
	ListWorkoutPlans(ctx context.Context, weekID uint) ([]models.WorkoutPlan, error)
	UpdateWorkoutPlan(ctx context.Context, id uint, input WorkoutPlanInput) (*models.WorkoutPlan, error)
	DeleteWorkoutPlan(ctx context.Context, id uint) error
}

// PlanInput is the client-writable part of a plan
type PlanInput struct {
	Name      string `json:"name"`
	EventDate string `json:"event_date" example:"2025-06-01"`
}

// WeekInput is the client-writable part of a week
type WeekInput struct {
	PlanID   uint   `json:"plan_id"`
	Position int    `json:"position"`
	Notes    string `json:"notes"`
}

// WorkoutPlanInput is the client-writable part of a scheduled workout
type WorkoutPlanInput struct {
	PlanID      uint             `json:"plan_id"`
	WeekID      uint             `json:"week_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	DayOfWeek   models.DayOfWeek `json:"day_of_week"`
	Completed   bool             `json:"completed"`
	Notes       string           `json:"notes"`
	WorkID      *uint            `json:"work_id"`
}
