package types

import (
	"github.com/killallgit/planner-api/internal/database"
	"github.com/killallgit/planner-api/internal/services/analysers"
	"github.com/killallgit/planner-api/internal/services/annotations"
	"github.com/killallgit/planner-api/internal/services/clips"
	"github.com/killallgit/planner-api/internal/services/exercises"
	"github.com/killallgit/planner-api/internal/services/mediapath"
	"github.com/killallgit/planner-api/internal/services/plans"
	"github.com/killallgit/planner-api/internal/services/uploads"
	"github.com/killallgit/planner-api/internal/services/workouts"
	"github.com/killallgit/planner-api/pkg/config"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB      *database.DB
	Config  *config.Config
	Version string

	Resolver          *mediapath.Resolver
	ClipService       clips.Service
	AnalyserService   analysers.Service
	AnnotationService annotations.Service
	ExerciseService   exercises.Service
	WorkoutService    workouts.Service
	PlanService       plans.Service
	UploadService     *uploads.Service
}
