package api

import (
	"github.com/killallgit/planner-api/api/types"
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

// NewDependencies wires every service the handlers use on top of one database
func NewDependencies(cfg *config.Config, db *database.DB, transcoder clips.Transcoder) *types.Dependencies {
	resolver := mediapath.New(mediapath.ConfigFromSettings(cfg.Media, cfg.Clips))

	defaultExerciseID := cfg.Clips.DefaultExerciseID
	if defaultExerciseID == 0 {
		defaultExerciseID = 1
	}

	return &types.Dependencies{
		DB:                db,
		Config:            cfg,
		Resolver:          resolver,
		ClipService:       clips.NewService(clips.NewRepository(db.DB), transcoder, resolver, defaultExerciseID),
		AnalyserService:   analysers.NewService(analysers.NewRepository(db.DB)),
		AnnotationService: annotations.NewService(annotations.NewRepository(db.DB)),
		ExerciseService:   exercises.NewService(exercises.NewRepository(db.DB)),
		WorkoutService:    workouts.NewService(workouts.NewRepository(db.DB)),
		PlanService:       plans.NewService(plans.NewRepository(db.DB)),
		UploadService:     uploads.NewService(resolver),
	}
}
