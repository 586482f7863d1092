package api

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/planner-api/api/analysers"
	"github.com/killallgit/planner-api/api/annotations"
	"github.com/killallgit/planner-api/api/clips"
	"github.com/killallgit/planner-api/api/exercises"
	"github.com/killallgit/planner-api/api/health"
	"github.com/killallgit/planner-api/api/plans"
	"github.com/killallgit/planner-api/api/types"
	"github.com/killallgit/planner-api/api/uploads"
	"github.com/killallgit/planner-api/api/version"
	"github.com/killallgit/planner-api/api/workouts"
	_ "github.com/killallgit/planner-api/docs/swagger"
	"github.com/killallgit/planner-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	cfg := deps.Config
	if cfg == nil {
		loaded, err := config.GetConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded media and extracted clips are served as static files
	if deps.Resolver != nil {
		prefix := strings.TrimSuffix(cfg.Media.UploadPrefix, "/")
		if prefix == "" {
			prefix = "/uploads"
		}
		engine.Static(prefix, deps.Resolver.UploadsDir())
	}

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	if err := checkDependencies(deps); err != nil {
		return err
	}

	limit := func(name string, fallback int) gin.HandlerFunc {
		if !cfg.RateLimiting.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		rps := cfg.RateLimiting.Endpoints[name]
		if rps <= 0 {
			rps = fallback
		}
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, rps*2)
	}
	bodyLimit := RequestSizeLimitWithSize(cfg.Server.MaxBodyBytes)
	defaultLimit := limit("default", 20)

	apiGroup := engine.Group("/api")

	// Analysers, annotations and clips share one path tree
	analysersGroup := apiGroup.Group("/analysers")
	analysersGroup.Use(defaultLimit, bodyLimit)
	analysers.RegisterRoutes(analysersGroup, deps)
	annotations.RegisterRoutes(analysersGroup, deps)
	// ffmpeg runs are expensive, so extraction gets its own, stricter limiter
	clips.RegisterRoutes(analysersGroup, deps, limit("transcode", 1))

	exercisesGroup := apiGroup.Group("/exercises")
	exercisesGroup.Use(defaultLimit, bodyLimit)
	exercises.RegisterRoutes(exercisesGroup, deps)

	tagsGroup := apiGroup.Group("/tags")
	tagsGroup.Use(defaultLimit, bodyLimit)
	exercises.RegisterTagRoutes(tagsGroup, deps)

	workoutsGroup := apiGroup.Group("/workouts")
	workoutsGroup.Use(defaultLimit, bodyLimit)
	workouts.RegisterRoutes(workoutsGroup, deps)

	plansGroup := apiGroup.Group("/plans")
	plansGroup.Use(defaultLimit, bodyLimit)
	plans.RegisterRoutes(plansGroup, deps)

	uploadGroup := apiGroup.Group("/upload")
	uploadGroup.Use(limit("upload", 2), RequestSizeLimitWithSize(cfg.Media.MaxUploadSize))
	uploads.RegisterRoutes(uploadGroup, deps)

	return nil
}

// checkDependencies fails fast when a handler would dereference a missing service
func checkDependencies(deps *types.Dependencies) error {
	var missing []string
	if deps.Resolver == nil {
		missing = append(missing, "Resolver")
	}
	if deps.ClipService == nil {
		missing = append(missing, "ClipService")
	}
	if deps.AnalyserService == nil {
		missing = append(missing, "AnalyserService")
	}
	if deps.AnnotationService == nil {
		missing = append(missing, "AnnotationService")
	}
	if deps.ExerciseService == nil {
		missing = append(missing, "ExerciseService")
	}
	if deps.WorkoutService == nil {
		missing = append(missing, "WorkoutService")
	}
	if deps.PlanService == nil {
		missing = append(missing, "PlanService")
	}
	if deps.UploadService == nil {
		missing = append(missing, "UploadService")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing handler dependencies: %s", strings.Join(missing, ", "))
	}
	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
