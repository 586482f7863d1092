package analysers

import (
	"context"

	"github.com/killallgit/planner-api/internal/models"
)

// Repository defines the interface for analyser data access
type Repository interface {
	CreateAnalyser(ctx context.Context, analyser *models.Analyser) error
	GetAnalyserByID(ctx context.Context, id uint) (*models.Analyser, error)
	ListAnalysers(ctx context.Context) ([]models.Analyser, error)
	UpdateAnalyser(ctx context.Context, analyser *models.Analyser) error
}

// Service defines the interface for analyser business logic
type Service interface {
	CreateAnalyser(ctx context.Context, input Input) (*models.Analyser, error)
	GetAnalyser(ctx context.Context, id uint) (*models.Analyser, error)
	ListAnalysers(ctx context.Context) ([]models.Analyser, error)
	UpdateAnalyser(ctx context.Context, id uint, input Input) (*models.Analyser, error)
}

// Input is the client-writable part of an analyser
type Input struct {
	Name     string `json:"name"`
	VideoURL string `json:"video_url"`
}
