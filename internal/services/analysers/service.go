package analysers

import (
	"context"
	"strings"

	"github.com/killallgit/planner-api/internal/models"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new analyser service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

func validate(input Input) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperrors.MissingFieldError("name")
	}
	if strings.TrimSpace(input.VideoURL) == "" {
		return apperrors.MissingFieldError("video_url")
	}
	return nil
}

// CreateAnalyser creates an analyser for a video reference
func (s *ServiceImpl) CreateAnalyser(ctx context.Context, input Input) (*models.Analyser, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	analyser := &models.Analyser{
		Name:        strings.TrimSpace(input.Name),
		VideoURL:    strings.TrimSpace(input.VideoURL),
		Annotations: []models.Annotation{},
	}
	if err := s.repository.CreateAnalyser(ctx, analyser); err != nil {
		return nil, err
	}
	return analyser, nil
}

// GetAnalyser retrieves an analyser by its ID
func (s *ServiceImpl) GetAnalyser(ctx context.Context, id uint) (*models.Analyser, error) {
	return s.repository.GetAnalyserByID(ctx, id)
}

// ListAnalysers retrieves every analyser
func (s *ServiceImpl) ListAnalysers(ctx context.Context) ([]models.Analyser, error) {
	return s.repository.ListAnalysers(ctx)
}

// UpdateAnalyser renames an analyser or points it at another video
func (s *ServiceImpl) UpdateAnalyser(ctx context.Context, id uint, input Input) (*models.Analyser, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	analyser, err := s.repository.GetAnalyserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	analyser.Name = strings.TrimSpace(input.Name)
	analyser.VideoURL = strings.TrimSpace(input.VideoURL)
	if err := s.repository.UpdateAnalyser(ctx, analyser); err != nil {
		return nil, err
	}
	return analyser, nil
}
