package annotations

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

// NewService creates a new annotation service
func NewService(repository Repository) Service {
	return &ServiceImpl{
		repository: repository,
	}
}

func validate(input Input) error {
	if strings.TrimSpace(input.Title) == "" {
		return apperrors.MissingFieldError("title")
	}
	if strings.TrimSpace(input.Color) == "" {
		return apperrors.MissingFieldError("color")
	}
	if input.TimeFrom == nil {
		return apperrors.MissingFieldError("time_from")
	}
	return nil
}

func (s *ServiceImpl) requireAnalyser(ctx context.Context, analyserID uint) error {
	ok, err := s.repository.AnalyserExists(ctx, analyserID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("analyser", analyserID)
	}
	return nil
}

// CreateAnnotation creates an unsaved annotation on an analyser
func (s *ServiceImpl) CreateAnnotation(ctx context.Context, analyserID uint, input Input) (*models.Annotation, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	if err := s.requireAnalyser(ctx, analyserID); err != nil {
		return nil, err
	}

	annotation := &models.Annotation{
		AnalyserID:  analyserID,
		TimeFrom:    input.TimeFrom,
		TimeTo:      input.TimeTo,
		Title:       input.Title,
		Description: input.Description,
		Color:       input.Color,
	}
	if err := s.repository.CreateAnnotation(ctx, annotation); err != nil {
		return nil, err
	}
	return annotation, nil
}

// GetAnnotationByID retrieves an annotation by its ID
func (s *ServiceImpl) GetAnnotationByID(ctx context.Context, id uint) (*models.Annotation, error) {
	return s.repository.GetAnnotationByID(ctx, id)
}

// GetAnnotationsByAnalyserID retrieves the annotations of an analyser
func (s *ServiceImpl) GetAnnotationsByAnalyserID(ctx context.Context, analyserID uint) ([]models.Annotation, error) {
	if err := s.requireAnalyser(ctx, analyserID); err != nil {
		return nil, err
	}
	return s.repository.GetAnnotationsByAnalyserID(ctx, analyserID)
}

// UpdateAnnotation updates an existing annotation, optionally moving it to another analyser
func (s *ServiceImpl) UpdateAnnotation(ctx context.Context, id uint, input Input) (*models.Annotation, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	annotation, err := s.repository.GetAnnotationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AnalyserID != 0 && input.AnalyserID != annotation.AnalyserID {
		if err := s.requireAnalyser(ctx, input.AnalyserID); err != nil {
			return nil, err
		}
		annotation.AnalyserID = input.AnalyserID
	}
	annotation.TimeFrom = input.TimeFrom
	annotation.TimeTo = input.TimeTo
	annotation.Title = input.Title
	annotation.Description = input.Description
	annotation.Color = input.Color

	if err := s.repository.UpdateAnnotation(ctx, annotation); err != nil {
		return nil, err
	}
	return annotation, nil
}
