package exercises

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

// NewService creates a new exercise service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

func (s *ServiceImpl) build(ctx context.Context, exercise *models.Exercise, input ExerciseInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperrors.MissingFieldError("name")
	}
	tags, err := s.repository.FindTags(ctx, input.TagIDs)
	if err != nil {
		return err
	}

	exercise.Name = strings.TrimSpace(input.Name)
	exercise.Instructions = input.Instructions
	exercise.Enrichment = input.Enrichment
	exercise.VideoURL = input.VideoURL
	exercise.CropID = input.CropID
	exercise.Tags = tags
	return nil
}

// CreateExercise creates an exercise linked to the known tags in input
func (s *ServiceImpl) CreateExercise(ctx context.Context, input ExerciseInput) (*models.Exercise, error) {
	exercise := &models.Exercise{}
	if err := s.build(ctx, exercise, input); err != nil {
		return nil, err
	}
	if err := s.repository.CreateExercise(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

// GetExercise retrieves an exercise by its ID
func (s *ServiceImpl) GetExercise(ctx context.Context, id uint) (*models.Exercise, error) {
	return s.repository.GetExerciseByID(ctx, id)
}

// ListExercises retrieves exercises, filtered by tag when tagID is non-zero
func (s *ServiceImpl) ListExercises(ctx context.Context, tagID uint) ([]models.Exercise, error) {
	return s.repository.ListExercises(ctx, tagID)
}

// UpdateExercise replaces an exercise's fields and tags
func (s *ServiceImpl) UpdateExercise(ctx context.Context, id uint, input ExerciseInput) (*models.Exercise, error) {
	exercise, err := s.repository.GetExerciseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.build(ctx, exercise, input); err != nil {
		return nil, err
	}
	if err := s.repository.UpdateExercise(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

// CreateTag creates a tag with a unique name
func (s *ServiceImpl) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.MissingFieldError("name")
	}
	tag := &models.Tag{Name: name}
	if err := s.repository.CreateTag(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// ListTags retrieves every tag
func (s *ServiceImpl) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.repository.ListTags(ctx)
}
