package clips

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/killallgit/planner-api/internal/logging"
	"github.com/killallgit/planner-api/internal/models"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
	"github.com/killallgit/planner-api/pkg/ffmpeg"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository        Repository
	transcoder        Transcoder
	resolver          PathResolver
	defaultExerciseID uint
	logger            *logrus.Entry
}

// NewService creates a new clips service.
// defaultExerciseID is the crop_id given to clips when no exercise is requested.
func NewService(repository Repository, transcoder Transcoder, resolver PathResolver, defaultExerciseID uint) Service {
	if defaultExerciseID == 0 {
		defaultExerciseID = 1
	}
	return &ServiceImpl{
		repository:        repository,
		transcoder:        transcoder,
		resolver:          resolver,
		defaultExerciseID: defaultExerciseID,
		logger:            logging.WithComponent("clips"),
	}
}

// ExtractClip runs the whole crop pipeline for one annotation.
// The transcoder runs outside any transaction; only the final write is transactional.
func (s *ServiceImpl) ExtractClip(ctx context.Context, analyserID, annotationID uint, req ExtractRequest) (*models.Clip, error) {
	log := s.logger.WithField("annotation_id", annotationID)

	annotation, err := s.repository.GetAnnotation(ctx, annotationID)
	if err != nil {
		return nil, err
	}
	if analyserID != 0 && annotation.AnalyserID != analyserID {
		return nil, apperrors.NotFound("annotation", annotationID).WithDetail("analyser_id", analyserID)
	}
	analyser, err := s.repository.GetAnalyser(ctx, annotation.AnalyserID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(analyser.VideoURL) == "" {
		return nil, apperrors.NotFound("analyser video", analyser.ID)
	}

	start, duration, err := clipBounds(annotation)
	if err != nil {
		return nil, err
	}
	if analyser.IsRemote() {
		return nil, apperrors.InvalidInput("remote video URLs are not supported yet").
			WithDetail("video_url", analyser.VideoURL)
	}

	cropID := s.defaultExerciseID
	if req.ExerciseID != nil {
		if _, err := s.repository.GetExercise(ctx, *req.ExerciseID); err != nil {
			return nil, err
		}
		cropID = *req.ExerciseID
	}

	inputPath, err := s.resolver.Resolve(analyser.VideoURL)
	if err != nil {
		return nil, err
	}

	outputDir, err := s.resolver.OutputDir(inputPath)
	if err != nil {
		return nil, err
	}
	outputPath := filepath.Join(outputDir, s.resolver.OutputName(inputPath, annotation.ID))

	avail := s.transcoder.CheckAvailable(ctx)
	if !avail.Available {
		return nil, apperrors.ExternalToolError("ffmpeg", avail.Message, "").
			WithDetail("checked_paths", avail.Checked).
			WithCause(ffmpeg.ErrFFmpegNotFound)
	}

	log.WithFields(logrus.Fields{
		"input":    inputPath,
		"output":   outputPath,
		"start":    start.Seconds(),
		"duration": duration.Seconds(),
	}).Info("cropping annotation")

	result, err := s.transcoder.ExtractClip(ctx, ffmpeg.ClipRequest{
		InputPath:  inputPath,
		Start:      start,
		Duration:   duration,
		OutputPath: outputPath,
	})
	if err != nil {
		return nil, err
	}

	clip := &models.Clip{
		AnnoID:   annotation.ID,
		VideoURL: s.resolver.PublicURL(result.OutputPath),
		CropID:   cropID,
	}
	if meta := result.Probe.JSON(); meta != nil {
		clip.Metadata = datatypes.JSON(meta)
	}

	err = s.repository.Transaction(ctx, func(tx Repository) error {
		if err := tx.SetAnnotationSaved(ctx, annotation.ID, true); err != nil {
			return err
		}
		return tx.CreateClip(ctx, clip)
	})
	if err != nil {
		if rmErr := os.Remove(result.OutputPath); rmErr != nil && !os.IsNotExist(rmErr) {
			log.WithError(rmErr).WithField("output", result.OutputPath).Warn("failed to remove clip after rollback")
		}
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		return nil, apperrors.StorageError("save cropped video", err)
	}

	log.WithFields(logrus.Fields{"clip_id": clip.ID, "video_url": clip.VideoURL}).Info("annotation cropped")
	return clip, nil
}

// clipBounds validates the annotation's time range and returns its offset and length
func clipBounds(annotation *models.Annotation) (time.Duration, time.Duration, error) {
	if annotation.TimeFrom == nil || annotation.TimeTo == nil {
		return 0, 0, apperrors.InvalidInput("annotation needs both time_from and time_to").
			WithDetail("annotation_id", annotation.ID)
	}

	seconds := annotation.TimeTo.Seconds() - annotation.TimeFrom.Seconds()
	if seconds <= 0 {
		return 0, 0, apperrors.InvalidInput("time_to must be after time_from").
			WithDetail("time_from", annotation.TimeFrom.String()).
			WithDetail("time_to", annotation.TimeTo.String())
	}

	start := time.Duration(annotation.TimeFrom.Seconds()) * time.Second
	return start, time.Duration(seconds) * time.Second, nil
}

// TranscoderStatus reports whether clips can currently be extracted
func (s *ServiceImpl) TranscoderStatus(ctx context.Context) ffmpeg.Availability {
	return s.transcoder.CheckAvailable(ctx)
}

// GetClip retrieves a clip by its ID
func (s *ServiceImpl) GetClip(ctx context.Context, id uint) (*models.Clip, error) {
	return s.repository.GetClip(ctx, id)
}

// ListClips retrieves every clip of an annotation
func (s *ServiceImpl) ListClips(ctx context.Context, annotationID uint) ([]models.Clip, error) {
	if _, err := s.repository.GetAnnotation(ctx, annotationID); err != nil {
		return nil, err
	}
	return s.repository.ListClipsByAnnotation(ctx, annotationID)
}

// CreateClip records an existing file as a clip of an annotation
func (s *ServiceImpl) CreateClip(ctx context.Context, input ClipInput) (*models.Clip, error) {
	if strings.TrimSpace(input.VideoURL) == "" {
		return nil, apperrors.MissingFieldError("video_url")
	}

	clip := &models.Clip{AnnoID: input.AnnoID, VideoURL: input.VideoURL, CropID: s.defaultExerciseID}
	err := s.repository.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetAnnotation(ctx, input.AnnoID); err != nil {
			return err
		}
		if input.CropID != nil {
			if _, err := tx.GetExercise(ctx, *input.CropID); err != nil {
				return err
			}
			clip.CropID = *input.CropID
		}
		if err := tx.CreateClip(ctx, clip); err != nil {
			return err
		}
		return tx.SetAnnotationSaved(ctx, input.AnnoID, true)
	})
	if err != nil {
		return nil, err
	}
	return clip, nil
}

// UpdateClip changes a clip's annotation, file reference or target exercise.
// Moving a clip recomputes the saved flag of both annotations.
func (s *ServiceImpl) UpdateClip(ctx context.Context, id uint, input ClipInput) (*models.Clip, error) {
	var clip *models.Clip
	err := s.repository.Transaction(ctx, func(tx Repository) error {
		existing, err := tx.GetClip(ctx, id)
		if err != nil {
			return err
		}
		previousAnno := existing.AnnoID

		if input.AnnoID != 0 && input.AnnoID != existing.AnnoID {
			if _, err := tx.GetAnnotation(ctx, input.AnnoID); err != nil {
				return err
			}
			existing.AnnoID = input.AnnoID
		}
		if strings.TrimSpace(input.VideoURL) != "" {
			existing.VideoURL = input.VideoURL
		}
		if input.CropID != nil && *input.CropID != existing.CropID {
			if _, err := tx.GetExercise(ctx, *input.CropID); err != nil {
				return err
			}
			existing.CropID = *input.CropID
		}

		if err := tx.UpdateClip(ctx, existing); err != nil {
			return err
		}
		if previousAnno != existing.AnnoID {
			if err := syncSaved(ctx, tx, previousAnno); err != nil {
				return err
			}
			if err := syncSaved(ctx, tx, existing.AnnoID); err != nil {
				return err
			}
		}
		clip = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return clip, nil
}

// DeleteClip removes a clip row and its file, then recomputes the annotation's saved flag
func (s *ServiceImpl) DeleteClip(ctx context.Context, id uint) error {
	var removed []clipFile
	err := s.repository.Transaction(ctx, func(tx Repository) error {
		clip, err := tx.GetClip(ctx, id)
		if err != nil {
			return err
		}
		removed, err = s.clipFiles(ctx, tx, []models.Clip{*clip})
		if err != nil {
			return err
		}
		if err := tx.DeleteClip(ctx, id); err != nil {
			return err
		}
		return syncSaved(ctx, tx, clip.AnnoID)
	})
	if err != nil {
		return err
	}

	s.removeFiles(ctx, removed)
	return nil
}

// syncSaved sets an annotation's saved flag from whether it still has clips
func syncSaved(ctx context.Context, tx Repository, annotationID uint) error {
	count, err := tx.CountClipsByAnnotation(ctx, annotationID)
	if err != nil {
		return err
	}
	return tx.SetAnnotationSaved(ctx, annotationID, count > 0)
}
