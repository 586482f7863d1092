package clips

import (
	"context"

	"github.com/killallgit/planner-api/internal/models"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DeleteAnnotation deletes an annotation together with its clips, the exercises
// those clips were created for, and the clip files. Files are removed only after
// the database changes commit.
func (s *ServiceImpl) DeleteAnnotation(ctx context.Context, id uint) error {
	var removed []clipFile
	err := s.repository.Transaction(ctx, func(tx Repository) error {
		files, err := s.deleteAnnotationRows(ctx, tx, id)
		removed = files
		return err
	})
	if err != nil {
		return err
	}

	s.removeFiles(ctx, removed)
	return nil
}

// DeleteAnalyser runs the annotation cascade for every annotation of the analyser
// and then deletes the analyser itself, all in one transaction.
func (s *ServiceImpl) DeleteAnalyser(ctx context.Context, id uint) error {
	var removed []clipFile
	err := s.repository.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetAnalyser(ctx, id); err != nil {
			return err
		}
		annotations, err := tx.ListAnnotationsByAnalyser(ctx, id)
		if err != nil {
			return err
		}
		for _, annotation := range annotations {
			files, err := s.deleteAnnotationRows(ctx, tx, annotation.ID)
			if err != nil {
				return err
			}
			removed = append(removed, files...)
		}
		return tx.DeleteAnalyser(ctx, id)
	})
	if err != nil {
		return err
	}

	s.removeFiles(ctx, removed)
	return nil
}

func (s *ServiceImpl) deleteAnnotationRows(ctx context.Context, tx Repository, id uint) ([]clipFile, error) {
	log := s.logger.WithField("annotation_id", id)

	if _, err := tx.GetAnnotation(ctx, id); err != nil {
		return nil, err
	}
	clips, err := tx.ListClipsByAnnotation(ctx, id)
	if err != nil {
		return nil, err
	}
	files, err := s.clipFiles(ctx, tx, clips)
	if err != nil {
		return nil, err
	}

	for _, clip := range clips {
		s.deleteClipExercise(ctx, tx, clip, log)
		if err := tx.DeleteClip(ctx, clip.ID); err != nil {
			return nil, err
		}
	}

	if err := tx.DeleteAnnotation(ctx, id); err != nil {
		return nil, err
	}
	log.WithField("clips", len(clips)).Info("annotation deleted")
	return files, nil
}

// deleteClipExercise removes the exercise a clip was cut for. Failures are logged
// and rolled back to a savepoint so the surrounding cascade can continue. The
// default exercise and exercises still used by other annotations are kept.
func (s *ServiceImpl) deleteClipExercise(ctx context.Context, tx Repository, clip models.Clip, log *logrus.Entry) {
	if clip.CropID == 0 || clip.CropID == s.defaultExerciseID {
		return
	}
	log = log.WithFields(logrus.Fields{"clip_id": clip.ID, "exercise_id": clip.CropID})

	err := tx.Transaction(ctx, func(sp Repository) error {
		shared, err := sp.CountClipsByExerciseOutside(ctx, clip.CropID, clip.AnnoID)
		if err != nil {
			return err
		}
		if shared > 0 {
			log.Info("exercise is used by other annotations, keeping it")
			return nil
		}
		return sp.DeleteExercise(ctx, clip.CropID)
	})
	switch {
	case err == nil:
	case apperrors.Is(err, apperrors.ErrCodeNotFound):
		log.Debug("clip exercise already gone")
	default:
		log.WithError(err).Warn("failed to delete clip exercise")
	}
}

// DeleteExercise detaches every clip that targets the exercise, deletes those
// clips and their files, and deletes the exercise. Owning annotations survive;
// their saved flag is recomputed from their remaining clips.
func (s *ServiceImpl) DeleteExercise(ctx context.Context, id uint) error {
	log := s.logger.WithField("exercise_id", id)

	var removed []clipFile
	err := s.repository.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetExercise(ctx, id); err != nil {
			return err
		}
		clips, err := tx.ListClipsByExercise(ctx, id)
		if err != nil {
			return err
		}
		files, err := s.clipFiles(ctx, tx, clips)
		if err != nil {
			return err
		}

		touched := make(map[uint]bool)
		var order []uint
		for _, clip := range clips {
			if err := tx.DeleteClip(ctx, clip.ID); err != nil {
				return err
			}
			if !touched[clip.AnnoID] {
				touched[clip.AnnoID] = true
				order = append(order, clip.AnnoID)
			}
		}
		for _, annotationID := range order {
			if err := syncSaved(ctx, tx, annotationID); err != nil {
				if apperrors.Is(err, apperrors.ErrCodeNotFound) {
					continue
				}
				return err
			}
		}

		if err := tx.DeleteExercise(ctx, id); err != nil {
			return err
		}
		removed = files
		return nil
	})
	if err != nil {
		return err
	}

	s.removeFiles(ctx, removed)
	log.WithField("clips", len(removed)).Info("exercise deleted")
	return nil
}

// clipFile is a clip whose file may be removed once the delete commits.
// Source is the stored reference of the video the clip was cut from.
type clipFile struct {
	clip   models.Clip
	source string
}

// clipFiles looks up the source video of every clip while the rows still exist.
// Clips whose reference is itself an analyser's source video are left out.
func (s *ServiceImpl) clipFiles(ctx context.Context, tx Repository, clips []models.Clip) ([]clipFile, error) {
	sources := make(map[uint]string)
	files := make([]clipFile, 0, len(clips))
	for _, clip := range clips {
		isSource, err := tx.AnalyserURLExists(ctx, clip.VideoURL)
		if err != nil {
			return nil, err
		}
		if isSource {
			s.logger.WithFields(logrus.Fields{"clip_id": clip.ID, "video_url": clip.VideoURL}).
				Warn("clip points at an analyser video, keeping the file")
			continue
		}

		source, ok := sources[clip.AnnoID]
		if !ok {
			source, err = s.sourceOf(ctx, tx, clip.AnnoID)
			if err != nil {
				return nil, err
			}
			sources[clip.AnnoID] = source
		}
		files = append(files, clipFile{clip: clip, source: source})
	}
	return files, nil
}

// sourceOf returns the analyser video behind an annotation, or "" when either row is gone
func (s *ServiceImpl) sourceOf(ctx context.Context, tx Repository, annotationID uint) (string, error) {
	annotation, err := tx.GetAnnotation(ctx, annotationID)
	if apperrors.Is(err, apperrors.ErrCodeNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	analyser, err := tx.GetAnalyser(ctx, annotation.AnalyserID)
	if apperrors.Is(err, apperrors.ErrCodeNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return analyser.VideoURL, nil
}

// removeFiles deletes clip files that no remaining clip references.
// Failures are only logged.
func (s *ServiceImpl) removeFiles(ctx context.Context, files []clipFile) {
	for _, file := range files {
		clip := file.clip
		log := s.logger.WithFields(logrus.Fields{"clip_id": clip.ID, "video_url": clip.VideoURL})

		shared, err := s.repository.ClipURLExists(ctx, clip.VideoURL)
		if err != nil {
			log.WithError(err).Warn("failed to check clip references, keeping the file")
			continue
		}
		if shared {
			log.Info("clip file is still used by another clip")
			continue
		}

		path, err := s.resolver.RemoveClip(clip.VideoURL, file.source)
		switch {
		case err == nil:
			log.WithField("path", path).Info("clip file removed")
		case apperrors.Is(err, apperrors.ErrCodeNotFound):
			log.Warn("clip file not found, nothing to remove")
		case apperrors.Is(err, apperrors.ErrCodePermissionDenied):
			log.WithError(err).Warn("clip file is not managed by the service, keeping it")
		default:
			log.WithError(err).Warn("failed to remove clip file")
		}
	}
}
