package clips

import (
	"context"

	"github.com/killallgit/planner-api/internal/models"
	"github.com/killallgit/planner-api/pkg/ffmpeg"
)

// Transcoder cuts clips out of source videos
type Transcoder interface {
	CheckAvailable(ctx context.Context) ffmpeg.Availability
	ExtractClip(ctx context.Context, req ffmpeg.ClipRequest) (*ffmpeg.ClipResult, error)
}

// PathResolver maps stored video references to files and back
type PathResolver interface {
	Resolve(ref string) (string, error)
	OutputDir(inputPath string) (string, error)
	OutputName(inputPath string, annotationID uint) string
	PublicURL(outputPath string) string
	RemoveClip(ref string, sources ...string) (string, error)
}

// Repository defines the data access needed by clip extraction and cascades.
// Every method participates in the transaction of the repository it is called on.
type Repository interface {
	// Transaction runs fn against a repository bound to a single transaction.
	// Calling it on a transactional repository opens a savepoint.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	GetAnalyser(ctx context.Context, id uint) (*models.Analyser, error)
	GetAnnotation(ctx context.Context, id uint) (*models.Annotation, error)
	ListAnnotationsByAnalyser(ctx context.Context, analyserID uint) ([]models.Annotation, error)
	GetExercise(ctx context.Context, id uint) (*models.Exercise, error)

	GetClip(ctx context.Context, id uint) (*models.Clip, error)
	ListClipsByAnnotation(ctx context.Context, annotationID uint) ([]models.Clip, error)
	ListClipsByExercise(ctx context.Context, exerciseID uint) ([]models.Clip, error)
	CountClipsByAnnotation(ctx context.Context, annotationID uint) (int64, error)
	CountClipsByExerciseOutside(ctx context.Context, exerciseID, annotationID uint) (int64, error)
	ClipURLExists(ctx context.Context, videoURL string) (bool, error)
	AnalyserURLExists(ctx context.Context, videoURL string) (bool, error)

	CreateClip(ctx context.Context, clip *models.Clip) error
	UpdateClip(ctx context.Context, clip *models.Clip) error
	SetAnnotationSaved(ctx context.Context, annotationID uint, saved bool) error

	DeleteClip(ctx context.Context, id uint) error
	DeleteAnnotation(ctx context.Context, id uint) error
	DeleteExercise(ctx context.Context, id uint) error
	DeleteAnalyser(ctx context.Context, id uint) error
}

// ExtractRequest carries the optional body of a crop-video request
type ExtractRequest struct {
	ExerciseID *uint `json:"exercise_id,omitempty"`
}

// ClipInput is the writable part of a clip record
type ClipInput struct {
	AnnoID   uint   `json:"anno_id"`
	VideoURL string `json:"video_url"`
	CropID   *uint  `json:"crop_id,omitempty"`
}

// Service manages clips and the deletes that cascade through them
type Service interface {
	// ExtractClip cuts the annotation's time range out of its analyser's video
	// and records the result. analyserID 0 skips the ownership check.
	ExtractClip(ctx context.Context, analyserID, annotationID uint, req ExtractRequest) (*models.Clip, error)
	TranscoderStatus(ctx context.Context) ffmpeg.Availability

	GetClip(ctx context.Context, id uint) (*models.Clip, error)
	ListClips(ctx context.Context, annotationID uint) ([]models.Clip, error)
	CreateClip(ctx context.Context, input ClipInput) (*models.Clip, error)
	UpdateClip(ctx context.Context, id uint, input ClipInput) (*models.Clip, error)
	DeleteClip(ctx context.Context, id uint) error

	DeleteAnnotation(ctx context.Context, id uint) error
	DeleteExercise(ctx context.Context, id uint) error
	DeleteAnalyser(ctx context.Context, id uint) error
}
