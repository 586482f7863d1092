package uploads

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/killallgit/planner-api/internal/logging"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
	"github.com/sirupsen/logrus"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// AllowedExtensions lists the file types accepted for upload
var AllowedExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".m4v": true, ".webm": true, ".mkv": true, ".avi": true,
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// URLMapper turns a stored file path into its public reference
type URLMapper interface {
	UploadsDir() string
	PublicURL(path string) string
}

// Service stores uploaded media under the public uploads directory
type Service struct {
	mapper URLMapper
	logger *logrus.Entry
}

// NewService creates a new upload service
func NewService(mapper URLMapper) *Service {
	return &Service{mapper: mapper, logger: logging.WithComponent("uploads")}
}

// SanitizeFilename reduces name to a safe base name
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == "/" {
		base = ""
	}
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		return "file"
	}
	return base
}

// Save writes r to a new uniquely named file and returns its public URL
func (s *Service) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !AllowedExtensions[ext] {
		return "", apperrors.InvalidInput("unsupported file type").WithDetail("extension", ext)
	}

	dir := s.mapper.UploadsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", apperrors.PermissionDenied(dir, "cannot create uploads directory").WithCause(err)
	}

	name := uuid.NewString() + "_" + SanitizeFilename(filename)
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return "", apperrors.PermissionDenied(path, "cannot create file").WithCause(err)
	}

	written, err := io.Copy(f, readerWithContext(ctx, r))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		if ctx.Err() != nil {
			return "", apperrors.Wrap(ctx.Err(), apperrors.ErrCodeInvalidInput, "upload cancelled")
		}
		return "", apperrors.Wrap(err, apperrors.ErrCodeInvalidInput, "failed to read upload")
	}

	url := s.mapper.PublicURL(path)
	s.logger.WithFields(logrus.Fields{"path": path, "size": written, "url": url}).Info("file uploaded")
	return url, nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return ctxReader{ctx: ctx, r: r}
}
