package mediapath

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/killallgit/planner-api/internal/logging"
	"github.com/killallgit/planner-api/pkg/config"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config describes where stored video references can live on disk
type Config struct {
	PublicUploadsDir string   // directory served under UploadPrefix
	UploadPrefix     string   // root-relative marker, e.g. "/uploads/"
	MountRoots       []string // alternative installation roots, tried in order
	TempDir          string   // last-resort output directory
	NameMarker       string   // inserted between the input stem and the annotation id
}

// ConfigFromSettings builds a resolver Config from application settings
func ConfigFromSettings(media config.MediaConfig, clips config.ClipsConfig) Config {
	return Config{
		PublicUploadsDir: media.PublicUploadsDir,
		UploadPrefix:     media.UploadPrefix,
		MountRoots:       media.MountRoots,
		TempDir:          media.TempDir,
		NameMarker:       clips.NameMarker,
	}
}

// FileReport describes a resolved file
type FileReport struct {
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
	Checked  []string  `json:"checked_paths"`
}

// Resolver maps stored video references to files on disk
type Resolver struct {
	cfg        Config
	uploadsDir string
	logger     *logrus.Entry
}

// New creates a resolver. The uploads directory is made absolute.
func New(cfg Config) *Resolver {
	if cfg.UploadPrefix == "" {
		cfg.UploadPrefix = "/uploads/"
	}
	if !strings.HasSuffix(cfg.UploadPrefix, "/") {
		cfg.UploadPrefix += "/"
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if cfg.NameMarker == "" {
		cfg.NameMarker = "_crop_"
	}

	uploads := cfg.PublicUploadsDir
	if abs, err := filepath.Abs(uploads); err == nil {
		uploads = abs
	}

	return &Resolver{
		cfg:        cfg,
		uploadsDir: filepath.Clean(uploads),
		logger:     logging.WithComponent("mediapath"),
	}
}

// UploadsDir returns the absolute public-uploads directory
func (r *Resolver) UploadsDir() string {
	return r.uploadsDir
}

// TempDir returns the last-resort output directory
func (r *Resolver) TempDir() string {
	return r.cfg.TempDir
}

// IsUploadReference reports whether ref uses the root-relative upload marker
func (r *Resolver) IsUploadReference(ref string) bool {
	return strings.HasPrefix(ref, r.cfg.UploadPrefix)
}

// Candidates lists, in the order they are tried, every path ref may refer to.
// The primary interpretation comes first, then one or two paths per mount root.
func (r *Resolver) Candidates(ref string) []string {
	var primary, relative string
	if r.IsUploadReference(ref) {
		relative = filepath.FromSlash(strings.TrimPrefix(ref, r.cfg.UploadPrefix))
		primary = filepath.Join(r.uploadsDir, relative)
	} else {
		primary = filepath.Clean(filepath.FromSlash(ref))
		relative = strings.TrimLeft(filepath.ToSlash(primary), "/")
		if vol := filepath.VolumeName(primary); vol != "" {
			relative = strings.TrimLeft(filepath.ToSlash(strings.TrimPrefix(primary, vol)), "/")
		}
		relative = filepath.FromSlash(relative)
	}

	seen := map[string]bool{}
	candidates := make([]string, 0, 1+2*len(r.cfg.MountRoots))
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		candidates = append(candidates, p)
	}

	add(primary)
	base := filepath.Base(primary)
	for _, root := range r.cfg.MountRoots {
		if root == "" {
			continue
		}
		add(filepath.Join(root, relative))
		add(filepath.Join(root, base))
	}
	return candidates
}

// Resolve returns a readable regular file for ref
func (r *Resolver) Resolve(ref string) (string, error) {
	report, err := r.Inspect(ref)
	if err != nil {
		return "", err
	}
	return report.Path, nil
}

// Inspect resolves ref and reports the file's size and modification time
func (r *Resolver) Inspect(ref string) (*FileReport, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, apperrors.InvalidInput("video reference is empty")
	}

	candidates := r.Candidates(ref)
	for i, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil {
			if os.IsPermission(err) {
				return nil, apperrors.PermissionDenied(candidate, "cannot access file").
					WithDetail("checked_paths", candidates[:i+1]).
					WithCause(err)
			}
			continue
		}

		checked := candidates[:i+1]
		if i > 0 {
			r.logger.WithFields(logrus.Fields{"reference": ref, "path": candidate}).
				Warn("video resolved through a fallback location")
		}

		if !info.Mode().IsRegular() {
			msg := "path is not a regular file: " + candidate
			return nil, apperrors.InvalidInput(msg).
				WithDetail("path", candidate).
				WithDetail("checked_paths", checked)
		}

		f, err := os.Open(candidate)
		if err != nil {
			return nil, apperrors.PermissionDenied(candidate, "file is not readable").
				WithDetail("checked_paths", checked).
				WithCause(err)
		}
		_ = f.Close()

		return &FileReport{
			Path:     candidate,
			Size:     info.Size(),
			Modified: info.ModTime(),
			Checked:  append([]string(nil), checked...),
		}, nil
	}

	return nil, apperrors.FileNotFound(ref, candidates)
}

// RemoveClip deletes the clip file a stored reference points to. Only files
// named like extraction outputs are removed, and only from the uploads
// directory, the temp directory or the directory of one of the sources.
// A file that is itself one of the source videos is never removed.
func (r *Resolver) RemoveClip(ref string, sources ...string) (string, error) {
	path, err := r.Resolve(ref)
	if err != nil {
		return "", err
	}
	if !r.IsClipName(path) {
		return path, apperrors.PermissionDenied(path, "not a clip file")
	}

	roots := []string{r.uploadsDir, r.cfg.TempDir}
	for _, source := range sources {
		if strings.TrimSpace(source) == "" {
			continue
		}
		sourcePath, err := r.Resolve(source)
		if err != nil {
			continue
		}
		if sameFile(path, sourcePath) {
			return path, apperrors.PermissionDenied(path, "file is a source video")
		}
		roots = append(roots, filepath.Dir(sourcePath))
	}
	if !withinAny(path, roots) {
		return path, apperrors.PermissionDenied(path, "file is outside the managed directories").
			WithDetail("allowed_dirs", roots)
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return path, apperrors.FileNotFound(ref, []string{path})
		}
		return path, apperrors.PermissionDenied(path, "cannot remove file").WithCause(err)
	}
	return path, nil
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// withinAny reports whether path sits directly or nested inside one of dirs
func withinAny(path string, dirs []string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		root, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return true
	}
	return false
}
