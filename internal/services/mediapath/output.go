package mediapath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ProbePrefix names the zero-byte files used to test directory writability
const ProbePrefix = ".write_probe_"

// OutputDir picks the directory a clip cut from inputPath will be written to.
// The input's own directory is preferred, then the public uploads directory,
// then the temp directory.
func (r *Resolver) OutputDir(inputPath string) (string, error) {
	candidates := []string{filepath.Dir(inputPath), r.uploadsDir, r.cfg.TempDir}

	var tried []string
	for _, dir := range candidates {
		if dir == "" || contains(tried, dir) {
			continue
		}
		tried = append(tried, dir)

		if err := probeWritable(dir); err != nil {
			r.logger.WithFields(logrus.Fields{"dir": dir, "error": err}).Debug("output directory not writable")
			continue
		}
		return dir, nil
	}

	return "", apperrors.PermissionDenied(strings.Join(tried, ", "), "no writable output directory").
		WithDetail("checked_paths", tried)
}

// probeWritable creates and deletes a zero-byte file inside dir
func probeWritable(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	probe := filepath.Join(dir, ProbePrefix+uuid.NewString())
	f, err := os.OpenFile(probe, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(probe)
		return err
	}
	return os.Remove(probe)
}

// OutputName returns a unique clip file name for an annotation:
// <stem><marker><annotationID>_<suffix><ext>
func (r *Resolver) OutputName(inputPath string, annotationID uint) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".mp4"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s%s%d_%s%s", stem, r.cfg.NameMarker, annotationID, suffix, ext)
}

// PublicURL converts an output path into the reference stored on a clip.
// Paths under the uploads directory become "/uploads/<rel>"; anything else
// is returned as an absolute path.
func (r *Resolver) PublicURL(outputPath string) string {
	abs, err := filepath.Abs(outputPath)
	if err != nil {
		abs = filepath.Clean(outputPath)
	}

	rel, err := filepath.Rel(r.uploadsDir, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return abs
	}
	return r.cfg.UploadPrefix + filepath.ToSlash(rel)
}

// IsClipName reports whether name was produced by OutputName
func (r *Resolver) IsClipName(name string) bool {
	return strings.Contains(filepath.Base(name), r.cfg.NameMarker)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
