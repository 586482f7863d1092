package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Analyser is a named reference to a source video under annotation.
// VideoURL is an absolute path or a root-relative /uploads/... reference.
type Analyser struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"size:255;not null"`
	VideoURL    string       `json:"video_url" gorm:"column:video_url;size:255;not null"`
	Annotations []Annotation `json:"annotations" gorm:"foreignKey:AnalyserID"`
}

// TableName returns the table name for the Analyser model
func (Analyser) TableName() string {
	return "analyser"
}

// IsRemote reports whether the video reference points at an external URL
func (a *Analyser) IsRemote() bool {
	ref := strings.ToLower(strings.TrimSpace(a.VideoURL))
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Annotation is a labeled time range on an Analyser's video.
// Saved is true while at least one Clip exists for the annotation.
type Annotation struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	AnalyserID  uint       `json:"analyser_id" gorm:"not null;index"`
	TimeFrom    *ClockTime `json:"time_from" gorm:"not null"`
	TimeTo      *ClockTime `json:"time_to"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Description string     `json:"description" gorm:"size:255"`
	Color       string     `json:"color" gorm:"size:50;not null"`
	Saved       bool       `json:"saved" gorm:"not null;default:false"`
	Clips       []Clip     `json:"cropped_videos" gorm:"foreignKey:AnnoID"`
}

// TableName returns the table name for the Annotation model
func (Annotation) TableName() string {
	return "annotation_analyser"
}

// Clip is a sub-segment cut from an Analyser's video for one Annotation.
// CropID references exercises.id.
type Clip struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	AnnoID    uint           `json:"anno_id" gorm:"column:anno_id;not null;index"`
	VideoURL  string         `json:"video_url" gorm:"column:video_url;size:255;not null"`
	CropID    uint           `json:"crop_id" gorm:"column:crop_id;not null;index"`
	Metadata  datatypes.JSON `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt time.Time      `json:"created_at"`
}

// TableName returns the table name for the Clip model
func (Clip) TableName() string {
	return "cropped_video"
}
