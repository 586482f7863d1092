package ffmpeg

import (
	"encoding/json"
	"time"

	"github.com/killallgit/planner-api/pkg/config"
)

// Availability is the result of probing for a usable ffmpeg binary
type Availability struct {
	Available bool      `json:"available"`
	Version   string    `json:"version,omitempty"`
	Path      string    `json:"path,omitempty"`
	Message   string    `json:"message"`
	Checked   []string  `json:"checked_paths,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// ClipRequest describes one time-bounded extraction
type ClipRequest struct {
	InputPath  string
	Start      time.Duration
	Duration   time.Duration
	OutputPath string
}

// ClipResult describes a successfully written clip
type ClipResult struct {
	OutputPath string
	SizeBytes  int64
	Probe      *ProbeResult // nil when ffprobe is unavailable or failed
}

// ProbeResult is the subset of ffprobe output kept with a clip
type ProbeResult struct {
	Duration   float64 `json:"duration"`
	FormatName string  `json:"format_name,omitempty"`
	VideoCodec string  `json:"video_codec,omitempty"`
	AudioCodec string  `json:"audio_codec,omitempty"`
	Width      int64   `json:"width,omitempty"`
	Height     int64   `json:"height,omitempty"`
	SizeBytes  int64   `json:"size,omitempty"`
}

// JSON returns the probe summary encoded for storage
func (p *ProbeResult) JSON() json.RawMessage {
	if p == nil {
		return nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil
	}
	return data
}

// EncodingOptions are the fixed output codec choices
type EncodingOptions struct {
	VideoCodec  string
	AudioCodec  string
	Preset      string
	CRF         int
	PixelFormat string
}

// DefaultEncoding returns H.264/AAC settings that play back in every browser
func DefaultEncoding() EncodingOptions {
	return EncodingOptions{
		VideoCodec:  "libx264",
		AudioCodec:  "aac",
		Preset:      "fast",
		CRF:         23,
		PixelFormat: "yuv420p",
	}
}

// Options configures the gateway
type Options struct {
	FFmpegPath      string
	FFprobePath     string
	FallbackPaths   []string
	Timeout         time.Duration // 0 disables the deadline
	AvailabilityTTL time.Duration // 0 disables caching
	MaxConcurrent   int64         // 0 means unlimited
	Encoding        EncodingOptions
}

// OptionsFromConfig maps transcoder settings onto gateway options
func OptionsFromConfig(cfg config.TranscoderConfig) Options {
	enc := DefaultEncoding()
	if cfg.VideoCodec != "" {
		enc.VideoCodec = cfg.VideoCodec
	}
	if cfg.AudioCodec != "" {
		enc.AudioCodec = cfg.AudioCodec
	}
	if cfg.Preset != "" {
		enc.Preset = cfg.Preset
	}
	if cfg.CRF > 0 {
		enc.CRF = cfg.CRF
	}
	if cfg.PixelFormat != "" {
		enc.PixelFormat = cfg.PixelFormat
	}

	return Options{
		FFmpegPath:      cfg.FFmpegPath,
		FFprobePath:     cfg.FFprobePath,
		FallbackPaths:   cfg.FallbackPaths,
		Timeout:         cfg.Timeout,
		AvailabilityTTL: cfg.AvailabilityTTL,
		MaxConcurrent:   cfg.MaxConcurrent,
		Encoding:        enc,
	}
}
