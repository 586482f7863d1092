package ffmpeg

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// Probe reads container and stream information for a media file
func (f *FFmpeg) Probe(ctx context.Context, filePath string) (*ProbeResult, error) {
	probePath, err := f.ffprobePath(ctx)
	if err != nil {
		return nil, err
	}

	args := []string{
		"-v", "quiet",
		"-show_format",
		"-show_streams",
		"-of", "json",
		filePath,
	}

	stdout, stderr, err := f.runner.Run(ctx, probePath, args...)
	if err != nil {
		return nil, NewProcessingError("probe", filePath, err, string(stderr))
	}

	result, err := parseProbe(stdout)
	if err != nil {
		return nil, NewProcessingError("probe_parsing", filePath, err, "")
	}
	return result, nil
}

// parseProbe extracts the fields kept with a clip from ffprobe JSON output
func parseProbe(data []byte) (*ProbeResult, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid ffprobe output")
	}
	doc := gjson.ParseBytes(data)

	video := doc.Get(`streams.#(codec_type=="video")`)
	audio := doc.Get(`streams.#(codec_type=="audio")`)

	result := &ProbeResult{
		Duration:   doc.Get("format.duration").Float(),
		FormatName: doc.Get("format.format_name").String(),
		SizeBytes:  doc.Get("format.size").Int(),
		VideoCodec: video.Get("codec_name").String(),
		AudioCodec: audio.Get("codec_name").String(),
		Width:      video.Get("width").Int(),
		Height:     video.Get("height").Int(),
	}

	if result.Duration == 0 {
		result.Duration = video.Get("duration").Float()
	}
	if result.Duration == 0 {
		return nil, fmt.Errorf("could not determine media duration")
	}
	return result, nil
}
