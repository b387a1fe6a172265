// Package audio probes rendered audio files so timelines can be validated
// against them.
package audio

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// JSON output from ffprobe
type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Duration reports the length of an audio or video file via ffprobe.
func Duration(path string) (time.Duration, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, fmt.Errorf("file not found: %s", path)
	}

	data, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	return parseProbeDuration([]byte(data))
}

func parseProbeDuration(data []byte) (time.Duration, error) {
	var probe probeOutput
	if err := json.Unmarshal(data, &probe); err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	var seconds float64
	if _, err := fmt.Sscanf(probe.Format.Duration, "%f", &seconds); err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}
