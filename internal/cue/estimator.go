package cue

import "math"

// speaking-rate model constants
const (
	wordsPerMinute    = 150
	minLineDurationMS = 700
)

// Estimate converts dialogue lines into contiguous time-stamped segments.
// Per-line duration is derived from word count at a fixed speaking rate,
// floored so very short lines stay readable. Segments start at 0 and each
// one begins where the previous ended.
func Estimate(lines []Line) []Segment {
	segments := make([]Segment, 0, len(lines))

	cursor := 0
	for _, line := range lines {
		words := WordCount(line.Text)

		duration := int(math.Round(float64(words) / wordsPerMinute * 60000))
		if duration < minLineDurationMS {
			duration = minLineDurationMS
		}

		segments = append(segments, Segment{
			StartMS: cursor,
			EndMS:   cursor + duration,
			Speaker: line.Speaker,
			Text:    line.Text,
		})
		cursor += duration
	}

	return segments
}
