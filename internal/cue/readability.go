package cue

import "fmt"

// qualitative length bucket for a segment
type Status string

const (
	StatusGood          Status = "good"
	StatusConsiderSplit Status = "consider-splitting"
	StatusShouldSplit   Status = "should-split"
)

// word count above which splitting stops being optional
const considerSplitThreshold = 6

// advisory readability report for one segment
type Report struct {
	Status               Status
	WordCount            int
	RecommendedFontScale int
	SuggestedChunks      int
	Message              string
}

// Classify reports how comfortable a segment is to read and a display-size
// scale to compensate. Purely advisory: callers decide whether to split.
func Classify(segment Segment) Report {
	wc := WordCount(segment.Text)

	if wc <= MaxWordsPerSegment {
		return Report{
			Status:               StatusGood,
			WordCount:            wc,
			RecommendedFontScale: 100,
			SuggestedChunks:      1,
			Message:              "segment length is comfortable",
		}
	}

	chunks := (wc + MaxWordsPerSegment - 1) / MaxWordsPerSegment

	if wc <= considerSplitThreshold {
		return Report{
			Status:               StatusConsiderSplit,
			WordCount:            wc,
			RecommendedFontScale: 90,
			SuggestedChunks:      chunks,
			Message: fmt.Sprintf(
				"consider splitting into %d segments", chunks,
			),
		}
	}

	return Report{
		Status:               StatusShouldSplit,
		WordCount:            wc,
		RecommendedFontScale: 80,
		SuggestedChunks:      chunks,
		Message: fmt.Sprintf(
			"should be split into %d segments", chunks,
		),
	}
}
