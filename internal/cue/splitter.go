package cue

import (
	"math"
	"strings"
)

const (
	// MaxWordsPerSegment is the word count above which a segment is split.
	MaxWordsPerSegment = 4

	minSegmentDurationMS = 700
)

// Split divides an over-long segment into shorter ones that subdivide the
// original time window exactly. The audio behind the window is already
// rendered, so the window itself must not move: every chunk but the last
// gets a duration proportional to its share of the words (floored at
// minSegmentDurationMS), and the last chunk closes exactly at the original
// EndMS, absorbing any rounding drift. Segments at or under
// MaxWordsPerSegment words are returned unchanged.
func Split(segment Segment) []Segment {
	words := strings.Fields(segment.Text)
	if len(words) <= MaxWordsPerSegment {
		return []Segment{segment}
	}

	breaks := make(map[int]bool)
	for _, point := range BreakPoints(segment.Text) {
		breaks[point] = true
	}

	// close a chunk at the word limit or at a natural break with at least
	// two words, but never on the last word
	var chunks [][]string
	var current []string
	for i, word := range words {
		current = append(current, word)
		if i == len(words)-1 {
			continue
		}
		if len(current) == MaxWordsPerSegment ||
			(breaks[i+1] && len(current) >= 2) {
			chunks = append(chunks, current)
			current = nil
		}
	}
	chunks = append(chunks, current)

	totalDuration := segment.EndMS - segment.StartMS
	totalWords := len(words)

	out := make([]Segment, 0, len(chunks))
	cursor := segment.StartMS
	for i, chunk := range chunks {
		text := strings.Join(chunk, " ")

		if i == len(chunks)-1 {
			// exact closure: the final chunk ends at the original EndMS
			// even if that leaves it shorter than the duration floor
			out = append(out, Segment{
				StartMS: cursor,
				EndMS:   segment.EndMS,
				Speaker: segment.Speaker,
				Text:    text,
			})
			break
		}

		share := float64(len(chunk)) / float64(totalWords)
		duration := int(math.Round(share * float64(totalDuration)))
		if duration < minSegmentDurationMS {
			duration = minSegmentDurationMS
		}

		out = append(out, Segment{
			StartMS: cursor,
			EndMS:   cursor + duration,
			Speaker: segment.Speaker,
			Text:    text,
		})
		cursor += duration
	}

	return out
}

// SplitAll applies Split to each segment in order and concatenates the
// results. Each per-segment split preserves that segment's own window, so a
// contiguous input list stays contiguous.
func SplitAll(segments []Segment) []Segment {
	var out []Segment
	for _, segment := range segments {
		out = append(out, Split(segment)...)
	}
	return out
}
