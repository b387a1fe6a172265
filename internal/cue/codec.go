package cue

import (
	"fmt"
	"strconv"
	"strings"
)

// The cue text format is one segment per line:
//
//	startMs,endMs,speaker,text
//
// The numeric fields and the speaker token are never quoted, so text may
// itself contain commas: parsing consumes the first three fields and treats
// everything after the third comma as text. Newlines delimit records and are
// not escaped, so segment text must not contain them.

// Serialize renders segments in the cue text format.
func Serialize(segments []Segment) string {
	lines := make([]string, len(segments))
	for i, seg := range segments {
		lines[i] = fmt.Sprintf(
			"%d,%d,%s,%s",
			seg.StartMS,
			seg.EndMS,
			seg.Speaker,
			seg.Text,
		)
	}
	return strings.Join(lines, "\n")
}

// Parse reads segments from the cue text format. It never fails: blank
// lines are skipped, malformed numeric fields degrade to 0, and any speaker
// token other than the literal "B" maps to party A.
func Parse(text string) []Segment {
	var segments []Segment

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")

		var start, end, speaker string
		var rest []string
		if len(parts) > 0 {
			start = parts[0]
		}
		if len(parts) > 1 {
			end = parts[1]
		}
		if len(parts) > 2 {
			speaker = parts[2]
		}
		if len(parts) > 3 {
			rest = parts[3:]
		}

		segments = append(segments, Segment{
			StartMS: parseMS(start),
			EndMS:   parseMS(end),
			Speaker: parseSpeaker(speaker),
			Text:    strings.TrimSpace(strings.Join(rest, ",")),
		})
	}

	return segments
}

func parseMS(field string) int {
	ms, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0
	}
	return ms
}

func parseSpeaker(field string) Speaker {
	if field == string(SpeakerB) {
		return SpeakerB
	}
	return SpeakerA
}
