package cue

import "strings"

// one of the two fixed dialogue parties
type Speaker string

const (
	SpeakerA Speaker = "A"
	SpeakerB Speaker = "B"
)

// single utterance of a two-party dialogue script
type Line struct {
	Speaker Speaker
	Text    string
}

// time-stamped subtitle segment; displayed during [StartMS, EndMS)
type Segment struct {
	StartMS int
	EndMS   int
	Speaker Speaker
	Text    string
}

// DurationMS returns the length of the segment's display window.
func (s Segment) DurationMS() int {
	return s.EndMS - s.StartMS
}

// WordCount counts whitespace-delimited words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
