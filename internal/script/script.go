// Package script parses two-party dialogue scripts into lines consumable by
// the timing estimator. One utterance per line, prefixed with the party tag:
//
//	A: Hello there.
//	B: Hi! Long time no see.
package script

import (
	"fmt"
	"strings"

	"github.com/scriptcue/scriptcue/internal/cue"
)

// Parse reads a dialogue script. Blank lines are skipped; every other line
// must carry an A: or B: prefix (case-insensitive) followed by non-empty
// text.
func Parse(text string) ([]cue.Line, error) {
	var lines []cue.Line

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		tag, rest, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf(
				"line %d: missing speaker tag (expected \"A:\" or \"B:\")",
				i+1,
			)
		}

		var speaker cue.Speaker
		switch strings.ToUpper(strings.TrimSpace(tag)) {
		case "A":
			speaker = cue.SpeakerA
		case "B":
			speaker = cue.SpeakerB
		default:
			return nil, fmt.Errorf(
				"line %d: unknown speaker %q (expected A or B)",
				i+1,
				strings.TrimSpace(tag),
			)
		}

		utterance := strings.TrimSpace(rest)
		if utterance == "" {
			return nil, fmt.Errorf("line %d: empty utterance", i+1)
		}

		lines = append(lines, cue.Line{Speaker: speaker, Text: utterance})
	}

	return lines, nil
}
