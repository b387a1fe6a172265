package cue

import "strings"

// words that read naturally at the start of a new segment
var conjunctions = map[string]bool{
	"and":     true,
	"but":     true,
	"or":      true,
	"so":      true,
	"yet":     true,
	"because": true,
	"when":    true,
	"while":   true,
	"where":   true,
}

// relative pronouns that read naturally at the end of a segment
var relativePronouns = map[string]bool{
	"that":  true,
	"which": true,
	"who":   true,
}

// BreakPoints proposes word indices immediately before which the text splits
// naturally: after a word ending in a comma or semicolon, before a
// conjunction (unless it opens the text), and after a relative pronoun.
// Indices are emitted in scan order and may repeat; callers treat the result
// as a membership set. This is a heuristic over whitespace tokens, not a
// grammar.
func BreakPoints(text string) []int {
	words := strings.Fields(text)

	var points []int
	for i, word := range words {
		if strings.HasSuffix(word, ",") || strings.HasSuffix(word, ";") {
			points = append(points, i+1)
			continue
		}

		lower := strings.ToLower(word)
		if conjunctions[lower] && i > 0 {
			points = append(points, i)
		} else if relativePronouns[lower] {
			points = append(points, i+1)
		}
	}

	return points
}
