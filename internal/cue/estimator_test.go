package cue

import "testing"

func TestEstimateEmptyInput(t *testing.T) {
	segments := Estimate(nil)
	if len(segments) != 0 {
		t.Errorf("expected no segments, got %d", len(segments))
	}

	segments = Estimate([]Line{})
	if len(segments) != 0 {
		t.Errorf("expected no segments, got %d", len(segments))
	}
}

func TestEstimateTimeline(t *testing.T) {
	lines := []Line{
		{Speaker: SpeakerA, Text: "Hello there my friend how are you today"},
		{Speaker: SpeakerB, Text: "Fine"},
		{Speaker: SpeakerA, Text: "Glad to hear it because I was worried about you"},
	}

	segments := Estimate(lines)

	if len(segments) != len(lines) {
		t.Fatalf("expected %d segments, got %d", len(lines), len(segments))
	}

	if segments[0].StartMS != 0 {
		t.Errorf("expected timeline to start at 0, got %d", segments[0].StartMS)
	}

	for i, seg := range segments {
		if seg.EndMS <= seg.StartMS {
			t.Errorf("segment %d: end %d not after start %d", i, seg.EndMS, seg.StartMS)
		}
		if seg.DurationMS() < 700 {
			t.Errorf("segment %d: duration %d below 700ms floor", i, seg.DurationMS())
		}
		if seg.Speaker != lines[i].Speaker {
			t.Errorf("segment %d: speaker %s, want %s", i, seg.Speaker, lines[i].Speaker)
		}
		if seg.Text != lines[i].Text {
			t.Errorf("segment %d: text %q, want %q", i, seg.Text, lines[i].Text)
		}
		if i > 0 && seg.StartMS != segments[i-1].EndMS {
			t.Errorf(
				"segment %d: start %d leaves gap after previous end %d",
				i, seg.StartMS, segments[i-1].EndMS,
			)
		}
	}
}

func TestEstimateSpeakingRate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wantMS int
	}{
		// 150 words/min = 400ms per word
		{"five words", "one two three four five", 2000},
		{"ten words", "a b c d e f g h i j", 4000},
		// below the floor
		{"one word", "hi", 700},
		{"empty", "", 700},
		{"whitespace only", "   \t  ", 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := Estimate([]Line{{Speaker: SpeakerA, Text: tt.text}})
			if len(segments) != 1 {
				t.Fatalf("expected 1 segment, got %d", len(segments))
			}
			if got := segments[0].DurationMS(); got != tt.wantMS {
				t.Errorf("duration = %dms, want %dms", got, tt.wantMS)
			}
		})
	}
}
