package audio

import (
	"testing"
	"time"
)

func TestParseProbeDuration(t *testing.T) {
	data := []byte(`{"format":{"duration":"63.450000","format_name":"mp3"}}`)

	got, err := parseProbeDuration(data)
	if err != nil {
		t.Fatalf("parseProbeDuration error: %v", err)
	}
	want := 63*time.Second + 450*time.Millisecond
	if got != want {
		t.Errorf("duration = %v, want %v", got, want)
	}
}

func TestParseProbeDurationErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid JSON", "not json"},
		{"missing duration", `{"format":{}}`},
		{"non-numeric duration", `{"format":{"duration":"N/A"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseProbeDuration([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestDurationMissingFile(t *testing.T) {
	if _, err := Duration("/nonexistent/audio.mp3"); err == nil {
		t.Error("expected error for missing file")
	}
}
