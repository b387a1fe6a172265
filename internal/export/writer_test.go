package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scriptcue/scriptcue/internal/cue"
)

var testSegments = []cue.Segment{
	{StartMS: 0, EndMS: 2000, Speaker: cue.SpeakerA, Text: "Hello there"},
	{StartMS: 2000, EndMS: 2700, Speaker: cue.SpeakerB, Text: "Hi"},
	{StartMS: 2700, EndMS: 65000, Speaker: cue.SpeakerA, Text: "Long pause, right"},
}

func writeAndRead(t *testing.T, w Writer, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := w.Write(testSegments, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return string(data)
}

func TestSRTWriter(t *testing.T) {
	out := writeAndRead(t, &SRTWriter{}, "test.srt")

	if !strings.Contains(out, "1\n00:00:00,000 --> 00:00:02,000\nA: Hello there\n") {
		t.Errorf("missing first SRT block, got:\n%s", out)
	}
	if !strings.Contains(out, "2\n00:00:02,000 --> 00:00:02,700\nB: Hi\n") {
		t.Errorf("missing second SRT block, got:\n%s", out)
	}
	// minute rollover
	if !strings.Contains(out, "00:01:05,000") {
		t.Errorf("missing rolled-over end timestamp, got:\n%s", out)
	}
}

func TestSRTWriterSpeakerNames(t *testing.T) {
	w := &SRTWriter{Names: SpeakerNames{
		cue.SpeakerA: "Mira",
		cue.SpeakerB: "Theo",
	}}
	out := writeAndRead(t, w, "named.srt")

	if !strings.Contains(out, "Mira: Hello there") {
		t.Errorf("missing renamed party A, got:\n%s", out)
	}
	if !strings.Contains(out, "Theo: Hi") {
		t.Errorf("missing renamed party B, got:\n%s", out)
	}
}

func TestVTTWriter(t *testing.T) {
	out := writeAndRead(t, &VTTWriter{}, "test.vtt")

	if !strings.HasPrefix(out, "WEBVTT\n\n") {
		t.Errorf("missing WEBVTT header, got:\n%s", out)
	}
	if !strings.Contains(out, "00:00:00.000 --> 00:00:02.000\n<v A>Hello there</v>") {
		t.Errorf("missing first VTT cue, got:\n%s", out)
	}
	if !strings.Contains(out, "<v B>Hi</v>") {
		t.Errorf("missing party B voice tag, got:\n%s", out)
	}
}

func TestASSWriter(t *testing.T) {
	w := &ASSWriter{Title: "Test", FontName: "Arial", FontSize: 20}
	out := writeAndRead(t, w, "test.ass")

	if !strings.Contains(out, "Title: Test") {
		t.Errorf("missing title, got:\n%s", out)
	}
	if !strings.Contains(out, "Style: PartyA,Arial,20") {
		t.Errorf("missing party A style, got:\n%s", out)
	}
	if !strings.Contains(out, "Style: PartyB,Arial,20") {
		t.Errorf("missing party B style, got:\n%s", out)
	}
	if !strings.Contains(out, "Dialogue: 0,0:00:00.00,0:00:02.00,PartyA,A,0,0,0,,Hello there") {
		t.Errorf("missing first dialogue line, got:\n%s", out)
	}
	if !strings.Contains(out, "Dialogue: 0,0:00:02.00,0:00:02.70,PartyB,B,0,0,0,,Hi") {
		t.Errorf("missing second dialogue line, got:\n%s", out)
	}
}

func TestNewWriter(t *testing.T) {
	tests := []struct {
		format  Format
		wantErr bool
	}{
		{FormatSRT, false},
		{FormatVTT, false},
		{FormatASS, false},
		{Format("sub"), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			_, err := NewWriter(tt.format, nil)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestGetFormatFromExtension(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.srt", FormatSRT},
		{"out.vtt", FormatVTT},
		{"out.ass", FormatASS},
		{"out.ssa", FormatASS},
		{"out.SRT", FormatSRT},
		{"out.unknown", FormatSRT},
	}

	for _, tt := range tests {
		if got := GetFormatFromExtension(tt.path); got != tt.want {
			t.Errorf("GetFormatFromExtension(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestGetExtensionForFormat(t *testing.T) {
	if got := GetExtensionForFormat(FormatVTT); got != ".vtt" {
		t.Errorf("extension for vtt = %q", got)
	}
	if got := GetExtensionForFormat(FormatSRT); got != ".srt" {
		t.Errorf("extension for srt = %q", got)
	}
}
