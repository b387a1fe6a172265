package cli

import (
	"testing"

	"github.com/scriptcue/scriptcue/internal/export"
)

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    export.Format
		wantErr bool
	}{
		{"srt", export.FormatSRT, false},
		{"SRT", export.FormatSRT, false},
		{"vtt", export.FormatVTT, false},
		{"Ass", export.FormatASS, false},
		{"sub", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseExportFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseExportFormat(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
