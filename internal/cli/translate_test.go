package cli

import (
	"testing"

	"github.com/scriptcue/scriptcue/internal/translate"
)

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider translate.Provider
		want     string
	}{
		{translate.ProviderGemini, "GEMINI_API_KEY"},
		{translate.ProviderOpenAI, "OPENAI_API_KEY"},
		{translate.ProviderAnthropic, "ANTHROPIC_API_KEY"},
		{translate.Provider("other"), "API_KEY"},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			if got := apiKeyEnvVar(tt.provider); got != tt.want {
				t.Errorf("apiKeyEnvVar(%s) = %q, want %q", tt.provider, got, tt.want)
			}
		})
	}
}
