package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scriptcue/scriptcue/internal/cue"
	"github.com/scriptcue/scriptcue/internal/translate"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [cue_file]",
	Short: "Translate caption texts to another language using AI",
	Long: `Translate the text of every segment in a cue file using AI.

The rendered audio is immutable, so timings are never touched: only the
displayed text changes. Captions are sent in batches and translated in
parallel.

Provider, model, batch size, and concurrency default to the [translate]
section of scriptcue.toml when present.

Examples:
  scriptcue translate episode.cues --target-language japanese
  scriptcue translate episode.cues -t spanish --provider openai
  scriptcue translate episode.cues -t german -o episode.de.cues`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		StringP("target-language", "t", "", "Target language for translation (required)")
	translateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set the provider's *_API_KEY env var)")
	translateCmd.Flags().
		String("provider", "", "Translation provider (gemini, openai, anthropic); defaults to config")
	translateCmd.Flags().
		String("model", "", "Model to use for translation (provider-specific defaults)")
	translateCmd.Flags().
		Int("concurrency", 0, "Number of parallel translation workers; defaults to config")
	translateCmd.Flags().
		Int("batch-size", 0, "Number of captions per API request; defaults to config")

	_ = translateCmd.MarkFlagRequired("target-language")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cuePath := args[0]
	ctx := context.Background()

	targetLang, _ := cmd.Flags().GetString("target-language")
	apiKey, _ := cmd.Flags().GetString("api-key")
	providerStr, _ := cmd.Flags().GetString("provider")
	model, _ := cmd.Flags().GetString("model")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	outputPath, _ := cmd.Flags().GetString("output")
	sourceLang, _ := cmd.Flags().GetString("language")

	if providerStr == "" {
		providerStr = cfg.Translate.Provider
	}
	if model == "" {
		model = cfg.Translate.Model
	}
	if concurrency == 0 {
		concurrency = cfg.Translate.Concurrency
	}
	if batchSize == 0 {
		batchSize = cfg.Translate.BatchSize
	}

	if concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}
	if batchSize <= 0 {
		return fmt.Errorf("batch-size must be positive, got %d", batchSize)
	}

	if sourceLang != "" &&
		strings.EqualFold(
			strings.TrimSpace(sourceLang),
			strings.TrimSpace(targetLang),
		) {
		return fmt.Errorf(
			"source language %q and target language %q cannot be the same",
			sourceLang,
			targetLang,
		)
	}

	provider := translate.Provider(providerStr)

	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnvVar(provider))
	}
	if apiKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			apiKeyEnvVar(provider),
		)
	}

	data, err := os.ReadFile(cuePath)
	if err != nil {
		return fmt.Errorf("failed to read cue file: %w", err)
	}

	segments := cue.Parse(string(data))
	if len(segments) == 0 {
		return fmt.Errorf("cue file contains no segments")
	}

	opts := translate.Options{
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		Model:          model,
		BatchSize:      batchSize,
	}

	translator, err := translate.Factory(ctx, provider, apiKey, opts)
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	items := make([]translate.Item, len(segments))
	for i, seg := range segments {
		items[i] = translate.Item{
			Index: i,
			Text:  seg.Text,
		}
	}

	logger.Infow("Translating captions",
		"input", cuePath,
		"captions", len(items),
		"target_language", targetLang,
		"provider", provider,
		"concurrency", concurrency,
	)

	var results []translate.Result
	if concurrent, ok := translator.(translate.ConcurrentTranslator); ok {
		results, err = concurrent.TranslateWithConcurrency(
			ctx,
			items,
			concurrency,
		)
	} else {
		results, err = translator.Translate(ctx, items)
	}
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	for _, result := range results {
		if result.Index < 0 || result.Index >= len(segments) {
			logger.Warnw("Skipping invalid result index",
				"index", result.Index,
				"max", len(segments)-1,
			)
			continue
		}
		segments[result.Index].Text = result.Text
	}

	if outputPath == "" {
		baseName := strings.TrimSuffix(cuePath, filepath.Ext(cuePath))
		outputPath = fmt.Sprintf(
			"%s.%s%s",
			baseName,
			targetLang,
			filepath.Ext(cuePath),
		)
	}

	if err := os.WriteFile(
		outputPath,
		[]byte(cue.Serialize(segments)+"\n"),
		0644,
	); err != nil {
		return fmt.Errorf("failed to write cue file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Captions translated successfully: %s\n", absOutput)
	fmt.Printf("  Segments: %d\n", len(segments))
	fmt.Printf("  Target language: %s\n", targetLang)

	return nil
}

func apiKeyEnvVar(provider translate.Provider) string {
	switch provider {
	case translate.ProviderGemini:
		return "GEMINI_API_KEY"
	case translate.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case translate.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "API_KEY"
	}
}
