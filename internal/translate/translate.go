// Package translate rewrites caption texts in another language while the
// timing windows stay untouched: the rendered audio is immutable, so only
// the displayed text may change.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// single caption text to translate
type Item struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// translated caption text
type Result struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// interface for caption translation
type Translator interface {
	Translate(ctx context.Context, items []Item) ([]Result, error)
}

// optional interface for translators that support concurrent batch processing
type ConcurrentTranslator interface {
	Translator
	TranslateWithConcurrency(
		ctx context.Context,
		items []Item,
		concurrency int,
	) ([]Result, error)
}

// translation service provider
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

type Options struct {
	SourceLanguage string
	TargetLanguage string
	Model          string
	Prompt         string
	BatchSize      int // items per API request (default 50)
}

const DefaultBatchSize = 50

func (o Options) batchSize() int {
	if o.BatchSize > 0 {
		return o.BatchSize
	}
	return DefaultBatchSize
}

// creates Translator based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Translator, error) {
	if opts.TargetLanguage == "" {
		return nil, fmt.Errorf("target language is required")
	}

	switch provider {
	case ProviderGemini:
		return NewGeminiTranslator(ctx, apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAITranslator(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicTranslator(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", provider)
	}
}

// BuildPrompt creates the caption translation prompt for LLM providers
func BuildPrompt(opts Options, items []Item) string {
	var sb strings.Builder

	if opts.SourceLanguage != "" {
		sb.WriteString(fmt.Sprintf(
			"Translate the following %s dialogue captions to %s.\n\n",
			opts.SourceLanguage,
			opts.TargetLanguage,
		))
	} else {
		sb.WriteString(fmt.Sprintf(
			"Translate the following dialogue captions to %s.\n\n",
			opts.TargetLanguage,
		))
	}

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString(
		"1. Each caption is one short on-screen subtitle with a fixed display window; keep translations comparably short.\n",
	)
	sb.WriteString(
		"2. Translate each caption independently. Never merge or split captions.\n",
	)
	sb.WriteString("3. Output plain text only, no markup or annotations.\n")
	sb.WriteString("4. Return ONLY a JSON array with the same structure.\n")
	sb.WriteString("5. Each object must have 'index' and 'text' fields.\n")
	sb.WriteString(
		"6. The 'index' values must match the input indices exactly.\n",
	)
	sb.WriteString("7. Do not add any explanation or markdown formatting.\n\n")

	if opts.Prompt != "" {
		sb.WriteString(
			fmt.Sprintf("Additional instructions: %s\n\n", opts.Prompt),
		)
	}

	sb.WriteString("Input JSON:\n")

	inputJSON, _ := json.MarshalIndent(items, "", "  ")
	sb.Write(inputJSON)

	sb.WriteString("\n\nOutput the translated JSON array only:")

	return sb.String()
}

// translateBatch is one provider API request for a slice of items.
type translateBatch func(ctx context.Context, items []Item) ([]Result, error)

func splitBatches(items []Item, size int) [][]Item {
	var batches [][]Item
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[i:end])
	}
	return batches
}

func sortByIndex(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
}

// runSequential sends batches one at a time.
func runSequential(
	ctx context.Context,
	items []Item,
	batchSize int,
	fn translateBatch,
) ([]Result, error) {
	if len(items) == 0 {
		return []Result{}, nil
	}

	batches := splitBatches(items, batchSize)
	if len(batches) == 1 {
		return fn(ctx, batches[0])
	}

	var all []Result
	for i, batch := range batches {
		results, err := fn(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("batch %d failed: %w", i, err)
		}
		all = append(all, results...)
	}

	sortByIndex(all)
	return all, nil
}

// runConcurrent fans batches out to a worker pool. The first failing batch
// cancels the rest.
func runConcurrent(
	ctx context.Context,
	items []Item,
	batchSize int,
	concurrency int,
	fn translateBatch,
) ([]Result, error) {
	if len(items) == 0 {
		return []Result{}, nil
	}

	if concurrency <= 0 {
		concurrency = 3
	}

	batches := splitBatches(items, batchSize)
	if len(batches) == 1 {
		return fn(ctx, batches[0])
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type batchResult struct {
		Index   int
		Results []Result
		Error   error
	}

	workChan := make(chan int)
	resultChan := make(chan batchResult, len(batches))

	var wg sync.WaitGroup
	for i := 0; i < concurrency && i < len(batches); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case batchIdx, ok := <-workChan:
					if !ok {
						return
					}
					if ctx.Err() != nil {
						return
					}

					results, err := fn(ctx, batches[batchIdx])
					if err != nil {
						cancel()
					}
					resultChan <- batchResult{
						Index:   batchIdx,
						Results: results,
						Error:   err,
					}
				}
			}
		}()
	}

	go func() {
		defer close(workChan)
		for i := range batches {
			select {
			case <-ctx.Done():
				return
			case workChan <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var all []Result
	var firstErr error
	for result := range resultChan {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf(
					"batch %d failed: %w",
					result.Index,
					result.Error,
				)
				cancel()
			}
			continue
		}
		all = append(all, result.Results...)
	}

	if firstErr != nil {
		return nil, firstErr
	}

	sortByIndex(all)
	return all, nil
}
