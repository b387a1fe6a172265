package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scriptcue/scriptcue/internal/cue"
	"github.com/scriptcue/scriptcue/internal/script"
	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [script_file]",
	Short: "Estimate subtitle timings for a dialogue script",
	Long: `Estimate a subtitle timeline for a two-party dialogue script.

The script has one utterance per line, prefixed with "A:" or "B:". Each
utterance gets a duration from its word count at 150 words per minute, with
a 700ms floor so short lines stay readable, and segments are laid out
back-to-back from 0.

With --split, segments longer than four words are immediately re-split at
natural break points without moving their time windows.

Examples:
  scriptcue estimate episode.txt
  scriptcue estimate episode.txt --split
  scriptcue estimate episode.txt -o episode.cues`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().
		Bool("split", false, "Re-split over-long segments after estimating")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]

	split, _ := cmd.Flags().GetBool("split")
	outputPath, _ := cmd.Flags().GetString("output")

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	lines, err := script.Parse(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}
	if len(lines) == 0 {
		return fmt.Errorf("script contains no dialogue lines")
	}

	logger.Infow("Estimating timeline",
		"script", scriptPath,
		"lines", len(lines),
	)

	segments := cue.Estimate(lines)

	if split {
		before := len(segments)
		segments = cue.SplitAll(segments)
		logger.Infow("Re-split oversized segments",
			"before", before,
			"after", len(segments),
		)
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(
			scriptPath,
			filepath.Ext(scriptPath),
		) + ".cues"
	}

	if err := os.WriteFile(
		outputPath,
		[]byte(cue.Serialize(segments)+"\n"),
		0644,
	); err != nil {
		return fmt.Errorf("failed to write cue file: %w", err)
	}

	total := time.Duration(segments[len(segments)-1].EndMS) * time.Millisecond

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Timeline estimated successfully: %s\n", absOutput)
	fmt.Printf("  Segments: %d\n", len(segments))
	fmt.Printf("  Duration: %s\n", total)

	return nil
}
