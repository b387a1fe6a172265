package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scriptcue/scriptcue/internal/cue"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split [cue_file]",
	Short: "Re-split over-long segments without moving their time windows",
	Long: `Split every segment longer than four words into shorter ones.

The rendered audio behind a segment is immutable, so splitting never moves
the segment's overall time window: the new segments subdivide it exactly,
with break points chosen after punctuation and around conjunctions. Segments
at or under four words pass through unchanged, so the command is safe to run
repeatedly.

Examples:
  scriptcue split episode.cues
  scriptcue split episode.cues -o episode.split.cues`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	cuePath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")

	data, err := os.ReadFile(cuePath)
	if err != nil {
		return fmt.Errorf("failed to read cue file: %w", err)
	}

	segments := cue.Parse(string(data))
	if len(segments) == 0 {
		return fmt.Errorf("cue file contains no segments")
	}

	logger.Infow("Splitting segments",
		"input", cuePath,
		"segments", len(segments),
	)

	result := cue.SplitAll(segments)

	if outputPath == "" {
		outputPath = strings.TrimSuffix(
			cuePath,
			filepath.Ext(cuePath),
		) + ".split.cues"
	}

	if err := os.WriteFile(
		outputPath,
		[]byte(cue.Serialize(result)+"\n"),
		0644,
	); err != nil {
		return fmt.Errorf("failed to write cue file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Segments split successfully: %s\n", absOutput)
	fmt.Printf("  Before: %d\n", len(segments))
	fmt.Printf("  After:  %d\n", len(result))

	return nil
}
