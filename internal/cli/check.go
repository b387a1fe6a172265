package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/scriptcue/scriptcue/internal/audio"
	"github.com/scriptcue/scriptcue/internal/cue"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [cue_file]",
	Short: "Report readability and timeline health of a cue file",
	Long: `Check each segment's readability and the timeline's integrity.

Every segment is classified as good, consider-splitting, or should-split
based on word count, with a recommended display scale for the long ones.
The timeline is audited for gaps and overlaps, which appear when a cue file
is edited by hand.

With --audio, the timeline end is compared against the rendered audio file:
a timeline that runs past the audio is an error.

Examples:
  scriptcue check episode.cues
  scriptcue check episode.cues --audio episode.mp3`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().
		String("audio", "", "Rendered audio file to validate the timeline against")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cuePath := args[0]

	audioPath, _ := cmd.Flags().GetString("audio")

	data, err := os.ReadFile(cuePath)
	if err != nil {
		return fmt.Errorf("failed to read cue file: %w", err)
	}

	segments := cue.Parse(string(data))
	if len(segments) == 0 {
		return fmt.Errorf("cue file contains no segments")
	}

	counts := make(map[cue.Status]int)
	for i, seg := range segments {
		report := cue.Classify(seg)
		counts[report.Status]++

		if report.Status != cue.StatusGood {
			fmt.Printf("  #%d [%s - %s] %s: %d words, scale %d%% (%s)\n",
				i+1,
				formatMS(seg.StartMS),
				formatMS(seg.EndMS),
				report.Status,
				report.WordCount,
				report.RecommendedFontScale,
				report.Message,
			)
		}
	}

	breaks := 0
	for i := 1; i < len(segments); i++ {
		if segments[i].StartMS != segments[i-1].EndMS {
			breaks++
			fmt.Printf("  timeline break: segment %d starts at %s, previous ends at %s\n",
				i+1,
				formatMS(segments[i].StartMS),
				formatMS(segments[i-1].EndMS),
			)
		}
	}

	fmt.Printf("Checked %d segments\n", len(segments))
	fmt.Printf("  good:               %d\n", counts[cue.StatusGood])
	fmt.Printf("  consider-splitting: %d\n", counts[cue.StatusConsiderSplit])
	fmt.Printf("  should-split:       %d\n", counts[cue.StatusShouldSplit])
	if breaks > 0 {
		fmt.Printf("  timeline breaks:    %d\n", breaks)
	}

	if audioPath != "" {
		audioDur, err := audio.Duration(audioPath)
		if err != nil {
			return fmt.Errorf("failed to probe audio: %w", err)
		}

		timelineEnd := time.Duration(
			segments[len(segments)-1].EndMS,
		) * time.Millisecond

		if timelineEnd > audioDur {
			return fmt.Errorf(
				"timeline ends at %s but rendered audio is only %s",
				timelineEnd,
				audioDur,
			)
		}

		fmt.Printf("  Timeline fits rendered audio: %s of %s used\n",
			timelineEnd,
			audioDur,
		)
	}

	return nil
}

func formatMS(ms int) string {
	return (time.Duration(ms) * time.Millisecond).String()
}
