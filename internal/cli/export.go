package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scriptcue/scriptcue/internal/cue"
	"github.com/scriptcue/scriptcue/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [cue_file]",
	Short: "Export a cue file as SRT, VTT, or ASS subtitles",
	Long: `Export segments as a player-ready subtitle file.

SRT and VTT output labels each caption with its speaker; ASS output gives
each party its own style. Speaker display names come from the [export]
section of scriptcue.toml when present, otherwise "A" and "B".

Examples:
  scriptcue export episode.cues
  scriptcue export episode.cues -f vtt
  scriptcue export episode.cues -f ass -o episode.ass`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().
		StringP("format", "f", "", "Output subtitle format (srt, vtt, ass); defaults to config")
}

func runExport(cmd *cobra.Command, args []string) error {
	cuePath := args[0]

	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	if formatStr == "" {
		formatStr = cfg.Export.Format
	}
	format, err := parseExportFormat(formatStr)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cuePath)
	if err != nil {
		return fmt.Errorf("failed to read cue file: %w", err)
	}

	segments := cue.Parse(string(data))
	if len(segments) == 0 {
		return fmt.Errorf("cue file contains no segments")
	}

	names := export.SpeakerNames{}
	if cfg.Export.SpeakerAName != "" {
		names[cue.SpeakerA] = cfg.Export.SpeakerAName
	}
	if cfg.Export.SpeakerBName != "" {
		names[cue.SpeakerB] = cfg.Export.SpeakerBName
	}

	writer, err := export.NewWriter(format, names)
	if err != nil {
		return fmt.Errorf("failed to create subtitle writer: %w", err)
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(
			cuePath,
			filepath.Ext(cuePath),
		) + export.GetExtensionForFormat(format)
	}

	logger.Infow("Exporting subtitles",
		"input", cuePath,
		"output", outputPath,
		"format", format,
		"segments", len(segments),
	)

	if err := writer.Write(segments, outputPath); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles exported successfully: %s\n", absOutput)
	fmt.Printf("  Segments: %d\n", len(segments))
	fmt.Printf("  Format: %s\n", format)

	return nil
}

func parseExportFormat(s string) (export.Format, error) {
	switch strings.ToLower(s) {
	case "srt":
		return export.FormatSRT, nil
	case "vtt":
		return export.FormatVTT, nil
	case "ass":
		return export.FormatASS, nil
	default:
		return "", fmt.Errorf(
			"unsupported format %q: use srt, vtt, or ass",
			s,
		)
	}
}
