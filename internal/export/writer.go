// Package export writes finished cue segments as player-ready subtitle
// files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scriptcue/scriptcue/internal/cue"
)

// supported subtitle file formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatASS Format = "ass"
)

// display names for the two dialogue parties
type SpeakerNames map[cue.Speaker]string

// interface for writing segments to subtitle files
type Writer interface {
	Write(segments []cue.Segment, path string) error
}

// SubRip format
type SRTWriter struct {
	Names SpeakerNames
}

// WebVTT format, speakers rendered as voice tags
type VTTWriter struct {
	Names SpeakerNames
}

// Advanced SubStation Alpha format, one style per party
type ASSWriter struct {
	Title    string
	FontName string
	FontSize int
	Names    SpeakerNames
}

func NewWriter(format Format, names SpeakerNames) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{Names: names}, nil
	case FormatVTT:
		return &VTTWriter{Names: names}, nil
	case FormatASS:
		return &ASSWriter{
			Title:    "Scriptcue Dialogue",
			FontName: "Arial",
			FontSize: 20,
			Names:    names,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// writes the segments to an SRT file
func (w *SRTWriter) Write(segments []cue.Segment, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder
	for i, seg := range segments {
		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTime(seg.StartMS),
			formatSRTTime(seg.EndMS)))

		sb.WriteString(fmt.Sprintf("%s: %s\n\n",
			speakerLabel(w.Names, seg.Speaker),
			seg.Text))
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// writes the segments to a VTT file
func (w *VTTWriter) Write(segments []cue.Segment, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder

	// VTT header
	sb.WriteString("WEBVTT\n\n")

	for i, seg := range segments {
		// cue identifier
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00.000 --> 00:00:00.000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatVTTTime(seg.StartMS),
			formatVTTTime(seg.EndMS)))

		sb.WriteString(fmt.Sprintf("<v %s>%s</v>\n\n",
			speakerLabel(w.Names, seg.Speaker),
			seg.Text))
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// writes the segments to an ASS file
func (w *ASSWriter) Write(segments []cue.Segment, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder

	// script info section
	sb.WriteString("[Script Info]\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", w.Title))
	sb.WriteString("ScriptType: v4.00+\n")
	sb.WriteString("Collisions: Normal\n")
	sb.WriteString("PlayDepth: 0\n\n")

	// v4+ styles section: one style per party so players can tint them
	sb.WriteString("[V4+ Styles]\n")
	sb.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	sb.WriteString(fmt.Sprintf("Style: PartyA,%s,%d,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1\n",
		w.FontName, w.FontSize))
	sb.WriteString(fmt.Sprintf("Style: PartyB,%s,%d,&H0000FFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1\n\n",
		w.FontName, w.FontSize))

	// events section
	sb.WriteString("[Events]\n")
	sb.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")

	for _, seg := range segments {
		style := "PartyA"
		if seg.Speaker == cue.SpeakerB {
			style = "PartyB"
		}

		sb.WriteString(fmt.Sprintf("Dialogue: 0,%s,%s,%s,%s,0,0,0,,%s\n",
			formatASSTime(seg.StartMS),
			formatASSTime(seg.EndMS),
			style,
			speakerLabel(w.Names, seg.Speaker),
			seg.Text))
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func speakerLabel(names SpeakerNames, speaker cue.Speaker) string {
	if name, ok := names[speaker]; ok && name != "" {
		return name
	}
	return string(speaker)
}

func formatSRTTime(ms int) string {
	hours := ms / 3600000
	minutes := ms / 60000 % 60
	seconds := ms / 1000 % 60
	millis := ms % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

func formatVTTTime(ms int) string {
	hours := ms / 3600000
	minutes := ms / 60000 % 60
	seconds := ms / 1000 % 60
	millis := ms % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

func formatASSTime(ms int) string {
	hours := ms / 3600000
	minutes := ms / 60000 % 60
	seconds := ms / 1000 % 60
	centis := ms % 1000 / 10

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// subtitle format based on file extension
func GetFormatFromExtension(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".vtt":
		return FormatVTT
	case ".ass", ".ssa":
		return FormatASS
	default:
		return FormatSRT
	}
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatVTT:
		return ".vtt"
	case FormatASS:
		return ".ass"
	default:
		return ".srt"
	}
}
