package aggregator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nguyentantai21042004/voice-summarizer/internal/transcriber"
)

// DateLayout is the processing date format used in document headers
const DateLayout = "2006-01-02 15:04:05"

// Combine rewrites the combined document on every call
func (a *implAggregator) Combine(ctx context.Context, in Input) (Combined, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Complete Transcription: %s\n\n", in.SourceName)
	fmt.Fprintf(&b, "**Source file:** %s\n", in.SourceName)
	fmt.Fprintf(&b, "**Total segments:** %d\n", in.TotalSegments)
	fmt.Fprintf(&b, "**Processing date:** %s\n\n", a.now().Format(DateLayout))

	written := 0
	for i, mdPath := range in.Transcripts {
		content, err := os.ReadFile(mdPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				a.logger.Debug(ctx, "Segment %d has no transcription, leaving it out", i+1)
				continue
			}
			return Combined{}, fmt.Errorf("read transcription %s: %w", mdPath, err)
		}

		fmt.Fprintf(&b, "## Segment %d\n\n", i+1)
		for _, line := range ExtractTranscription(string(content)) {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n\n")
		written++
	}

	text := b.String()
	if err := os.WriteFile(in.OutputPath, []byte(text), 0644); err != nil {
		return Combined{}, fmt.Errorf("write combined transcription: %w", err)
	}

	a.logger.Info(ctx, "Created combined transcription: %s (%d/%d segments)", in.OutputPath, written, in.TotalSegments)
	return Combined{Path: in.OutputPath, Text: text, Segments: written}, nil
}

// ExtractTranscription returns the non-blank lines after the "## Transcription" marker.
// Everything before the first marker is dropped, and every line equal to the
// marker (after trimming) is dropped as well.
func ExtractTranscription(content string) []string {
	var lines []string
	started := false
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == transcriber.TranscriptionHeading {
			started = true
			continue
		}
		if started && strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
