package transcriber

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/voice-summarizer/internal/llm"
)

func (t *implTranscriber) Transcribe(ctx context.Context, segmentPath string) (string, error) {
	mdPath := MarkdownPath(segmentPath)
	name := filepath.Base(segmentPath)

	if _, err := os.Stat(mdPath); err == nil {
		t.logger.Info(ctx, "Transcription already exists, skipping: %s", filepath.Base(mdPath))
		return mdPath, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("stat transcription: %w", err)
	}

	audio, err := os.ReadFile(segmentPath)
	if err != nil {
		return "", fmt.Errorf("read segment: %w", err)
	}

	text, err := t.client.Transcribe(ctx, llm.TranscriptionRequest{
		Model:    t.model,
		Filename: name,
		Audio:    audio,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", name, err)
	}

	if err := writeFileAtomic(mdPath, []byte(RenderMarkdown(segmentPath, text))); err != nil {
		return "", fmt.Errorf("save transcription: %w", err)
	}

	t.logger.Info(ctx, "Saved transcription: %s", mdPath)
	return mdPath, nil
}

// MarkdownPath is the transcript path for a segment: same directory, .md extension
func MarkdownPath(segmentPath string) string {
	return strings.TrimSuffix(segmentPath, filepath.Ext(segmentPath)) + ".md"
}

// RenderMarkdown builds the segment transcript document; text is kept verbatim
func RenderMarkdown(segmentPath, text string) string {
	name := filepath.Base(segmentPath)
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	var b strings.Builder
	fmt.Fprintf(&b, "# Transcription: %s\n\n", stem)
	fmt.Fprintf(&b, "**Source file:** %s\n\n", name)
	b.WriteString(TranscriptionHeading + "\n\n")
	b.WriteString(text)
	return b.String()
}

// writeFileAtomic never leaves a half-written transcript that a re-run would treat as done
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
