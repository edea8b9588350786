package summarizer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/voice-summarizer/internal/llm"
)

const dateLayout = "2006-01-02 15:04:05"

// Summarize sends the segment bodies with the loaded prompt and writes the summary document
func (s *implSummarizer) Summarize(ctx context.Context, in Input) (string, error) {
	transcript := ExtractSegments(in.Combined)
	if strings.TrimSpace(transcript) == "" {
		return "", ErrNothingToSummarize
	}

	prompt, fromFile, err := LoadPrompt(s.promptFile)
	if err != nil {
		return "", err
	}
	if fromFile {
		s.logger.Info(ctx, "Using summarization prompt: %s", s.promptFile)
	} else {
		s.logger.Info(ctx, "Prompt file %s not found, using built-in prompt", s.promptFile)
	}

	s.logger.Info(ctx, "Creating summary of transcription with %s...", s.model)
	summary, err := s.generator.Complete(ctx, llm.CompletionRequest{
		Model:       s.model,
		System:      prompt,
		User:        transcript,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("summarize transcription: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Summary: %s\n\n", in.SourceName)
	fmt.Fprintf(&b, "**Source file:** %s\n", in.SourceName)
	fmt.Fprintf(&b, "**Model used:** %s\n", s.model)
	fmt.Fprintf(&b, "**Processing date:** %s\n\n", s.now().Format(dateLayout))
	b.WriteString(summary)

	if err := os.WriteFile(in.OutputPath, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}

	s.logger.Info(ctx, "Created summary: %s", in.OutputPath)
	return in.OutputPath, nil
}
