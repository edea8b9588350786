package summarizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DefaultPrompt is used when no prompt document exists
const DefaultPrompt = "You are an expert in analyzing and summarizing transcribed audio content. " +
	"Create a comprehensive summary of the provided transcription."

const segmentMarker = "## Segment"

// LoadPrompt reads the system prompt document, falling back to DefaultPrompt when it is absent
func LoadPrompt(path string) (string, bool, error) {
	if path == "" {
		return DefaultPrompt, false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultPrompt, false, nil
		}
		return "", false, fmt.Errorf("read prompt file: %w", err)
	}
	return string(data), true, nil
}

// ExtractSegments keeps the combined document from the first "## Segment" line onward
func ExtractSegments(combined string) string {
	lines := strings.Split(combined, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, segmentMarker) {
			return strings.Join(lines[i:], "\n")
		}
	}
	return ""
}
