package transcriber

import "context"

// TranscriptionHeading separates the segment header from the transcript body
const TranscriptionHeading = "## Transcription"

// Transcriber turns one audio segment into a markdown transcript next to it
type Transcriber interface {
	// Transcribe returns the markdown path, skipping the API call when it already exists
	Transcribe(ctx context.Context, segmentPath string) (string, error)
}
