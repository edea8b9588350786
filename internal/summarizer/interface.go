package summarizer

import (
	"context"
	"errors"
)

var ErrNothingToSummarize = errors.New("combined transcription has no segment text")

// Input is one combined transcript to condense
type Input struct {
	SourceName string
	Combined   string
	OutputPath string
}

// Summarizer sends a combined transcript to a text-generation model and
// writes the response as a markdown document.
type Summarizer interface {
	// Summarize returns the path of the written summary, always overwriting it
	Summarize(ctx context.Context, in Input) (string, error)
}
