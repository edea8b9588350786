// Package llm holds the clients for the hosted speech-to-text and
// text-generation APIs.
package llm

import (
	"context"
	"errors"
)

var ErrEmptyResponse = errors.New("empty response from model")

// TranscriptionRequest is one audio payload to transcribe as plain text
type TranscriptionRequest struct {
	Model    string
	Filename string
	Audio    []byte
}

// CompletionRequest is a single system + user exchange
type CompletionRequest struct {
	Model       string
	System      string
	User        string
	Temperature float32
}

type SpeechToText interface {
	Transcribe(ctx context.Context, req TranscriptionRequest) (string, error)
}

type TextGenerator interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
