package transcriber

import (
	"github.com/nguyentantai21042004/voice-summarizer/internal/llm"
	"github.com/nguyentantai21042004/voice-summarizer/internal/logger"
)

type implTranscriber struct {
	client llm.SpeechToText
	model  string
	logger logger.Logger
}

// New creates a Transcriber calling client with the given model
func New(client llm.SpeechToText, model string, log logger.Logger) Transcriber {
	return &implTranscriber{
		client: client,
		model:  model,
		logger: log,
	}
}
