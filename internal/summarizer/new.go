package summarizer

import (
	"time"

	"github.com/nguyentantai21042004/voice-summarizer/internal/config"
	"github.com/nguyentantai21042004/voice-summarizer/internal/llm"
	"github.com/nguyentantai21042004/voice-summarizer/internal/logger"
)

type implSummarizer struct {
	generator   llm.TextGenerator
	model       string
	promptFile  string
	temperature float32
	logger      logger.Logger
	now         func() time.Time
}

// New creates a Summarizer using generator with the model and prompt from cfg
func New(generator llm.TextGenerator, cfg config.SummaryConfig, log logger.Logger) Summarizer {
	return &implSummarizer{
		generator:   generator,
		model:       cfg.Model,
		promptFile:  cfg.PromptFile,
		temperature: cfg.Temperature,
		logger:      log,
		now:         time.Now,
	}
}
