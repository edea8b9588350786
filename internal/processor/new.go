package processor

import (
	"github.com/nguyentantai21042004/voice-summarizer/internal/aggregator"
	"github.com/nguyentantai21042004/voice-summarizer/internal/config"
	"github.com/nguyentantai21042004/voice-summarizer/internal/logger"
	"github.com/nguyentantai21042004/voice-summarizer/internal/segmenter"
	"github.com/nguyentantai21042004/voice-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/voice-summarizer/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	segmenter   segmenter.Segmenter
	transcriber transcriber.Transcriber
	aggregator  aggregator.Aggregator
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New creates a new Processor instance. sum may be nil when summaries are disabled.
func New(
	cfg *config.Config,
	seg segmenter.Segmenter,
	tr transcriber.Transcriber,
	agg aggregator.Aggregator,
	sum summarizer.Summarizer,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:         cfg,
		segmenter:   seg,
		transcriber: tr,
		aggregator:  agg,
		summarizer:  sum,
		logger:      log,
	}
}
