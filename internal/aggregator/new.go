package aggregator

import (
	"time"

	"github.com/nguyentantai21042004/voice-summarizer/internal/logger"
)

type implAggregator struct {
	logger logger.Logger
	now    func() time.Time
}

// New creates an Aggregator stamping documents with the wall clock
func New(log logger.Logger) Aggregator {
	return &implAggregator{
		logger: log,
		now:    time.Now,
	}
}
