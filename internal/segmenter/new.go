package segmenter

import (
	"github.com/nguyentantai21042004/voice-summarizer/internal/logger"
	"github.com/nguyentantai21042004/voice-summarizer/internal/media"
)

type implSegmenter struct {
	media     media.Tool
	maxLength float64
	root      string
	logger    logger.Logger
}

// New creates a Segmenter. Output directories must resolve under root
// (the working directory when root is empty).
func New(tool media.Tool, maxLength float64, root string, log logger.Logger) Segmenter {
	return &implSegmenter{
		media:     tool,
		maxLength: maxLength,
		root:      root,
		logger:    log,
	}
}
