package media

import (
	"github.com/nguyentantai21042004/voice-summarizer/internal/config"
	"github.com/nguyentantai21042004/voice-summarizer/internal/logger"
	"github.com/nguyentantai21042004/voice-summarizer/pkg/executor"
)

type implTool struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a media Tool backed by the ffmpeg binaries in cfg
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Tool {
	return &implTool{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
