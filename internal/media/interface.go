package media

import (
	"context"
	"errors"
)

var (
	ErrToolMissing     = errors.New("required media tool is not available")
	ErrInvalidDuration = errors.New("invalid media duration")
)

// Tool wraps ffprobe/ffmpeg for the two operations the pipeline consumes
type Tool interface {
	// CheckTools verifies ffmpeg and ffprobe can be executed
	CheckTools(ctx context.Context) error
	// Duration reports the container duration of path in seconds
	Duration(ctx context.Context, path string) (float64, error)
	// Extract writes [start, start+length) of input as audio-only output, overwriting it
	Extract(ctx context.Context, input, output string, start, length float64) error
}
