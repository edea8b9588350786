package media

import (
	"context"
	"fmt"
	"strconv"
)

// Extract cuts one time range of input into an audio-only file
func (t *implTool) Extract(ctx context.Context, input, output string, start, length float64) error {
	// -ss after -i seeks by decoding, which keeps segment boundaries exact
	// -vn: drop video
	// -y: overwrite only the target file
	args := []string{
		"-i", input,
		"-ss", formatSeconds(start),
		"-t", formatSeconds(length),
		"-vn",
		"-acodec", t.cfg.AudioCodec,
		"-y",
		output,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.FFmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg extract segment: %w", err)
	}
	return nil
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
