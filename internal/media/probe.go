package media

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CheckTools runs `-version` on both binaries
func (t *implTool) CheckTools(ctx context.Context) error {
	for _, bin := range []string{t.cfg.FFmpegPath, t.cfg.FFprobePath} {
		if _, err := t.executor.LookPath(bin); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrToolMissing, bin, err)
		}
		if _, err := t.executor.Execute(ctx, bin, "-version"); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrToolMissing, bin, err)
		}
	}
	t.logger.Debug(ctx, "Media tools available: %s, %s", t.cfg.FFmpegPath, t.cfg.FFprobePath)
	return nil
}

// Duration asks ffprobe for format=duration as a bare number
func (t *implTool) Duration(ctx context.Context, path string) (float64, error) {
	args := []string{
		"-v", "quiet",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		path,
	}

	out, err := t.executor.Execute(ctx, t.cfg.FFprobePath, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	duration, err := ParseDuration(out)
	if err != nil {
		return 0, err
	}

	t.logger.Info(ctx, "File duration: %.2f seconds (%.2f minutes)", duration, duration/60)
	return duration, nil
}

// ParseDuration parses ffprobe csv output into seconds.
// Zero, negative and non-finite values are rejected.
func ParseDuration(out string) (float64, error) {
	raw := strings.TrimSpace(out)
	duration, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parse %q: %v", ErrInvalidDuration, raw, err)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}
	return duration, nil
}
