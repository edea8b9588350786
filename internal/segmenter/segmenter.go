package segmenter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// Split probes the input, then extracts every segment that is not already on disk
func (s *implSegmenter) Split(ctx context.Context, input, dir string) ([]string, error) {
	dir, err := SafePath(s.root, dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create segments dir: %w", err)
	}

	duration, err := s.media.Duration(ctx, input)
	if err != nil {
		return nil, err
	}

	plan := Plan(duration, s.maxLength)
	stem := Stem(input)
	paths := make([]string, len(plan))
	for i, seg := range plan {
		paths[i] = filepath.Join(dir, SegmentName(stem, seg.Index))
	}

	if allExist(paths) {
		s.logger.Info(ctx, "All %d segments already exist, skipping extraction", len(paths))
		return paths, nil
	}

	for i, seg := range plan {
		path := paths[i]
		name := filepath.Base(path)

		if info, err := os.Stat(path); err == nil {
			s.logger.Info(ctx, "Segment %d/%d already exists: %s (%s)",
				seg.Index, len(plan), name, humanize.Bytes(uint64(info.Size())))
			continue
		}

		s.logger.Info(ctx, "Creating segment %d/%d: %s [%.2fs - %.2fs]",
			seg.Index, len(plan), name, seg.Start, seg.End())
		if err := s.media.Extract(ctx, input, path, seg.Start, seg.Length); err != nil {
			return nil, fmt.Errorf("create segment %d: %w", seg.Index, err)
		}
	}

	return paths, nil
}

func allExist(paths []string) bool {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return false
		}
	}
	return true
}
