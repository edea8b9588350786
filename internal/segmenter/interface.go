package segmenter

import "context"

// Segmenter cuts an input file into bounded-length audio segments
type Segmenter interface {
	// Split returns the ordered segment paths under dir, reusing any that already exist
	Split(ctx context.Context, input, dir string) ([]string, error)
}
