package aggregator

import "context"

// Input describes one combine run. Transcripts[i] is the markdown of segment i+1;
// entries whose file is missing are skipped.
type Input struct {
	SourceName    string
	TotalSegments int
	Transcripts   []string
	OutputPath    string
}

// Combined is the written combined transcript
type Combined struct {
	Path     string
	Text     string
	Segments int
}

// Aggregator concatenates segment transcripts into one document
type Aggregator interface {
	Combine(ctx context.Context, in Input) (Combined, error)
}
