package processor

import (
	"context"
	"errors"
)

var ErrInputNotFound = errors.New("input file not found")

// Result lists every artifact of one run
type Result struct {
	OutputDir   string
	Segments    []string
	Transcripts []string
	Failed      []string
	Combined    string
	Summary     string
	Docx        []string
}

// Processor runs the split, transcribe, combine and summarize pipeline for one file
type Processor interface {
	Process(ctx context.Context, inputPath string) (Result, error)
}
