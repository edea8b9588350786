package processor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/voice-summarizer/internal/aggregator"
	"github.com/nguyentantai21042004/voice-summarizer/internal/segmenter"
	"github.com/nguyentantai21042004/voice-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/voice-summarizer/internal/transcriber"
)

// Process orchestrates the entire pipeline for one input file
func (p *implProcessor) Process(ctx context.Context, inputPath string) (Result, error) {
	startTime := time.Now()
	sourceName := filepath.Base(inputPath)
	stem := segmenter.Stem(inputPath)

	// The path check comes first so an unsafe output never touches disk or the API
	outputDir, err := segmenter.SafePath(p.cfg.Paths.Root, filepath.Join(p.cfg.Paths.Output, sourceName))
	if err != nil {
		return Result{}, err
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return Result{}, fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return Result{}, fmt.Errorf("%w: %s is a directory", ErrInputNotFound, inputPath)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing file: %s", inputPath)
	p.logger.Info(ctx, "Output directory: %s", outputDir)
	p.logger.Info(ctx, "========================================")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}
	result := Result{OutputDir: outputDir}

	// Step 1: Split into segments
	segments, err := p.segmenter.Split(ctx, inputPath, filepath.Join(outputDir, "segments"))
	if err != nil {
		return result, fmt.Errorf("split audio: %w", err)
	}
	result.Segments = segments

	// Step 2: Transcribe each segment
	expected := make([]string, len(segments))
	for i, segmentPath := range segments {
		expected[i] = transcriber.MarkdownPath(segmentPath)
		p.logger.Info(ctx, "Transcribing segment %d/%d: %s", i+1, len(segments), filepath.Base(segmentPath))

		mdPath, err := p.transcriber.Transcribe(ctx, segmentPath)
		if err != nil {
			if p.cfg.Processing.AbortOnSegmentFailure {
				return result, fmt.Errorf("transcribe segment %d: %w", i+1, err)
			}
			p.logger.Error(ctx, "Failed to transcribe segment %s: %v", segmentPath, err)
			result.Failed = append(result.Failed, segmentPath)
			continue
		}
		result.Transcripts = append(result.Transcripts, mdPath)
	}

	// Step 3: Combine
	combined, err := p.aggregator.Combine(ctx, aggregator.Input{
		SourceName:    sourceName,
		TotalSegments: len(segments),
		Transcripts:   expected,
		OutputPath:    filepath.Join(outputDir, stem+"_combined.md"),
	})
	if err != nil {
		return result, fmt.Errorf("combine transcriptions: %w", err)
	}
	result.Combined = combined.Path
	p.exportDocx(ctx, &result, sourceName, combined.Text, combined.Path)

	// Step 4: Summarize (optional)
	if p.cfg.Summary.Enabled && p.summarizer != nil {
		summaryPath, err := p.summarizer.Summarize(ctx, summarizer.Input{
			SourceName: sourceName,
			Combined:   combined.Text,
			OutputPath: filepath.Join(outputDir, stem+"_summary.md"),
		})
		if err != nil {
			return result, fmt.Errorf("create summary: %w", err)
		}
		result.Summary = summaryPath

		if p.cfg.Output.Docx {
			data, err := os.ReadFile(summaryPath)
			if err != nil {
				return result, fmt.Errorf("read summary: %w", err)
			}
			p.exportDocx(ctx, &result, sourceName, string(data), summaryPath)
		}
	} else {
		p.logger.Info(ctx, "Summarization disabled, skipping")
	}

	p.logger.Info(ctx, "========================================")
	if len(result.Failed) > 0 {
		p.logger.Warn(ctx, "%d of %d segments failed to transcribe", len(result.Failed), len(segments))
	}
	p.logger.Info(ctx, "Processing complete. Output files in: %s", outputDir)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	return result, nil
}

// exportDocx writes a .docx next to mdPath; failures are logged, the markdown is the primary artifact
func (p *implProcessor) exportDocx(ctx context.Context, result *Result, title, markdown, mdPath string) {
	if !p.cfg.Output.Docx {
		return
	}
	docxPath := strings.TrimSuffix(mdPath, filepath.Ext(mdPath)) + ".docx"
	if err := summarizer.WriteDocx(title, markdown, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
		return
	}
	p.logger.Info(ctx, "Created docx: %s", docxPath)
	result.Docx = append(result.Docx, docxPath)
}
