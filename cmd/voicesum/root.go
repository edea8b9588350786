package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/voice-summarizer/internal/aggregator"
	"github.com/nguyentantai21042004/voice-summarizer/internal/config"
	"github.com/nguyentantai21042004/voice-summarizer/internal/llm"
	"github.com/nguyentantai21042004/voice-summarizer/internal/logger"
	"github.com/nguyentantai21042004/voice-summarizer/internal/media"
	"github.com/nguyentantai21042004/voice-summarizer/internal/processor"
	"github.com/nguyentantai21042004/voice-summarizer/internal/segmenter"
	"github.com/nguyentantai21042004/voice-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/voice-summarizer/internal/transcriber"
	"github.com/nguyentantai21042004/voice-summarizer/pkg/executor"
)

type options struct {
	configPath      string
	output          string
	apiKey          string
	baseURL         string
	whisperModel    string
	summaryModel    string
	provider        string
	promptFile      string
	noSummary       bool
	docx            bool
	continueOnError bool
	logLevel        string
}

func newRootCommand() *cobra.Command {
	return newCommand(&options{})
}

func newCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voicesum <input_file>",
		Short: "Split and transcribe audio/video files, then summarize the transcript",
		Long: `Splits an audio or video file into segments of at most 9.5 minutes with ffmpeg,
transcribes every segment through an OpenAI-compatible speech API, writes a combined
markdown transcript and, unless --no-summary is given, a model-generated summary.

Output layout: <output>/<input-filename>/segments/, <stem>_combined.md, <stem>_summary.md.
Existing segments and segment transcripts are reused on re-runs.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, opts, os.Getenv)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, args[0], newClients(cfg))
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file (or set VOICESUM_CONFIG, default: config.yaml when present)")
	f.StringVarP(&opts.output, "output", "o", "Output", "Output directory")
	f.StringVar(&opts.apiKey, "api-key", "", "OpenAI API key (or set OPENAI_API_KEY env var)")
	f.StringVar(&opts.baseURL, "base-url", "", "OpenAI base URL (or set OPENAI_BASE_URL env var)")
	f.StringVar(&opts.whisperModel, "whisper-model", "", "Transcription model (or set OPENAI_WHISPER_MODEL env var, default: whisper-1)")
	f.StringVar(&opts.summaryModel, "summary-model", "", "Model for summarization (or set OPENAI_SUMMARY_MODEL env var, default: gpt-4o-mini)")
	f.StringVar(&opts.provider, "provider", "", "Summarization provider: openai|gemini (or set SUMMARY_PROVIDER env var)")
	f.StringVar(&opts.promptFile, "prompt-file", "", "Summarization prompt file (or set PROMPT_FILE env var, default: summarization_prompt.md)")
	f.BoolVar(&opts.noSummary, "no-summary", false, "Skip the summary step")
	f.BoolVar(&opts.docx, "docx", false, "Also write .docx copies of the combined transcript and summary")
	f.BoolVar(&opts.continueOnError, "continue-on-error", false, "Keep going when a segment fails to transcribe")
	f.StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error (or set LOG_LEVEL env var)")

	return cmd
}

// buildConfig merges defaults < YAML file < environment < flags
func buildConfig(cmd *cobra.Command, opts *options, getenv func(string) string) (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	path, optional := opts.configPath, false
	if path == "" {
		path = getenv("VOICESUM_CONFIG")
	}
	if path == "" {
		path, optional = "config.yaml", true
	}

	cfg, err := config.Load(path, optional)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(getenv)

	flags := cmd.Flags()
	setString := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	setString("output", &cfg.Paths.Output, opts.output)
	setString("api-key", &cfg.OpenAI.APIKey, opts.apiKey)
	setString("base-url", &cfg.OpenAI.BaseURL, opts.baseURL)
	setString("whisper-model", &cfg.OpenAI.TranscriptionModel, opts.whisperModel)
	setString("summary-model", &cfg.Summary.Model, opts.summaryModel)
	setString("provider", &cfg.Summary.Provider, opts.provider)
	setString("prompt-file", &cfg.Summary.PromptFile, opts.promptFile)
	setString("log-level", &cfg.Logging.Level, opts.logLevel)
	if opts.noSummary {
		cfg.Summary.Enabled = false
	}
	if opts.docx {
		cfg.Output.Docx = true
	}
	if opts.continueOnError {
		cfg.Processing.AbortOnSegmentFailure = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if !logger.ValidLevel(cfg.Logging.Level) {
		return nil, fmt.Errorf("invalid configuration: unknown log level %q", cfg.Logging.Level)
	}
	return cfg, nil
}

// clients holds the external collaborators of a run
type clients struct {
	executor  executor.Executor
	speech    llm.SpeechToText
	generator llm.TextGenerator
}

func newClients(cfg *config.Config) clients {
	// One client identity serves both transcription and OpenAI summaries
	openaiClient := llm.NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL)

	c := clients{
		executor:  executor.New(),
		speech:    openaiClient,
		generator: openaiClient,
	}
	if cfg.Summary.Provider == config.ProviderGemini {
		c.generator = llm.NewGemini(cfg.Gemini.APIKey, cfg.Gemini.BaseURL)
	}
	return c
}

func run(ctx context.Context, cfg *config.Config, inputPath string, c clients) error {
	log := logger.New(cfg.Logging.Level)

	tool := media.New(cfg.FFmpeg, c.executor, log)
	if err := tool.CheckTools(ctx); err != nil {
		return fmt.Errorf("ffmpeg and ffprobe are required, please install them first: %w", err)
	}

	var sum summarizer.Summarizer
	if cfg.Summary.Enabled {
		sum = summarizer.New(c.generator, cfg.Summary, log)
	}

	proc := processor.New(
		cfg,
		segmenter.New(tool, cfg.Segment.MaxLength, cfg.Paths.Root, log),
		transcriber.New(c.speech, cfg.OpenAI.TranscriptionModel, log),
		aggregator.New(log),
		sum,
		log,
	)

	result, err := proc.Process(ctx, inputPath)
	if err != nil {
		return err
	}

	log.Info(ctx, "Successfully completed transcription!")
	log.Debug(ctx, "Combined: %s", result.Combined)
	if result.Summary != "" {
		log.Debug(ctx, "Summary: %s", result.Summary)
	}
	return nil
}
