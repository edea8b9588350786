package config

import (
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultMaxSegmentLength = 570 // 9.5 minutes
	DefaultPromptFile       = "summarization_prompt.md"
)

type Config struct {
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Summary    SummaryConfig    `yaml:"summary"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Segment    SegmentConfig    `yaml:"segment"`
	Paths      PathsConfig      `yaml:"paths"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Processing ProcessingConfig `yaml:"processing"`
}

// OpenAIConfig is the client identity shared by transcription and summarization
type OpenAIConfig struct {
	APIKey             string `yaml:"api_key"`
	BaseURL            string `yaml:"base_url"`
	TranscriptionModel string `yaml:"transcription_model"`
}

type GeminiConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

type SummaryConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Provider    string  `yaml:"provider"`
	Model       string  `yaml:"model"`
	PromptFile  string  `yaml:"prompt_file"`
	Temperature float32 `yaml:"temperature"`
}

type FFmpegConfig struct {
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
	AudioCodec  string `yaml:"audio_codec"`
}

type SegmentConfig struct {
	MaxLength float64 `yaml:"max_length"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	// Root bounds every output path; empty means the working directory.
	Root string `yaml:"root"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ProcessingConfig struct {
	AbortOnSegmentFailure bool `yaml:"abort_on_segment_failure"`
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		OpenAI: OpenAIConfig{
			TranscriptionModel: "whisper-1",
		},
		Summary: SummaryConfig{
			Enabled:     true,
			Provider:    ProviderOpenAI,
			Model:       "gpt-4o-mini",
			PromptFile:  DefaultPromptFile,
			Temperature: 0.7,
		},
		FFmpeg: FFmpegConfig{
			FFmpegPath:  "ffmpeg",
			FFprobePath: "ffprobe",
			AudioCodec:  "libmp3lame",
		},
		Segment: SegmentConfig{
			MaxLength: DefaultMaxSegmentLength,
		},
		Paths: PathsConfig{
			Output: "Output",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Processing: ProcessingConfig{
			AbortOnSegmentFailure: true,
		},
	}
}

func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required (set OPENAI_API_KEY or use --api-key)")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Segment.MaxLength <= 0 {
		return fmt.Errorf("segment.max_length must be positive, got %v", c.Segment.MaxLength)
	}

	c.Summary.Provider = strings.ToLower(strings.TrimSpace(c.Summary.Provider))
	switch c.Summary.Provider {
	case "":
		c.Summary.Provider = ProviderOpenAI
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("summary.provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.Summary.Provider)
	}

	if c.OpenAI.TranscriptionModel == "" {
		c.OpenAI.TranscriptionModel = "whisper-1"
	}
	if c.Summary.Model == "" {
		if c.Summary.Provider == ProviderGemini {
			c.Summary.Model = "gemini-2.5-flash"
		} else {
			c.Summary.Model = "gpt-4o-mini"
		}
	}
	if c.Summary.PromptFile == "" {
		c.Summary.PromptFile = DefaultPromptFile
	}
	if c.Gemini.APIKey == "" {
		c.Gemini.APIKey = c.OpenAI.APIKey
	}
	if c.FFmpeg.FFmpegPath == "" {
		c.FFmpeg.FFmpegPath = "ffmpeg"
	}
	if c.FFmpeg.FFprobePath == "" {
		c.FFmpeg.FFprobePath = "ffprobe"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "libmp3lame"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
