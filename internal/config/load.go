package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path over the defaults.
// A missing file is an error unless optional is set.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDotEnv loads KEY=value files into the process environment.
// Variables that are already set win; missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load env file %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overlays environment variables onto cfg
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}

	set(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	set(&c.OpenAI.BaseURL, "OPENAI_BASE_URL")
	set(&c.OpenAI.TranscriptionModel, "OPENAI_WHISPER_MODEL")
	set(&c.Summary.Model, "OPENAI_SUMMARY_MODEL")
	set(&c.Summary.PromptFile, "PROMPT_FILE")
	set(&c.Summary.Provider, "SUMMARY_PROVIDER")
	set(&c.Gemini.APIKey, "GEMINI_API_KEY")
	set(&c.Gemini.BaseURL, "GEMINI_BASE_URL")
	set(&c.Logging.Level, "LOG_LEVEL")
}
