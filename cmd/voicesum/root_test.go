package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/voice-summarizer/internal/config"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestRootCmd_RequiresExactlyOneArg(t *testing.T) {
	cmd := newRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCommand()

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "Output", output.DefValue)

	for _, name := range []string{"api-key", "base-url", "whisper-model", "summary-model", "prompt-file", "no-summary", "provider", "docx", "continue-on-error", "config"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s should exist", name)
	}
}

func TestBuildConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "voicesum.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
openai:
  api_key: "sk-yaml"
  transcription_model: "yaml-model"
summary:
  model: "yaml-summary"
paths:
  output: "yaml-out"
`), 0644))

	opts := &options{}
	cmd := newCommand(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--whisper-model", "flag-model", "--no-summary", "--continue-on-error"}))

	cfg, err := buildConfig(cmd, opts, envFrom(map[string]string{
		"VOICESUM_CONFIG":      cfgPath,
		"OPENAI_API_KEY":       "sk-env",
		"OPENAI_WHISPER_MODEL": "env-model",
	}))
	require.NoError(t, err)

	assert.Equal(t, "sk-env", cfg.OpenAI.APIKey, "env beats yaml")
	assert.Equal(t, "flag-model", cfg.OpenAI.TranscriptionModel, "flag beats env")
	assert.Equal(t, "yaml-summary", cfg.Summary.Model, "yaml beats default")
	assert.Equal(t, "yaml-out", cfg.Paths.Output, "unset flag keeps yaml value")
	assert.False(t, cfg.Summary.Enabled)
	assert.False(t, cfg.Processing.AbortOnSegmentFailure)
}

func TestBuildConfig_Defaults(t *testing.T) {
	opts := &options{}
	cmd := newCommand(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--api-key", "sk-flag"}))

	cfg, err := buildConfig(cmd, opts, envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "sk-flag", cfg.OpenAI.APIKey)
	assert.Equal(t, "Output", cfg.Paths.Output)
	assert.Equal(t, "whisper-1", cfg.OpenAI.TranscriptionModel)
	assert.Equal(t, "gpt-4o-mini", cfg.Summary.Model)
	assert.Equal(t, config.DefaultPromptFile, cfg.Summary.PromptFile)
	assert.True(t, cfg.Summary.Enabled, "summaries are on unless --no-summary")
	assert.True(t, cfg.Processing.AbortOnSegmentFailure)
	assert.False(t, cfg.Output.Docx)
}

func TestBuildConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "missing api key", args: nil},
		{name: "bad provider", args: []string{"--api-key", "k", "--provider", "other"}},
		{name: "bad log level", args: []string{"--api-key", "k", "--log-level", "loud"}},
		{name: "explicit config missing", args: []string{"--api-key", "k", "--config", "does-not-exist.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &options{}
			cmd := newCommand(opts)
			require.NoError(t, cmd.ParseFlags(tt.args))

			_, err := buildConfig(cmd, opts, envFrom(tt.env))
			assert.Error(t, err)
		})
	}
}
