package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned by Validate when OPENAI_API_KEY is not set.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY environment variable not set")

const (
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

type Config struct {
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Summary SummaryConfig `yaml:"summary"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

// OpenAIConfig covers both the transcription and the chat endpoints.
// The key is only ever read from the environment.
type OpenAIConfig struct {
	APIKey             string `yaml:"-"`
	BaseURL            string `yaml:"base_url"`
	TranscriptionModel string `yaml:"transcription_model"`
	SummaryModel       string `yaml:"summary_model"`
	Language           string `yaml:"language"`
}

type SummaryConfig struct {
	Backend   string `yaml:"backend"`
	Directive string `yaml:"directive"`
}

type GeminiConfig struct {
	APIKey  string `yaml:"-"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	AudioCodec string `yaml:"audio_codec"`
	Quality    string `yaml:"quality"`
	SampleRate int    `yaml:"sample_rate"`
	Channels   int    `yaml:"channels"`
	Extension  string `yaml:"extension"`
}

type PathsConfig struct {
	Temp string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the YAML file at path and overlays credentials from the environment.
// A missing file yields an empty Config; call Validate to apply defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		cfg.OpenAI.BaseURL = baseURL
	}

	cfg.expandPaths()
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return ErrMissingAPIKey
	}

	if c.Summary.Backend == "" {
		c.Summary.Backend = BackendOpenAI
	}
	switch c.Summary.Backend {
	case BackendOpenAI:
	case BackendGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable not set (required by summary.backend %q)", BackendGemini)
		}
	default:
		return fmt.Errorf("unknown summary.backend: %s (supported: %s, %s)", c.Summary.Backend, BackendOpenAI, BackendGemini)
	}

	if c.FFmpeg.SampleRate < 0 {
		return fmt.Errorf("ffmpeg.sample_rate must not be negative")
	}
	if c.FFmpeg.Channels < 0 {
		return fmt.Errorf("ffmpeg.channels must not be negative")
	}

	if c.OpenAI.TranscriptionModel == "" {
		c.OpenAI.TranscriptionModel = "whisper-1"
	}
	if c.OpenAI.SummaryModel == "" {
		c.OpenAI.SummaryModel = "gpt-4o-mini"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "libmp3lame"
	}
	if c.FFmpeg.Quality == "" {
		c.FFmpeg.Quality = "5"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 22050
	}
	if c.FFmpeg.Channels == 0 {
		c.FFmpeg.Channels = 1
	}
	if c.FFmpeg.Extension == "" {
		c.FFmpeg.Extension = ".mp3"
	}
	if !strings.HasPrefix(c.FFmpeg.Extension, ".") {
		c.FFmpeg.Extension = "." + c.FFmpeg.Extension
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// expandPaths replaces a leading ~ with $HOME in path fields.
func (c *Config) expandPaths() {
	home := os.Getenv("HOME")

	c.FFmpeg.BinaryPath = expandPath(c.FFmpeg.BinaryPath, home)
	c.Paths.Temp = expandPath(c.Paths.Temp, home)
}

func expandPath(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
