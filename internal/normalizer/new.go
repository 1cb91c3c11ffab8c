package normalizer

import (
	"github.com/krets/transcribe/internal/config"
	"github.com/krets/transcribe/internal/logger"
	"github.com/krets/transcribe/pkg/executor"
)

type implNormalizer struct {
	cfg      config.FFmpegConfig
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Normalizer backed by ffmpeg
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Normalizer {
	return &implNormalizer{
		cfg:      cfg.FFmpeg,
		tempDir:  cfg.Paths.Temp,
		executor: exec,
		logger:   log,
	}
}
