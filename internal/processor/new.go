package processor

import (
	"time"

	"github.com/krets/transcribe/internal/cache"
	"github.com/krets/transcribe/internal/logger"
	"github.com/krets/transcribe/internal/normalizer"
	"github.com/krets/transcribe/internal/summarizer"
	"github.com/krets/transcribe/internal/transcriber"
)

type implProcessor struct {
	cache       cache.Cache
	normalizer  normalizer.Normalizer
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
	now         func() time.Time
}

// New creates a new Processor instance
func New(
	c cache.Cache,
	n normalizer.Normalizer,
	t transcriber.Transcriber,
	s summarizer.Summarizer,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cache:       c,
		normalizer:  n,
		transcriber: t,
		summarizer:  s,
		logger:      log,
		now:         time.Now,
	}
}
