package summarizer

import (
	"fmt"

	"github.com/krets/transcribe/internal/config"
	"github.com/krets/transcribe/internal/logger"
)

// New creates the Summarizer selected by summary.backend
func New(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	directive := cfg.Summary.Directive
	if directive == "" {
		directive = DefaultDirective
	}

	switch cfg.Summary.Backend {
	case config.BackendOpenAI, "":
		return newOpenAI(cfg.OpenAI, directive, log), nil
	case config.BackendGemini:
		return newGemini(cfg.Gemini, directive, log), nil
	default:
		return nil, fmt.Errorf("unknown summary backend: %s", cfg.Summary.Backend)
	}
}
