package transcriber

import (
	"context"
	"fmt"
	"os"

	"github.com/krets/transcribe/internal/config"
	"github.com/krets/transcribe/internal/logger"
	"github.com/krets/transcribe/internal/transcript"
	openai "github.com/sashabaranov/go-openai"
)

type implTranscriber struct {
	client   *openai.Client
	model    string
	language string
	logger   logger.Logger
}

// New creates a Transcriber for the OpenAI audio transcription endpoint
func New(cfg *config.Config, log logger.Logger) Transcriber {
	clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	}

	return &implTranscriber{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.OpenAI.TranscriptionModel,
		language: cfg.OpenAI.Language,
		logger:   log,
	}
}

// Transcribe uploads audioPath and requests the verbose_json response so
// segment timings are kept.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (transcript.Document, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return transcript.Document{}, fmt.Errorf("audio file: %w", err)
	}
	if info.Size() == 0 {
		return transcript.Document{}, fmt.Errorf("audio file is empty: %s", audioPath)
	}

	t.logger.Info(ctx, "Transcribing with %s (%d bytes)", t.model, info.Size())

	req := openai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
		Language: t.language,
	}
	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return transcript.Document{}, fmt.Errorf("create transcription: %w", err)
	}

	doc := transcript.Document{
		Text:     resp.Text,
		Language: resp.Language,
		Duration: resp.Duration,
		Segments: make([]transcript.Segment, 0, len(resp.Segments)),
	}
	for _, seg := range resp.Segments {
		doc.Segments = append(doc.Segments, transcript.Segment{
			ID:    seg.ID,
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}

	if doc.Empty() {
		t.logger.Warn(ctx, "No speech recognized in %s", audioPath)
	}

	t.logger.Info(ctx, "Transcription completed: %d segments, %.0fs, language %s", len(doc.Segments), doc.Duration, doc.Language)
	return doc, nil
}
