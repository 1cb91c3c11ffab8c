package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/krets/transcribe/internal/config"
	"github.com/krets/transcribe/internal/logger"
	"google.golang.org/genai"
)

type implGemini struct {
	apiKey    string
	baseURL   string
	model     string
	directive string
	logger    logger.Logger
}

func newGemini(cfg config.GeminiConfig, directive string, log logger.Logger) Summarizer {
	return &implGemini{
		apiKey:    cfg.APIKey,
		baseURL:   cfg.BaseURL,
		model:     cfg.Model,
		directive: directive,
		logger:    log,
	}
}

// Summarize sends the transcript to Gemini with the directive as system instruction.
func (s *implGemini) Summarize(ctx context.Context, transcript, extraPrompt string) (string, error) {
	s.logger.Info(ctx, "Summarizing with %s", s.model)

	clientCfg := &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if s.baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: s.baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Role:  "user",
			Parts: []*genai.Part{{Text: systemInstruction(s.directive, extraPrompt)}},
		},
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(transcript), genCfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if text != "" {
			return text, nil
		}
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func systemInstruction(directive, extraPrompt string) string {
	extraPrompt = strings.TrimSpace(extraPrompt)
	if extraPrompt == "" {
		return directive
	}
	return directive + "\n\n" + extraPrompt
}
