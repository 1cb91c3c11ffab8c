package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/krets/transcribe/internal/config"
	"github.com/krets/transcribe/internal/logger"
	openai "github.com/sashabaranov/go-openai"
)

type implOpenAI struct {
	client    *openai.Client
	model     string
	directive string
	logger    logger.Logger
}

func newOpenAI(cfg config.OpenAIConfig, directive string, log logger.Logger) Summarizer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &implOpenAI{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.SummaryModel,
		directive: directive,
		logger:    log,
	}
}

func (s *implOpenAI) Summarize(ctx context.Context, transcript, extraPrompt string) (string, error) {
	s.logger.Info(ctx, "Summarizing with %s", s.model)

	req := openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: buildMessages(s.directive, transcript, extraPrompt),
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat completion response")
	}

	s.logger.Debug(ctx, "Summary usage: %d prompt tokens, %d completion tokens",
		resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	return resp.Choices[0].Message.Content, nil
}

// buildMessages sends the extra prompt as a trailing system message so it
// can refine the directive after the model has seen the transcript.
func buildMessages(directive, transcript, extraPrompt string) []openai.ChatCompletionMessage {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: directive},
		{Role: openai.ChatMessageRoleUser, Content: transcript},
	}
	if strings.TrimSpace(extraPrompt) != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: extraPrompt,
		})
	}
	return messages
}
