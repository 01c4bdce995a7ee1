package inference

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/kinecta/kinecta/pkg/prompt"
)

// OpenAIEngine talks to an OpenAI-compatible chat-completion endpoint. With a
// custom host it also covers self-hosted gateways exposing the same API.
type OpenAIEngine struct {
	client   *openai.Client
	settings Settings
}

var _ Engine = (*OpenAIEngine)(nil)

func NewOpenAIEngine(settings Settings) (*OpenAIEngine, error) {
	cfg := openai.DefaultConfig(settings.APIKey)
	if settings.Host != "" {
		cfg.BaseURL = settings.Host
	}

	return &OpenAIEngine{
		client:   openai.NewClientWithConfig(cfg),
		settings: settings,
	}, nil
}

func (e *OpenAIEngine) Generate(ctx context.Context, turns []prompt.Turn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openaiRole(turn.Role),
			Content: turn.Content,
		})
	}

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.settings.Model,
		Messages:    messages,
		Temperature: float32(e.settings.Temperature),
		TopP:        float32(e.settings.TopP),
		MaxTokens:   e.settings.MaxTokens,
	})
	if err != nil {
		return "", pkgerrors.Wrap(err, "openai chat completion")
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrMalformedResponse
	}

	log.Debug().Str("model", e.settings.Model).Int("turns", len(turns)).Msg("openai generation complete")
	return resp.Choices[0].Message.Content, nil
}

func openaiRole(role prompt.Role) string {
	switch role {
	case prompt.RoleContext:
		return openai.ChatMessageRoleSystem
	case prompt.RoleResponder:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}
