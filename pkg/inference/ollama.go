package inference

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jmorganca/ollama/api"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/kinecta/kinecta/pkg/prompt"
)

// OllamaEngine talks to a local Ollama server's /api/chat endpoint.
type OllamaEngine struct {
	client   *api.Client
	settings Settings
}

var _ Engine = (*OllamaEngine)(nil)

func NewOllamaEngine(settings Settings) (*OllamaEngine, error) {
	base, err := url.Parse(settings.Host)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "parse ollama host %q", settings.Host)
	}

	return &OllamaEngine{
		client:   api.NewClient(base, http.DefaultClient),
		settings: settings,
	}, nil
}

func (e *OllamaEngine) Generate(ctx context.Context, turns []prompt.Turn) (string, error) {
	messages := make([]api.Message, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, api.Message{
			Role:    ollamaRole(turn.Role),
			Content: turn.Content,
		})
	}

	stream := false
	req := &api.ChatRequest{
		Model:    e.settings.Model,
		Messages: messages,
		Stream:   &stream,
		Options: map[string]interface{}{
			"temperature": e.settings.Temperature,
			"top_p":       e.settings.TopP,
			"num_predict": e.settings.MaxTokens,
		},
	}

	content := ""
	err := e.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		content += resp.Message.Content
		return nil
	})
	if err != nil {
		return "", pkgerrors.Wrap(err, "ollama chat request")
	}
	if content == "" {
		return "", ErrMalformedResponse
	}

	log.Debug().Str("model", e.settings.Model).Int("turns", len(turns)).Msg("ollama generation complete")
	return content, nil
}

func ollamaRole(role prompt.Role) string {
	switch role {
	case prompt.RoleContext:
		return "system"
	case prompt.RoleResponder:
		return "assistant"
	default:
		return "user"
	}
}
