package inference

import (
	"context"
	"errors"
	"fmt"

	"github.com/kinecta/kinecta/pkg/prompt"
)

// ErrMalformedResponse reports a backend reply that carried no generated text.
var ErrMalformedResponse = errors.New("backend returned no generated text")

// Engine is the opaque boundary to a generation backend. It receives the
// ordered request turns (context first) and returns the generated ancestor
// reply. Engines handle provider-specific wire formats; everything above them
// only sees role-tagged turns.
type Engine interface {
	Generate(ctx context.Context, turns []prompt.Turn) (string, error)
}

// Settings carries the provider-independent generation parameters.
type Settings struct {
	Provider    string
	Host        string
	APIKey      string
	Model       string
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// NewEngine builds the engine selected by the settings.
func NewEngine(settings Settings) (Engine, error) {
	switch settings.Provider {
	case "ollama":
		return NewOllamaEngine(settings)
	case "openai":
		return NewOpenAIEngine(settings)
	default:
		return nil, fmt.Errorf("unknown backend provider %q", settings.Provider)
	}
}
