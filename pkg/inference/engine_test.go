package inference

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinecta/kinecta/pkg/prompt"
)

func TestNewEngineSelectsProvider(t *testing.T) {
	engine, err := NewEngine(Settings{Provider: "ollama", Host: "http://localhost:11434", Model: "qwen2.5:7b"})
	require.NoError(t, err)
	assert.IsType(t, &OllamaEngine{}, engine)

	engine, err = NewEngine(Settings{Provider: "openai", APIKey: "test-key", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIEngine{}, engine)

	_, err = NewEngine(Settings{Provider: "carrier-pigeon"})
	require.Error(t, err)
}

func TestNewOllamaEngineRejectsBadHost(t *testing.T) {
	_, err := NewOllamaEngine(Settings{Host: "://not-a-url"})
	require.Error(t, err)
}

func TestOllamaRoleMapping(t *testing.T) {
	assert.Equal(t, "system", ollamaRole(prompt.RoleContext))
	assert.Equal(t, "user", ollamaRole(prompt.RoleRequester))
	assert.Equal(t, "assistant", ollamaRole(prompt.RoleResponder))
}

func TestOpenAIRoleMapping(t *testing.T) {
	assert.Equal(t, openai.ChatMessageRoleSystem, openaiRole(prompt.RoleContext))
	assert.Equal(t, openai.ChatMessageRoleUser, openaiRole(prompt.RoleRequester))
	assert.Equal(t, openai.ChatMessageRoleAssistant, openaiRole(prompt.RoleResponder))
}
