package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIProvider_IsValid(t *testing.T) {
	assert.True(t, AIProviderOllama.IsValid())
	assert.True(t, AIProviderOpenAI.IsValid())
	assert.False(t, AIProvider("bedrock").IsValid())
}

func TestAIProvider_RequiresAPIKey(t *testing.T) {
	assert.True(t, AIProviderOpenAI.RequiresAPIKey())
	assert.False(t, AIProviderOllama.RequiresAPIKey())
}

func TestEmbeddingSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings EmbeddingSettings
		want     bool
	}{
		{
			name:     "ollama without key",
			settings: EmbeddingSettings{Provider: AIProviderOllama},
			want:     true,
		},
		{
			name:     "openai with key",
			settings: EmbeddingSettings{Provider: AIProviderOpenAI, APIKey: "sk-test"},
			want:     true,
		},
		{
			name:     "openai missing key",
			settings: EmbeddingSettings{Provider: AIProviderOpenAI},
			want:     false,
		},
		{
			name:     "unknown provider",
			settings: EmbeddingSettings{Provider: "mystery"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.IsConfigured())
		})
	}
}

func TestLLMSettings_IsConfigured(t *testing.T) {
	assert.True(t, LLMSettings{Provider: AIProviderOllama}.IsConfigured())
	assert.False(t, LLMSettings{Provider: AIProviderOpenAI}.IsConfigured())
}

func TestChatSettings_Normalise(t *testing.T) {
	t.Run("in-range values preserved", func(t *testing.T) {
		c := ChatSettings{Temperature: 0.7, TopK: 3}.Normalise()
		assert.Equal(t, 0.7, c.Temperature)
		assert.Equal(t, 3, c.TopK)
	})

	t.Run("out-of-range values reset to defaults", func(t *testing.T) {
		c := ChatSettings{Temperature: 1.5, TopK: 50}.Normalise()
		assert.Equal(t, DefaultTemperature, c.Temperature)
		assert.Equal(t, DefaultTopK, c.TopK)
	})

	t.Run("zero top-k resets", func(t *testing.T) {
		c := ChatSettings{Temperature: 0.1, TopK: 0}.Normalise()
		assert.Equal(t, DefaultTopK, c.TopK)
	})
}
