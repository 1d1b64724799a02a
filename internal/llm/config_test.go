package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chatEnvKeys = []string{
	"CHAT_PROVIDER", "CHAT_MODEL", "CHAT_BASE_URL", "CHAT_FALLBACK_PROVIDER", "CHAT_FALLBACK_MODEL",
	"CHAT_TEMPERATURE", "CHAT_MAX_TOKENS", "GEMINI_API_KEY", "ANTHROPIC_API_KEY",
	"IMAGE_PROVIDER", "IMAGE_MODEL",
}

func TestLoadConfigFromEnv(t *testing.T) {
	temp := 0.3

	tests := []struct {
		name    string
		env     map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name: "defaults to ollama",
			env:  map[string]string{},
			want: &Config{Primary: ModelConfig{Provider: ProviderOllama, Model: "llama3.2", BaseURL: "http://localhost:11434"}},
		},
		{
			name: "anthropic primary with ollama light",
			env: map[string]string{
				"CHAT_PROVIDER":          "anthropic",
				"ANTHROPIC_API_KEY":      "sk",
				"CHAT_FALLBACK_PROVIDER": "ollama",
				"CHAT_FALLBACK_MODEL":    "qwen2.5:0.5b",
				"CHAT_BASE_URL":          "http://ollama:11434",
				"CHAT_TEMPERATURE":       "0.3",
				"CHAT_MAX_TOKENS":        "512",
			},
			want: &Config{
				Primary:     ModelConfig{Provider: ProviderAnthropic, Model: "claude-3-5-haiku-latest", APIKey: "sk"},
				Light:       &ModelConfig{Provider: ProviderOllama, Model: "qwen2.5:0.5b", BaseURL: "http://ollama:11434"},
				Temperature: &temp,
				MaxTokens:   512,
			},
		},
		{
			name: "gemini image model",
			env:  map[string]string{"IMAGE_PROVIDER": "gemini", "GEMINI_API_KEY": "g-key"},
			want: &Config{
				Primary: ModelConfig{Provider: ProviderOllama, Model: "llama3.2", BaseURL: "http://localhost:11434"},
				Image:   &ModelConfig{Provider: ProviderGemini, Model: "imagen-3.0-generate-002", APIKey: "g-key"},
			},
		},
		{name: "image provider without images", env: map[string]string{"IMAGE_PROVIDER": "ollama"}, wantErr: true},
		{name: "gemini image without key", env: map[string]string{"IMAGE_PROVIDER": "gemini"}, wantErr: true},
		{name: "gemini without key", env: map[string]string{"CHAT_PROVIDER": "gemini"}, wantErr: true},
		{name: "unknown provider", env: map[string]string{"CHAT_PROVIDER": "openai"}, wantErr: true},
		{name: "bad temperature", env: map[string]string{"CHAT_TEMPERATURE": "hot"}, wantErr: true},
		{name: "bad max tokens", env: map[string]string{"CHAT_MAX_TOKENS": "-1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range chatEnvKeys {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := LoadConfigFromEnv()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
