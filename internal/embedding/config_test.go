package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name: "ollama defaults",
			env:  map[string]string{},
			want: &Config{Provider: ProviderOllama, BaseURL: "http://localhost:11434", Dimensions: defaultHashDimensions},
		},
		{
			name: "hash with dims",
			env:  map[string]string{"EMBEDDING_PROVIDER": "hash", "EMBEDDING_DIMENSIONS": "32"},
			want: &Config{Provider: ProviderHash, Model: "hash", Dimensions: 32},
		},
		{
			name: "gemini",
			env:  map[string]string{"EMBEDDING_PROVIDER": "gemini", "GEMINI_API_KEY": "key"},
			want: &Config{Provider: ProviderGemini, Model: "text-embedding-004", APIKey: "key", Dimensions: defaultHashDimensions},
		},
		{
			name:    "gemini without key",
			env:     map[string]string{"EMBEDDING_PROVIDER": "gemini"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			env:     map[string]string{"EMBEDDING_PROVIDER": "openai"},
			wantErr: true,
		},
		{
			name:    "bad max length",
			env:     map[string]string{"EMBEDDING_MAX_LENGTH": "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"EMBEDDING_PROVIDER", "EMBEDDING_MODEL", "EMBEDDING_BASE_URL", "EMBEDDING_MAX_LENGTH", "EMBEDDING_DIMENSIONS", "GEMINI_API_KEY"} {
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

func TestLoadConfigFromEnv_MaxLength(t *testing.T) {
	t.Setenv("EMBEDDING_PROVIDER", "hash")
	t.Setenv("EMBEDDING_MAX_LENGTH", "128")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	require.NotNil(t, cfg.MaxLength)
	assert.Equal(t, 128, *cfg.MaxLength)
}

func TestNewFromConfig_Hash(t *testing.T) {
	maxLen := 4
	e, err := NewFromConfig(context.Background(), &Config{Provider: ProviderHash, Model: "hash", Dimensions: 16, MaxLength: &maxLen})
	require.NoError(t, err)

	vec, err := e.EmbedText(context.Background(), "hello")
	require.NoError(t, err)
	assert.Len(t, vec, 4)
	assert.Equal(t, "hash", e.Model())
}
