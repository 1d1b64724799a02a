package embedding

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embeddings", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req OllamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nomic-embed-text", req.Model)
		assert.Equal(t, "hello world", req.Prompt)

		_, _ = w.Write([]byte(`{"embedding":[0.1,0.2,0.3]}`))
	}))
	defer srv.Close()

	client, err := NewOllamaClient(srv.URL)
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), Request{Model: "nomic-embed-text", Prompt: "hello world"})
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, resp.Embedding)
}

func TestOllamaClient_GenerateBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embed", r.URL.Path)

		var req OllamaBatchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"a", "b"}, req.Input)

		_, _ = w.Write([]byte(`{"model":"m","embeddings":[[1,0],[0,1]]}`))
	}))
	defer srv.Close()

	client, err := NewOllamaClient(srv.URL)
	require.NoError(t, err)

	resp, err := client.GenerateBatch(context.Background(), BatchRequest{Model: "m", Prompts: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 0}, {0, 1}}, resp.Embeddings)
}

func TestOllamaClient_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model not found"}`))
	}))
	defer srv.Close()

	client, err := NewOllamaClient(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	var ve *apperr.ValidationError
	_, err = client.Generate(ctx, Request{Model: "m"})
	assert.True(t, errors.As(err, &ve), "empty prompt")

	_, err = client.Generate(ctx, Request{Prompt: "x"})
	assert.True(t, errors.As(err, &ve), "empty model")

	_, err = client.GenerateBatch(ctx, BatchRequest{Model: "m"})
	assert.True(t, errors.As(err, &ve), "no prompts")

	_, err = client.Generate(ctx, Request{Model: "m", Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 404")
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "model not found")
}

func TestOllamaClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "bad request",
			status: http.StatusBadRequest,
			body:   `{"error":"input too long"}`,
			check: func(t *testing.T, err error) {
				var ve *apperr.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Contains(t, ve.Message, "input too long")
			},
		},
		{
			name:   "server error",
			status: http.StatusServiceUnavailable,
			body:   `loading model`,
			check: func(t *testing.T, err error) {
				var ue *apperr.UnavailableError
				require.ErrorAs(t, err, &ue)
				assert.Contains(t, err.Error(), "loading model")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, err := NewOllamaClient(srv.URL)
			require.NoError(t, err)
			_, err = client.GenerateBatch(context.Background(), BatchRequest{Model: "m", Prompts: []string{"a"}})
			tt.check(t, err)
		})
	}
}

func TestOllamaClient_Options(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req OllamaBatchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "10m", req.KeepAlive)
		require.NotNil(t, req.Truncate)
		assert.False(t, *req.Truncate)
		_, _ = w.Write([]byte(`{"embeddings":[[1]]}`))
	}))
	defer srv.Close()

	client, err := NewOllamaClient(srv.URL, WithKeepAlive("10m"), WithTruncate(false))
	require.NoError(t, err)
	_, err = client.GenerateBatch(context.Background(), BatchRequest{Model: "m", Prompts: []string{"a"}})
	require.NoError(t, err)
}

func TestOllamaClient_EmptyEmbedding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"embedding":[]}`))
	}))
	defer srv.Close()

	client, err := NewOllamaClient(srv.URL)
	require.NoError(t, err)
	_, err = client.Generate(context.Background(), Request{Model: "m", Prompt: "x"})
	assert.ErrorContains(t, err, "empty embedding")
}

func TestNewOllamaClient_RelativeURL(t *testing.T) {
	_, err := NewOllamaClient("localhost")
	assert.Error(t, err)
}

func TestOllamaClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewOllamaClient(url)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), Request{Model: "m", Prompt: "x"})
	var ue *apperr.UnavailableError
	assert.True(t, errors.As(err, &ue))
}
