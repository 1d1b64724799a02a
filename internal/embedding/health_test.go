package embedding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthChecker(t *testing.T) {
	assert.True(t, NewHealthChecker(NewEmbedder(NewHashClient(8))).Healthy(context.Background()))
	assert.False(t, NewHealthChecker(nil).Healthy(context.Background()))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewOllamaClient(srv.URL)
	require.NoError(t, err)
	assert.False(t, NewHealthChecker(NewEmbedder(client)).Healthy(context.Background()))
}
